package hlogging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewZapLogger 创建记录调用位置、并在 error 及以上级别附带调用栈的 zap.Logger。
func NewZapLogger(core zapcore.Core, options ...zap.Option) *zap.Logger {
	return zap.New(core, append([]zap.Option{zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel)}, options...)...)
}

// PairingLogger 是各个包使用的日志器，对 zap.SugaredLogger 的薄封装。
type PairingLogger struct {
	s *zap.SugaredLogger
}

func NewPairingLogger(l *zap.Logger, options ...zap.Option) *PairingLogger {
	return &PairingLogger{
		s: l.WithOptions(append(options, zap.AddCallerSkip(1))...).Sugar(),
	}
}

func (pl *PairingLogger) Debug(args ...interface{})                 { pl.s.Debug(fmt.Sprint(args...)) }
func (pl *PairingLogger) Debugf(template string, args ...interface{}) { pl.s.Debugf(template, args...) }
func (pl *PairingLogger) Debugw(msg string, kvs ...interface{})      { pl.s.Debugw(msg, kvs...) }

func (pl *PairingLogger) Info(args ...interface{})                 { pl.s.Info(fmt.Sprint(args...)) }
func (pl *PairingLogger) Infof(template string, args ...interface{}) { pl.s.Infof(template, args...) }
func (pl *PairingLogger) Infow(msg string, kvs ...interface{})      { pl.s.Infow(msg, kvs...) }

func (pl *PairingLogger) Warn(args ...interface{})                 { pl.s.Warn(fmt.Sprint(args...)) }
func (pl *PairingLogger) Warnf(template string, args ...interface{}) { pl.s.Warnf(template, args...) }
func (pl *PairingLogger) Warnw(msg string, kvs ...interface{})      { pl.s.Warnw(msg, kvs...) }

func (pl *PairingLogger) Error(args ...interface{})                 { pl.s.Error(fmt.Sprint(args...)) }
func (pl *PairingLogger) Errorf(template string, args ...interface{}) { pl.s.Errorf(template, args...) }
func (pl *PairingLogger) Errorw(msg string, kvs ...interface{})      { pl.s.Errorw(msg, kvs...) }

func (pl *PairingLogger) Panicf(template string, args ...interface{}) { pl.s.Panicf(template, args...) }

func (pl *PairingLogger) IsEnabledFor(level zapcore.Level) bool {
	return pl.s.Desugar().Core().Enabled(level)
}

func (pl *PairingLogger) With(args ...interface{}) *PairingLogger {
	return &PairingLogger{s: pl.s.With(args...)}
}

func (pl *PairingLogger) Named(name string) *PairingLogger {
	return &PairingLogger{s: pl.s.Named(name)}
}

func (pl *PairingLogger) Zap() *zap.Logger {
	return pl.s.Desugar()
}

// Package hlogging 在 zap 之上提供按名字分级的日志器。输出格式可以是带颜色的控制台格式、json 或 logfmt，
// 日志级别由 "logger=level:level" 形式的规格控制。
package hlogging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/11090815/pairing/common/hlogging/enc"
	zaplogfmt "github.com/sykesm/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	DefaultFormat   = "%{color:bold}%{level:.4s}%{color:reset} %{color}%{time:2006-01-02 15:04:05.000} %{id:04x}%{color:reset} [%{module}] %{color}%{longfunc}%{color:reset} -> %{message}"
	ShortFuncFormat = "%{color:bold}%{level:.4s}%{color:reset} %{color}%{time:2006-01-02 15:04:05.000} %{id:04x}%{color:reset} [%{module}] %{color}%{shortfunc}%{color:reset} -> %{message}"

	// SpecEnv 和 FormatEnv 在 Config 中对应字段为空时提供取值。
	SpecEnv   = "PAIRING_LOGGING_SPEC"
	FormatEnv = "PAIRING_LOGGING_FORMAT"

	defaultLevel = zapcore.InfoLevel
)

type Config struct {
	// Format 是 "json"、"logfmt" 或者由 %{verb} 组成的控制台格式。
	Format string
	// LogSpec 形如 "pairing.bls=debug:warn"。
	LogSpec string
	// Writer 默认是 os.Stderr。
	Writer io.Writer
}

// Logging 保存日志级别、编码方式、输出和观察者，由它创建的日志器共享这些配置。
type Logging struct {
	*LoggerLevels

	mutex         sync.RWMutex
	encoding      Encoding
	encoderConfig zapcore.EncoderConfig
	console       *enc.MultiFormatter
	writer        zapcore.WriteSyncer
	observer      Observer
}

func NewLogging(c Config) (*Logging, error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.NameKey = "name"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l := &Logging{
		LoggerLevels:  &LoggerLevels{defaultLevel: defaultLevel, minLevel: defaultLevel},
		encoderConfig: encoderConfig,
		console:       enc.NewMultiFormatter(),
	}
	if err := l.Apply(c); err != nil {
		return nil, err
	}
	return l, nil
}

// Apply 依次设置格式、级别规格和输出，任何一步失败都返回错误。
func (l *Logging) Apply(c Config) error {
	if c.Format == "" {
		c.Format = os.Getenv(FormatEnv)
	}
	if err := l.SetFormat(c.Format); err != nil {
		return err
	}

	if c.LogSpec == "" {
		c.LogSpec = os.Getenv(SpecEnv)
	}
	if c.LogSpec == "" {
		c.LogSpec = defaultLevel.String()
	}
	if err := l.ActivateSpec(c.LogSpec); err != nil {
		return err
	}

	if c.Writer == nil {
		c.Writer = os.Stderr
	}
	l.SetWriter(c.Writer)
	return nil
}

// SetFormat 设置编码方式，空字符串表示 DefaultFormat。
func (l *Logging) SetFormat(format string) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	switch format {
	case "json":
		l.encoding = JSON
		return nil
	case "logfmt":
		l.encoding = LOGFMT
		return nil
	case "":
		format = DefaultFormat
	}

	formatters, err := enc.ParseFormat(format)
	if err != nil {
		return err
	}
	l.console.SetFormatters(formatters)
	l.encoding = CONSOLE
	return nil
}

// SetWriter 替换输出并返回原来的输出。*os.File 会被加锁包装。
func (l *Logging) SetWriter(w io.Writer) io.Writer {
	var ws zapcore.WriteSyncer
	switch t := w.(type) {
	case *os.File:
		ws = zapcore.Lock(t)
	case zapcore.WriteSyncer:
		ws = t
	default:
		ws = zapcore.AddSync(w)
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()
	old := l.writer
	l.writer = ws
	return old
}

// SetObserver 替换观察者并返回原来的观察者，nil 表示不观察。
func (l *Logging) SetObserver(o Observer) Observer {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	old := l.observer
	l.observer = o
	return old
}

// ZapLogger 返回名为 name 的 zap.Logger，名字由点分隔的字母、数字、下划线等组成，不合法时 panic。
func (l *Logging) ZapLogger(name string) *zap.Logger {
	if !isValidLoggerName(name) {
		panic(fmt.Sprintf("invalid logger name: %s", name))
	}

	l.mutex.RLock()
	c := &core{
		logging: l,
		encoders: map[Encoding]zapcore.Encoder{
			CONSOLE: enc.NewFormatEncoder(l.console),
			JSON:    zapcore.NewJSONEncoder(l.encoderConfig),
			LOGFMT:  zaplogfmt.NewEncoder(l.encoderConfig),
		},
	}
	l.mutex.RUnlock()

	return NewZapLogger(c).Named(name)
}

func (l *Logging) Logger(name string) *PairingLogger {
	return NewPairingLogger(l.ZapLogger(name))
}

func (l *Logging) Encoding() Encoding {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.encoding
}

func (l *Logging) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) {
	if o := l.currentObserver(); o != nil {
		o.Check(e, ce)
	}
}

func (l *Logging) WriteEntry(e zapcore.Entry, fields []zapcore.Field) {
	if o := l.currentObserver(); o != nil {
		o.WriteEntry(e, fields)
	}
}

func (l *Logging) currentObserver() Observer {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.observer
}

func (l *Logging) Write(b []byte) (int, error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.writer.Write(b)
}

func (l *Logging) Sync() error {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.writer.Sync()
}

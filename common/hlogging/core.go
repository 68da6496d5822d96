package hlogging

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// Encoding 选择日志条目的输出格式。
type Encoding int8

const (
	CONSOLE Encoding = iota
	JSON
	LOGFMT
)

func (e Encoding) String() string {
	switch e {
	case CONSOLE:
		return "console"
	case JSON:
		return "json"
	case LOGFMT:
		return "logfmt"
	default:
		return fmt.Sprintf("Encoding(%d)", int8(e))
	}
}

// Observer 在日志条目被检查和写出时得到通知，pairingbench 用它统计各级别的日志数量。
type Observer interface {
	Check(e zapcore.Entry, ce *zapcore.CheckedEntry)
	WriteEntry(e zapcore.Entry, fields []zapcore.Field)
}

// core 把条目交给 Logging 当前选中的编码器，输出和观察者也都由 Logging 提供，
// 所以 Apply 之后已经创建的日志器立即使用新的配置。
type core struct {
	logging  *Logging
	encoders map[Encoding]zapcore.Encoder
}

func (c *core) Enabled(lvl zapcore.Level) bool {
	return c.logging.LoggerLevels.Enabled(lvl)
}

func (c *core) With(fields []zapcore.Field) zapcore.Core {
	encoders := make(map[Encoding]zapcore.Encoder, len(c.encoders))
	for encoding, encoder := range c.encoders {
		clone := encoder.Clone()
		for i := range fields {
			fields[i].AddTo(clone)
		}
		encoders[encoding] = clone
	}
	return &core{logging: c.logging, encoders: encoders}
}

func (c *core) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	c.logging.Check(e, ce)
	if c.logging.Level(e.LoggerName).Enabled(e.Level) {
		return ce.AddCore(e, c)
	}
	return ce
}

func (c *core) Write(e zapcore.Entry, fields []zapcore.Field) error {
	buf, err := c.encoders[c.logging.Encoding()].EncodeEntry(e, fields)
	if err != nil {
		return err
	}
	_, err = c.logging.Write(buf.Bytes())
	buf.Free()
	if err != nil {
		return err
	}

	if e.Level >= zapcore.PanicLevel {
		c.Sync()
	}
	c.logging.WriteEntry(e, fields)
	return nil
}

func (c *core) Sync() error {
	return c.logging.Sync()
}

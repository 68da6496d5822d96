package hlogging

import "io"

// Global 是 MustGetLogger 返回的日志器共享的配置，启动时读取 PAIRING_LOGGING_SPEC 和 PAIRING_LOGGING_FORMAT。
var Global *Logging

func init() {
	logging, err := NewLogging(Config{})
	if err != nil {
		panic(err)
	}
	Global = logging
}

// Apply 用 c 重新配置全局日志，已经创建的日志器随之生效。
func Apply(c Config) error {
	return Global.Apply(c)
}

// Reset 恢复全局日志的默认配置。
func Reset() {
	if err := Global.Apply(Config{}); err != nil {
		panic(err)
	}
}

// LoggerLevel 返回名为 loggerName 的日志器当前的级别。
func LoggerLevel(loggerName string) string {
	return Global.Level(loggerName).String()
}

func ActivateSpec(spec string) error {
	return Global.ActivateSpec(spec)
}

func DefaultLevel() string {
	return defaultLevel.String()
}

func SetWriter(w io.Writer) io.Writer {
	return Global.SetWriter(w)
}

func SetObserver(o Observer) Observer {
	return Global.SetObserver(o)
}

func MustGetLogger(loggerName string) *PairingLogger {
	return Global.Logger(loggerName)
}

package hlogging

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap/zapcore"
)

// DisabledLevel 低于所有 zap 级别，用来标记无法识别的级别名。
const DisabledLevel = zapcore.Level(math.MinInt8)

var loggerNameRegexp = regexp.MustCompile(`^[[:alnum:]_#:-]+(\.[[:alnum:]_#:-]+)*$`)

// LoggerLevels 按日志器名字的层级前缀决定日志级别。名字 pairing.bls 先匹配 pairing.bls 的规则，
// 再匹配 pairing 的规则，都没有时使用默认级别。零值可以直接使用，默认级别是 info。
type LoggerLevels struct {
	mutex        sync.RWMutex
	cache        map[string]zapcore.Level
	rules        map[string]zapcore.Level
	defaultLevel zapcore.Level
	minLevel     zapcore.Level
}

// ActivateSpec 激活形如 "pairing.bls,mathlib=debug:pairingbench=warn:info" 的日志规格。用冒号分隔的每一段
// 要么是 "日志器列表=级别"，要么是单独的默认级别。规格非法时原来的配置保持不变。
func (ll *LoggerLevels) ActivateSpec(spec string) error {
	defaultLevel, rules, err := parseSpec(spec)
	if err != nil {
		return err
	}

	minLevel := defaultLevel
	for _, lvl := range rules {
		if lvl < minLevel {
			minLevel = lvl
		}
	}

	ll.mutex.Lock()
	ll.defaultLevel = defaultLevel
	ll.minLevel = minLevel
	ll.rules = rules
	ll.cache = make(map[string]zapcore.Level)
	ll.mutex.Unlock()
	return nil
}

func parseSpec(spec string) (zapcore.Level, map[string]zapcore.Level, error) {
	defaultLevel := zapcore.InfoLevel
	rules := make(map[string]zapcore.Level)

	for _, segment := range strings.Split(spec, ":") {
		if segment == "" {
			continue
		}
		names, levelName, hasNames := strings.Cut(segment, "=")
		if !hasNames {
			lvl, err := nameToLevel(segment)
			if err != nil {
				return 0, nil, fmt.Errorf("invalid logging specification '%s': bad segment '%s'", spec, segment)
			}
			defaultLevel = lvl
			continue
		}
		if names == "" {
			return 0, nil, fmt.Errorf("invalid logging specification '%s': no logger specified in segment '%s'", spec, segment)
		}
		lvl, err := nameToLevel(levelName)
		if err != nil {
			return 0, nil, fmt.Errorf("invalid logging specification '%s': bad segment '%s'", spec, segment)
		}
		for _, name := range strings.Split(names, ",") {
			name = strings.TrimSuffix(name, ".")
			if !isValidLoggerName(name) {
				return 0, nil, fmt.Errorf("invalid logging specification '%s': bad logger name '%s'", spec, name)
			}
			rules[name] = lvl
		}
	}
	return defaultLevel, rules, nil
}

// Level 返回名为 loggerName 的日志器的级别。
func (ll *LoggerLevels) Level(loggerName string) zapcore.Level {
	ll.mutex.RLock()
	lvl, ok := ll.cache[loggerName]
	ll.mutex.RUnlock()
	if ok {
		return lvl
	}

	ll.mutex.Lock()
	defer ll.mutex.Unlock()
	lvl = ll.lookup(loggerName)
	if ll.cache == nil {
		ll.cache = make(map[string]zapcore.Level)
	}
	ll.cache[loggerName] = lvl
	return lvl
}

func (ll *LoggerLevels) lookup(loggerName string) zapcore.Level {
	for name := loggerName; ; {
		if lvl, ok := ll.rules[name]; ok {
			return lvl
		}
		idx := strings.LastIndex(name, ".")
		if idx < 0 {
			return ll.defaultLevel
		}
		name = name[:idx]
	}
}

func (ll *LoggerLevels) DefaultLevel() zapcore.Level {
	ll.mutex.RLock()
	defer ll.mutex.RUnlock()
	return ll.defaultLevel
}

// Spec 以 ActivateSpec 接受的格式返回当前配置，日志器规则按名字排序，默认级别在最后。
func (ll *LoggerLevels) Spec() string {
	ll.mutex.RLock()
	defer ll.mutex.RUnlock()

	fields := make([]string, 0, len(ll.rules)+1)
	for name, lvl := range ll.rules {
		fields = append(fields, name+"="+lvl.String())
	}
	sort.Strings(fields)
	return strings.Join(append(fields, ll.defaultLevel.String()), ":")
}

// Enabled 报告是否存在某个日志器会记录 lvl 级别的条目。
func (ll *LoggerLevels) Enabled(lvl zapcore.Level) bool {
	ll.mutex.RLock()
	defer ll.mutex.RUnlock()
	return ll.minLevel.Enabled(lvl)
}

// NameToLevel 把级别名转换成 zapcore.Level，无法识别时返回 InfoLevel。
func NameToLevel(level string) zapcore.Level {
	l, err := nameToLevel(level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return l
}

func nameToLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	case "panic":
		return zapcore.PanicLevel, nil
	case "fatal":
		return zapcore.FatalLevel, nil
	default:
		return DisabledLevel, fmt.Errorf("unknown log level: %s", level)
	}
}

func IsValidLevel(level string) bool {
	_, err := nameToLevel(level)
	return err == nil
}

func isValidLoggerName(loggerName string) bool {
	return loggerNameRegexp.MatchString(loggerName)
}

package enc

import (
	"fmt"
	"io"
	"regexp"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap/zapcore"
)

// 控制台格式中的 %{verb} 或 %{verb:option}。option 对 time 是时间布局，对 color 是 bold 或 reset，
// 其余 verb 的 option 是 fmt 的格式化动词，例如 %{level:.4s}、%{id:04x}。
var formatRegexp = regexp.MustCompile(`%{(color|id|level|message|module|shortfunc|longfunc|time)(?::(.*?))?}`)

// ParseFormat 把控制台格式解析成 Formatter 序列，verb 之间的文本原样输出。
func ParseFormat(spec string) ([]Formatter, error) {
	var formatters []Formatter
	cursor := 0
	for _, m := range formatRegexp.FindAllStringSubmatchIndex(spec, -1) {
		if m[0] > cursor {
			formatters = append(formatters, literal(spec[cursor:m[0]]))
		}
		var option string
		if m[4] >= 0 {
			option = spec[m[4]:m[5]]
		}
		f, err := NewFormatter(spec[m[2]:m[3]], option)
		if err != nil {
			return nil, err
		}
		formatters = append(formatters, f)
		cursor = m[1]
	}
	if cursor < len(spec) {
		formatters = append(formatters, literal(spec[cursor:]))
	}
	return formatters, nil
}

// NewFormatter 创建单个 verb 的 Formatter。
func NewFormatter(verb, option string) (Formatter, error) {
	switch verb {
	case "color":
		switch option {
		case "":
			return FormatFunc(func(w io.Writer, e zapcore.Entry) { io.WriteString(w, LevelColor(e.Level).Normal()) }), nil
		case "bold":
			return FormatFunc(func(w io.Writer, e zapcore.Entry) { io.WriteString(w, LevelColor(e.Level).Bold()) }), nil
		case "reset":
			return FormatFunc(func(w io.Writer, _ zapcore.Entry) { io.WriteString(w, ResetColor()) }), nil
		}
		return nil, fmt.Errorf("invalid color option: %s, should be one of [bold | reset]", option)
	case "id":
		format := "%" + orDefault(option, "d")
		return FormatFunc(func(w io.Writer, _ zapcore.Entry) { fmt.Fprintf(w, format, atomic.AddUint64(&sequence, 1)) }), nil
	case "level":
		return printf(option, func(e zapcore.Entry) interface{} { return e.Level.CapitalString() }), nil
	case "message":
		return printf(option, func(e zapcore.Entry) interface{} { return strings.TrimRight(e.Message, "\n") }), nil
	case "module":
		return printf(option, func(e zapcore.Entry) interface{} { return e.LoggerName }), nil
	case "shortfunc":
		return printf(option, func(e zapcore.Entry) interface{} {
			name := funcName(e.Caller.PC)
			return name[strings.LastIndex(name, ".")+1:]
		}), nil
	case "longfunc":
		return printf(option, func(e zapcore.Entry) interface{} { return funcName(e.Caller.PC) }), nil
	case "time":
		layout := orDefault(option, "2006-01-02T15:04:05.000Z07:00")
		return FormatFunc(func(w io.Writer, e zapcore.Entry) { io.WriteString(w, e.Time.Format(layout)) }), nil
	default:
		return nil, fmt.Errorf("unknown verb: %s, should be one of [color | id | level | message | module | shortfunc | longfunc | time]", verb)
	}
}

// FormatFunc 把只关心日志条目的函数适配成 Formatter。
type FormatFunc func(w io.Writer, entry zapcore.Entry)

func (f FormatFunc) Format(w io.Writer, entry zapcore.Entry, _ []zapcore.Field) {
	f(w, entry)
}

type literal string

func (l literal) Format(w io.Writer, _ zapcore.Entry, _ []zapcore.Field) {
	io.WriteString(w, string(l))
}

var sequence uint64

func printf(option string, value func(zapcore.Entry) interface{}) FormatFunc {
	verb := "%" + orDefault(option, "s")
	return func(w io.Writer, e zapcore.Entry) {
		fmt.Fprintf(w, verb, value(e))
	}
}

func funcName(pc uintptr) string {
	if f := runtime.FuncForPC(pc); f != nil {
		return f.Name()
	}
	return "(unknown)"
}

func orDefault(s, dflt string) string {
	if s != "" {
		return s
	}
	return dflt
}

// MultiFormatter 按顺序调用一组可以整体替换的 Formatter。
type MultiFormatter struct {
	mutex      sync.RWMutex
	formatters []Formatter
}

func NewMultiFormatter(formatters ...Formatter) *MultiFormatter {
	return &MultiFormatter{formatters: formatters}
}

func (mf *MultiFormatter) Format(w io.Writer, entry zapcore.Entry, fields []zapcore.Field) {
	mf.mutex.RLock()
	defer mf.mutex.RUnlock()
	for _, f := range mf.formatters {
		f.Format(w, entry, fields)
	}
}

func (mf *MultiFormatter) SetFormatters(formatters []Formatter) {
	mf.mutex.Lock()
	mf.formatters = formatters
	mf.mutex.Unlock()
}

// Package internal 把指标名和标签值按 StatsdFormat 格式化成 statsd 的扁平指标名。
package internal

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/11090815/pairing/common/metrics"
)

// Namer 保存一个指标的名字和格式。格式中的 %{#namespace}、%{#subsystem}、%{#name}、%{#fqname}
// 替换为指标名的各部分，%{label} 替换为标签值。
type Namer struct {
	namespace  string
	subsystem  string
	name       string
	nameFormat string
	labelNames map[string]struct{}
}

func newNamer(namespace, subsystem, name, format string, labelNames []string) *Namer {
	set := make(map[string]struct{}, len(labelNames))
	for _, l := range labelNames {
		set[l] = struct{}{}
	}
	return &Namer{
		namespace:  namespace,
		subsystem:  subsystem,
		name:       name,
		nameFormat: format,
		labelNames: set,
	}
}

func NewCounterNamer(opts metrics.CounterOpts) *Namer {
	return newNamer(opts.Namespace, opts.Subsystem, opts.Name, opts.StatsdFormat, opts.LabelNames)
}

func NewGaugeNamer(opts metrics.GaugeOpts) *Namer {
	return newNamer(opts.Namespace, opts.Subsystem, opts.Name, opts.StatsdFormat, opts.LabelNames)
}

func NewHistogramNamer(opts metrics.HistogramOpts) *Namer {
	return newNamer(opts.Namespace, opts.Subsystem, opts.Name, opts.StatsdFormat, opts.LabelNames)
}

var (
	formatRegexp = regexp.MustCompile(`%{([#?[:alnum:]_]+)}`)
	// statsd 用 . | : 和空白分隔指标名与值，标签值中的这些字符替换成 _。
	invalidLabelValueRegexp = regexp.MustCompile(`[.|:\s]`)
)

// Format 按格式生成指标名，labelValues 形如 ["curve", "BN254", "op", "pairing"]。
// 标签名不在 LabelNames 中，或者格式引用了未给出的标签时 panic。
func (n *Namer) Format(labelValues ...string) string {
	labels := n.labelsToMap(labelValues)

	cursor := 0
	var segments []string
	for _, m := range formatRegexp.FindAllStringSubmatchIndex(n.nameFormat, -1) {
		start, end := m[0], m[1]
		key := n.nameFormat[m[2]:m[3]]
		if start > cursor {
			segments = append(segments, n.nameFormat[cursor:start])
		}

		var value string
		switch key {
		case "#namespace":
			value = n.namespace
		case "#subsystem":
			value = n.subsystem
		case "#name":
			value = n.name
		case "#fqname":
			value = n.FullyQualifiedName()
		default:
			v, ok := labels[key]
			if !ok {
				panic(fmt.Sprintf("invalid label in name format: %s", key))
			}
			value = invalidLabelValueRegexp.ReplaceAllString(v, "_")
		}
		segments = append(segments, value)
		cursor = end
	}
	if cursor != len(n.nameFormat) {
		segments = append(segments, n.nameFormat[cursor:])
	}
	return strings.Join(segments, "")
}

// FullyQualifiedName 用 . 连接非空的 namespace、subsystem 和 name。
func (n *Namer) FullyQualifiedName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{n.namespace, n.subsystem, n.name} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ".")
}

// labelsToMap 把 ["k1","v1","k2","v2",...] 转换成 {"k1":"v1","k2":"v2",...}，落单的键取值 unknown。
func (n *Namer) labelsToMap(labelValues []string) map[string]string {
	labels := make(map[string]string, len(labelValues)/2)
	for i := 0; i < len(labelValues); i += 2 {
		key := labelValues[i]
		if _, ok := n.labelNames[key]; !ok {
			panic("invalid label key: " + key)
		}
		if i == len(labelValues)-1 {
			labels[key] = "unknown"
		} else {
			labels[key] = labelValues[i+1]
		}
	}
	return labels
}

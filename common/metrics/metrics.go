// Package metrics 定义与后端无关的指标接口，statsd、prometheus 和 disabled 三个子包各自实现 Provider。
//
// 计数器只增不减，用于统计完成的运算次数；量表记录瞬时值，例如正在工作的协程数；
// 直方图记录样本的分布，例如单次配对运算的耗时。
package metrics

//go:generate counterfeiter -o metricsfakes/provider.go -fake-name Provider . Provider

type Provider interface {
	NewCounter(CounterOpts) Counter
	NewGauge(GaugeOpts) Gauge
	NewHistogram(HistogramOpts) Histogram
}

//go:generate counterfeiter -o metricsfakes/counter.go -fake-name Counter . Counter

type Counter interface {
	// With 返回绑定了标签值的指标，labelValues 按 "name", "value" 成对给出。
	With(labelValues ...string) Counter
	Add(delta float64)
}

type CounterOpts struct {
	Namespace    string
	Subsystem    string
	Name         string
	Help         string
	LabelNames   []string
	LabelHelp    map[string]string
	StatsdFormat string
}

//go:generate counterfeiter -o metricsfakes/gauge.go -fake-name Gauge . Gauge

type Gauge interface {
	// With 返回绑定了标签值的指标，labelValues 按 "name", "value" 成对给出。
	With(labelValues ...string) Gauge
	Add(delta float64)
	Set(value float64)
}

type GaugeOpts struct {
	Namespace    string
	Subsystem    string
	Name         string
	Help         string
	LabelNames   []string
	LabelHelp    map[string]string
	StatsdFormat string
}

//go:generate counterfeiter -o metricsfakes/histogram.go -fake-name Histogram . Histogram

type Histogram interface {
	// With 返回绑定了标签值的指标，labelValues 按 "name", "value" 成对给出。
	With(labelValues ...string) Histogram
	Observe(value float64)
}

type HistogramOpts struct {
	Namespace    string
	Subsystem    string
	Name         string
	Help         string
	Buckets      []float64
	LabelNames   []string
	LabelHelp    map[string]string
	StatsdFormat string
}

// Package statsd 把 metrics.Provider 映射到 go-kit 的 statsd 实现。带标签的指标在 With 时按
// StatsdFormat 展开成扁平的指标名。
package statsd

import (
	"strings"

	"github.com/11090815/pairing/common/metrics"
	"github.com/11090815/pairing/common/metrics/internal"
	"github.com/go-kit/kit/metrics/statsd"
)

const defaultFormat = "%{#fqname}"

// statsd 的 timing 以毫秒为单位，名字以 _seconds 结尾的直方图上报前乘以 1000。
const secondsSuffix = "_seconds"

type Provider struct {
	Statsd *statsd.Statsd
}

func (p *Provider) NewCounter(opts metrics.CounterOpts) metrics.Counter {
	if opts.StatsdFormat == "" {
		opts.StatsdFormat = defaultFormat
	}
	c := &Counter{statsd: p.Statsd, namer: internal.NewCounterNamer(opts)}
	if len(opts.LabelNames) == 0 {
		c.counter = p.Statsd.NewCounter(c.namer.Format(), 1)
	}
	return c
}

func (p *Provider) NewGauge(opts metrics.GaugeOpts) metrics.Gauge {
	if opts.StatsdFormat == "" {
		opts.StatsdFormat = defaultFormat
	}
	g := &Gauge{statsd: p.Statsd, namer: internal.NewGaugeNamer(opts)}
	if len(opts.LabelNames) == 0 {
		g.gauge = p.Statsd.NewGauge(g.namer.Format())
	}
	return g
}

func (p *Provider) NewHistogram(opts metrics.HistogramOpts) metrics.Histogram {
	if opts.StatsdFormat == "" {
		opts.StatsdFormat = defaultFormat
	}
	h := &Histogram{
		statsd: p.Statsd,
		namer:  internal.NewHistogramNamer(opts),
		scale:  1,
	}
	if strings.HasSuffix(opts.Name, secondsSuffix) {
		h.scale = 1000
	}
	if len(opts.LabelNames) == 0 {
		h.timing = p.Statsd.NewTiming(h.namer.Format(), 1)
	}
	return h
}

// Counter 在声明了标签时必须先调用 With 得到具体的计数器。
type Counter struct {
	counter *statsd.Counter
	namer   *internal.Namer
	statsd  *statsd.Statsd
}

func (c *Counter) With(labelValues ...string) metrics.Counter {
	return &Counter{
		counter: c.statsd.NewCounter(c.namer.Format(labelValues...), 1),
		namer:   c.namer,
		statsd:  c.statsd,
	}
}

func (c *Counter) Add(delta float64) {
	if c.counter == nil {
		panic("statsd: counter " + c.namer.FullyQualifiedName() + " has labels, call With first")
	}
	c.counter.Add(delta)
}

type Gauge struct {
	gauge  *statsd.Gauge
	namer  *internal.Namer
	statsd *statsd.Statsd
}

func (g *Gauge) With(labelValues ...string) metrics.Gauge {
	return &Gauge{
		gauge:  g.statsd.NewGauge(g.namer.Format(labelValues...)),
		namer:  g.namer,
		statsd: g.statsd,
	}
}

func (g *Gauge) Add(delta float64) {
	if g.gauge == nil {
		panic("statsd: gauge " + g.namer.FullyQualifiedName() + " has labels, call With first")
	}
	g.gauge.Add(delta)
}

func (g *Gauge) Set(value float64) {
	if g.gauge == nil {
		panic("statsd: gauge " + g.namer.FullyQualifiedName() + " has labels, call With first")
	}
	g.gauge.Set(value)
}

type Histogram struct {
	timing *statsd.Timing
	namer  *internal.Namer
	statsd *statsd.Statsd
	scale  float64
}

func (h *Histogram) With(labelValues ...string) metrics.Histogram {
	return &Histogram{
		timing: h.statsd.NewTiming(h.namer.Format(labelValues...), 1),
		namer:  h.namer,
		statsd: h.statsd,
		scale:  h.scale,
	}
}

func (h *Histogram) Observe(value float64) {
	if h.timing == nil {
		panic("statsd: histogram " + h.namer.FullyQualifiedName() + " has labels, call With first")
	}
	h.timing.Observe(value * h.scale)
}

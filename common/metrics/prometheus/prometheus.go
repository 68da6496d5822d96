// Package prometheus 用 go-kit 的 prometheus 适配器实现 metrics.Provider。
package prometheus

import (
	"errors"

	"github.com/11090815/pairing/common/metrics"
	kitmetrics "github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/prometheus"
	goprometheus "github.com/prometheus/client_golang/prometheus"
)

// Provider 把指标注册到 Registerer，为 nil 时使用 prometheus.DefaultRegisterer。
// 同名同标签的指标只注册一次，重复创建会得到已注册的那一个。
type Provider struct {
	Registerer goprometheus.Registerer
}

func (p *Provider) registerer() goprometheus.Registerer {
	if p.Registerer == nil {
		return goprometheus.DefaultRegisterer
	}
	return p.Registerer
}

func (p *Provider) register(c goprometheus.Collector) goprometheus.Collector {
	if err := p.registerer().Register(c); err != nil {
		var are goprometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector
		}
		panic(err)
	}
	return c
}

func (p *Provider) NewCounter(opts metrics.CounterOpts) metrics.Counter {
	cv := goprometheus.NewCounterVec(goprometheus.CounterOpts{
		Namespace: opts.Namespace,
		Subsystem: opts.Subsystem,
		Name:      opts.Name,
		Help:      opts.Help,
	}, opts.LabelNames)
	return &Counter{Counter: prometheus.NewCounter(p.register(cv).(*goprometheus.CounterVec))}
}

func (p *Provider) NewGauge(opts metrics.GaugeOpts) metrics.Gauge {
	gv := goprometheus.NewGaugeVec(goprometheus.GaugeOpts{
		Namespace: opts.Namespace,
		Subsystem: opts.Subsystem,
		Name:      opts.Name,
		Help:      opts.Help,
	}, opts.LabelNames)
	return &Gauge{Gauge: prometheus.NewGauge(p.register(gv).(*goprometheus.GaugeVec))}
}

func (p *Provider) NewHistogram(opts metrics.HistogramOpts) metrics.Histogram {
	hv := goprometheus.NewHistogramVec(goprometheus.HistogramOpts{
		Namespace: opts.Namespace,
		Subsystem: opts.Subsystem,
		Name:      opts.Name,
		Help:      opts.Help,
		Buckets:   opts.Buckets,
	}, opts.LabelNames)
	return &Histogram{Histogram: prometheus.NewHistogram(p.register(hv).(*goprometheus.HistogramVec))}
}

type Counter struct {
	kitmetrics.Counter
}

func (c *Counter) With(labelValues ...string) metrics.Counter {
	return &Counter{Counter: c.Counter.With(labelValues...)}
}

type Gauge struct {
	kitmetrics.Gauge
}

func (g *Gauge) With(labelValues ...string) metrics.Gauge {
	return &Gauge{Gauge: g.Gauge.With(labelValues...)}
}

type Histogram struct {
	kitmetrics.Histogram
}

func (h *Histogram) With(labelValues ...string) metrics.Histogram {
	return &Histogram{Histogram: h.Histogram.With(labelValues...)}
}

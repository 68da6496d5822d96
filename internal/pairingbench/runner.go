package pairingbench

import (
	"context"
	"fmt"
	"time"

	"github.com/11090815/pairing/common/hlogging"
	"github.com/11090815/pairing/common/hyperchain-amcl/amcl"
	"github.com/11090815/pairing/common/metrics"
	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
)

var logger = hlogging.MustGetLogger("pairingbench")

var (
	OperationsCountOpts = metrics.CounterOpts{
		Namespace:    "pairing",
		Name:         "operations_total",
		Help:         "The number of curve operations executed.",
		LabelNames:   []string{"curve", "op"},
		StatsdFormat: "%{#fqname}.%{curve}.%{op}",
	}

	OperationDurationOpts = metrics.HistogramOpts{
		Namespace:    "pairing",
		Name:         "operation_duration_seconds",
		Help:         "The time taken by a single curve operation in seconds.",
		Buckets:      []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		LabelNames:   []string{"curve", "op"},
		StatsdFormat: "%{#fqname}.%{curve}.%{op}",
	}

	InFlightOpts = metrics.GaugeOpts{
		Namespace: "pairing",
		Name:      "workers_busy",
		Help:      "The number of workers currently executing an operation.",
	}
)

type Metrics struct {
	Operations metrics.Counter
	Duration   metrics.Histogram
	Busy       metrics.Gauge
}

func NewMetrics(p metrics.Provider) *Metrics {
	return &Metrics{
		Operations: p.NewCounter(OperationsCountOpts),
		Duration:   p.NewHistogram(OperationDurationOpts),
		Busy:       p.NewGauge(InFlightOpts),
	}
}

// Result 是一条曲线上一个操作的全部耗时样本。
type Result struct {
	Curve   string
	Op      string
	Samples []time.Duration
	Elapsed time.Duration
}

// Runner 在每条曲线的每个操作上执行 Iterations 次测量，由 Workers 个 goroutine 分担。
// 每个 worker 使用由 Seed、曲线名、操作名和 worker 序号确定的 amcl.RAND，所以同样的配置产生同样的输入。
type Runner struct {
	Iterations int
	Workers    int
	Seed       []byte
	Metrics    *Metrics
}

// Run 依次测量 targets 上的 ops，曲线不支持的操作被跳过。ctx 取消时返回 ctx.Err()。
func (r *Runner) Run(ctx context.Context, targets []*Target, ops []string) ([]Result, error) {
	var results []Result
	for _, t := range targets {
		for _, op := range ops {
			if !t.Supports(op) {
				logger.Debugf("Curve %s does not support operation %s, skipping.", t.Info.Name, op)
				continue
			}
			res, err := r.measure(ctx, t, op)
			if err != nil {
				return results, err
			}
			logger.Infof("Measured %d × %s on %s in %s.", len(res.Samples), op, t.Info.Name, res.Elapsed)
			results = append(results, res)
		}
	}
	return results, nil
}

func (r *Runner) measure(ctx context.Context, t *Target, op string) (Result, error) {
	prepare, err := t.Prepare(op)
	if err != nil {
		return Result{}, err
	}
	workers := r.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > r.Iterations {
		workers = r.Iterations
	}

	var (
		ops      metrics.Counter
		duration metrics.Histogram
		busy     metrics.Gauge
	)
	if r.Metrics != nil {
		ops = r.Metrics.Operations.With("curve", t.Info.Name, "op", op)
		duration = r.Metrics.Duration.With("curve", t.Info.Name, "op", op)
		busy = r.Metrics.Busy
	}

	samples := make([]time.Duration, r.Iterations)
	next := make(chan int)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(next)
		for i := range samples {
			select {
			case next <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		rng := r.workerRand(t.Info.Name, op, w)
		g.Go(func() error {
			for i := range next {
				f := safePrepare(prepare, rng)
				if f == nil {
					return errors.Newf("failed preparing %s on %s", op, t.Info.Name)
				}
				if busy != nil {
					busy.Add(1)
				}
				start := time.Now()
				f()
				samples[i] = time.Since(start)
				if busy != nil {
					busy.Add(-1)
				}
				if ops != nil {
					ops.Add(1)
					duration.Observe(samples[i].Seconds())
				}
			}
			return nil
		})
	}

	start := time.Now()
	if err := g.Wait(); err != nil {
		return Result{}, errors.Wrapf(err, "measuring %s on %s", op, t.Info.Name)
	}
	return Result{Curve: t.Info.Name, Op: op, Samples: samples, Elapsed: time.Since(start)}, nil
}

func (r *Runner) workerRand(curve, op string, worker int) *amcl.RAND {
	seed := append([]byte{}, r.Seed...)
	seed = append(seed, fmt.Sprintf("/%s/%s/%d", curve, op, worker)...)
	rng := amcl.NewRAND()
	rng.Seed(len(seed), seed)
	return rng
}

func safePrepare(p Prepare, rng *amcl.RAND) (f func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("Preparing operation input panicked: %v.", r)
			f = nil
		}
	}()
	return p(rng)
}

package pairingbench

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/11090815/pairing/common/hlogging"
	logmetrics "github.com/11090815/pairing/common/hlogging/metrics"
	"github.com/11090815/pairing/common/hyperchain-amcl/amcl"
	"github.com/11090815/pairing/common/metrics"
	"github.com/11090815/pairing/common/metrics/disabled"
	"github.com/11090815/pairing/common/metrics/prometheus"
	"github.com/11090815/pairing/common/metrics/statsd"
	"github.com/cockroachdb/errors"
	kitstatsd "github.com/go-kit/kit/metrics/statsd"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type options struct {
	configPath string
	cfg        Config
}

// NewCommand 返回 pairingbench 的根命令，所有输出写到 out。
func NewCommand(out io.Writer) *cobra.Command {
	o := &options{cfg: DefaultConfig()}

	root := &cobra.Command{
		Use:           "pairingbench",
		Short:         "Benchmark and validate the elliptic curve and pairing implementations.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.load(cmd.Flags())
		},
	}
	root.SetOut(out)
	root.SetErr(out)
	addCommonFlags(root.PersistentFlags(), o)

	root.AddCommand(benchCmd(o, out), selftestCmd(o, out), curvesCmd(o, out), vectorCmd(o, out))
	return root
}

func addCommonFlags(fs *pflag.FlagSet, o *options) {
	fs.StringVar(&o.configPath, "config", "", "Path to a YAML configuration file.")
	fs.StringSliceVarP(&o.cfg.Curves, "curves", "c", nil, "Curves to use, all curves when empty.")
	fs.StringVar(&o.cfg.Seed, "seed", o.cfg.Seed, "Seed of the deterministic random generator.")
	fs.StringVar(&o.cfg.Logging.Spec, "log-spec", o.cfg.Logging.Spec, "Logging spec, e.g. info or pairingbench=debug:warn.")
	fs.StringVar(&o.cfg.Logging.Format, "log-format", o.cfg.Logging.Format, "Logging format: json, logfmt or a console pattern.")
}

// load 先读取配置文件，再用显式设置的命令行参数覆盖它。
func (o *options) load(fs *pflag.FlagSet) error {
	if o.configPath != "" {
		fileCfg, err := LoadConfig(o.configPath)
		if err != nil {
			return err
		}
		flagCfg := o.cfg
		o.cfg = fileCfg
		fs.Visit(func(f *pflag.Flag) {
			switch f.Name {
			case "curves":
				o.cfg.Curves = flagCfg.Curves
			case "seed":
				o.cfg.Seed = flagCfg.Seed
			case "log-spec":
				o.cfg.Logging.Spec = flagCfg.Logging.Spec
			case "log-format":
				o.cfg.Logging.Format = flagCfg.Logging.Format
			case "ops":
				o.cfg.Operations = flagCfg.Operations
			case "iterations":
				o.cfg.Iterations = flagCfg.Iterations
			case "workers":
				o.cfg.Workers = flagCfg.Workers
			case "metrics-provider":
				o.cfg.Metrics.Provider = flagCfg.Metrics.Provider
			case "metrics-listen":
				o.cfg.Metrics.Listen = flagCfg.Metrics.Listen
			case "statsd-address":
				o.cfg.Metrics.Statsd.Address = flagCfg.Metrics.Statsd.Address
			}
		})
	}

	if err := o.cfg.Validate(); err != nil {
		return err
	}
	return hlogging.Apply(hlogging.Config{
		Format:  o.cfg.Logging.Format,
		LogSpec: o.cfg.Logging.Spec,
		Writer:  os.Stderr,
	})
}

func (o *options) rand(label string) *amcl.RAND {
	seed := []byte(o.cfg.Seed + "/" + label)
	rng := amcl.NewRAND()
	rng.Seed(len(seed), seed)
	return rng
}

func benchCmd(o *options, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure curve operations.",
		Long:  "Measure the selected operations on the selected curves and print latency statistics.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()

			provider, stop, err := startMetrics(ctx, o.cfg.Metrics)
			if err != nil {
				return err
			}
			defer stop()

			targets, err := o.cfg.Targets()
			if err != nil {
				return err
			}
			runner := &Runner{
				Iterations: o.cfg.Iterations,
				Workers:    o.cfg.Workers,
				Seed:       []byte(o.cfg.Seed),
				Metrics:    NewMetrics(provider),
			}
			results, err := runner.Run(ctx, targets, o.cfg.Operations)
			if err != nil {
				return err
			}
			summaries, err := Summarize(results)
			if err != nil {
				return errors.Wrap(err, "failed summarizing samples")
			}
			WriteReport(out, summaries)
			return nil
		},
	}
	fs := cmd.Flags()
	fs.StringSliceVarP(&o.cfg.Operations, "ops", "o", o.cfg.Operations, "Operations to measure: mul, mapit, g1mul, g2mul, ate, fexp, pairing, gtpow.")
	fs.IntVarP(&o.cfg.Iterations, "iterations", "n", o.cfg.Iterations, "Number of samples per curve and operation.")
	fs.IntVarP(&o.cfg.Workers, "workers", "w", o.cfg.Workers, "Number of concurrent workers.")
	fs.StringVar(&o.cfg.Metrics.Provider, "metrics-provider", o.cfg.Metrics.Provider, "Metrics provider: prometheus, statsd or disabled.")
	fs.StringVar(&o.cfg.Metrics.Listen, "metrics-listen", o.cfg.Metrics.Listen, "Address of the prometheus /metrics endpoint.")
	fs.StringVar(&o.cfg.Metrics.Statsd.Address, "statsd-address", o.cfg.Metrics.Statsd.Address, "Address of the statsd server.")
	return cmd
}

func selftestCmd(o *options, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Check group orders, bilinearity and non-degeneracy of every selected curve.",
		RunE: func(cmd *cobra.Command, args []string) error {
			targets, err := o.cfg.Targets()
			if err != nil {
				return err
			}
			var failed error
			for _, t := range targets {
				start := time.Now()
				if err := t.SelfTest(o.rand(t.Info.Name)); err != nil {
					fmt.Fprintf(out, "FAIL %-10s %v\n", t.Info.Name, err)
					failed = errors.CombineErrors(failed, err)
					continue
				}
				fmt.Fprintf(out, "ok   %-10s %s\n", t.Info.Name, time.Since(start).Round(time.Millisecond))
			}
			return failed
		},
	}
}

func curvesCmd(o *options, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "curves",
		Short: "List the supported curves and their operations.",
		RunE: func(cmd *cobra.Command, args []string) error {
			targets, err := o.cfg.Targets()
			if err != nil {
				return err
			}
			WriteCurves(out, targets)
			return nil
		},
	}
}

func vectorCmd(o *options, out io.Writer) *cobra.Command {
	var (
		count int
		args  []string
	)
	cmd := &cobra.Command{
		Use:   "vector <curve> <command>",
		Short: "Generate datadriven test vectors.",
		Long: `Generate test vectors in the datadriven format used by the curve packages.
Supported commands are mul, g1mul, g2mul and pairing. With --arg the scalars are
taken from the command line instead of the random generator, e.g. --arg e=0102.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, pos []string) error {
			t, err := Lookup(pos[0])
			if err != nil {
				return err
			}
			command := pos[1]
			if len(args) > 0 {
				parsed, err := parseVectorArgs(args, t.Info.ModBytes)
				if err != nil {
					return err
				}
				body, err := t.Evaluate(command, parsed)
				if err != nil {
					return err
				}
				fmt.Fprint(out, body)
				return nil
			}

			rng := o.rand(t.Info.Name + "/" + command)
			for i := 0; i < count; i++ {
				v, err := t.Vector(command, rng)
				if err != nil {
					return err
				}
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprint(out, v)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of vectors to generate.")
	cmd.Flags().StringArrayVar(&args, "arg", nil, "Scalar argument as key=hex, may be repeated.")
	return cmd
}

func parseVectorArgs(kvs []string, modBytes int) (map[string][]byte, error) {
	args := make(map[string][]byte, len(kvs))
	for _, kv := range kvs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, errors.Newf("argument %q is not of the form key=hex", kv)
		}
		b, err := hex.DecodeString(v)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %s", k)
		}
		if len(b) > modBytes {
			return nil, errors.Newf("argument %s is longer than %d bytes", k, modBytes)
		}
		args[k] = b
	}
	return args, nil
}

// startMetrics 按配置创建指标提供者，并把日志条目计数挂到日志系统上。
func startMetrics(ctx context.Context, cfg MetricsConfig) (metrics.Provider, func(), error) {
	var (
		provider metrics.Provider
		stops    []func()
	)
	switch cfg.Provider {
	case "statsd":
		prefix := cfg.Statsd.Prefix
		if prefix != "" && !strings.HasSuffix(prefix, ".") {
			prefix = prefix + "."
		}
		ks := kitstatsd.New(prefix, statsdLogger{})
		provider = &statsd.Provider{Statsd: ks}
		ticker := time.NewTicker(cfg.Statsd.WriteInterval)
		sendCtx, cancel := context.WithCancel(ctx)
		go ks.SendLoop(sendCtx, ticker.C, cfg.Statsd.Network, cfg.Statsd.Address)
		stops = append(stops, func() {
			// 结束前把最后一批指标发出去。
			if c, err := net.Dial(cfg.Statsd.Network, cfg.Statsd.Address); err == nil {
				ks.WriteTo(c)
				c.Close()
			}
			cancel()
			ticker.Stop()
		})

	case "prometheus":
		provider = &prometheus.Provider{}
		if cfg.Listen != "" {
			lis, err := net.Listen("tcp", cfg.Listen)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "failed listening on %s", cfg.Listen)
			}
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			server := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
			go server.Serve(lis)
			logger.Infof("Serving prometheus metrics on http://%s/metrics.", lis.Addr())
			stops = append(stops, func() { server.Close() })
		}

	default:
		provider = &disabled.Provider{}
	}

	prev := hlogging.SetObserver(logmetrics.NewObserver(provider))
	stop := func() {
		hlogging.SetObserver(prev)
		for _, s := range stops {
			s()
		}
	}
	return provider, stop, nil
}

// statsdLogger 把 go-kit statsd 的发送错误写进日志。
type statsdLogger struct{}

func (statsdLogger) Log(keyvals ...interface{}) error {
	logger.Warnw("statsd client reported an error", keyvals...)
	return nil
}

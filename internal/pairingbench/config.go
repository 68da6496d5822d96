package pairingbench

import (
	"bytes"
	"os"
	"time"

	"github.com/11090815/pairing/common/hlogging"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Config 是 pairingbench 的配置，可以从 YAML 文件加载，命令行参数会覆盖文件中的值。
type Config struct {
	Curves     []string      `yaml:"curves"`
	Operations []string      `yaml:"operations"`
	Iterations int           `yaml:"iterations"`
	Workers    int           `yaml:"workers"`
	Seed       string        `yaml:"seed"`
	Metrics    MetricsConfig `yaml:"metrics"`
	Logging    LoggingConfig `yaml:"logging"`
}

type MetricsConfig struct {
	// Provider 取值 prometheus、statsd 或 disabled。
	Provider string       `yaml:"provider"`
	Listen   string       `yaml:"listen"`
	Statsd   StatsdConfig `yaml:"statsd"`
}

type StatsdConfig struct {
	Network       string        `yaml:"network"`
	Address       string        `yaml:"address"`
	WriteInterval time.Duration `yaml:"writeInterval"`
	Prefix        string        `yaml:"prefix"`
}

type LoggingConfig struct {
	Spec   string `yaml:"spec"`
	Format string `yaml:"format"`
}

// DefaultConfig 覆盖全部曲线的 mul 与 pairing 操作。
func DefaultConfig() Config {
	return Config{
		Operations: []string{"mul", "pairing"},
		Iterations: 20,
		Workers:    1,
		Seed:       "pairingbench",
		Metrics: MetricsConfig{
			Provider: "disabled",
			Statsd: StatsdConfig{
				Network:       "udp",
				Address:       "127.0.0.1:8125",
				WriteInterval: 10 * time.Second,
				Prefix:        "pairingbench",
			},
		},
		Logging: LoggingConfig{
			Spec:   "info",
			Format: hlogging.ShortFuncFormat,
		},
	}
}

// LoadConfig 在默认配置之上读取 path，未知的字段视为错误。
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "failed reading config %s", path)
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, errors.Wrapf(err, "failed parsing config %s", path)
	}
	return cfg, nil
}

// Validate 检查配置，并确认每条曲线和每个操作都存在。曲线不支持的操作在测量时跳过。
func (c *Config) Validate() error {
	if c.Iterations <= 0 {
		return errors.Newf("iterations must be positive, got %d", c.Iterations)
	}
	if c.Workers <= 0 {
		return errors.Newf("workers must be positive, got %d", c.Workers)
	}
	if len(c.Operations) == 0 {
		return errors.New("no operations selected")
	}
	if _, err := hlogging.NewLogging(hlogging.Config{Format: c.Logging.Format, LogSpec: c.Logging.Spec}); err != nil {
		return errors.Wrap(err, "invalid logging config")
	}
	switch c.Metrics.Provider {
	case "prometheus", "disabled", "":
	case "statsd":
		if c.Metrics.Statsd.Address == "" {
			return errors.New("statsd provider requires an address")
		}
		if c.Metrics.Statsd.WriteInterval <= 0 {
			return errors.Newf("statsd write interval must be positive, got %s", c.Metrics.Statsd.WriteInterval)
		}
	default:
		return errors.Newf("unknown metrics provider %q", c.Metrics.Provider)
	}

	if _, err := c.Targets(); err != nil {
		return err
	}
	for _, op := range c.Operations {
		known := false
		for _, t := range Targets() {
			if t.Supports(op) {
				known = true
				break
			}
		}
		if !known {
			return errors.Newf("unknown operation %q", op)
		}
	}
	return nil
}

// Targets 返回选中的曲线，Curves 为空时返回全部曲线。
func (c *Config) Targets() ([]*Target, error) {
	if len(c.Curves) == 0 {
		return Targets(), nil
	}
	ts := make([]*Target, 0, len(c.Curves))
	for _, name := range c.Curves {
		t, err := Lookup(name)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		ts = append(ts, t)
	}
	return ts, nil
}

// Package config resolves the runtime configuration of the graphalgo CLI.
//
// Values come, in increasing priority, from built-in defaults, a TOML file
// (.graphalgo.toml in the working or home directory, or --config), GRAPHALGO_*
// environment variables and command-line flags bound by the cli package.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/katalvlaran/graphalgo"
	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/internal/progress"
	"github.com/katalvlaran/graphalgo/loader"
)

// EnvPrefix prefixes every environment override, e.g. GRAPHALGO_COMPUTE_CONCURRENCY.
const EnvPrefix = "GRAPHALGO"

// ErrInvalid is returned by Validate for an unusable value.
var ErrInvalid = errors.New("config: invalid value")

// GraphConfig describes the input edge list.
type GraphConfig struct {
	Input         string  `mapstructure:"input" toml:"input"`
	Undirected    bool    `mapstructure:"undirected" toml:"undirected"`
	DefaultWeight float64 `mapstructure:"default_weight" toml:"default_weight"`
	Compression   string  `mapstructure:"compression" toml:"compression"`
}

// ComputeConfig holds the knobs of the analytics.
type ComputeConfig struct {
	Direction    string  `mapstructure:"direction" toml:"direction"`
	Concurrency  int     `mapstructure:"concurrency" toml:"concurrency"`
	BatchSize    int     `mapstructure:"batch_size" toml:"batch_size"`
	Threshold    float64 `mapstructure:"threshold" toml:"threshold"`
	UseThreshold bool    `mapstructure:"use_threshold" toml:"use_threshold"`
	Variant      string  `mapstructure:"variant" toml:"variant"`
	MemoryLimit  int64   `mapstructure:"memory_limit" toml:"memory_limit"`
	Timeout      string  `mapstructure:"timeout" toml:"timeout"`
}

// OutputConfig selects how results are written.
type OutputConfig struct {
	Format string `mapstructure:"format" toml:"format"`
	Path   string `mapstructure:"path" toml:"path"`
	// Metrics, when set, receives the task metrics in Prometheus text
	// format after a successful command.
	Metrics string `mapstructure:"metrics" toml:"metrics"`
}

// LogConfig configures the stderr logger.
type LogConfig struct {
	Level  string `mapstructure:"level" toml:"level"`
	Format string `mapstructure:"format" toml:"format"`
}

// Config holds all runtime configuration of a graphalgo invocation.
type Config struct {
	Graph   GraphConfig   `mapstructure:"graph" toml:"graph"`
	Compute ComputeConfig `mapstructure:"compute" toml:"compute"`
	Output  OutputConfig  `mapstructure:"output" toml:"output"`
	Log     LogConfig     `mapstructure:"log" toml:"log"`
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("graph.input", "")
	v.SetDefault("graph.undirected", false)
	v.SetDefault("graph.default_weight", core.DefaultWeight)
	v.SetDefault("graph.compression", "")
	v.SetDefault("compute.direction", core.Outgoing.String())
	v.SetDefault("compute.concurrency", 0)
	v.SetDefault("compute.batch_size", 0)
	v.SetDefault("compute.use_threshold", false)
	v.SetDefault("compute.variant", string(graphalgo.VariantParallel))
	v.SetDefault("compute.memory_limit", int64(0))
	v.SetDefault("compute.timeout", "0s")
	v.SetDefault("output.format", "csv")
	v.SetDefault("output.path", "")
	v.SetDefault("output.metrics", "")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
}

// New returns a viper instance with defaults, environment overrides and, if
// present, the config file. An explicit cfgFile must exist; the implicit
// .graphalgo.toml is optional.
func New(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".graphalgo")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	return v, nil
}

// Load decodes v into a Config and validates it. A compute.threshold given
// by any source (file, environment, flag) turns the threshold on.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	// no default is registered, so IsSet only sees explicit values
	if v.IsSet("compute.threshold") {
		cfg.Compute.Threshold = v.GetFloat64("compute.threshold")
		cfg.Compute.UseThreshold = true
	}

	return cfg, cfg.Validate()
}

// Validate reports the first unusable value.
func (c Config) Validate() error {
	if math.IsNaN(c.Graph.DefaultWeight) {
		return fmt.Errorf("%w: graph.default_weight is NaN", ErrInvalid)
	}
	if _, err := loader.ParseCompression(c.Graph.Compression); err != nil {
		return fmt.Errorf("%w: graph.compression: %w", ErrInvalid, err)
	}
	if _, err := core.ParseDirection(c.Compute.Direction); err != nil {
		return fmt.Errorf("%w: compute.direction: %w", ErrInvalid, err)
	}
	if c.Compute.Concurrency < 0 {
		return fmt.Errorf("%w: compute.concurrency must not be negative (%d)", ErrInvalid, c.Compute.Concurrency)
	}
	if c.Compute.BatchSize < 0 {
		return fmt.Errorf("%w: compute.batch_size must not be negative (%d)", ErrInvalid, c.Compute.BatchSize)
	}
	if c.Compute.UseThreshold && math.IsNaN(c.Compute.Threshold) {
		return fmt.Errorf("%w: compute.threshold is NaN", ErrInvalid)
	}
	if _, err := graphalgo.ParseVariant(c.Compute.Variant); err != nil {
		return fmt.Errorf("%w: compute.variant: %w", ErrInvalid, err)
	}
	if c.Compute.MemoryLimit < 0 {
		return fmt.Errorf("%w: compute.memory_limit must not be negative (%d)", ErrInvalid, c.Compute.MemoryLimit)
	}
	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}
	switch c.Output.Format {
	case "csv", "json":
	default:
		return fmt.Errorf("%w: output.format %q (want csv or json)", ErrInvalid, c.Output.Format)
	}
	if _, err := progress.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q (want text or json)", ErrInvalid, c.Log.Format)
	}

	return nil
}

// TimeoutDuration parses compute.timeout; zero means no deadline.
func (c Config) TimeoutDuration() (time.Duration, error) {
	if c.Compute.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Compute.Timeout)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w: compute.timeout %q", ErrInvalid, c.Compute.Timeout)
	}

	return d, nil
}

// TOML encodes c the way it would appear in a config file.
func (c Config) TOML() ([]byte, error) {
	out, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return out, nil
}

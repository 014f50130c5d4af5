// Package config holds the run configuration of the contactnet CLI.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeyNodes       = "network.nodes"
	KeyMeanDegree  = "network.mean_degree"
	KeySeed        = "network.seed"
	KeyMaxAttempts = "network.max_attempts"
	KeyTop         = "output.top"
	KeyReachFrom   = "output.reach_from"
	KeyLogLevel    = "logging.level"
)

// EnvPrefix prefixes environment overrides, e.g. CONTACTNET_NETWORK_NODES.
const EnvPrefix = "CONTACTNET"

// ErrInvalidConfig indicates a value outside its domain.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config manages run configuration using Viper.
type Config struct {
	v *viper.Viper
}

// New creates a configuration with defaults and environment overrides.
func New() *Config {
	v := viper.New()

	v.SetDefault(KeyNodes, 1000)
	v.SetDefault(KeyMeanDegree, 4.0)
	v.SetDefault(KeySeed, time.Now().UnixNano())
	v.SetDefault(KeyMaxAttempts, 0)
	v.SetDefault(KeyTop, 10)
	v.SetDefault(KeyReachFrom, -1)
	v.SetDefault(KeyLogLevel, "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadFromFile merges a YAML/JSON/TOML file into the configuration.
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	return nil
}

// Viper exposes the underlying instance for flag binding.
func (c *Config) Viper() *viper.Viper { return c.v }

// Set overrides a key.
func (c *Config) Set(key string, value interface{}) { c.v.Set(key, value) }

// Nodes is the network size passed to Resize.
func (c *Config) Nodes() int { return c.v.GetInt(KeyNodes) }

// MeanDegree is the Poisson mean passed to RandomConnect.
func (c *Config) MeanDegree() float64 { return c.v.GetFloat64(KeyMeanDegree) }

// Seed seeds the network's random source.
func (c *Config) Seed() uint64 { return uint64(c.v.GetInt64(KeySeed)) }

// MaxAttempts is the per-link draw budget; 0 selects the size-scaled default.
func (c *Config) MaxAttempts() int { return c.v.GetInt(KeyMaxAttempts) }

// Top is the number of highest node values printed in the report.
func (c *Config) Top() int { return c.v.GetInt(KeyTop) }

// ReachFrom is the start node of the reachability row; negative disables it.
func (c *Config) ReachFrom() int { return c.v.GetInt(KeyReachFrom) }

// LogLevel is the zerolog level name.
func (c *Config) LogLevel() string { return c.v.GetString(KeyLogLevel) }

// Validate checks every value against its domain.
func (c *Config) Validate() error {
	if c.Nodes() < 0 {
		return fmt.Errorf("%w: %s=%d must be ≥ 0", ErrInvalidConfig, KeyNodes, c.Nodes())
	}
	m := c.MeanDegree()
	if m < 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return fmt.Errorf("%w: %s=%g must be finite and ≥ 0", ErrInvalidConfig, KeyMeanDegree, m)
	}
	if c.MaxAttempts() < 0 {
		return fmt.Errorf("%w: %s=%d must be ≥ 0", ErrInvalidConfig, KeyMaxAttempts, c.MaxAttempts())
	}
	if c.ReachFrom() >= c.Nodes() {
		return fmt.Errorf("%w: %s=%d must be < %s=%d", ErrInvalidConfig, KeyReachFrom, c.ReachFrom(), KeyNodes, c.Nodes())
	}
	if c.Top() < 0 {
		return fmt.Errorf("%w: %s=%d must be ≥ 0", ErrInvalidConfig, KeyTop, c.Top())
	}
	if _, err := zerolog.ParseLevel(c.LogLevel()); err != nil {
		return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, KeyLogLevel, c.LogLevel(), err)
	}
	return nil
}

// CreateLogger creates a console zerolog logger on stderr at the configured level.
func (c *Config) CreateLogger() zerolog.Logger {
	return c.NewLogger(os.Stderr)
}

// NewLogger is CreateLogger writing to out.
func (c *Config) NewLogger(out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05",
		NoColor:    true,
	}).Level(level).With().Timestamp().Str("service", "contactnet").Logger()
}

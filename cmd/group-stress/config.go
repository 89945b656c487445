package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config describes one stress run. It can be loaded from YAML and overridden by flags.
type Config struct {
	Duration       time.Duration `yaml:"duration"`
	Entities       int           `yaml:"entities"`
	Workers        int           `yaml:"workers"`
	RemoveFraction float64       `yaml:"remove_fraction"`
	SubsetFraction float64       `yaml:"subset_fraction"`
	GCPauseMetrics bool          `yaml:"gc_pause_metrics"`
	Profile        string        `yaml:"profile"`
	ProfilePath    string        `yaml:"profile_path"`
	Log            LogConfig     `yaml:"log"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

func defaultConfig() Config {
	return Config{
		Duration:       10 * time.Second,
		Entities:       10000,
		Workers:        1,
		RemoveFraction: 0.1,
		SubsetFraction: 0.25,
		ProfilePath:    ".",
		Log:            LogConfig{Level: "info"},
	}
}

// LoadConfig decodes YAML from r on top of the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := defaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, cfg.Validate()
}

// LoadConfigFile reads the YAML config at path.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	return LoadConfig(f)
}

func (c Config) Validate() error {
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %s", c.Duration)
	}
	if c.Entities < 1 {
		return fmt.Errorf("entities must be at least 1, got %d", c.Entities)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.RemoveFraction < 0 || c.RemoveFraction > 1 {
		return fmt.Errorf("remove_fraction must be within [0, 1], got %v", c.RemoveFraction)
	}
	if c.SubsetFraction < 0 || c.SubsetFraction > 1 {
		return fmt.Errorf("subset_fraction must be within [0, 1], got %v", c.SubsetFraction)
	}
	switch c.Profile {
	case "", "cpu", "mem":
	default:
		return fmt.Errorf("profile must be one of cpu, mem or empty, got %q", c.Profile)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// NewLogger builds the zap logger described by the log section.
func (c LogConfig) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}

	config := zap.NewProductionConfig()
	if c.Development {
		config = zap.NewDevelopmentConfig()
	}
	config.Level = zap.NewAtomicLevelAt(level)
	config.DisableCaller = true
	return config.Build()
}

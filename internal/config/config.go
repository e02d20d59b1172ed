package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/FairForge/toyvec/internal/logging"
)

type Config struct {
	Log     logging.LoggerConfig `yaml:"log"`
	Metrics MetricsConfig        `yaml:"metrics"`
	Demo    DemoConfig           `yaml:"demo"`
}

type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled" default:"true"`
	Namespace string `yaml:"namespace" default:"toyvec"`
}

type DemoConfig struct {
	InitialCapacity int      `yaml:"initial_capacity" default:"0"`
	Values          []string `yaml:"values"`  // pushed before the cursor is taken
	Late            []string `yaml:"late"`    // pushed after the cursor is released
	Blocked         string   `yaml:"blocked"` // attempted while the cursor is alive
}

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{
		Metrics: MetricsConfig{Enabled: true},
	}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills in default values
func (c *Config) ApplyDefaults() {
	c.Log.ApplyDefaults()
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = "toyvec"
	}
	if len(c.Demo.Values) == 0 {
		c.Demo.Values = []string{"Java Finch", "Budgerigar"}
	}
	if len(c.Demo.Late) == 0 {
		c.Demo.Late = []string{"Canary"}
	}
	if c.Demo.Blocked == "" {
		c.Demo.Blocked = "Hill Myna"
	}
}

// Validate checks configuration
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Demo.InitialCapacity < 0 {
		return errors.New("config: demo.initial_capacity must not be negative")
	}
	return nil
}

// Load reads a YAML file, applies defaults and validates the result
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration
func Parse(data []byte) (*Config, error) {
	cfg := &Config{Metrics: MetricsConfig{Enabled: true}}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

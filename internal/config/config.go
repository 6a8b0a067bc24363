package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. MARKETBENCH_GENERATOR_STOCKS.
const EnvPrefix = "MARKETBENCH"

// Config holds all application configuration.
type Config struct {
	Generator struct {
		Stocks      int    `yaml:"stocks" envconfig:"STOCKS" validate:"gte=1"`
		PricePoints int    `yaml:"price_points" envconfig:"PRICE_POINTS" validate:"gte=1"`
		Profiles    int    `yaml:"profiles" envconfig:"PROFILES" validate:"gte=1"`
		Seed        uint64 `yaml:"seed" envconfig:"SEED"`
	} `yaml:"generator" envconfig:"GENERATOR"`
	Bench struct {
		Iterations int    `yaml:"iterations" envconfig:"ITERATIONS" validate:"gte=1"`
		Cron       string `yaml:"cron" envconfig:"CRON"`
		RunOnStart bool   `yaml:"run_on_start" envconfig:"RUN_ON_START"`
	} `yaml:"bench" envconfig:"BENCH"`
	Recorder struct {
		Kind string `yaml:"kind" envconfig:"KIND" validate:"oneof=noop log"`
	} `yaml:"recorder" envconfig:"RECORDER"`
}

// Load reads config from a YAML file, then applies .env and environment
// variable overrides and fills in defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// .env is optional
	_ = godotenv.Load()
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("env overrides: %w", err)
	}

	// Defaults
	if cfg.Generator.Stocks == 0 {
		cfg.Generator.Stocks = 100
	}
	if cfg.Generator.PricePoints == 0 {
		cfg.Generator.PricePoints = 50
	}
	if cfg.Generator.Profiles == 0 {
		cfg.Generator.Profiles = 10000
	}
	if cfg.Bench.Iterations == 0 {
		cfg.Bench.Iterations = 10
	}
	if cfg.Recorder.Kind == "" {
		cfg.Recorder.Kind = "log"
	}

	return cfg, nil
}

// Validate checks that all fields are in range.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

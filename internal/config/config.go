package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// prometheus metrics server
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// redis, used for the credential store and rate limiting
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// upstream gym API
	GymAPIBaseURL    string `toml:"gym_api_base_url"`
	GymAPITimeoutSec int    `toml:"gym_api_timeout_sec"`

	// payment confirm endpoint rate limit
	PaymentConfirmAllowedPerMin int `toml:"payment_confirm_allowed_per_min"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, path string) (*Config, error) {
	var tomlFile Toml
	if _, err := toml.DecodeFile(path, &tomlFile); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	cfg, err := tomlFile.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env %s is empty", env)
	}

	if cfg.GymAPIBaseURL == "" {
		return nil, fmt.Errorf("gym_api_base_url not set for env %s", env)
	}
	if cfg.GymAPITimeoutSec <= 0 {
		cfg.GymAPITimeoutSec = 30
	}
	if cfg.PaymentConfirmAllowedPerMin <= 0 {
		cfg.PaymentConfirmAllowedPerMin = 15
	}

	return cfg, nil
}

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env                   string        `mapstructure:"ENV"`
	LogLevel              string        `mapstructure:"LOG_LEVEL"`
	HTTPHost              string        `mapstructure:"HTTP_HOST"`
	HTTPPort              string        `mapstructure:"HTTP_PORT"`
	HTTPReadHeaderTimeout time.Duration `mapstructure:"HTTP_READ_HEADER_TIMEOUT"`
	HTTPShutdownTimeout   time.Duration `mapstructure:"HTTP_SHUTDOWN_TIMEOUT"`
	LivenessEndpoint      string        `mapstructure:"LIVENESS_ENDPOINT"`
	SeedData              bool          `mapstructure:"SEED_DATA"`
}

var defaults = map[string]any{
	"ENV":                      "development",
	"LOG_LEVEL":                "info",
	"HTTP_HOST":                "localhost",
	"HTTP_PORT":                "8092",
	"HTTP_READ_HEADER_TIMEOUT": "20s",
	"HTTP_SHUTDOWN_TIMEOUT":    "4s",
	"LIVENESS_ENDPOINT":        "/liveness",
	"SEED_DATA":                true,
}

// Load reads config.yaml from the given directories (or "." and "./config"
// when none are given). The file is optional; environment variables win over
// it and defaults fill the rest.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if len(paths) == 0 {
		paths = []string{".", "./config"}
	}

	for _, path := range paths {
		v.AddConfigPath(path)
	}

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	//nolint:exhaustruct
	conf := &Config{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return conf, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is the application configuration, read from a yaml file with
// FOURNIL_* environment overrides.
type Config struct {
	Addr               string        `mapstructure:"addr"`
	ShutdownTimeout    time.Duration `mapstructure:"shutdown_timeout"`
	Profile            string        `mapstructure:"profile"`
	SalesPageSize      int           `mapstructure:"sales_page_size"`
	ProductionPageSize int           `mapstructure:"production_page_size"`
	OptionsSource      string        `mapstructure:"options_source"`
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("addr", "127.0.0.1:8080")
	v.SetDefault("shutdown_timeout", 10*time.Second)
	v.SetDefault("profile", "dev")
	v.SetDefault("sales_page_size", 10)
	v.SetDefault("production_page_size", 15)
	v.SetDefault("options_source", "results")
	v.SetEnvPrefix("FOURNIL")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.OptionsSource != "results" && cfg.OptionsSource != "catalog" {
		return nil, fmt.Errorf("options_source must be %q or %q, got %q", "results", "catalog", cfg.OptionsSource)
	}
	return &cfg, nil
}

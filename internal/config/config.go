package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the command-line tool configuration loaded from env files and environment variables.
type Config struct {
	APIKey         string        `mapstructure:"whatsyour_api_key"`
	BaseURL        string        `mapstructure:"whatsyour_base_url"`
	TimeoutSeconds int64         `mapstructure:"whatsyour_timeout_seconds"`
	Timeout        time.Duration `mapstructure:"-"`
	LogLevel       string        `mapstructure:"log_level"`
	OutputFormat   string        `mapstructure:"output_format"`
}

// String hides the API key so the config can be logged.
func (c Config) String() string {
	key := ""
	if c.APIKey != "" {
		key = "***"
	}
	return fmt.Sprintf("{api_key:%s base_url:%s timeout:%s log_level:%s output:%s}",
		key, c.BaseURL, c.Timeout, c.LogLevel, c.OutputFormat)
}

// Load reads configuration from environment variables and configs/.env.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("whatsyour_api_key", "")
	v.SetDefault("whatsyour_base_url", "https://whatsyour.info/api")
	v.SetDefault("whatsyour_timeout_seconds", 10)
	v.SetDefault("log_level", "warn")
	v.SetDefault("output_format", "yaml")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid whatsyour_timeout_seconds (must be positive seconds)")
	}
	cfg.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second

	cfg.OutputFormat = strings.ToLower(strings.TrimSpace(cfg.OutputFormat))
	switch cfg.OutputFormat {
	case "yaml", "json":
	default:
		return nil, fmt.Errorf("invalid output_format %q (expected yaml or json)", cfg.OutputFormat)
	}

	return &cfg, nil
}

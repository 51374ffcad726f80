package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// AppConfig holds the subscription configuration: which containers and
// actions produce notifications.
type AppConfig struct {
	Containers          string `mapstructure:"containers"`
	Actions             string `mapstructure:"actions"`
	HealthCheckInterval int    `mapstructure:"health_check_interval"`
}

// DiscordConfig holds webhook delivery configuration.
type DiscordConfig struct {
	WebhookURL string `mapstructure:"webhook_url"`
	MaxRetries int    `mapstructure:"max_retries"`
	RetryDelay int    `mapstructure:"retry_delay"`
}

// LoggingConfig holds the logging-related configuration.
type LoggingConfig struct {
	Level string `mapstructure:"log_level"`
	File  string `mapstructure:"log_file"`
}

// ServerConfig holds the ops HTTP server (healthz/metrics) configuration.
type ServerConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port"`
}

// Config is the top-level configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Discord DiscordConfig `mapstructure:"discord"`
	Logging LoggingConfig `mapstructure:"log"`
	Server  ServerConfig  `mapstructure:"server"`
}

// InitConfig performs the initial configuration: setting defaults, specifying the config file, and reading it.
func InitConfig() error {
	// Set defaults for each sub-configuration.
	viper.SetDefault("app.containers", "*")
	viper.SetDefault("app.actions", "all")
	viper.SetDefault("app.health_check_interval", 300)
	viper.SetDefault("discord.webhook_url", "")
	viper.SetDefault("discord.max_retries", 3)
	viper.SetDefault("discord.retry_delay", 5)
	viper.SetDefault("log.log_level", "INFO")
	viper.SetDefault("log.log_file", "")
	viper.SetDefault("server.enabled", true)
	viper.SetDefault("server.port", 8080)

	// Specify the config file details.
	viper.SetConfigName("config") // Looks for config.yaml
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".") // current directory

	// Read the config file if available.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// If the file is not found, just continue with defaults and env vars.
	}

	// Enable automatic environment variable binding, e.g. DISCORD_WEBHOOK_URL
	// maps to discord.webhook_url.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return nil
}

// Load unmarshals the configuration into the Config struct and validates it.
func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks startup invariants. A missing webhook URL aborts the
// process before the event loop ever starts.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Discord.WebhookURL) == "" {
		return fmt.Errorf("DISCORD_WEBHOOK_URL is required")
	}
	if c.Discord.MaxRetries < 1 {
		return fmt.Errorf("discord.max_retries must be at least 1, got %d", c.Discord.MaxRetries)
	}
	if c.Discord.RetryDelay < 0 {
		return fmt.Errorf("discord.retry_delay must not be negative, got %d", c.Discord.RetryDelay)
	}
	if c.App.HealthCheckInterval < 1 {
		return fmt.Errorf("app.health_check_interval must be at least 1, got %d", c.App.HealthCheckInterval)
	}
	return nil
}

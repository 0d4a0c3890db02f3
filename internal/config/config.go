// Package config loads server and CLI settings.
//
// Values come from, in increasing priority: built-in defaults, an optional
// YAML config file, a .env file in the working directory, and CAMPTRACK_*
// environment variables (server.port becomes CAMPTRACK_SERVER_PORT).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "CAMPTRACK"

// Config holds every setting the binaries read.
type Config struct {
	Port           string
	DatabasePath   string
	LogLevel       string
	LogFormat      string
	JWTSecret      string
	TokenTTL       time.Duration
	MetricsEnabled bool
}

func defaults(v *viper.Viper) {
	v.SetTypeByDefaultValue(true)
	v.SetDefault("server.port", "8080")
	v.SetDefault("database.path", "./data/camptrack.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", 24*time.Hour)
	v.SetDefault("metrics.enabled", true)
}

// Load reads the configuration. configFile may be empty, in which case
// ./camptrack.yaml is used when present.
func Load(configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	v := viper.New()
	defaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("camptrack")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
		}
	}

	cfg := &Config{
		Port:           v.GetString("server.port"),
		DatabasePath:   v.GetString("database.path"),
		LogLevel:       strings.ToLower(v.GetString("log.level")),
		LogFormat:      strings.ToLower(v.GetString("log.format")),
		JWTSecret:      v.GetString("auth.jwt_secret"),
		TokenTTL:       v.GetDuration("auth.token_ttl"),
		MetricsEnabled: v.GetBool("metrics.enabled"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	return validation.ValidateStruct(
		c,
		validation.Field(&c.Port, validation.Required),
		validation.Field(&c.DatabasePath, validation.Required),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.LogFormat, validation.In("text", "json")),
		validation.Field(&c.JWTSecret, validation.Required.Error("must be set (CAMPTRACK_AUTH_JWT_SECRET)")),
		validation.Field(&c.TokenTTL, validation.Min(time.Minute)),
	)
}

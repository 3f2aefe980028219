// Package config loads service configuration from a yaml file and
// HOTELOPS_* environment variables.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full service configuration.
type Config struct {
	Server struct {
		Port           int
		AllowedOrigins []string
	}
	Auth struct {
		Secret      string
		TokenExpiry time.Duration
	}
	Assistant struct {
		APIKey  string
		BaseURL string
		Model   string
		Timeout time.Duration
	}
	Simulator struct {
		MutationInterval time.Duration
		AlertChance      float64
	}
	Realtime struct {
		PushInterval time.Duration
	}
	Log struct {
		Level string
	}
}

// Load reads config.yaml from the given path (or the current directory
// and /etc/hotelops when empty) plus environment variables. Every key
// has a default; a missing file is not an error. A missing assistant
// API key is deliberately tolerated here and surfaces only when the
// assistant endpoints are invoked.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/hotelops/")
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("HOTELOPS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Config{}
	cfg.Server.Port = v.GetInt("server.port")
	cfg.Server.AllowedOrigins = v.GetStringSlice("server.allowed_origins")
	cfg.Auth.Secret = v.GetString("auth.secret")
	cfg.Auth.TokenExpiry = v.GetDuration("auth.token_expiry")
	cfg.Assistant.APIKey = v.GetString("assistant.api_key")
	cfg.Assistant.BaseURL = v.GetString("assistant.base_url")
	cfg.Assistant.Model = v.GetString("assistant.model")
	cfg.Assistant.Timeout = v.GetDuration("assistant.timeout")
	cfg.Simulator.MutationInterval = v.GetDuration("simulator.mutation_interval")
	cfg.Simulator.AlertChance = v.GetFloat64("simulator.alert_chance")
	cfg.Realtime.PushInterval = v.GetDuration("realtime.push_interval")
	cfg.Log.Level = v.GetString("log.level")

	// Sessions are as ephemeral as the store, so a generated in-memory
	// secret is acceptable when none is configured.
	if cfg.Auth.Secret == "" {
		secret, err := randomSecret()
		if err != nil {
			return nil, fmt.Errorf("generating session secret: %w", err)
		}
		cfg.Auth.Secret = secret
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allowed_origins", []string{})
	v.SetDefault("auth.secret", "")
	v.SetDefault("auth.token_expiry", "24h")
	v.SetDefault("assistant.api_key", "")
	v.SetDefault("assistant.base_url", "https://api.openai.com/v1")
	v.SetDefault("assistant.model", "gpt-4o-mini")
	v.SetDefault("assistant.timeout", "15s")
	v.SetDefault("simulator.mutation_interval", "30s")
	v.SetDefault("simulator.alert_chance", 0.1)
	v.SetDefault("realtime.push_interval", "5s")
	v.SetDefault("log.level", "info")
}

func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

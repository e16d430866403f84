package config

import (
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is read from the environment only: no CLI flags, no config files.
type Config struct {
	LogLevel       string `env:"LOG_LEVEL" env-default:"info"`
	Port           string `env:"PORT" env-default:"3000"`
	AllowedOrigins string `env:"ALLOWED_ORIGINS" env-default:"http://localhost:3000"`
}

// MustLoad - loads all configuration from the environment.
func MustLoad() *Config {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		panic(fmt.Errorf("unable to load config from environment: %w", err))
	}

	return config
}

// Origins - the allowed cross-origin sources as a list.
func (that *Config) Origins() []string {
	parts := strings.Split(that.AllowedOrigins, ",")

	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}

	return origins
}

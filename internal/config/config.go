// Package config reads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds settings shared by `wordle play` and `wordle serve`.
// Command line flags override these per run.
type Config struct {
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	Port        string `env:"PORT" envDefault:"5175"`
	AnswersFile string `env:"WORDS_ANSWERS_FILE"`
	AllowedFile string `env:"WORDS_ALLOWED_FILE"`
	WordLength  int    `env:"WORD_LENGTH" envDefault:"5"`
	MaxAttempts int    `env:"MAX_ATTEMPTS" envDefault:"6"`
	DailySalt   string `env:"DAILY_SALT" envDefault:"local_dev_salt"`
	Color       string `env:"COLOR" envDefault:"auto"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.WordLength <= 0 {
		return nil, fmt.Errorf("WORD_LENGTH must be positive, got %d", cfg.WordLength)
	}
	if cfg.MaxAttempts <= 0 {
		return nil, fmt.Errorf("MAX_ATTEMPTS must be positive, got %d", cfg.MaxAttempts)
	}
	return &cfg, nil
}

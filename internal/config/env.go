package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds settings taken from the process environment. Command-line
// flags override these.
type Env struct {
	DataDir  string `env:"RACING_DATA_DIR" envDefault:"data"`
	LogLevel string `env:"RACING_LOG_LEVEL" envDefault:"info"`
	Lang     string `env:"RACING_LANG"`
}

// ParseEnv loads Env from environment variables.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return e, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

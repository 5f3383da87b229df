package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config carries the environment-driven defaults for the CLI. Flags
// override these per invocation; the secret itself is never printed.
type Config struct {
	Secret    string `env:"JWT_SECRET"`
	Algorithm string `env:"JWT_ALG" envDefault:"HS256"`
}

// loadConfig reads a .env file when present, then parses the environment.
func loadConfig() (Config, error) {
	// A missing .env file is the normal case outside development.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

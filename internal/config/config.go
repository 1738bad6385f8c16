package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	GitHub GitHubConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port            string        `env:"PORT" envDefault:"5000"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

type GitHubConfig struct {
	Token   string        `env:"GITHUB_TOKEN"`
	APIURL  string        `env:"GITHUB_API_URL" envDefault:"https://api.github.com/"`
	Timeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"10s"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"console"`
}

// Load reads envFile into the process environment, if it exists, and then
// parses the environment. Variables already set take precedence over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Server.Port == "" {
		return nil, errors.New("PORT must not be empty")
	}
	if cfg.GitHub.Timeout <= 0 {
		return nil, fmt.Errorf("UPSTREAM_TIMEOUT must be positive, got %s", cfg.GitHub.Timeout)
	}
	return cfg, nil
}

func (c *Config) Addr() string { return ":" + c.Server.Port }

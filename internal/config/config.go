package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig   `envPrefix:"SERVER_"`
	Upstream UpstreamConfig `envPrefix:"UPSTREAM_"`
	Tracing  TracingConfig  `envPrefix:"TRACING_"`
	Log      LogConfig      `envPrefix:"LOG_"`
}

type ServerConfig struct {
	Host              string `env:"HOST"`
	Port              string `env:"PORT" envDefault:"3000" validate:"required,numeric"`
	PublicDir         string `env:"PUBLIC_DIR" envDefault:"public"`
	PprofEnabled      bool   `env:"PPROF_ENABLED" envDefault:"false"`
	CORSOriginPattern string `env:"CORS_ORIGIN_PATTERN"`
}

func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

type UpstreamConfig struct {
	BaseURL    string        `env:"BASE_URL" envDefault:"https://api.escuelajs.co/api/v1/products" validate:"required,url"`
	PageSize   int           `env:"PAGE_SIZE" envDefault:"100" validate:"min=1"`
	MaxPages   int           `env:"MAX_PAGES" envDefault:"50" validate:"min=1"`
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"10s" validate:"gt=0s"`
	RetryCount int           `env:"RETRY_COUNT" envDefault:"0" validate:"min=0"`
}

type TracingConfig struct {
	Endpoint    string `env:"ENDPOINT"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"product-dashboard"`
}

type LogConfig struct {
	Level string `env:"LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
}

// Load reads an optional .env file, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

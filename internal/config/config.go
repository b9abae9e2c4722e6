package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"adspend/internal/config/configs"
)

// Config aggregates all configuration sections for the service. Nested
// structs are tagged with envPrefix so their fields are parsed with the
// given prefix. Use Load to construct a Config.
type Config struct {
	// Env names the deployment environment (prod, dev). Attached to traces.
	Env string `env:"ENV" envDefault:"prod"`

	// ServiceName identifies the process in traces.
	ServiceName string `env:"SERVICE_NAME" envDefault:"adspend"`

	HTTP       configs.HTTP       `envPrefix:"HTTP_"`
	Log        configs.Logger     `envPrefix:"LOG_"`
	Psql       configs.Postgres   `envPrefix:"PSQL_"`
	Redis      configs.Redis      `envPrefix:"REDIS_"`
	ClickHouse configs.ClickHouse `envPrefix:"CLICKHOUSE_"`
	Engine     configs.Engine     `envPrefix:"ENGINE_"`
	Tracing    configs.Tracing    `envPrefix:"TRACING_"`
}

// Load reads an optional .env file and then environment variables into a
// Config. Variables already set in the environment win over the file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Engine.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

package config

import (
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/cockroachdb/errors"
)

type Config struct {
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`

	// Exactly one backing store is expected. When the connection string is
	// set the service keeps transactions in Postgres; otherwise it talks to
	// the remote ledger API.
	PostgresConnectionString string `env:"POSTGRES_CONNECTION_STRING"`
	LedgerApiEndpoint        string `env:"LEDGER_API_ENDPOINT"`
	LedgerApiKey             string `env:"LEDGER_API_KEY"`

	DefaultCurrency string        `env:"DEFAULT_CURRENCY" envDefault:"USD"`
	PreviewTtl      time.Duration `env:"PREVIEW_TTL" envDefault:"1h"`
}

func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}

	if cfg.PostgresConnectionString == "" && cfg.LedgerApiEndpoint == "" {
		return nil, errors.New("either POSTGRES_CONNECTION_STRING or LEDGER_API_ENDPOINT must be set")
	}

	return cfg, nil
}

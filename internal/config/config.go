package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	ServiceShifts       = "shifts"
	ServiceTransactions = "transactions"
)

// PostgresConfig is the connection detail for one service store.
type PostgresConfig struct {
	Address  string `env:"POSTGRES_ADDRESS" envDefault:"localhost"`
	Port     string `env:"POSTGRES_PORT" envDefault:"5433"`
	DB       string `env:"POSTGRES_DB" envDefault:"postgres"`
	Username string `env:"POSTGRES_USERNAME" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" envDefault:"testpassword"`
}

func (p PostgresConfig) ConnectionString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.Username, p.Password),
		Host:     p.Address + ":" + p.Port,
		Path:     "/" + p.DB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Services lists which of the two services this process runs.
	Services []string `env:"RUN_SERVICES" envDefault:"shifts,transactions" envSeparator:","`

	ShiftsPort       string `env:"SHIFTS_PORT" envDefault:"9446"`
	TransactionsPort string `env:"TRANSACTIONS_PORT" envDefault:"9447"`

	// Base URLs used for service-to-service calls.
	ShiftServiceURL       string `env:"SHIFT_SERVICE_URL" envDefault:"http://localhost:9446"`
	TransactionServiceURL string `env:"TRANSACTION_SERVICE_URL" envDefault:"http://localhost:9447"`

	RemoteTimeout   time.Duration `env:"REMOTE_TIMEOUT" envDefault:"5s"`
	OperatorWorkers int           `env:"OPERATOR_WORKERS" envDefault:"4"`

	ShiftsPostgres       PostgresConfig `envPrefix:"SHIFTS_"`
	TransactionsPostgres PostgresConfig `envPrefix:"TRANSACTIONS_"`
}

// Runs reports whether service is enabled in this process.
func (c *Config) Runs(service string) bool {
	for _, s := range c.Services {
		if s == service {
			return true
		}
	}
	return false
}

func ProcessEnvironmentVariables() (*Config, error) {
	// In all cases the default behavior should be for the docker compose setup
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	for _, s := range cfg.Services {
		if s != ServiceShifts && s != ServiceTransactions {
			return nil, fmt.Errorf("RUN_SERVICES: unknown service %q", s)
		}
	}

	return &cfg, nil
}

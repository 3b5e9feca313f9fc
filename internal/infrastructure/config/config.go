package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageSQLite   = "sqlite"
)

// Config is loaded from environment variables. cmd/api autoloads a .env file
// before Load runs, so local overrides live there.
type Config struct {
	HTTPPort int    `env:"HTTP_PORT" envDefault:"8080"`
	GinMode  string `env:"GIN_MODE" envDefault:"debug"`

	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"dynamodb"`
	SQLitePath    string `env:"SQLITE_PATH" envDefault:"insurances.db"`

	DynamoDB DynamoDBConfig

	DefaultPageSize int `env:"DEFAULT_PAGE_SIZE" envDefault:"10"`
	MaxPageSize     int `env:"MAX_PAGE_SIZE" envDefault:"100"`
}

// DynamoDBConfig holds local-friendly AWS settings. Local DynamoDB does not
// validate credentials, but the AWS SDK requires them.
type DynamoDBConfig struct {
	Region          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	Endpoint        string `env:"DYNAMODB_ENDPOINT"`
	ProposalsTable  string `env:"PROPOSALS_TABLE" envDefault:"proposals"`
	HiringsTable    string `env:"HIRINGS_TABLE" envDefault:"hirings"`
}

// Load parses the environment into a validated Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	c.StorageDriver = strings.ToLower(strings.TrimSpace(c.StorageDriver))
	switch c.StorageDriver {
	case StorageDynamoDB, StorageSQLite:
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.StorageDriver == StorageSQLite && strings.TrimSpace(c.SQLitePath) == "" {
		return fmt.Errorf("SQLITE_PATH is required for sqlite storage")
	}
	if c.HTTPPort <= 0 {
		return fmt.Errorf("invalid HTTP_PORT %d", c.HTTPPort)
	}
	if c.MaxPageSize <= 0 {
		return fmt.Errorf("invalid MAX_PAGE_SIZE %d", c.MaxPageSize)
	}
	if c.DefaultPageSize <= 0 || c.DefaultPageSize > c.MaxPageSize {
		return fmt.Errorf("invalid DEFAULT_PAGE_SIZE %d", c.DefaultPageSize)
	}
	return nil
}

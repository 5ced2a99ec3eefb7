package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"healthgate/internal/platform/logger"
	"healthgate/internal/platform/validator"
	"healthgate/internal/version"
)

const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// BaseConfig is embedded by every section so each loader sees the same
// environment and logging settings.
type BaseConfig struct {
	Environment string       `envconfig:"ENV" default:"development" validate:"oneof=development staging production test"`
	Logger      LoggerConfig `envconfig:"LOGGER"`
}

type LoggerConfig struct {
	Level  logger.Level  `envconfig:"LEVEL" default:"info"`
	Format logger.Format `envconfig:"FORMAT" default:"json"`
}

func LoadBase(v validator.Validator) (*BaseConfig, error) {
	var cfg BaseConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := v.Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid base config: %w", err)
	}
	return &cfg, nil
}

// Logging is the logger configuration, stamped with the service identity.
func (c *BaseConfig) Logging() logger.Config {
	return logger.Config{
		Service:     version.Service,
		Version:     version.Get(),
		Environment: strings.ToLower(c.Environment),
		Level:       c.Logger.Level,
		Format:      c.Logger.Format,
	}
}

func (c *BaseConfig) IsDevelopment() bool {
	return strings.EqualFold(c.Environment, EnvDevelopment)
}

func (c *BaseConfig) IsProduction() bool {
	return strings.EqualFold(c.Environment, EnvProduction)
}

func (c *BaseConfig) IsStaging() bool {
	return strings.EqualFold(c.Environment, EnvStaging)
}

func (c *BaseConfig) IsTest() bool {
	return strings.EqualFold(c.Environment, EnvTest)
}

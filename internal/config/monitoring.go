package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"healthgate/internal/platform/validator"
)

type MonitoringConfig struct {
	BaseConfig
	DiskWarningThreshold float64       `envconfig:"MONITORING_DISK_WARNING_THRESHOLD" default:"10" validate:"gte=0,lte=100"`
	DBValidationTimeout  time.Duration `envconfig:"MONITORING_DB_VALIDATION_TIMEOUT" default:"1s" validate:"gt=0,lte=1s"`
	ProbeTimeout         time.Duration `envconfig:"MONITORING_PROBE_TIMEOUT" default:"5s" validate:"gt=0"`
	Parallel             bool          `envconfig:"MONITORING_PARALLEL" default:"true"`
	DiskPaths            []string      `envconfig:"MONITORING_DISK_PATHS"`
	IssuerProbe          bool          `envconfig:"MONITORING_ISSUER_PROBE" default:"false"`
}

func LoadMonitoring(v validator.Validator) (*MonitoringConfig, error) {
	var cfg MonitoringConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := v.Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid monitoring config: %w", err)
	}
	return &cfg, nil
}

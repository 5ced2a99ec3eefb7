package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"healthgate/internal/adapters/validator"
	platformValidator "healthgate/internal/platform/validator"
)

var monitoringEnvVars = []string{
	"MONITORING_DISK_WARNING_THRESHOLD", "MONITORING_DB_VALIDATION_TIMEOUT",
	"MONITORING_PROBE_TIMEOUT", "MONITORING_PARALLEL", "MONITORING_DISK_PATHS",
	"MONITORING_ISSUER_PROBE",
}

type MonitoringConfigTestSuite struct {
	suite.Suite
	originalEnv map[string]string
	validator   platformValidator.Validator
}

func (s *MonitoringConfigTestSuite) SetupTest() {
	s.originalEnv = make(map[string]string)
	for _, env := range monitoringEnvVars {
		if val, exists := os.LookupEnv(env); exists {
			s.originalEnv[env] = val
		}
		s.Require().NoError(os.Unsetenv(env))
	}
	s.validator = validator.NewPlaygroundAdapter()
}

func (s *MonitoringConfigTestSuite) TearDownTest() {
	for _, env := range monitoringEnvVars {
		s.Require().NoError(os.Unsetenv(env))
	}
	for env, val := range s.originalEnv {
		s.Require().NoError(os.Setenv(env, val))
	}
}

func (s *MonitoringConfigTestSuite) TestLoadMonitoring_Defaults() {
	cfg, err := LoadMonitoring(s.validator)

	s.Require().NoError(err)
	s.Assert().Equal(10.0, cfg.DiskWarningThreshold)
	s.Assert().Equal(time.Second, cfg.DBValidationTimeout)
	s.Assert().Equal(5*time.Second, cfg.ProbeTimeout)
	s.Assert().True(cfg.Parallel)
	s.Assert().Empty(cfg.DiskPaths)
	s.Assert().False(cfg.IssuerProbe)
}

func (s *MonitoringConfigTestSuite) TestLoadMonitoring_WithEnvironmentVariables() {
	s.T().Setenv("MONITORING_DISK_WARNING_THRESHOLD", "15.5")
	s.T().Setenv("MONITORING_DB_VALIDATION_TIMEOUT", "250ms")
	s.T().Setenv("MONITORING_PROBE_TIMEOUT", "2s")
	s.T().Setenv("MONITORING_PARALLEL", "false")
	s.T().Setenv("MONITORING_DISK_PATHS", "/,/data")
	s.T().Setenv("MONITORING_ISSUER_PROBE", "true")

	cfg, err := LoadMonitoring(s.validator)

	s.Require().NoError(err)
	s.Assert().Equal(15.5, cfg.DiskWarningThreshold)
	s.Assert().Equal(250*time.Millisecond, cfg.DBValidationTimeout)
	s.Assert().Equal(2*time.Second, cfg.ProbeTimeout)
	s.Assert().False(cfg.Parallel)
	s.Assert().Equal([]string{"/", "/data"}, cfg.DiskPaths)
	s.Assert().True(cfg.IssuerProbe)
}

func (s *MonitoringConfigTestSuite) TestLoadMonitoring_ZeroThresholdIsKept() {
	s.T().Setenv("MONITORING_DISK_WARNING_THRESHOLD", "0")

	cfg, err := LoadMonitoring(s.validator)

	s.Require().NoError(err)
	s.Assert().Zero(cfg.DiskWarningThreshold)
}

func (s *MonitoringConfigTestSuite) TestLoadMonitoring_Invalid() {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "threshold_above_100", key: "MONITORING_DISK_WARNING_THRESHOLD", value: "150"},
		{name: "negative_threshold", key: "MONITORING_DISK_WARNING_THRESHOLD", value: "-1"},
		{name: "validation_timeout_above_cap", key: "MONITORING_DB_VALIDATION_TIMEOUT", value: "5s"},
		{name: "zero_probe_timeout", key: "MONITORING_PROBE_TIMEOUT", value: "0s"},
		{name: "unparsable_timeout", key: "MONITORING_PROBE_TIMEOUT", value: "soon"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.T().Setenv(tt.key, tt.value)

			cfg, err := LoadMonitoring(s.validator)

			s.Assert().Error(err)
			s.Assert().Nil(cfg)
		})
	}
}

func TestMonitoringConfigTestSuite(t *testing.T) {
	suite.Run(t, new(MonitoringConfigTestSuite))
}

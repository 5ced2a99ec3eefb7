package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"healthgate/internal/adapters/validator"
	platformValidator "healthgate/internal/platform/validator"
)

var httpEnvVars = []string{
	"ENV", "HOST",
	"HTTP_SERVER_HOST", "HTTP_SERVER_PORT", "HTTP_SERVER_READ_TIMEOUT",
	"HTTP_SERVER_READ_HEADER_TIMEOUT", "HTTP_SERVER_WRITE_TIMEOUT",
	"HTTP_SERVER_IDLE_TIMEOUT", "HTTP_SERVER_SHUTDOWN_TIMEOUT",
	"RATE_LIMIT_GLOBAL_REQUESTS", "RATE_LIMIT_GLOBAL_WINDOW",
	"RATE_LIMIT_REQUESTS_PER_IP", "RATE_LIMIT_WINDOW_SECONDS",
	"CORS_ALLOWED_ORIGINS", "CORS_ALLOWED_METHODS", "CORS_ALLOWED_HEADERS",
	"CORS_EXPOSED_HEADERS", "CORS_ALLOW_CREDENTIALS", "CORS_MAX_AGE",
}

type HttpConfigTestSuite struct {
	suite.Suite
	originalEnv map[string]string
	validator   platformValidator.Validator
}

func (s *HttpConfigTestSuite) SetupTest() {
	s.originalEnv = make(map[string]string)
	for _, env := range httpEnvVars {
		if val, exists := os.LookupEnv(env); exists {
			s.originalEnv[env] = val
		}
		s.Require().NoError(os.Unsetenv(env))
	}
	s.validator = validator.NewPlaygroundAdapter()
}

func (s *HttpConfigTestSuite) TearDownTest() {
	for _, env := range httpEnvVars {
		s.Require().NoError(os.Unsetenv(env))
	}
	for env, val := range s.originalEnv {
		s.Require().NoError(os.Setenv(env, val))
	}
}

func (s *HttpConfigTestSuite) setenv(vars map[string]string) {
	for k, v := range vars {
		s.Require().NoError(os.Setenv(k, v))
	}
}

func (s *HttpConfigTestSuite) TestLoadHttp_Defaults() {
	cfg, err := LoadHttp(s.validator)

	s.Require().NoError(err)
	s.Equal("0.0.0.0:8080", cfg.Server.Addr())
	s.Equal(10, cfg.Server.ReadHeaderTimeout)
	s.Equal(30*time.Second, cfg.Server.ShutdownGrace())
	s.Equal(time.Minute, cfg.RateLimit.Global())
	s.Equal(time.Minute, cfg.RateLimit.PerIP())
	s.Equal([]string{"*"}, cfg.CORS.AllowedOrigins)
	s.Equal([]string{"GET", "POST", "OPTIONS"}, cfg.CORS.AllowedMethods)
	s.Contains(cfg.CORS.AllowedHeaders, "Authorization")
	s.Contains(cfg.CORS.AllowedHeaders, "X-API-KEY")
	s.Equal([]string{"X-Request-Id", "WWW-Authenticate"}, cfg.CORS.ExposedHeaders)
	s.False(cfg.CORS.AllowCredentials)
}

func (s *HttpConfigTestSuite) TestLoadHttp_FromEnvironment() {
	s.setenv(map[string]string{
		"ENV":                          EnvStaging,
		"HTTP_SERVER_HOST":             "127.0.0.1",
		"HTTP_SERVER_PORT":             "9090",
		"HTTP_SERVER_SHUTDOWN_TIMEOUT": "5",
		"RATE_LIMIT_REQUESTS_PER_IP":   "10",
		"RATE_LIMIT_WINDOW_SECONDS":    "30",
		"CORS_ALLOWED_ORIGINS":         "https://ops.example.com,https://grafana.example.com",
		"CORS_ALLOW_CREDENTIALS":       "true",
	})

	cfg, err := LoadHttp(s.validator)

	s.Require().NoError(err)
	s.True(cfg.IsStaging())
	s.Equal("127.0.0.1:9090", cfg.Server.Addr())
	s.Equal(5*time.Second, cfg.Server.ShutdownGrace())
	s.Equal(10, cfg.RateLimit.RequestsPerIP)
	s.Equal(30*time.Second, cfg.RateLimit.PerIP())
	s.Equal([]string{"https://ops.example.com", "https://grafana.example.com"}, cfg.CORS.AllowedOrigins)
	s.True(cfg.CORS.AllowCredentials)
}

func (s *HttpConfigTestSuite) TestLoadHttp_Invalid() {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{"port out of range", map[string]string{"HTTP_SERVER_PORT": "70000"}},
		{"zero per-ip limit", map[string]string{"RATE_LIMIT_REQUESTS_PER_IP": "0"}},
		{"negative timeout", map[string]string{"HTTP_SERVER_READ_TIMEOUT": "-1"}},
		{"not a number", map[string]string{"HTTP_SERVER_PORT": "http"}},
		{"unknown environment", map[string]string{"ENV": "qa"}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.setenv(tt.vars)
			defer func() {
				for k := range tt.vars {
					s.Require().NoError(os.Unsetenv(k))
				}
			}()

			cfg, err := LoadHttp(s.validator)

			s.Error(err)
			s.Nil(cfg)
		})
	}
}

func (s *HttpConfigTestSuite) TestLoadHttp_ValidationNamesField() {
	s.setenv(map[string]string{"RATE_LIMIT_GLOBAL_REQUESTS": "0"})

	_, err := LoadHttp(s.validator)

	var ve platformValidator.ValidationError
	s.Require().ErrorAs(err, &ve)
	s.True(ve.Has("global_requests"))
	s.Contains(err.Error(), "invalid http config")
}

func TestHttpConfigTestSuite(t *testing.T) {
	suite.Run(t, new(HttpConfigTestSuite))
}

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"healthgate/internal/adapters/validator"
	platformValidator "healthgate/internal/platform/validator"
)

// USER and HOST are listed because envconfig falls back to the bare tag
// name, which the shell usually sets.
var databaseEnvVars = []string{
	"ENV", "USER", "HOST", "PORT",
	"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD",
	"POSTGRES_DB", "POSTGRES_SSL_MODE", "POSTGRES_CONNECT_TIMEOUT",
	"POSTGRES_MAX_OPEN_CONNS", "POSTGRES_MAX_IDLE_CONNS",
	"POSTGRES_CONN_MAX_LIFETIME", "POSTGRES_CONN_MAX_IDLE_TIME",
}

type DatabaseConfigTestSuite struct {
	suite.Suite
	originalEnv map[string]string
	validator   platformValidator.Validator
}

func (s *DatabaseConfigTestSuite) SetupTest() {
	s.originalEnv = make(map[string]string)
	for _, env := range databaseEnvVars {
		if val, exists := os.LookupEnv(env); exists {
			s.originalEnv[env] = val
		}
		s.Require().NoError(os.Unsetenv(env))
	}
	s.validator = validator.NewPlaygroundAdapter()
}

func (s *DatabaseConfigTestSuite) TearDownTest() {
	for _, env := range databaseEnvVars {
		s.Require().NoError(os.Unsetenv(env))
	}
	for env, val := range s.originalEnv {
		s.Require().NoError(os.Setenv(env, val))
	}
}

func (s *DatabaseConfigTestSuite) TestLoadDatabase_Defaults() {
	cfg, err := LoadDatabase(s.validator)

	s.Require().NoError(err)
	s.Equal(PostgresConfig{
		Host:            "localhost",
		Port:            5432,
		User:            "postgres",
		Database:        "healthgate",
		SSLMode:         "disable",
		ConnectTimeout:  5 * time.Second,
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}, cfg.Postgres)
}

func (s *DatabaseConfigTestSuite) TestLoadDatabase_FromEnvironment() {
	for k, v := range map[string]string{
		"POSTGRES_HOST":            "db.internal",
		"POSTGRES_PORT":            "6432",
		"POSTGRES_USER":            "gateway",
		"POSTGRES_PASSWORD":        "s3cret",
		"POSTGRES_DB":              "auth",
		"POSTGRES_SSL_MODE":        "verify-full",
		"POSTGRES_CONNECT_TIMEOUT": "2s",
		"POSTGRES_MAX_OPEN_CONNS":  "3",
	} {
		s.Require().NoError(os.Setenv(k, v))
	}

	cfg, err := LoadDatabase(s.validator)

	s.Require().NoError(err)
	s.Equal("db.internal", cfg.Postgres.Host)
	s.Equal(6432, cfg.Postgres.Port)
	s.Equal("gateway", cfg.Postgres.User)
	s.Equal("verify-full", cfg.Postgres.SSLMode)
	s.Equal(2*time.Second, cfg.Postgres.ConnectTimeout)
	s.Equal(3, cfg.Postgres.GetMaxOpenConns())
	s.Equal("postgres://db.internal:6432/auth", cfg.Postgres.RedactedURL())
}

func (s *DatabaseConfigTestSuite) TestLoadDatabase_Invalid() {
	tests := []struct {
		name  string
		key   string
		value string
		field string
	}{
		{"unknown ssl mode", "POSTGRES_SSL_MODE", "sometimes", "ssl_mode"},
		{"port out of range", "POSTGRES_PORT", "0", "port"},
		{"no connections", "POSTGRES_MAX_OPEN_CONNS", "0", "max_open_conns"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.Require().NoError(os.Setenv(tt.key, tt.value))
			defer func() { s.Require().NoError(os.Unsetenv(tt.key)) }()

			cfg, err := LoadDatabase(s.validator)

			s.Nil(cfg)
			var ve platformValidator.ValidationError
			s.Require().ErrorAs(err, &ve)
			s.True(ve.Has(tt.field), "fields: %v", ve.Fields())
		})
	}
}

func (s *DatabaseConfigTestSuite) TestPostgresConfig_DSN() {
	tests := []struct {
		name     string
		config   PostgresConfig
		expected string
	}{
		{
			name:     "plain values with connect timeout",
			config:   PostgresConfig{Host: "localhost", Port: 5432, User: "postgres", Password: "pw", Database: "healthgate", SSLMode: "disable", ConnectTimeout: 5 * time.Second},
			expected: "host=localhost port=5432 user=postgres password=pw dbname=healthgate sslmode=disable connect_timeout=5",
		},
		{
			name:     "empty password is quoted",
			config:   PostgresConfig{Host: "db", Port: 5432, User: "u", Database: "d", SSLMode: "require"},
			expected: "host=db port=5432 user=u password='' dbname=d sslmode=require",
		},
		{
			name:     "special characters are escaped",
			config:   PostgresConfig{Host: "db", Port: 5432, User: "u", Password: `it's a \pass`, Database: "d", SSLMode: "disable"},
			expected: `host=db port=5432 user=u password='it\'s a \\pass' dbname=d sslmode=disable`,
		},
		{
			name:     "sub-second connect timeout is omitted",
			config:   PostgresConfig{Host: "db", Port: 5432, User: "u", Password: "p", Database: "d", SSLMode: "disable", ConnectTimeout: 500 * time.Millisecond},
			expected: "host=db port=5432 user=u password=p dbname=d sslmode=disable",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.Equal(tt.expected, tt.config.DSN())
		})
	}
}

func (s *DatabaseConfigTestSuite) TestPostgresConfig_RedactedURLHidesCredentials() {
	cfg := PostgresConfig{Host: "db", Port: 5432, User: "admin", Password: "hunter2", Database: "auth"}

	s.NotContains(cfg.RedactedURL(), "admin")
	s.NotContains(cfg.RedactedURL(), "hunter2")
}

func TestDatabaseConfigTestSuite(t *testing.T) {
	suite.Run(t, new(DatabaseConfigTestSuite))
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"healthgate/internal/platform/validator"
)

// DatabaseConfig describes the PostgreSQL pool the database probe checks.
type DatabaseConfig struct {
	BaseConfig
	Postgres PostgresConfig `envconfig:"POSTGRES"`
}

type PostgresConfig struct {
	Host            string        `envconfig:"HOST" default:"localhost" validate:"required"`
	Port            int           `envconfig:"PORT" default:"5432" validate:"gte=1,lte=65535"`
	User            string        `envconfig:"USER" default:"postgres"`
	Password        string        `envconfig:"PASSWORD" default:""`
	Database        string        `envconfig:"DB" default:"healthgate" validate:"required"`
	SSLMode         string        `envconfig:"SSL_MODE" default:"disable" validate:"oneof=disable allow prefer require verify-ca verify-full"`
	ConnectTimeout  time.Duration `envconfig:"CONNECT_TIMEOUT" default:"5s" validate:"gte=0"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"5" validate:"gte=1"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"2" validate:"gte=0"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"5m"`
	ConnMaxIdleTime time.Duration `envconfig:"CONN_MAX_IDLE_TIME" default:"5m"`
}

// DSN renders a lib/pq key/value connection string. Values are quoted so
// passwords may contain spaces and quotes.
func (c *PostgresConfig) DSN() string {
	parts := []string{
		"host=" + quoteDSN(c.Host),
		fmt.Sprintf("port=%d", c.Port),
		"user=" + quoteDSN(c.User),
		"password=" + quoteDSN(c.Password),
		"dbname=" + quoteDSN(c.Database),
		"sslmode=" + quoteDSN(c.SSLMode),
	}
	if secs := int(c.ConnectTimeout / time.Second); secs > 0 {
		parts = append(parts, fmt.Sprintf("connect_timeout=%d", secs))
	}
	return strings.Join(parts, " ")
}

func quoteDSN(value string) string {
	if value != "" && !strings.ContainsAny(value, ` '\`) {
		return value
	}
	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(value)
	return "'" + escaped + "'"
}

func (c *PostgresConfig) RedactedURL() string {
	return fmt.Sprintf("postgres://%s:%d/%s", c.Host, c.Port, c.Database)
}

func (c *PostgresConfig) GetMaxOpenConns() int {
	return c.MaxOpenConns
}

func (c *PostgresConfig) GetMaxIdleConns() int {
	return c.MaxIdleConns
}

func (c *PostgresConfig) GetConnMaxLifetime() time.Duration {
	return c.ConnMaxLifetime
}

func (c *PostgresConfig) GetConnMaxIdleTime() time.Duration {
	return c.ConnMaxIdleTime
}

func LoadDatabase(v validator.Validator) (*DatabaseConfig, error) {
	var cfg DatabaseConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := v.Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid database config: %w", err)
	}
	return &cfg, nil
}

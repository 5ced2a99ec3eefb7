package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

const (
	ProductName = "PostgreSQL"
	DriverName  = "lib/pq"

	defaultValidationTimeout = time.Second
)

var ErrValidationFailed = errors.New("connection validation failed")

type Config interface {
	DSN() string
	// RedactedURL identifies the server without credentials.
	RedactedURL() string
	GetMaxOpenConns() int
	GetMaxIdleConns() int
	GetConnMaxLifetime() time.Duration
	GetConnMaxIdleTime() time.Duration
}

type DB struct {
	*sql.DB
	config Config
}

func New(cfg Config) (*DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.GetMaxOpenConns())
	db.SetMaxIdleConns(cfg.GetMaxIdleConns())
	db.SetConnMaxLifetime(cfg.GetConnMaxLifetime())
	db.SetConnMaxIdleTime(cfg.GetConnMaxIdleTime())

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

// Validate acquires a connection from the pool and pings it, all within
// timeout. A non-positive timeout means one second.
func (db *DB) Validate(ctx context.Context, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = defaultValidationTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	conn, err := db.DB.Conn(ctx)
	if err != nil {
		return fmt.Errorf("%w: acquire: %w", ErrValidationFailed, err)
	}
	defer func() { _ = conn.Close() }()

	if err := conn.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: ping: %w", ErrValidationFailed, err)
	}
	return nil
}

// Describe reports server and pool metadata. Server settings that cannot be
// read are left out; only a failed version query is an error.
func (db *DB) Describe(ctx context.Context) (map[string]any, error) {
	var version string
	if err := db.DB.QueryRowContext(ctx, "SHOW server_version").Scan(&version); err != nil {
		return nil, fmt.Errorf("failed to read server version: %w", err)
	}

	info := map[string]any{
		"database": ProductName,
		"version":  version,
		"driver":   DriverName,
	}
	if db.config != nil {
		info["url"] = db.config.RedactedURL()
	}

	settings := []struct {
		key   string
		query string
	}{
		{key: "maxConnections", query: "SHOW max_connections"},
		{key: "isolationLevel", query: "SHOW default_transaction_isolation"},
	}
	for _, setting := range settings {
		var value string
		if err := db.DB.QueryRowContext(ctx, setting.query).Scan(&value); err == nil {
			info[setting.key] = value
		}
	}

	stats := db.DB.Stats()
	info["pool"] = map[string]any{
		"maxOpen": stats.MaxOpenConnections,
		"open":    stats.OpenConnections,
		"inUse":   stats.InUse,
		"idle":    stats.Idle,
	}

	return info, nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}

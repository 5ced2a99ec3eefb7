package database

import (
	"context"
	"sync"

	"healthgate/internal/config"
	"healthgate/internal/core/ports"
	"healthgate/internal/platform/database/postgres"
	"healthgate/internal/platform/logger"
)

// Lifecycle owns the postgres pool consumed by the database probe.
type Lifecycle struct {
	cfg    *config.DatabaseConfig
	logger logger.Logger
	db     *postgres.DB
	mu     sync.Mutex
}

var _ ports.PoolProvider = (*Lifecycle)(nil)

func NewDatabaseLifecycle(cfg *config.DatabaseConfig, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		cfg:    cfg,
		logger: log,
	}
}

// Start opens the pool. An unreachable server does not fail startup: the
// pool is kept so the database probe can report DOWN and recover once the
// server comes back.
func (d *Lifecycle) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db != nil {
		d.logger.Warn("Database pool already open, closing existing pool")
		if err := d.db.Close(); err != nil {
			d.logger.Error("Failed to close existing database pool", logger.Error(err))
		}
		d.db = nil
	}

	d.logger.Info("Opening database pool", logger.String("url", d.cfg.Postgres.RedactedURL()))

	db, err := postgres.New(&d.cfg.Postgres)
	if err != nil {
		d.logger.Error("Failed to create PostgreSQL pool", logger.Error(err))
		return err
	}
	d.db = db

	if err := db.Validate(ctx, d.cfg.Postgres.ConnectTimeout); err != nil {
		d.logger.Warn("PostgreSQL unreachable at startup, health checks will report it DOWN", logger.Error(err))
		return nil
	}

	d.logger.Info("Successfully connected to PostgreSQL database")
	return nil
}

func (d *Lifecycle) Stop(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db == nil {
		return nil
	}

	d.logger.Info("Closing database pool")

	db := d.db
	d.db = nil

	done := make(chan error, 1)
	go func() {
		done <- db.Close()
	}()

	select {
	case err := <-done:
		if err != nil {
			d.logger.Error("Error closing database pool", logger.Error(err))
			return err
		}
		d.logger.Info("Database pool closed")
		return nil
	case <-ctx.Done():
		d.logger.Warn("Database shutdown timeout, abandoning close")
		return ctx.Err()
	}
}

func (d *Lifecycle) Connection() *postgres.DB {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.db
}

// Pool returns the open pool, or nil before Start and after Stop.
func (d *Lifecycle) Pool() ports.ConnectionPool {
	db := d.Connection()
	if db == nil {
		return nil
	}
	return db
}

package ports

import (
	"context"
	"time"
)

// ConnectionPool is the slice of the database pool the health subsystem
// needs.
type ConnectionPool interface {
	// Validate acquires a connection and checks it within timeout.
	Validate(ctx context.Context, timeout time.Duration) error
	// Describe reports product, driver and pool metadata.
	Describe(ctx context.Context) (map[string]any, error)
}

// PoolProvider hands out the current pool, or nil when none is open.
type PoolProvider interface {
	Pool() ConnectionPool
}

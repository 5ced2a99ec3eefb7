package health

import (
	"context"
	"errors"
	"time"

	"healthgate/internal/core/ports"
	"healthgate/internal/platform/health"
	"healthgate/internal/platform/logger"
)

// MaxValidationTimeout bounds connection acquisition so a hung database
// cannot stall an aggregation pass.
const MaxValidationTimeout = time.Second

var ErrPoolUnavailable = errors.New("database pool is not initialized")

type DatabaseProbe struct {
	pools   ports.PoolProvider
	timeout time.Duration
	logger  logger.Logger
}

var _ health.Probe = (*DatabaseProbe)(nil)

func NewDatabaseProbe(pools ports.PoolProvider, timeout time.Duration, log logger.Logger) *DatabaseProbe {
	if timeout <= 0 || timeout > MaxValidationTimeout {
		timeout = MaxValidationTimeout
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &DatabaseProbe{
		pools:   pools,
		timeout: timeout,
		logger:  log,
	}
}

func (p *DatabaseProbe) Name() string {
	return DatabaseProbeName
}

func (p *DatabaseProbe) Check(ctx context.Context) (health.Outcome, error) {
	pool := p.pools.Pool()
	if pool == nil {
		return health.Outcome{}, ErrPoolUnavailable
	}

	if err := pool.Validate(ctx, p.timeout); err != nil {
		return health.Outcome{}, err
	}

	info, err := pool.Describe(ctx)
	if err != nil {
		p.logger.Warn("Database reachable but metadata query failed", logger.Error(err))
		return health.Up(map[string]any{"metadata": "metadata unavailable"}), nil
	}

	return health.Up(info), nil
}

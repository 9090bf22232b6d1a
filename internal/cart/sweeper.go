package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/angelmondragon/storefront-backend/pkg/logger"
)

const defaultSweepInterval = 5 * time.Minute

type sessionGauge interface {
	SetSessions(n int)
}

// SweeperParams configure the session sweeper.
type SweeperParams struct {
	Logger   *logger.Logger
	Store    *MemoryStore
	Metrics  sessionGauge
	Interval time.Duration
}

// Sweeper evicts idle cart sessions on a fixed cadence.
type Sweeper struct {
	logg     *logger.Logger
	store    *MemoryStore
	metrics  sessionGauge
	interval time.Duration
}

func NewSweeper(params SweeperParams) (*Sweeper, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Store == nil {
		return nil, fmt.Errorf("session store required")
	}
	interval := params.Interval
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &Sweeper{
		logg:     params.Logger,
		store:    params.Store,
		metrics:  params.Metrics,
		interval: interval,
	}, nil
}

// Run sweeps until the context is canceled.
func (s *Sweeper) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logg.Info(ctx, "cart sweeper context canceled")
			return ctx.Err()
		case <-ticker.C:
			s.SweepOnce(ctx)
		}
	}
}

// SweepOnce runs a single eviction pass.
func (s *Sweeper) SweepOnce(ctx context.Context) int {
	evicted := s.store.Sweep()
	remaining := s.store.Len()
	if s.metrics != nil {
		s.metrics.SetSessions(remaining)
	}
	if evicted > 0 {
		ctx = s.logg.WithFields(ctx, map[string]any{
			"event":     "cart.sweep",
			"evicted":   evicted,
			"remaining": remaining,
		})
		s.logg.Info(ctx, "expired cart sessions evicted")
	}
	return evicted
}

package client

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const snapshotRefreshInterval = time.Minute

// Refresher keeps the console's data fresh: the snapshot refetches on a
// fixed interval and on window focus, the payout list on focus only.
type Refresher struct {
	cache    *Cache
	filter   func() string
	interval time.Duration
	focusCh  chan struct{}
}

func NewRefresher(cache *Cache, filter func() string) *Refresher {
	return &Refresher{
		cache:    cache,
		filter:   filter,
		interval: snapshotRefreshInterval,
		focusCh:  make(chan struct{}, 1),
	}
}

// Focus signals that the window regained focus. Non-blocking; repeated
// signals coalesce while a refresh is running.
func (r *Refresher) Focus() {
	select {
	case r.focusCh <- struct{}{}:
	default:
	}
}

func (r *Refresher) Start(ctx context.Context) {
	zap.L().Info("refresher started")
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("refresher stopped")
			return
		case <-ticker.C:
			if _, err := r.cache.RefreshSnapshot(ctx); err != nil {
				zap.L().Error("snapshot refresh failed", zap.Error(err))
			}
		case <-r.focusCh:
			if _, err := r.cache.RefreshSnapshot(ctx); err != nil {
				zap.L().Error("snapshot refresh failed", zap.Error(err))
			}
			if _, err := r.cache.RefreshList(ctx, r.filter()); err != nil {
				zap.L().Error("payout list refresh failed", zap.Error(err))
			}
		}
	}
}

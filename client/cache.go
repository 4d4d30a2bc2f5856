package client

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/GlebRadaev/payops/internal/domain"
)

const (
	payoutKeyPrefix = "payouts/"
	listKeyPrefix   = payoutKeyPrefix + "list/"
	detailKeyPrefix = payoutKeyPrefix + "detail/"
	snapshotKey     = "snapshot/current"
)

func listKey(filter string) string {
	if filter == "" {
		filter = "all"
	}
	return listKeyPrefix + filter
}

func detailKey(id string) string {
	return detailKeyPrefix + id
}

// Cache is a query cache over the API client. Entries are keyed per
// list filter, per detail id, and one snapshot key. Identical in-flight
// fetches for a key are de-duplicated; a fill races an invalidation via
// a per-key generation counter, so stale responses are dropped instead
// of resurrecting evicted data.
type Cache struct {
	api *APIClient

	mu      sync.Mutex
	entries map[string]any
	gens    map[string]uint64
	flight  singleflight.Group
}

func NewCache(api *APIClient) *Cache {
	return &Cache{
		api:     api,
		entries: make(map[string]any),
		gens:    make(map[string]uint64),
	}
}

func (c *Cache) PayoutList(ctx context.Context, filter string) ([]domain.Payout, error) {
	v, err := c.fetch(listKey(filter), func() (any, error) {
		return c.api.Payouts(ctx, filter)
	})
	if err != nil {
		return nil, err
	}
	return copyList(v.([]domain.Payout)), nil
}

func (c *Cache) PayoutDetail(ctx context.Context, id string) (*domain.PayoutWithDetails, error) {
	v, err := c.fetch(detailKey(id), func() (any, error) {
		details, err := c.api.PayoutDetail(ctx, id)
		if err != nil {
			return nil, err
		}
		return *details, nil
	})
	if err != nil {
		return nil, err
	}
	details := v.(domain.PayoutWithDetails)
	return &details, nil
}

func (c *Cache) Snapshot(ctx context.Context) (*domain.FundsSnapshot, error) {
	v, err := c.fetch(snapshotKey, func() (any, error) {
		snapshot, err := c.api.Snapshot(ctx)
		if err != nil {
			return nil, err
		}
		return *snapshot, nil
	})
	if err != nil {
		return nil, err
	}
	snapshot := v.(domain.FundsSnapshot)
	return &snapshot, nil
}

// fetch serves a cached entry, or loads it through singleflight and
// stores the result unless the key was invalidated meanwhile.
func (c *Cache) fetch(key string, load func() (any, error)) (any, error) {
	c.mu.Lock()
	if v, ok := c.entries[key]; ok {
		c.mu.Unlock()
		return v, nil
	}
	if _, ok := c.gens[key]; !ok {
		c.gens[key] = 0
	}
	gen := c.gens[key]
	c.mu.Unlock()

	v, err, _ := c.flight.Do(key, func() (any, error) {
		return load()
	})
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.gens[key] == gen {
		c.entries[key] = v
	}
	c.mu.Unlock()
	return v, nil
}

// Invalidate evicts every entry under the prefix and bumps its
// generation, forcing the next read to reconcile with server truth.
func (c *Cache) Invalidate(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidateLocked(prefix)
}

func (c *Cache) invalidateLocked(prefix string) {
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
	for key := range c.gens {
		if strings.HasPrefix(key, prefix) {
			c.gens[key]++
		}
	}
}

// RefreshSnapshot drops the cached snapshot and refetches it.
func (c *Cache) RefreshSnapshot(ctx context.Context) (*domain.FundsSnapshot, error) {
	c.Invalidate(snapshotKey)
	return c.Snapshot(ctx)
}

// RefreshList drops one cached list and refetches it.
func (c *Cache) RefreshList(ctx context.Context, filter string) ([]domain.Payout, error) {
	c.Invalidate(listKey(filter))
	return c.PayoutList(ctx, filter)
}

func copyList(payouts []domain.Payout) []domain.Payout {
	cp := make([]domain.Payout, len(payouts))
	copy(cp, payouts)
	return cp
}

package client

import (
	"strings"
	"time"

	"github.com/GlebRadaev/payops/internal/domain"
)

type mutationState int

const (
	mutationApplied mutationState = iota
	mutationRolledBack
	mutationCommitted
)

// Mutation is one optimistic decision update: committed snapshots of
// every affected cache entry are captured before the entries are
// mutated, so a failed request restores the exact prior state.
type Mutation struct {
	cache    *Cache
	payoutID string
	state    mutationState

	prevLists  map[string][]domain.Payout
	prevDetail *domain.PayoutWithDetails
}

// BeginMutation snapshots and then optimistically updates every cached
// payout list entry matching the payout id plus the cached detail entry,
// touching only status and updatedAt.
func (c *Cache) BeginMutation(payoutID string, status domain.PayoutStatus, updatedAt time.Time) *Mutation {
	c.mu.Lock()
	defer c.mu.Unlock()

	m := &Mutation{
		cache:     c,
		payoutID:  payoutID,
		state:     mutationApplied,
		prevLists: make(map[string][]domain.Payout),
	}

	for key, v := range c.entries {
		switch {
		case strings.HasPrefix(key, listKeyPrefix):
			list := v.([]domain.Payout)
			m.prevLists[key] = copyList(list)

			updated := copyList(list)
			for i := range updated {
				if updated[i].ID == payoutID {
					updated[i].Status = status
					updated[i].UpdatedAt = updatedAt
				}
			}
			c.entries[key] = updated
		case key == detailKey(payoutID):
			details := v.(domain.PayoutWithDetails)
			prev := details
			m.prevDetail = &prev

			details.Status = status
			details.UpdatedAt = updatedAt
			c.entries[key] = details
		}
	}

	return m
}

// Rollback restores the snapshots captured at BeginMutation verbatim.
func (m *Mutation) Rollback() {
	m.cache.mu.Lock()
	defer m.cache.mu.Unlock()

	if m.state != mutationApplied {
		return
	}
	m.state = mutationRolledBack

	for key, list := range m.prevLists {
		m.cache.entries[key] = list
	}
	if m.prevDetail != nil {
		m.cache.entries[detailKey(m.payoutID)] = *m.prevDetail
	}
}

// Settle invalidates all payout-scoped entries so the next reads
// reconcile with server truth. Called on success and on failure alike.
func (m *Mutation) Settle() {
	m.cache.mu.Lock()
	defer m.cache.mu.Unlock()

	if m.state == mutationApplied {
		m.state = mutationCommitted
	}
	m.cache.invalidateLocked(payoutKeyPrefix)
}

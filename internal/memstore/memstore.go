// Package memstore is the default record store: seeded in-process tables
// guarded by a single RWMutex. It implements the repository interfaces
// the services declare, so it is interchangeable with the Postgres repos.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/GlebRadaev/payops/internal/domain"
)

type Store struct {
	mu sync.RWMutex

	creators  []domain.Creator
	payouts   []domain.Payout
	invoices  []domain.PayoutInvoice
	payments  []domain.Payment
	attempts  []domain.PaymentAttempt
	signals   []domain.FraudSignal
	decisions []domain.PayoutDecision
}

func New() *Store {
	s := &Store{}
	s.seed(time.Now())
	return s
}

func (s *Store) generateID() string {
	return uuid.New().String()
}

func (s *Store) List(ctx context.Context, status domain.PayoutStatus) ([]domain.Payout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Payout, 0, len(s.payouts))
	for _, p := range s.payouts {
		if status == "" || p.Status == status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Store) GetByID(ctx context.Context, id string) (*domain.Payout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.payouts {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *Store) ListInvoices(ctx context.Context, payoutID string) ([]domain.PayoutInvoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.PayoutInvoice
	for _, inv := range s.invoices {
		if inv.PayoutID == payoutID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (s *Store) ListFraudSignals(ctx context.Context, payoutID string) ([]domain.FraudSignal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.FraudSignal
	for _, sig := range s.signals {
		if sig.PayoutID == payoutID {
			out = append(out, sig)
		}
	}
	return out, nil
}

func (s *Store) GetCreatorByID(ctx context.Context, id string) (*domain.Creator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.creators {
		if c.ID == id {
			cp := c
			return &cp, nil
		}
	}
	return nil, nil
}

// LatestAttemptByCreator returns the newest payment attempt across all
// payments owned by the creator, not just the ones behind one payout.
func (s *Store) LatestAttemptByCreator(ctx context.Context, creatorID string) (*domain.PaymentAttempt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	paymentIDs := make(map[string]struct{})
	for _, p := range s.payments {
		if p.CreatorID == creatorID {
			paymentIDs[p.ID] = struct{}{}
		}
	}

	var attempts []domain.PaymentAttempt
	for _, a := range s.attempts {
		if _, ok := paymentIDs[a.PaymentID]; ok {
			attempts = append(attempts, a)
		}
	}
	if len(attempts) == 0 {
		return nil, nil
	}

	sort.SliceStable(attempts, func(i, j int) bool {
		return attempts[i].CreatedAt.After(attempts[j].CreatedAt)
	})
	latest := attempts[0]
	return &latest, nil
}

// Create appends the decision record and moves the payout to the decided
// status under one write lock, so no reader observes a half-applied
// decision.
func (s *Store) Create(ctx context.Context, decision *domain.PayoutDecision, status domain.PayoutStatus) (*domain.PayoutDecision, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, p := range s.payouts {
		if p.ID == decision.PayoutID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, domain.NewNotFound(domain.CodePayoutNotFound, "payout with ID "+decision.PayoutID+" not found")
	}

	created := *decision
	created.ID = s.generateID()
	s.decisions = append(s.decisions, created)

	s.payouts[idx].Status = status
	s.payouts[idx].UpdatedAt = created.CreatedAt

	cp := created
	return &cp, nil
}

func (s *Store) ListByPayout(ctx context.Context, payoutID string) ([]domain.PayoutDecision, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.PayoutDecision
	for _, d := range s.decisions {
		if d.PayoutID == payoutID {
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/payops/internal/domain"
)

func TestSeed(t *testing.T) {
	store := New()
	ctx := context.Background()

	payouts, err := store.List(ctx, "")
	assert.NoError(t, err)
	assert.Len(t, payouts, 7)

	statuses := make(map[domain.PayoutStatus]int)
	for _, p := range payouts {
		statuses[p.Status]++
	}
	assert.Equal(t, 2, statuses[domain.StatusPending])
	assert.Equal(t, 1, statuses[domain.StatusFlagged])
	assert.Equal(t, 1, statuses[domain.StatusPaid])
	assert.Equal(t, 1, statuses[domain.StatusHeld])
	assert.Equal(t, 1, statuses[domain.StatusRejected])
	assert.Equal(t, 1, statuses[domain.StatusApproved])

	decisions, err := store.ListByPayout(ctx, "payout-001")
	assert.NoError(t, err)
	assert.Empty(t, decisions)
}

func TestListFiltersByStatus(t *testing.T) {
	store := New()
	ctx := context.Background()

	held, err := store.List(ctx, domain.StatusHeld)
	assert.NoError(t, err)
	assert.Len(t, held, 1)
	assert.Equal(t, "payout-004", held[0].ID)

	unknown, err := store.List(ctx, domain.PayoutStatus("frozen"))
	assert.NoError(t, err)
	assert.Empty(t, unknown)
}

func TestGetByID(t *testing.T) {
	store := New()
	ctx := context.Background()

	payout, err := store.GetByID(ctx, "payout-002")
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusFlagged, payout.Status)
	assert.Equal(t, "creator-003", payout.CreatorID)

	missing, err := store.GetByID(ctx, "nonexistent")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGetByIDReturnsCopy(t *testing.T) {
	store := New()
	ctx := context.Background()

	payout, err := store.GetByID(ctx, "payout-001")
	assert.NoError(t, err)
	payout.Status = domain.StatusRejected

	again, err := store.GetByID(ctx, "payout-001")
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusPending, again.Status)
}

func TestListInvoicesAndSignals(t *testing.T) {
	store := New()
	ctx := context.Background()

	invoices, err := store.ListInvoices(ctx, "payout-002")
	assert.NoError(t, err)
	assert.Len(t, invoices, 2)

	signals, err := store.ListFraudSignals(ctx, "payout-002")
	assert.NoError(t, err)
	assert.Len(t, signals, 2)
	assert.Equal(t, "velocity", signals[0].Type)
	assert.Equal(t, "geo_mismatch", signals[1].Type)

	none, err := store.ListFraudSignals(ctx, "payout-001")
	assert.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetCreatorByID(t *testing.T) {
	store := New()
	ctx := context.Background()

	creator, err := store.GetCreatorByID(ctx, "creator-001")
	assert.NoError(t, err)
	assert.Equal(t, "Studio Luna", creator.DisplayName)

	missing, err := store.GetCreatorByID(ctx, "creator-999")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestLatestAttemptByCreator(t *testing.T) {
	store := New()
	ctx := context.Background()

	// creator-001 owns payment-001 and payment-002; attempt-003 is the
	// newest attempt across both.
	attempt, err := store.LatestAttemptByCreator(ctx, "creator-001")
	assert.NoError(t, err)
	assert.Equal(t, "attempt-003", attempt.ID)
	assert.Equal(t, "success", attempt.Status)

	attempt, err = store.LatestAttemptByCreator(ctx, "creator-003")
	assert.NoError(t, err)
	assert.Equal(t, "attempt-004", attempt.ID)

	none, err := store.LatestAttemptByCreator(ctx, "creator-004")
	assert.NoError(t, err)
	assert.Nil(t, none)
}

func TestCreateDecision(t *testing.T) {
	store := New()
	ctx := context.Background()

	record := &domain.PayoutDecision{
		PayoutID:  "payout-001",
		Decision:  domain.DecisionHeld,
		Reason:    "pending manual review",
		DecidedBy: "ops",
		CreatedAt: time.Now(),
	}

	created, err := store.Create(ctx, record, domain.StatusHeld)
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	payout, err := store.GetByID(ctx, "payout-001")
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusHeld, payout.Status)
	assert.Equal(t, record.CreatedAt, payout.UpdatedAt)

	decisions, err := store.ListByPayout(ctx, "payout-001")
	assert.NoError(t, err)
	assert.Len(t, decisions, 1)
	assert.Equal(t, created.ID, decisions[0].ID)
}

func TestCreateDecisionUnknownPayout(t *testing.T) {
	store := New()
	ctx := context.Background()

	created, err := store.Create(ctx, &domain.PayoutDecision{PayoutID: "nonexistent"}, domain.StatusHeld)
	assert.Error(t, err)
	assert.Nil(t, created)
}

func TestRepeatedDecisionsAccumulate(t *testing.T) {
	store := New()
	ctx := context.Background()

	first, err := store.Create(ctx, &domain.PayoutDecision{
		PayoutID: "payout-002", Decision: domain.DecisionHeld, DecidedBy: "ops", CreatedAt: time.Now(),
	}, domain.StatusHeld)
	assert.NoError(t, err)

	second, err := store.Create(ctx, &domain.PayoutDecision{
		PayoutID: "payout-002", Decision: domain.DecisionApproved, DecidedBy: "ops", CreatedAt: time.Now().Add(time.Second),
	}, domain.StatusApproved)
	assert.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	payout, err := store.GetByID(ctx, "payout-002")
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, payout.Status)

	decisions, err := store.ListByPayout(ctx, "payout-002")
	assert.NoError(t, err)
	assert.Len(t, decisions, 2)
	assert.Equal(t, second.ID, decisions[0].ID)
	assert.Equal(t, first.ID, decisions[1].ID)
}

package payoutservice

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/payops/internal/domain"
)

type Repo interface {
	List(ctx context.Context, status domain.PayoutStatus) ([]domain.Payout, error)
	GetByID(ctx context.Context, id string) (*domain.Payout, error)
	ListInvoices(ctx context.Context, payoutID string) ([]domain.PayoutInvoice, error)
	ListFraudSignals(ctx context.Context, payoutID string) ([]domain.FraudSignal, error)
}

type CreatorRepo interface {
	GetCreatorByID(ctx context.Context, id string) (*domain.Creator, error)
}

type PaymentRepo interface {
	LatestAttemptByCreator(ctx context.Context, creatorID string) (*domain.PaymentAttempt, error)
}

type Service struct {
	payoutRepo  Repo
	creatorRepo CreatorRepo
	paymentRepo PaymentRepo
	now         func() time.Time
}

func New(payoutRepo Repo, creatorRepo CreatorRepo, paymentRepo PaymentRepo) *Service {
	return &Service{
		payoutRepo:  payoutRepo,
		creatorRepo: creatorRepo,
		paymentRepo: paymentRepo,
		now:         time.Now,
	}
}

// List returns payouts ordered by scheduled date descending. An empty or
// "all" filter returns everything; any other value is an exact status
// match, so an unknown status yields an empty list rather than an error.
func (s *Service) List(ctx context.Context, filter string) ([]domain.Payout, error) {
	status := domain.PayoutStatus("")
	if filter != "" && filter != "all" {
		status = domain.PayoutStatus(filter)
	}

	payouts, err := s.payoutRepo.List(ctx, status)
	if err != nil {
		zap.L().Error("failed to list payouts", zap.Error(err))
		return nil, fmt.Errorf("can't list payouts: %w", err)
	}

	sort.SliceStable(payouts, func(i, j int) bool {
		return payouts[i].ScheduledFor.After(payouts[j].ScheduledFor)
	})
	return payouts, nil
}

// Snapshot aggregates today's payouts in server-local time. Amounts are
// summed regardless of currency and reported as USD.
func (s *Service) Snapshot(ctx context.Context) (*domain.FundsSnapshot, error) {
	payouts, err := s.payoutRepo.List(ctx, "")
	if err != nil {
		zap.L().Error("failed to list payouts for snapshot", zap.Error(err))
		return nil, fmt.Errorf("can't build snapshot: %w", err)
	}

	now := s.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.Add(24*time.Hour - time.Millisecond)

	snapshot := &domain.FundsSnapshot{Currency: "USD"}
	for _, p := range payouts {
		if p.ScheduledFor.Before(start) || p.ScheduledFor.After(end) {
			continue
		}
		snapshot.TotalScheduledToday += p.Amount
		switch p.Status {
		case domain.StatusHeld:
			snapshot.HeldAmount += p.Amount
		case domain.StatusFlagged:
			snapshot.FlaggedAmount += p.Amount
		}
	}
	return snapshot, nil
}

// GetDetail assembles the detail view of one payout. The latest payment
// attempt is looked up across every payment owned by the payout's
// creator, not only the ones behind this payout.
func (s *Service) GetDetail(ctx context.Context, id string) (*domain.PayoutWithDetails, error) {
	payout, err := s.payoutRepo.GetByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get payout", zap.String("payoutID", id), zap.Error(err))
		return nil, fmt.Errorf("can't get payout: %w", err)
	}
	if payout == nil {
		return nil, domain.NewNotFound(domain.CodePayoutNotFound, fmt.Sprintf("payout with ID %s not found", id))
	}

	creator, err := s.creatorRepo.GetCreatorByID(ctx, payout.CreatorID)
	if err != nil {
		zap.L().Error("failed to get creator", zap.String("creatorID", payout.CreatorID), zap.Error(err))
		return nil, fmt.Errorf("can't get creator: %w", err)
	}
	if creator == nil {
		return nil, fmt.Errorf("creator %s referenced by payout %s not found", payout.CreatorID, id)
	}

	invoices, err := s.payoutRepo.ListInvoices(ctx, id)
	if err != nil {
		zap.L().Error("failed to list invoices", zap.String("payoutID", id), zap.Error(err))
		return nil, fmt.Errorf("can't list invoices: %w", err)
	}

	signals, err := s.payoutRepo.ListFraudSignals(ctx, id)
	if err != nil {
		zap.L().Error("failed to list fraud signals", zap.String("payoutID", id), zap.Error(err))
		return nil, fmt.Errorf("can't list fraud signals: %w", err)
	}

	latestAttempt, err := s.paymentRepo.LatestAttemptByCreator(ctx, payout.CreatorID)
	if err != nil {
		zap.L().Error("failed to get latest payment attempt", zap.String("creatorID", payout.CreatorID), zap.Error(err))
		return nil, fmt.Errorf("can't get latest payment attempt: %w", err)
	}

	notes := make([]string, len(signals))
	for i, sig := range signals {
		notes[i] = fmt.Sprintf("[%s] %s: %s", strings.ToUpper(sig.Severity), sig.Type, sig.Description)
	}

	return &domain.PayoutWithDetails{
		Payout:               *payout,
		Creator:              *creator,
		Invoices:             invoices,
		LatestPaymentAttempt: latestAttempt,
		FraudSignals:         signals,
		FraudNotes:           notes,
	}, nil
}

package decisionservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/payops/internal/domain"
)

type PayoutRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Payout, error)
}

type DecisionRepo interface {
	Create(ctx context.Context, decision *domain.PayoutDecision, status domain.PayoutStatus) (*domain.PayoutDecision, error)
	ListByPayout(ctx context.Context, payoutID string) ([]domain.PayoutDecision, error)
}

type Service struct {
	payoutRepo   PayoutRepo
	decisionRepo DecisionRepo
}

func New(payoutRepo PayoutRepo, decisionRepo DecisionRepo) *Service {
	return &Service{
		payoutRepo:   payoutRepo,
		decisionRepo: decisionRepo,
	}
}

// CreateDecision validates and applies an operator decision. Check order
// is fixed: unknown payout, terminal paid state, decision content, then
// decidedBy. The status update and the audit append happen together; a
// repeated identical decision is not deduplicated.
func (s *Service) CreateDecision(ctx context.Context, payoutID, decision, reason, decidedBy string) (*domain.PayoutDecision, error) {
	payout, err := s.payoutRepo.GetByID(ctx, payoutID)
	if err != nil {
		zap.L().Error("failed to get payout", zap.String("payoutID", payoutID), zap.Error(err))
		return nil, fmt.Errorf("can't get payout: %w", err)
	}
	if payout == nil {
		return nil, domain.NewNotFound(domain.CodePayoutNotFound, fmt.Sprintf("payout with ID %s not found", payoutID))
	}

	if payout.Status == domain.StatusPaid {
		return nil, domain.NewConflict(domain.CodePayoutAlreadyPaid, "cannot modify a payout that has already been paid")
	}

	if err := Validate(decision, reason); err != nil {
		return nil, err
	}

	if strings.TrimSpace(decidedBy) == "" {
		return nil, domain.NewInvalidInput(domain.CodeMissingDecidedBy, "decidedBy field is required")
	}

	record := &domain.PayoutDecision{
		PayoutID:  payoutID,
		Decision:  domain.DecisionType(decision),
		Reason:    strings.TrimSpace(reason),
		DecidedBy: strings.TrimSpace(decidedBy),
		CreatedAt: time.Now(),
	}

	created, err := s.decisionRepo.Create(ctx, record, record.Decision.Status())
	if err != nil {
		zap.L().Error("failed to create decision", zap.String("payoutID", payoutID), zap.Error(err))
		return nil, fmt.Errorf("can't create decision: %w", err)
	}

	zap.L().Info("decision created",
		zap.String("payoutID", payoutID),
		zap.String("decision", decision),
		zap.String("decidedBy", created.DecidedBy),
		zap.String("previousStatus", string(payout.Status)),
		zap.String("newStatus", string(created.Decision.Status())),
	)
	return created, nil
}

// ListDecisions returns the audit trail for a payout, newest first.
func (s *Service) ListDecisions(ctx context.Context, payoutID string) ([]domain.PayoutDecision, error) {
	payout, err := s.payoutRepo.GetByID(ctx, payoutID)
	if err != nil {
		zap.L().Error("failed to get payout", zap.String("payoutID", payoutID), zap.Error(err))
		return nil, fmt.Errorf("can't get payout: %w", err)
	}
	if payout == nil {
		return nil, domain.NewNotFound(domain.CodePayoutNotFound, fmt.Sprintf("payout with ID %s not found", payoutID))
	}

	decisions, err := s.decisionRepo.ListByPayout(ctx, payoutID)
	if err != nil {
		zap.L().Error("failed to list decisions", zap.String("payoutID", payoutID), zap.Error(err))
		return nil, fmt.Errorf("can't list decisions: %w", err)
	}
	return decisions, nil
}

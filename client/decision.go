package client

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/GlebRadaev/payops/internal/domain"
	"github.com/GlebRadaev/payops/internal/dto"
)

// FlowState is the decision panel's submission state. A failed submit
// surfaces its message through Err and returns the flow to
// StateDecisionSelected so the operator can retry or edit the reason.
type FlowState int

const (
	StateNoDecision FlowState = iota
	StateDecisionSelected
	StateSubmitting
	StateSuccess
)

const defaultCloseDelay = 1500 * time.Millisecond

type DecisionAPI interface {
	CreateDecision(ctx context.Context, payoutID string, req dto.DecisionRequestDTO) (*domain.PayoutDecision, error)
}

// DecisionFlow drives one payout's decision panel: decision selection,
// reason gating, submission with an optimistic cache update, and
// rollback when the server refuses.
type DecisionFlow struct {
	// Announcer, OnClose and CloseDelay may be set before the first
	// Select/Submit call.
	Announcer  Announcer
	OnClose    func()
	CloseDelay time.Duration

	api   DecisionAPI
	cache *Cache

	mu         sync.Mutex
	payout     domain.Payout
	decidedBy  string
	state      FlowState
	decision   domain.DecisionType
	reason     string
	errMsg     string
	closeTimer *time.Timer
}

func NewDecisionFlow(api DecisionAPI, cache *Cache, payout domain.Payout, decidedBy string) *DecisionFlow {
	return &DecisionFlow{
		Announcer:  NopAnnouncer{},
		CloseDelay: defaultCloseDelay,
		api:        api,
		cache:      cache,
		payout:     payout,
		decidedBy:  decidedBy,
		state:      StateNoDecision,
	}
}

func (f *DecisionFlow) State() FlowState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *DecisionFlow) Decision() domain.DecisionType {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.decision
}

func (f *DecisionFlow) Err() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

// CanAct reports whether the panel offers decision actions at all. Paid
// payouts are blocked server-side; rejected ones are treated as settled
// in the console even though the server would accept a re-decision.
func (f *DecisionFlow) CanAct() bool {
	return f.payout.Status != domain.StatusPaid && f.payout.Status != domain.StatusRejected
}

// Select picks a decision type, clearing any prior submission error.
func (f *DecisionFlow) Select(decision domain.DecisionType) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateSubmitting || f.state == StateSuccess {
		return
	}
	f.decision = decision
	f.errMsg = ""
	f.state = StateDecisionSelected
}

func (f *DecisionFlow) SetReason(reason string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reason = reason
}

// CanSubmit gates the submit control: a decision must be selected, no
// submission may be in flight, and rejecting requires a non-blank reason.
func (f *DecisionFlow) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.canSubmitLocked()
}

func (f *DecisionFlow) canSubmitLocked() bool {
	if f.state != StateDecisionSelected {
		return false
	}
	if f.decision == domain.DecisionRejected && strings.TrimSpace(f.reason) == "" {
		return false
	}
	return true
}

// Submit applies the optimistic cache update, posts the decision and
// reconciles: on failure the prior cache state is restored verbatim, and
// either way all payout-scoped cache entries are invalidated.
func (f *DecisionFlow) Submit(ctx context.Context) error {
	f.mu.Lock()
	if !f.canSubmitLocked() {
		f.mu.Unlock()
		return fmt.Errorf("submission is not allowed in the current state")
	}
	decision := f.decision
	reason := strings.TrimSpace(f.reason)
	f.state = StateSubmitting
	f.mu.Unlock()

	mutation := f.cache.BeginMutation(f.payout.ID, decision.Status(), time.Now())
	f.Announcer.Announce(fmt.Sprintf("Payout %s", decision), Polite)

	req := dto.DecisionRequestDTO{
		Decision:  string(decision),
		Reason:    reason,
		DecidedBy: f.decidedBy,
	}
	_, err := f.api.CreateDecision(ctx, f.payout.ID, req)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		mutation.Rollback()
		mutation.Settle()
		f.errMsg = err.Error()
		f.state = StateDecisionSelected
		f.Announcer.Announce("Decision failed. Please try again.", Assertive)
		return err
	}

	mutation.Settle()
	f.state = StateSuccess
	f.Announcer.Announce(fmt.Sprintf("Payout %s successfully", decision), Polite)
	if f.OnClose != nil {
		f.closeTimer = time.AfterFunc(f.CloseDelay, f.OnClose)
	}
	return nil
}

package decisionservice

import (
	"strings"

	"github.com/GlebRadaev/payops/internal/domain"
)

// Validate checks the decision content. Pure and total: any string pair
// either passes or yields an INVALID_DECISION error.
func Validate(decision, reason string) error {
	if !domain.DecisionType(decision).Valid() {
		return domain.NewInvalidInput(domain.CodeInvalidDecision, "invalid decision. Must be one of: approved, rejected, held")
	}

	// Rejecting requires a reason.
	if domain.DecisionType(decision) == domain.DecisionRejected && strings.TrimSpace(reason) == "" {
		return domain.NewInvalidInput(domain.CodeInvalidDecision, "a reason is required when rejecting a payout")
	}

	return nil
}

package decisionservice

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/payops/internal/domain"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		decision string
		reason   string
		wantErr  bool
	}{
		{name: "Approved", decision: "approved", wantErr: false},
		{name: "Held", decision: "held", wantErr: false},
		{name: "Rejected with reason", decision: "rejected", reason: "Chargeback risk", wantErr: false},
		{name: "Rejected with padded reason", decision: "rejected", reason: "  ok  ", wantErr: false},
		{name: "Rejected without reason", decision: "rejected", wantErr: true},
		{name: "Rejected with whitespace reason", decision: "rejected", reason: "   ", wantErr: true},
		{name: "Empty decision", decision: "", wantErr: true},
		{name: "Unknown decision", decision: "escalated", wantErr: true},
		{name: "Case sensitive", decision: "Approved", wantErr: true},
		{name: "Status is not a decision", decision: "pending", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.decision, tt.reason)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var domainErr *domain.Error
			assert.True(t, errors.As(err, &domainErr))
			assert.Equal(t, domain.CodeInvalidDecision, domainErr.Code)
		})
	}
}

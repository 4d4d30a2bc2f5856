package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/payops/internal/domain"
	"github.com/GlebRadaev/payops/internal/dto"
)

func writeEnvelope(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]any{
		"success":   true,
		"data":      data,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func writeEnvelopeError(w http.ResponseWriter, statusCode int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]any{
		"success":   false,
		"error":     map[string]string{"code": code, "message": message},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func TestAPIClientPayouts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payouts", r.URL.Path)
		assert.Equal(t, "held", r.URL.Query().Get("status"))
		writeEnvelope(w, http.StatusOK, []domain.Payout{{ID: "payout-004", Status: domain.StatusHeld}})
	}))
	defer server.Close()

	api := NewAPIClient(server.URL)
	payouts, err := api.Payouts(context.Background(), "held")

	assert.NoError(t, err)
	assert.Len(t, payouts, 1)
	assert.Equal(t, "payout-004", payouts[0].ID)
}

func TestAPIClientPayoutsAllOmitsQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		writeEnvelope(w, http.StatusOK, []domain.Payout{})
	}))
	defer server.Close()

	api := NewAPIClient(server.URL)
	_, err := api.Payouts(context.Background(), "all")
	assert.NoError(t, err)
}

func TestAPIClientPayoutDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payouts/payout-002", r.URL.Path)
		writeEnvelope(w, http.StatusOK, domain.PayoutWithDetails{
			Payout:     domain.Payout{ID: "payout-002", Status: domain.StatusFlagged},
			Creator:    domain.Creator{ID: "creator-003", DisplayName: "Nightloop FM"},
			FraudNotes: []string{"[HIGH] velocity: Payout volume tripled within 24 hours"},
		})
	}))
	defer server.Close()

	api := NewAPIClient(server.URL)
	details, err := api.PayoutDetail(context.Background(), "payout-002")

	assert.NoError(t, err)
	assert.Equal(t, "Nightloop FM", details.Creator.DisplayName)
	assert.Len(t, details.FraudNotes, 1)
}

func TestAPIClientErrorCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelopeError(w, http.StatusNotFound, "PAYOUT_NOT_FOUND", "payout with ID nonexistent not found")
	}))
	defer server.Close()

	api := NewAPIClient(server.URL)
	details, err := api.PayoutDetail(context.Background(), "nonexistent")

	assert.Nil(t, details)
	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "PAYOUT_NOT_FOUND", apiErr.Code)
	assert.Equal(t, "payout with ID nonexistent not found", apiErr.Message)
}

func TestAPIClientSnapshot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payouts/snapshot", r.URL.Path)
		writeEnvelope(w, http.StatusOK, domain.FundsSnapshot{TotalScheduledToday: 12770.50, Currency: "USD"})
	}))
	defer server.Close()

	api := NewAPIClient(server.URL)
	snapshot, err := api.Snapshot(context.Background())

	assert.NoError(t, err)
	assert.InDelta(t, 12770.50, snapshot.TotalScheduledToday, 0.001)
	assert.Equal(t, "USD", snapshot.Currency)
}

func TestAPIClientCreateDecision(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/decisions/payout-001", r.URL.Path)

		var req dto.DecisionRequestDTO
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "approved", req.Decision)
		assert.Equal(t, "ops", req.DecidedBy)

		writeEnvelope(w, http.StatusCreated, domain.PayoutDecision{
			ID: "decision-100", PayoutID: "payout-001", Decision: domain.DecisionApproved, DecidedBy: "ops",
		})
	}))
	defer server.Close()

	api := NewAPIClient(server.URL)
	decision, err := api.CreateDecision(context.Background(), "payout-001", dto.DecisionRequestDTO{
		Decision: "approved", DecidedBy: "ops",
	})

	assert.NoError(t, err)
	assert.Equal(t, "decision-100", decision.ID)
}

func TestAPIClientCreateDecisionRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelopeError(w, http.StatusBadRequest, "PAYOUT_ALREADY_PAID", "cannot modify a payout that has already been paid")
	}))
	defer server.Close()

	api := NewAPIClient(server.URL)
	decision, err := api.CreateDecision(context.Background(), "payout-003", dto.DecisionRequestDTO{
		Decision: "held", DecidedBy: "ops",
	})

	assert.Nil(t, decision)
	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "PAYOUT_ALREADY_PAID", apiErr.Code)
}

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/GlebRadaev/payops/docs"
	"github.com/GlebRadaev/payops/internal/handlers/decisions"
	"github.com/GlebRadaev/payops/internal/handlers/payouts"
	"github.com/GlebRadaev/payops/internal/service"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		PayoutService:   payouts.NewMockService(ctrl),
		DecisionService: decisions.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPayoutHandler := NewMockPayoutHandler(ctrl)
	mockDecisionHandler := NewMockDecisionHandler(ctrl)

	mockPayoutHandler.EXPECT().GetPayouts(gomock.Any(), gomock.Any()).AnyTimes()
	mockPayoutHandler.EXPECT().GetSnapshot(gomock.Any(), gomock.Any()).AnyTimes()
	mockPayoutHandler.EXPECT().GetPayoutByID(gomock.Any(), gomock.Any()).AnyTimes()
	mockDecisionHandler.EXPECT().CreateDecision(gomock.Any(), gomock.Any()).AnyTimes()
	mockDecisionHandler.EXPECT().GetDecisions(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		PayoutHandler:   mockPayoutHandler,
		DecisionHandler: mockDecisionHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"GET", "/health", http.StatusOK},
		{"GET", "/payouts", http.StatusOK},
		{"GET", "/payouts/snapshot", http.StatusOK},
		{"GET", "/payouts/payout-001", http.StatusOK},
		{"POST", "/decisions/payout-001", http.StatusOK},
		{"GET", "/decisions/payout-001", http.StatusOK},
		{"DELETE", "/payouts", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

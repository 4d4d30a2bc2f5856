package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/payops/internal/repo"
	"github.com/GlebRadaev/payops/internal/service/decisionservice"
	"github.com/GlebRadaev/payops/internal/service/payoutservice"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPayoutRepo := payoutservice.NewMockRepo(ctrl)
	mockCreatorRepo := payoutservice.NewMockCreatorRepo(ctrl)
	mockPaymentRepo := payoutservice.NewMockPaymentRepo(ctrl)
	mockDecisionRepo := decisionservice.NewMockDecisionRepo(ctrl)

	repos := &repo.Repositories{
		PayoutRepo:   mockPayoutRepo,
		CreatorRepo:  mockCreatorRepo,
		PaymentRepo:  mockPaymentRepo,
		DecisionRepo: mockDecisionRepo,
	}

	services := New(repos)

	assert.NotNil(t, services.PayoutService)
	assert.NotNil(t, services.DecisionService)
}

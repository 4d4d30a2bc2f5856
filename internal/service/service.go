package service

import (
	"github.com/GlebRadaev/payops/internal/handlers/decisions"
	"github.com/GlebRadaev/payops/internal/handlers/payouts"
	"github.com/GlebRadaev/payops/internal/repo"
	"github.com/GlebRadaev/payops/internal/service/decisionservice"
	"github.com/GlebRadaev/payops/internal/service/payoutservice"
)

type Services struct {
	PayoutService   payouts.Service
	DecisionService decisions.Service
}

func New(repo *repo.Repositories) *Services {
	payoutService := payoutservice.New(repo.PayoutRepo, repo.CreatorRepo, repo.PaymentRepo)
	decisionService := decisionservice.New(repo.PayoutRepo, repo.DecisionRepo)

	return &Services{
		PayoutService:   payoutService,
		DecisionService: decisionService,
	}
}

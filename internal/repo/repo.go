package repo

import (
	"github.com/GlebRadaev/payops/internal/memstore"
	"github.com/GlebRadaev/payops/internal/pg"
	creatorrepo "github.com/GlebRadaev/payops/internal/repo/creator-repo"
	decisionrepo "github.com/GlebRadaev/payops/internal/repo/decision-repo"
	paymentrepo "github.com/GlebRadaev/payops/internal/repo/payment-repo"
	payoutrepo "github.com/GlebRadaev/payops/internal/repo/payout-repo"
	"github.com/GlebRadaev/payops/internal/service/decisionservice"
	"github.com/GlebRadaev/payops/internal/service/payoutservice"
)

type Repositories struct {
	PayoutRepo   payoutservice.Repo
	CreatorRepo  payoutservice.CreatorRepo
	PaymentRepo  payoutservice.PaymentRepo
	DecisionRepo decisionservice.DecisionRepo
}

// NewMemory serves every repository from the seeded in-memory store.
func NewMemory(store *memstore.Store) *Repositories {
	return &Repositories{
		PayoutRepo:   store,
		CreatorRepo:  store,
		PaymentRepo:  store,
		DecisionRepo: store,
	}
}

// NewPostgres serves the repositories from Postgres.
func NewPostgres(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		PayoutRepo:   payoutrepo.New(conn),
		CreatorRepo:  creatorrepo.New(conn),
		PaymentRepo:  paymentrepo.New(conn),
		DecisionRepo: decisionrepo.New(conn, txManager),
	}
}

package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/payops/docs"
	decisionhandlers "github.com/GlebRadaev/payops/internal/handlers/decisions"
	payouthandlers "github.com/GlebRadaev/payops/internal/handlers/payouts"
	"github.com/GlebRadaev/payops/internal/service"
)

type PayoutHandler interface {
	GetPayouts(w http.ResponseWriter, r *http.Request)
	GetSnapshot(w http.ResponseWriter, r *http.Request)
	GetPayoutByID(w http.ResponseWriter, r *http.Request)
}

type DecisionHandler interface {
	CreateDecision(w http.ResponseWriter, r *http.Request)
	GetDecisions(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	PayoutHandler   PayoutHandler
	DecisionHandler DecisionHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		PayoutHandler:   payouthandlers.New(s.PayoutService),
		DecisionHandler: decisionhandlers.New(s.DecisionService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/health", health)
	r.Route("/payouts", func(r chi.Router) {
		r.Get("/", h.PayoutHandler.GetPayouts)
		r.Get("/snapshot", h.PayoutHandler.GetSnapshot)
		r.Get("/{id}", h.PayoutHandler.GetPayoutByID)
	})
	r.Route("/decisions", func(r chi.Router) {
		r.Post("/{payoutId}", h.DecisionHandler.CreateDecision)
		r.Get("/{payoutId}", h.DecisionHandler.GetDecisions)
	})

	return r
}

func health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok","timestamp":"` + time.Now().UTC().Format(time.RFC3339) + `"}`))
}

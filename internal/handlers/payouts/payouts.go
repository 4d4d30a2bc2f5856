package payouts

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/payops/internal/domain"
	"github.com/GlebRadaev/payops/pkg/utils"
)

type Service interface {
	List(ctx context.Context, filter string) ([]domain.Payout, error)
	Snapshot(ctx context.Context) (*domain.FundsSnapshot, error)
	GetDetail(ctx context.Context, id string) (*domain.PayoutWithDetails, error)
}

type PayoutHandler struct {
	payoutService Service
}

func New(payoutService Service) *PayoutHandler {
	return &PayoutHandler{
		payoutService: payoutService,
	}
}

// GetPayouts godoc
//
//	@Summary		List payouts
//	@Description	List payouts with an optional status filter, ordered by scheduled date descending.
//	@Tags			Payouts
//	@Produce		json
//	@Param			status	query		string			false	"Status filter"	Enums(all, pending, flagged, approved, paid, rejected, held)
//	@Success		200		{object}	utils.Response	"Payout list"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/payouts [get]
func (h *PayoutHandler) GetPayouts(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("status")

	payouts, err := h.payoutService.List(r.Context(), filter)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}

	if payouts == nil {
		payouts = []domain.Payout{}
	}
	utils.RespondWithJSON(w, http.StatusOK, payouts)
}

// GetSnapshot godoc
//
//	@Summary		Funds snapshot
//	@Description	Aggregate amounts for payouts scheduled today, with held and flagged subsets.
//	@Tags			Payouts
//	@Produce		json
//	@Success		200	{object}	utils.Response	"Funds snapshot"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/payouts/snapshot [get]
func (h *PayoutHandler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.payoutService.Snapshot(r.Context())
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, snapshot)
}

// GetPayoutByID godoc
//
//	@Summary		Payout details
//	@Description	One payout with its creator, invoices, fraud signals, fraud notes and the creator's latest payment attempt.
//	@Tags			Payouts
//	@Produce		json
//	@Param			id	path		string			true	"Payout ID"
//	@Success		200	{object}	utils.Response	"Payout details"
//	@Failure		404	{object}	utils.Response	"Payout not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/payouts/{id} [get]
func (h *PayoutHandler) GetPayoutByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	details, err := h.payoutService.GetDetail(r.Context(), id)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, details)
}

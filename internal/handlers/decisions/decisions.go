package decisions

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/payops/internal/domain"
	"github.com/GlebRadaev/payops/internal/dto"
	"github.com/GlebRadaev/payops/pkg/utils"
)

type Service interface {
	CreateDecision(ctx context.Context, payoutID, decision, reason, decidedBy string) (*domain.PayoutDecision, error)
	ListDecisions(ctx context.Context, payoutID string) ([]domain.PayoutDecision, error)
}

type DecisionHandler struct {
	decisionService Service
}

func New(decisionService Service) *DecisionHandler {
	return &DecisionHandler{
		decisionService: decisionService,
	}
}

// CreateDecision godoc
//
//	@Summary		Record a payout decision
//	@Description	Validate and apply an approve/reject/hold decision, updating the payout status and appending an audit record.
//	@Tags			Decisions
//	@Accept			json
//	@Produce		json
//	@Param			payoutId	path		string					true	"Payout ID"
//	@Param			request		body		dto.DecisionRequestDTO	true	"Decision payload"
//	@Success		201			{object}	utils.Response			"Created decision"
//	@Failure		400			{object}	utils.Response			"Invalid decision, missing decidedBy or payout already paid"
//	@Failure		404			{object}	utils.Response			"Payout not found"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/decisions/{payoutId} [post]
func (h *DecisionHandler) CreateDecision(w http.ResponseWriter, r *http.Request) {
	payoutID := chi.URLParam(r, "payoutId")

	var req dto.DecisionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, domain.CodeInvalidBody, "invalid request body")
		return
	}

	decision, err := h.decisionService.CreateDecision(r.Context(), payoutID, req.Decision, req.Reason, req.DecidedBy)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, decision)
}

// GetDecisions godoc
//
//	@Summary		Decision history
//	@Description	Audit trail of decisions recorded against a payout, newest first.
//	@Tags			Decisions
//	@Produce		json
//	@Param			payoutId	path		string			true	"Payout ID"
//	@Success		200			{object}	utils.Response	"Decision list"
//	@Failure		404			{object}	utils.Response	"Payout not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/decisions/{payoutId} [get]
func (h *DecisionHandler) GetDecisions(w http.ResponseWriter, r *http.Request) {
	payoutID := chi.URLParam(r, "payoutId")

	decisions, err := h.decisionService.ListDecisions(r.Context(), payoutID)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}

	if decisions == nil {
		decisions = []domain.PayoutDecision{}
	}
	utils.RespondWithJSON(w, http.StatusOK, decisions)
}

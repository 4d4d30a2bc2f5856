package dto

// DecisionRequestDTO is the body of POST /decisions/{payoutId}.
type DecisionRequestDTO struct {
	Decision  string `json:"decision" example:"approved"`
	Reason    string `json:"reason,omitempty" example:"chargeback history"`
	DecidedBy string `json:"decidedBy" example:"ops-user-001"`
}

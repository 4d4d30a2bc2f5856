package domain

import "time"

// PayoutStatus is the lifecycle state of a payout. Paid payouts are
// terminal and block any further decision.
type PayoutStatus string

const (
	StatusPending  PayoutStatus = "pending"
	StatusFlagged  PayoutStatus = "flagged"
	StatusApproved PayoutStatus = "approved"
	StatusPaid     PayoutStatus = "paid"
	StatusRejected PayoutStatus = "rejected"
	StatusHeld     PayoutStatus = "held"
)

func (s PayoutStatus) Valid() bool {
	switch s {
	case StatusPending, StatusFlagged, StatusApproved, StatusPaid, StatusRejected, StatusHeld:
		return true
	}
	return false
}

// DecisionType is an operator verdict. Each value maps 1:1 onto the
// payout status of the same name.
type DecisionType string

const (
	DecisionApproved DecisionType = "approved"
	DecisionRejected DecisionType = "rejected"
	DecisionHeld     DecisionType = "held"
)

func (d DecisionType) Valid() bool {
	switch d {
	case DecisionApproved, DecisionRejected, DecisionHeld:
		return true
	}
	return false
}

// Status returns the payout status this decision transitions to.
func (d DecisionType) Status() PayoutStatus {
	return PayoutStatus(d)
}

type Creator struct {
	ID          string    `db:"id" json:"id"`
	Email       string    `db:"email" json:"email"`
	DisplayName string    `db:"display_name" json:"displayName"`
	Status      string    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

type Payout struct {
	ID           string       `db:"id" json:"id"`
	CreatorID    string       `db:"creator_id" json:"creatorId"`
	Amount       float64      `db:"amount" json:"amount"`
	Currency     string       `db:"currency" json:"currency"`
	Method       string       `db:"method" json:"method"`
	Status       PayoutStatus `db:"status" json:"status"`
	ScheduledFor time.Time    `db:"scheduled_for" json:"scheduledFor"`
	RiskScore    int          `db:"risk_score" json:"riskScore"`
	CreatedAt    time.Time    `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time    `db:"updated_at" json:"updatedAt"`
}

type PayoutInvoice struct {
	ID            string    `db:"id" json:"id"`
	PayoutID      string    `db:"payout_id" json:"payoutId"`
	InvoiceNumber string    `db:"invoice_number" json:"invoiceNumber"`
	Amount        float64   `db:"amount" json:"amount"`
	Status        string    `db:"status" json:"status"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}

type Payment struct {
	ID           string    `db:"id" json:"id"`
	CreatorID    string    `db:"creator_id" json:"creatorId"`
	SubscriberID string    `db:"subscriber_id" json:"subscriberId"`
	Amount       float64   `db:"amount" json:"amount"`
	Currency     string    `db:"currency" json:"currency"`
	Status       string    `db:"status" json:"status"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

type PaymentAttempt struct {
	ID              string    `db:"id" json:"id"`
	PaymentID       string    `db:"payment_id" json:"paymentId"`
	Status          string    `db:"status" json:"status"`
	GatewayResponse string    `db:"gateway_response" json:"gatewayResponse"`
	ErrorCode       string    `db:"error_code" json:"errorCode,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
}

type FraudSignal struct {
	ID          string            `db:"id" json:"id"`
	PayoutID    string            `db:"payout_id" json:"payoutId"`
	Type        string            `db:"type" json:"type"`
	Severity    string            `db:"severity" json:"severity"`
	Description string            `db:"description" json:"description"`
	Metadata    map[string]string `db:"metadata" json:"metadata"`
	CreatedAt   time.Time         `db:"created_at" json:"createdAt"`
}

// PayoutDecision is an append-only audit record. One successful decision
// call produces exactly one record and one payout status update.
type PayoutDecision struct {
	ID        string       `db:"id" json:"id"`
	PayoutID  string       `db:"payout_id" json:"payoutId"`
	Decision  DecisionType `db:"decision" json:"decision"`
	Reason    string       `db:"reason" json:"reason,omitempty"`
	DecidedBy string       `db:"decided_by" json:"decidedBy"`
	CreatedAt time.Time    `db:"created_at" json:"createdAt"`
}

// PayoutWithDetails is the detail view of a payout with its related
// records joined in.
type PayoutWithDetails struct {
	Payout
	Creator              Creator         `json:"creator"`
	Invoices             []PayoutInvoice `json:"invoices"`
	LatestPaymentAttempt *PaymentAttempt `json:"latestPaymentAttempt,omitempty"`
	FraudSignals         []FraudSignal   `json:"fraudSignals"`
	FraudNotes           []string        `json:"fraudNotes"`
}

type FundsSnapshot struct {
	TotalScheduledToday float64 `json:"totalScheduledToday"`
	HeldAmount          float64 `json:"heldAmount"`
	FlaggedAmount       float64 `json:"flaggedAmount"`
	Currency            string  `json:"currency"`
}

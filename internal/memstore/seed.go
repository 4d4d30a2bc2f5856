package memstore

import (
	"time"

	"github.com/GlebRadaev/payops/internal/domain"
)

// seed fills the store with the demo fixtures. Dates are relative to
// process start so the same-day snapshot math stays meaningful.
func (s *Store) seed(now time.Time) {
	day := 24 * time.Hour

	s.creators = []domain.Creator{
		{ID: "creator-001", Email: "ana@studioluna.io", DisplayName: "Studio Luna", Status: "active", CreatedAt: now.Add(-320 * day), UpdatedAt: now.Add(-2 * day)},
		{ID: "creator-002", Email: "miguel@pixelforge.dev", DisplayName: "PixelForge", Status: "active", CreatedAt: now.Add(-210 * day), UpdatedAt: now.Add(-7 * day)},
		{ID: "creator-003", Email: "kenji@nightloop.fm", DisplayName: "Nightloop FM", Status: "pending_verification", CreatedAt: now.Add(-45 * day), UpdatedAt: now.Add(-1 * day)},
		{ID: "creator-004", Email: "sofia@inkandiron.co", DisplayName: "Ink & Iron", Status: "suspended", CreatedAt: now.Add(-500 * day), UpdatedAt: now.Add(-30 * day)},
	}

	s.payouts = []domain.Payout{
		{ID: "payout-001", CreatorID: "creator-001", Amount: 1250.00, Currency: "USD", Method: "bank_transfer", Status: domain.StatusPending, ScheduledFor: now, RiskScore: 12, CreatedAt: now.Add(-3 * day), UpdatedAt: now.Add(-3 * day)},
		{ID: "payout-002", CreatorID: "creator-003", Amount: 8400.50, Currency: "USD", Method: "paypal", Status: domain.StatusFlagged, ScheduledFor: now, RiskScore: 87, CreatedAt: now.Add(-2 * day), UpdatedAt: now.Add(-1 * day)},
		{ID: "payout-003", CreatorID: "creator-002", Amount: 640.75, Currency: "USD", Method: "stripe", Status: domain.StatusPaid, ScheduledFor: now.Add(-2 * day), RiskScore: 8, CreatedAt: now.Add(-9 * day), UpdatedAt: now.Add(-2 * day)},
		{ID: "payout-004", CreatorID: "creator-004", Amount: 3120.00, Currency: "USD", Method: "bank_transfer", Status: domain.StatusHeld, ScheduledFor: now, RiskScore: 64, CreatedAt: now.Add(-5 * day), UpdatedAt: now.Add(-12 * time.Hour)},
		{ID: "payout-005", CreatorID: "creator-002", Amount: 95.20, Currency: "USD", Method: "stripe", Status: domain.StatusRejected, ScheduledFor: now.Add(-1 * day), RiskScore: 41, CreatedAt: now.Add(-6 * day), UpdatedAt: now.Add(-1 * day)},
		{ID: "payout-006", CreatorID: "creator-001", Amount: 2210.40, Currency: "USD", Method: "paypal", Status: domain.StatusApproved, ScheduledFor: now.Add(2 * day), RiskScore: 19, CreatedAt: now.Add(-1 * day), UpdatedAt: now.Add(-6 * time.Hour)},
		{ID: "payout-007", CreatorID: "creator-003", Amount: 510.00, Currency: "USD", Method: "bank_transfer", Status: domain.StatusPending, ScheduledFor: now.Add(5 * day), RiskScore: 33, CreatedAt: now.Add(-12 * time.Hour), UpdatedAt: now.Add(-12 * time.Hour)},
	}

	s.invoices = []domain.PayoutInvoice{
		{ID: "invoice-001", PayoutID: "payout-001", InvoiceNumber: "INV-2024-0101", Amount: 1250.00, Status: "processed", CreatedAt: now.Add(-3 * day)},
		{ID: "invoice-002", PayoutID: "payout-002", InvoiceNumber: "INV-2024-0102", Amount: 6100.50, Status: "pending", CreatedAt: now.Add(-2 * day)},
		{ID: "invoice-003", PayoutID: "payout-002", InvoiceNumber: "INV-2024-0103", Amount: 2300.00, Status: "pending", CreatedAt: now.Add(-2 * day)},
		{ID: "invoice-004", PayoutID: "payout-004", InvoiceNumber: "INV-2024-0104", Amount: 3120.00, Status: "failed", CreatedAt: now.Add(-5 * day)},
	}

	s.payments = []domain.Payment{
		{ID: "payment-001", CreatorID: "creator-001", SubscriberID: "subscriber-101", Amount: 25.00, Currency: "USD", Status: "completed", CreatedAt: now.Add(-10 * day), UpdatedAt: now.Add(-10 * day)},
		{ID: "payment-002", CreatorID: "creator-001", SubscriberID: "subscriber-102", Amount: 50.00, Currency: "USD", Status: "completed", CreatedAt: now.Add(-4 * day), UpdatedAt: now.Add(-4 * day)},
		{ID: "payment-003", CreatorID: "creator-003", SubscriberID: "subscriber-103", Amount: 120.00, Currency: "USD", Status: "failed", CreatedAt: now.Add(-2 * day), UpdatedAt: now.Add(-2 * day)},
	}

	s.attempts = []domain.PaymentAttempt{
		{ID: "attempt-001", PaymentID: "payment-001", Status: "success", GatewayResponse: "approved by gateway", CreatedAt: now.Add(-10 * day)},
		{ID: "attempt-002", PaymentID: "payment-002", Status: "failed", GatewayResponse: "card declined", ErrorCode: "CARD_DECLINED", CreatedAt: now.Add(-4 * day)},
		{ID: "attempt-003", PaymentID: "payment-002", Status: "success", GatewayResponse: "approved by gateway", CreatedAt: now.Add(-4*day + 10*time.Minute)},
		{ID: "attempt-004", PaymentID: "payment-003", Status: "failed", GatewayResponse: "gateway timeout", ErrorCode: "GATEWAY_TIMEOUT", CreatedAt: now.Add(-2 * day)},
	}

	s.signals = []domain.FraudSignal{
		{ID: "signal-001", PayoutID: "payout-002", Type: "velocity", Severity: "high", Description: "Payout volume tripled within 24 hours", Metadata: map[string]string{"window": "24h", "multiplier": "3.2"}, CreatedAt: now.Add(-2 * day)},
		{ID: "signal-002", PayoutID: "payout-002", Type: "geo_mismatch", Severity: "critical", Description: "Login country differs from registered bank country", Metadata: map[string]string{"loginCountry": "VN", "bankCountry": "US"}, CreatedAt: now.Add(-1 * day)},
		{ID: "signal-003", PayoutID: "payout-004", Type: "amount_anomaly", Severity: "medium", Description: "Amount exceeds creator 90-day average by 4x", Metadata: map[string]string{"average": "780.00"}, CreatedAt: now.Add(-4 * day)},
	}

	s.decisions = nil
}

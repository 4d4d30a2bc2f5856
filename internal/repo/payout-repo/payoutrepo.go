package payoutrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/payops/internal/domain"
	"github.com/GlebRadaev/payops/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) List(ctx context.Context, status domain.PayoutStatus) ([]domain.Payout, error) {
	query := `
        SELECT id, creator_id, amount, currency, method, status, scheduled_for, risk_score, created_at, updated_at
        FROM payouts
        WHERE ($1 = '' OR status = $1)
        ORDER BY created_at
    `
	rows, err := r.db.Query(ctx, query, string(status))
	if err != nil {
		zap.L().Error("failed to fetch payouts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payouts []domain.Payout
	for rows.Next() {
		var p domain.Payout
		err := rows.Scan(&p.ID, &p.CreatorID, &p.Amount, &p.Currency, &p.Method, &p.Status, &p.ScheduledFor, &p.RiskScore, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			zap.L().Error("failed to scan payout row", zap.Error(err))
			return nil, err
		}
		payouts = append(payouts, p)
	}

	return payouts, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Payout, error) {
	query := `
        SELECT id, creator_id, amount, currency, method, status, scheduled_for, risk_score, created_at, updated_at
        FROM payouts
        WHERE id = $1
    `
	var p domain.Payout
	err := r.db.QueryRow(ctx, query, id).Scan(&p.ID, &p.CreatorID, &p.Amount, &p.Currency, &p.Method, &p.Status, &p.ScheduledFor, &p.RiskScore, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to fetch payout", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) ListInvoices(ctx context.Context, payoutID string) ([]domain.PayoutInvoice, error) {
	query := `
        SELECT id, payout_id, invoice_number, amount, status, created_at
        FROM payout_invoices
        WHERE payout_id = $1
        ORDER BY created_at
    `
	rows, err := r.db.Query(ctx, query, payoutID)
	if err != nil {
		zap.L().Error("failed to fetch invoices", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var invoices []domain.PayoutInvoice
	for rows.Next() {
		var inv domain.PayoutInvoice
		err := rows.Scan(&inv.ID, &inv.PayoutID, &inv.InvoiceNumber, &inv.Amount, &inv.Status, &inv.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan invoice row", zap.Error(err))
			return nil, err
		}
		invoices = append(invoices, inv)
	}

	return invoices, nil
}

func (r *Repository) ListFraudSignals(ctx context.Context, payoutID string) ([]domain.FraudSignal, error) {
	query := `
        SELECT id, payout_id, type, severity, description, metadata, created_at
        FROM fraud_signals
        WHERE payout_id = $1
        ORDER BY created_at
    `
	rows, err := r.db.Query(ctx, query, payoutID)
	if err != nil {
		zap.L().Error("failed to fetch fraud signals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var signals []domain.FraudSignal
	for rows.Next() {
		var sig domain.FraudSignal
		err := rows.Scan(&sig.ID, &sig.PayoutID, &sig.Type, &sig.Severity, &sig.Description, &sig.Metadata, &sig.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan fraud signal row", zap.Error(err))
			return nil, err
		}
		signals = append(signals, sig)
	}

	return signals, nil
}

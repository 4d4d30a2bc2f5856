package decisionrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/payops/internal/domain"
	"github.com/GlebRadaev/payops/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Create applies the payout status update and the audit insert in one
// transaction.
func (r *Repository) Create(ctx context.Context, decision *domain.PayoutDecision, status domain.PayoutStatus) (*domain.PayoutDecision, error) {
	created := *decision

	err := r.txManager.Begin(ctx, func(ctx context.Context, tx pgx.Tx) error {
		updateQuery := `
            UPDATE payouts
            SET status = $1, updated_at = $2
            WHERE id = $3
        `
		if _, err := tx.Exec(ctx, updateQuery, string(status), decision.CreatedAt, decision.PayoutID); err != nil {
			return err
		}

		insertQuery := `
            INSERT INTO payout_decisions (payout_id, decision, reason, decided_by, created_at)
            VALUES ($1, $2, $3, $4, $5)
            RETURNING id
        `
		return tx.QueryRow(ctx, insertQuery, decision.PayoutID, string(decision.Decision), decision.Reason, decision.DecidedBy, decision.CreatedAt).Scan(&created.ID)
	})
	if err != nil {
		zap.L().Error("can't save decision", zap.Error(err))
		return nil, err
	}

	return &created, nil
}

func (r *Repository) ListByPayout(ctx context.Context, payoutID string) ([]domain.PayoutDecision, error) {
	query := `
        SELECT id, payout_id, decision, reason, decided_by, created_at
        FROM payout_decisions
        WHERE payout_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, payoutID)
	if err != nil {
		zap.L().Error("failed to fetch decisions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var decisions []domain.PayoutDecision
	for rows.Next() {
		var d domain.PayoutDecision
		err := rows.Scan(&d.ID, &d.PayoutID, &d.Decision, &d.Reason, &d.DecidedBy, &d.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan decision row", zap.Error(err))
			return nil, err
		}
		decisions = append(decisions, d)
	}

	return decisions, nil
}

package paymentrepo

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

// LatestAttemptByCreator returns the newest attempt across all payments
// owned by the creator.
func (r *Repository) LatestAttemptByCreator(ctx context.Context, creatorID string) (*domain.PaymentAttempt, error) {
	query := `
        SELECT a.id, a.payment_id, a.status, a.gateway_response, a.error_code, a.created_at
        FROM payment_attempts a
        JOIN payments p ON p.id = a.payment_id
        WHERE p.creator_id = $1
        ORDER BY a.created_at DESC
        LIMIT 1
    `
	var a domain.PaymentAttempt
	err := r.db.QueryRow(ctx, query, creatorID).Scan(&a.ID, &a.PaymentID, &a.Status, &a.GatewayResponse, &a.ErrorCode, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to fetch latest payment attempt", zap.Error(err))
		return nil, err
	}
	return &a, nil
}

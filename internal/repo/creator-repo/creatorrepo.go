package creatorrepo

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

func (r *Repository) GetCreatorByID(ctx context.Context, id string) (*domain.Creator, error) {
	query := `
        SELECT id, email, display_name, status, created_at, updated_at
        FROM creators
        WHERE id = $1
    `
	var c domain.Creator
	err := r.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.Email, &c.DisplayName, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to fetch creator", zap.Error(err))
		return nil, err
	}
	return &c, nil
}

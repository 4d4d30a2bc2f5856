package creatorrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/payops/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_GetCreatorByID(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()

	columns := []string{"id", "email", "display_name", "status", "created_at", "updated_at"}

	tests := []struct {
		name      string
		id        string
		mockSetup func()
		expectErr bool
		result    *domain.Creator
	}{
		{
			name: "Get creator successfully",
			id:   "creator-001",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					SELECT id, email, display_name, status, created_at, updated_at
					FROM creators
					WHERE id = $1`)).
					WithArgs("creator-001").
					WillReturnRows(pgxmock.NewRows(columns).
						AddRow("creator-001", "ana@studioluna.io", "Studio Luna", "active", now, now))
			},
			result: &domain.Creator{
				ID: "creator-001", Email: "ana@studioluna.io", DisplayName: "Studio Luna",
				Status: "active", CreatedAt: now, UpdatedAt: now,
			},
		},
		{
			name: "Creator not found",
			id:   "creator-999",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email`)).
					WithArgs("creator-999").
					WillReturnRows(pgxmock.NewRows(columns))
			},
			result: nil,
		},
		{
			name: "Database error",
			id:   "creator-001",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email`)).
					WithArgs("creator-001").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			creator, err := repo.GetCreatorByID(ctx, tt.id)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, creator)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

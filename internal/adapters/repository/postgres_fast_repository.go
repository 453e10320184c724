package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/fastline/analytics-engine/internal/core/domain"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresFastRepository reads fasting sessions from the tracker's
// fasts table. The analytics engine never writes here.
type PostgresFastRepository struct {
	db *sqlx.DB
}

func NewPostgresFastRepository(db *sqlx.DB) *PostgresFastRepository {
	return &PostgresFastRepository{db: db}
}

func (r *PostgresFastRepository) GetFastByID(ctx context.Context, id string) (*domain.Fast, error) {
	var fast domain.Fast
	query := `SELECT * FROM fasts WHERE id = $1`

	err := r.db.GetContext(ctx, &fast, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFastNotFound
		}
		return nil, err
	}
	return &fast, nil
}

func (r *PostgresFastRepository) GetFastsByUserAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]*domain.Fast, error) {
	fasts := []*domain.Fast{}

	query := `
		SELECT * FROM fasts
		WHERE user_id = $1
		  AND start_time >= $2
		  AND start_time <= $3
		ORDER BY start_time DESC`

	err := r.db.SelectContext(ctx, &fasts, query, userID, start, end)
	if err != nil {
		return nil, err
	}
	return fasts, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/fastline/analytics-engine/internal/core/domain"
)

// PostgresProfileRepository reads physiology profiles from the
// user_profiles table.
type PostgresProfileRepository struct {
	db *sqlx.DB
}

func NewPostgresProfileRepository(db *sqlx.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) GetUserProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	query := `SELECT * FROM user_profiles WHERE user_id = $1`

	err := r.db.GetContext(ctx, &profile, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

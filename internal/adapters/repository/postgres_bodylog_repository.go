package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/fastline/analytics-engine/internal/core/domain"
)

// PostgresBodyLogRepository reads weigh-in entries from the tracker's
// body_log_entries table. Listings come back ascending by logged_at so
// "first match" resolution upstream stays deterministic.
type PostgresBodyLogRepository struct {
	db *sqlx.DB
}

func NewPostgresBodyLogRepository(db *sqlx.DB) *PostgresBodyLogRepository {
	return &PostgresBodyLogRepository{db: db}
}

func (r *PostgresBodyLogRepository) GetBodyLogEntriesByFastID(ctx context.Context, fastID string) ([]*domain.BodyLogEntry, error) {
	entries := []*domain.BodyLogEntry{}

	query := `
		SELECT * FROM body_log_entries
		WHERE fast_id = $1
		ORDER BY logged_at ASC`

	err := r.db.SelectContext(ctx, &entries, query, fastID)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *PostgresBodyLogRepository) GetBodyLogEntriesByFastIDs(ctx context.Context, fastIDs []string) (map[string][]*domain.BodyLogEntry, error) {
	byFast := make(map[string][]*domain.BodyLogEntry, len(fastIDs))
	if len(fastIDs) == 0 {
		return byFast, nil
	}

	entries := []*domain.BodyLogEntry{}
	query := `
		SELECT * FROM body_log_entries
		WHERE fast_id = ANY($1)
		ORDER BY logged_at ASC`

	err := r.db.SelectContext(ctx, &entries, query, pq.Array(fastIDs))
	if err != nil {
		return nil, err
	}

	for _, e := range entries {
		if e.FastID == nil {
			continue
		}
		byFast[*e.FastID] = append(byFast[*e.FastID], e)
	}
	return byFast, nil
}

func (r *PostgresBodyLogRepository) GetBodyLogEntriesByUser(ctx context.Context, userID string, q domain.BodyLogQuery) ([]*domain.BodyLogEntry, error) {
	entries := []*domain.BodyLogEntry{}

	query := `SELECT * FROM body_log_entries WHERE user_id = $1`
	args := []interface{}{userID}

	if !q.IncludeSecondary {
		query += ` AND is_canonical = true`
	}
	if q.StartDate != nil {
		args = append(args, *q.StartDate)
		query += fmt.Sprintf(` AND logged_at >= $%d`, len(args))
	}
	if q.EndDate != nil {
		args = append(args, *q.EndDate)
		query += fmt.Sprintf(` AND logged_at <= $%d`, len(args))
	}
	query += ` ORDER BY logged_at ASC`

	err := r.db.SelectContext(ctx, &entries, query, args...)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *PostgresBodyLogRepository) GetCanonicalEntriesByRange(ctx context.Context, userID string, start, end time.Time) ([]*domain.BodyLogEntry, error) {
	entries := []*domain.BodyLogEntry{}

	query := `
		SELECT * FROM body_log_entries
		WHERE user_id = $1
		  AND is_canonical = true
		  AND logged_at >= $2
		  AND logged_at <= $3
		ORDER BY logged_at ASC`

	err := r.db.SelectContext(ctx, &entries, query, userID, start, end)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

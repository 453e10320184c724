package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrFastNotFound = errors.New("fast not found")
)

// FastStore is the read contract over fasting sessions. The analytics
// engine never writes fasts; the tracker service owns that side.
type FastStore interface {
	// GetFastByID retrieves a fast by its unique identifier.
	GetFastByID(ctx context.Context, id string) (*Fast, error)

	// GetFastsByUserAndDateRange retrieves the user's fasts whose start time
	// falls within [start, end], ordered by start time descending.
	GetFastsByUserAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]*Fast, error)
}

package domain

import (
	"context"
	"time"
)

// BodyLogQuery narrows a per-user entry scan. Nil date bounds are open
// ends; secondary (non-canonical) entries are excluded unless asked for.
type BodyLogQuery struct {
	StartDate        *time.Time
	EndDate          *time.Time
	IncludeSecondary bool
}

// BodyLogStore is the read contract over weigh-in entries. All listings
// come back ascending by loggedAt.
type BodyLogStore interface {
	// GetBodyLogEntriesByFastID retrieves every entry linked to one fast.
	GetBodyLogEntriesByFastID(ctx context.Context, fastID string) ([]*BodyLogEntry, error)

	// GetBodyLogEntriesByFastIDs retrieves linked entries for many fasts in
	// one round trip, keyed by fast id. Fasts with no entries are absent
	// from the map.
	GetBodyLogEntriesByFastIDs(ctx context.Context, fastIDs []string) (map[string][]*BodyLogEntry, error)

	// GetBodyLogEntriesByUser retrieves a user's entries, optionally bounded
	// and optionally including non-canonical ones.
	GetBodyLogEntriesByUser(ctx context.Context, userID string, q BodyLogQuery) ([]*BodyLogEntry, error)

	// GetCanonicalEntriesByRange retrieves only canonical entries logged
	// within [start, end].
	GetCanonicalEntriesByRange(ctx context.Context, userID string, start, end time.Time) ([]*BodyLogEntry, error)
}

package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fastline/analytics-engine/internal/core/domain"
)

var _ domain.BodyLogStore = (*CachedBodyLogRepository)(nil)

// cacheTTL bounds how stale a cached canonical range can get. The
// engine never writes entries, so there is nothing to invalidate; new
// weigh-ins land on the next expiry.
const cacheTTL = 5 * time.Minute

// CachedBodyLogRepository puts a redis read-through in front of the
// canonical-range scan, the hottest query on the dashboard path. All
// other reads pass straight to the inner store.
type CachedBodyLogRepository struct {
	next  domain.BodyLogStore
	cache *redis.Client
}

func NewCachedBodyLogRepository(next domain.BodyLogStore, cache *redis.Client) *CachedBodyLogRepository {
	return &CachedBodyLogRepository{
		next:  next,
		cache: cache,
	}
}

// rangeKey is day-granular on purpose: dashboard reads always end "now",
// so second-level keys would never hit.
func (r *CachedBodyLogRepository) rangeKey(userID string, start, end time.Time) string {
	return fmt.Sprintf("bodylog:canonical:%s:%s:%s",
		userID, start.UTC().Format("2006-01-02"), end.UTC().Format("2006-01-02"))
}

func (r *CachedBodyLogRepository) GetCanonicalEntriesByRange(ctx context.Context, userID string, start, end time.Time) ([]*domain.BodyLogEntry, error) {
	key := r.rangeKey(userID, start, end)

	val, err := r.cache.Get(ctx, key).Result()
	if err == nil {
		var entries []*domain.BodyLogEntry
		if err := json.Unmarshal([]byte(val), &entries); err == nil {
			return entries, nil
		}

		log.Printf("[CACHE] Corrupted canonical range for user %s, cleaning up key", userID)
		r.cache.Del(ctx, key)
	} else if err != redis.Nil {
		log.Printf("[CACHE] Redis read error: %v", err)
	}

	entries, err := r.next.GetCanonicalEntriesByRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(entries); err == nil {
		if setErr := r.cache.Set(ctx, key, data, cacheTTL).Err(); setErr != nil {
			log.Printf("[CACHE] Redis set error: %v", setErr)
		}
	}

	return entries, nil
}

func (r *CachedBodyLogRepository) GetBodyLogEntriesByFastID(ctx context.Context, fastID string) ([]*domain.BodyLogEntry, error) {
	return r.next.GetBodyLogEntriesByFastID(ctx, fastID)
}

func (r *CachedBodyLogRepository) GetBodyLogEntriesByFastIDs(ctx context.Context, fastIDs []string) (map[string][]*domain.BodyLogEntry, error) {
	return r.next.GetBodyLogEntriesByFastIDs(ctx, fastIDs)
}

func (r *CachedBodyLogRepository) GetBodyLogEntriesByUser(ctx context.Context, userID string, q domain.BodyLogQuery) ([]*domain.BodyLogEntry, error) {
	return r.next.GetBodyLogEntriesByUser(ctx, userID, q)
}

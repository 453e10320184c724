package services

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fastline/analytics-engine/internal/core/domain"
)

const (
	maxAnalyticsWindowDays = 365

	msgFastNotFound     = "No fast with that id was found for this account."
	msgFastStillActive  = "This fast is still active. End it and log a post-fast weigh-in to see the breakdown."
	msgMissingPostEntry = "Log a post-fast weigh-in for this fast to see its breakdown."
	msgMissingStart     = "No starting weight could be resolved for this fast. Log a weigh-in shortly before your next fast starts."
	msgNoCompletedFasts = "Complete a fast to see its breakdown here."
)

// AnalyticsOptions tunes the analytics bundle. Days is clamped to
// [1, 365] with a 90-day default.
type AnalyticsOptions struct {
	Days           int
	LimitProtocols int
}

func (o AnalyticsOptions) normalized() AnalyticsOptions {
	if o.Days <= 0 {
		o.Days = defaultInsightsWindowDays
	}
	if o.Days > maxAnalyticsWindowDays {
		o.Days = maxAnalyticsWindowDays
	}
	return o
}

// AnalyticsService is the public surface of the engine. It owns all
// store reads and hands the data to the pure calculators; every result
// is recomputed from current store state per call, so repeated calls
// against an unchanged store return identical results.
type AnalyticsService struct {
	fastStore    domain.FastStore
	bodyLogStore domain.BodyLogStore
	profileStore domain.ProfileStore

	resolver   *SnapshotResolver
	calculator *EffectivenessCalculator
	retention  *RetentionCalculator
	insights   *InsightsService
}

func NewAnalyticsService(fastStore domain.FastStore, bodyLogStore domain.BodyLogStore, profileStore domain.ProfileStore) *AnalyticsService {
	resolver := NewSnapshotResolver()
	calculator := NewEffectivenessCalculator()
	retention := NewRetentionCalculator()

	return &AnalyticsService{
		fastStore:    fastStore,
		bodyLogStore: bodyLogStore,
		profileStore: profileStore,
		resolver:     resolver,
		calculator:   calculator,
		retention:    retention,
		insights:     NewInsightsService(resolver, calculator, retention),
	}
}

// GetFastEffectiveness partitions one fast's weight change. Missing-data
// conditions come back as statuses on the result; only store I/O
// failures surface as errors.
func (s *AnalyticsService) GetFastEffectiveness(ctx context.Context, userID, fastID string) (*domain.EffectivenessResult, error) {
	fast, err := s.fastStore.GetFastByID(ctx, fastID)
	if err != nil {
		if errors.Is(err, domain.ErrFastNotFound) {
			return &domain.EffectivenessResult{Status: domain.StatusNotFound, FastID: fastID, Message: msgFastNotFound}, nil
		}
		return nil, err
	}
	if fast.UserID != userID {
		// Same answer as a missing row so ids cannot be probed.
		return &domain.EffectivenessResult{Status: domain.StatusNotFound, FastID: fastID, Message: msgFastNotFound}, nil
	}
	if !fast.Completed() {
		return &domain.EffectivenessResult{Status: domain.StatusMissingPostFast, FastID: fastID, Message: msgFastStillActive}, nil
	}

	linked, err := s.bodyLogStore.GetBodyLogEntriesByFastID(ctx, fast.ID)
	if err != nil {
		return nil, err
	}
	allEntries, err := s.bodyLogStore.GetBodyLogEntriesByUser(ctx, userID, domain.BodyLogQuery{IncludeSecondary: true})
	if err != nil {
		return nil, err
	}
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	snap := s.resolver.Build(fast, linked, allEntries)
	if snap.PostWeight == nil {
		return &domain.EffectivenessResult{Status: domain.StatusMissingPostFast, FastID: fastID, Message: msgMissingPostEntry}, nil
	}
	if snap.StartWeight == nil {
		return &domain.EffectivenessResult{Status: domain.StatusMissingStart, FastID: fastID, Message: msgMissingStart}, nil
	}

	return s.calculator.Calculate(paramsFromSnapshot(fast, snap, profile)), nil
}

// GetAnalytics assembles the dashboard bundle. The four independent
// store reads run concurrently; they are read-only and side-effect-free,
// so no locking is involved and any failure cancels the rest.
func (s *AnalyticsService) GetAnalytics(ctx context.Context, userID string, opts AnalyticsOptions) (*domain.AnalyticsOverview, error) {
	opts = opts.normalized()

	end := time.Now().UTC()
	start := end.AddDate(0, 0, -opts.Days)

	var (
		fasts      []*domain.Fast
		canonical  []*domain.BodyLogEntry
		allEntries []*domain.BodyLogEntry
		profile    *domain.UserProfile
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		fasts, err = s.fastStore.GetFastsByUserAndDateRange(gctx, userID, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		canonical, err = s.bodyLogStore.GetCanonicalEntriesByRange(gctx, userID, start, end)
		return err
	})
	g.Go(func() error {
		// Unbounded on purpose: the snapshot fallback tiers scan the whole
		// history for same-day weigh-ins and timezone references.
		var err error
		allEntries, err = s.bodyLogStore.GetBodyLogEntriesByUser(gctx, userID, domain.BodyLogQuery{IncludeSecondary: true})
		return err
	})
	g.Go(func() error {
		var err error
		profile, err = s.loadProfile(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	completedIDs := make([]string, 0, len(fasts))
	for _, f := range fasts {
		if f != nil && f.Completed() {
			completedIDs = append(completedIDs, f.ID)
		}
	}

	entriesByFast := map[string][]*domain.BodyLogEntry{}
	if len(completedIDs) > 0 {
		var err error
		entriesByFast, err = s.bodyLogStore.GetBodyLogEntriesByFastIDs(ctx, completedIDs)
		if err != nil {
			return nil, err
		}
	}

	overview := &domain.AnalyticsOverview{
		CanonicalEntries:  canonical,
		Fasts:             fasts,
		WeeklyComposition: BuildWeeklyComposition(canonical),
		RollingInsights: s.insights.ComputeRollingInsights(fasts, entriesByFast, allEntries, canonical, profile, InsightsOptions{
			Days:           opts.Days,
			LimitProtocols: opts.LimitProtocols,
		}),
	}

	if latest := latestCompletedFast(fasts); latest != nil {
		snap := s.resolver.Build(latest, entriesByFast[latest.ID], allEntries)
		overview.FastEffectiveness = s.calculator.Calculate(paramsFromSnapshot(latest, snap, profile))
		overview.Retention = s.retention.ForFast(latest, snap, canonical)
	} else {
		overview.FastEffectiveness = &domain.EffectivenessResult{Status: domain.StatusNoData, Message: msgNoCompletedFasts}
		overview.Retention = &domain.RetentionResult{Status: domain.StatusNoData, Message: msgRetentionNoData}
	}

	return overview, nil
}

// loadProfile treats a missing profile as "no data", not an error;
// estimator defaults cover the gaps.
func (s *AnalyticsService) loadProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	profile, err := s.profileStore.GetUserProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}

func latestCompletedFast(fasts []*domain.Fast) *domain.Fast {
	var latest *domain.Fast
	for _, f := range fasts {
		if f == nil || !f.Completed() {
			continue
		}
		if latest == nil || f.StartTime.After(latest.StartTime) {
			latest = f
		}
	}
	return latest
}

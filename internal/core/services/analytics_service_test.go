package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fastline/analytics-engine/internal/core/domain"
	"github.com/fastline/analytics-engine/internal/core/services"
)

type MockFastStore struct {
	mock.Mock
}

func (m *MockFastStore) GetFastByID(ctx context.Context, id string) (*domain.Fast, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fast), args.Error(1)
}

func (m *MockFastStore) GetFastsByUserAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]*domain.Fast, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Fast), args.Error(1)
}

type MockBodyLogStore struct {
	mock.Mock
}

func (m *MockBodyLogStore) GetBodyLogEntriesByFastID(ctx context.Context, fastID string) ([]*domain.BodyLogEntry, error) {
	args := m.Called(ctx, fastID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BodyLogEntry), args.Error(1)
}

func (m *MockBodyLogStore) GetBodyLogEntriesByFastIDs(ctx context.Context, fastIDs []string) (map[string][]*domain.BodyLogEntry, error) {
	args := m.Called(ctx, fastIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]*domain.BodyLogEntry), args.Error(1)
}

func (m *MockBodyLogStore) GetBodyLogEntriesByUser(ctx context.Context, userID string, q domain.BodyLogQuery) ([]*domain.BodyLogEntry, error) {
	args := m.Called(ctx, userID, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BodyLogEntry), args.Error(1)
}

func (m *MockBodyLogStore) GetCanonicalEntriesByRange(ctx context.Context, userID string, start, end time.Time) ([]*domain.BodyLogEntry, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BodyLogEntry), args.Error(1)
}

type MockProfileStore struct {
	mock.Mock
}

func (m *MockProfileStore) GetUserProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func setupAnalytics() (*services.AnalyticsService, *MockFastStore, *MockBodyLogStore, *MockProfileStore) {
	fastStore := new(MockFastStore)
	bodyLogStore := new(MockBodyLogStore)
	profileStore := new(MockProfileStore)
	return services.NewAnalyticsService(fastStore, bodyLogStore, profileStore), fastStore, bodyLogStore, profileStore
}

func TestAnalyticsService_GetFastEffectiveness(t *testing.T) {
	ctx := context.Background()
	uid := "user-123"
	fid := "fast-abc"

	startTime := time.Date(2025, 3, 3, 20, 0, 0, 0, time.UTC)
	endTime := startTime.Add(36 * time.Hour)
	completed := &domain.Fast{ID: fid, UserID: uid, StartTime: startTime, EndTime: &endTime}

	makeLinked := func() []*domain.BodyLogEntry {
		start := logEntry("e-start", startTime.Add(-30*time.Minute), 180, domain.TagFastStart)
		start.BodyFatPercent = floatPtr(20)
		post := logEntry("e-post", endTime, 175, domain.TagPostFast)
		post.BodyFatPercent = floatPtr(19.5)
		return []*domain.BodyLogEntry{start, post}
	}

	t.Run("Success: Should resolve the snapshot and partition the fast", func(t *testing.T) {
		svc, fastStore, bodyLogStore, profileStore := setupAnalytics()

		fastStore.On("GetFastByID", ctx, fid).Return(completed, nil)
		bodyLogStore.On("GetBodyLogEntriesByFastID", ctx, fid).Return(makeLinked(), nil)
		bodyLogStore.On("GetBodyLogEntriesByUser", ctx, uid, mock.Anything).Return([]*domain.BodyLogEntry{}, nil)
		profileStore.On("GetUserProfile", ctx, uid).Return(nil, domain.ErrProfileNotFound)

		res, err := svc.GetFastEffectiveness(ctx, uid, fid)

		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, domain.StatusOK, res.Status)
		assert.Equal(t, domain.BreakdownMeasured, res.BreakdownSource)
		assert.InDelta(t, 5.0, res.TotalWeightLost, 0.001)
		assert.InDelta(t, 1.9, res.FatLoss, 0.001)

		fastStore.AssertExpectations(t)
		bodyLogStore.AssertExpectations(t)
		profileStore.AssertExpectations(t)
	})

	t.Run("Success: Unchanged store state returns identical results", func(t *testing.T) {
		svc, fastStore, bodyLogStore, profileStore := setupAnalytics()

		fastStore.On("GetFastByID", ctx, fid).Return(completed, nil)
		bodyLogStore.On("GetBodyLogEntriesByFastID", ctx, fid).Return(makeLinked(), nil)
		bodyLogStore.On("GetBodyLogEntriesByUser", ctx, uid, mock.Anything).Return([]*domain.BodyLogEntry{}, nil)
		profileStore.On("GetUserProfile", ctx, uid).Return(nil, domain.ErrProfileNotFound)

		first, err := svc.GetFastEffectiveness(ctx, uid, fid)
		require.NoError(t, err)
		second, err := svc.GetFastEffectiveness(ctx, uid, fid)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("Fail: Unknown fast id reads as not_found, not an error", func(t *testing.T) {
		svc, fastStore, _, _ := setupAnalytics()

		fastStore.On("GetFastByID", ctx, "nope").Return(nil, domain.ErrFastNotFound)

		res, err := svc.GetFastEffectiveness(ctx, uid, "nope")

		require.NoError(t, err)
		assert.Equal(t, domain.StatusNotFound, res.Status)
		assert.Contains(t, res.Message, "No fast with that id")
	})

	t.Run("Fail: A fast owned by another account reads as not_found", func(t *testing.T) {
		svc, fastStore, _, _ := setupAnalytics()

		other := &domain.Fast{ID: fid, UserID: "someone-else", StartTime: startTime, EndTime: &endTime}
		fastStore.On("GetFastByID", ctx, fid).Return(other, nil)

		res, err := svc.GetFastEffectiveness(ctx, uid, fid)

		require.NoError(t, err)
		assert.Equal(t, domain.StatusNotFound, res.Status)
	})

	t.Run("Edge Case: An active fast reports missing_post_fast", func(t *testing.T) {
		svc, fastStore, _, _ := setupAnalytics()

		active := &domain.Fast{ID: fid, UserID: uid, StartTime: startTime}
		fastStore.On("GetFastByID", ctx, fid).Return(active, nil)

		res, err := svc.GetFastEffectiveness(ctx, uid, fid)

		require.NoError(t, err)
		assert.Equal(t, domain.StatusMissingPostFast, res.Status)
		assert.Contains(t, res.Message, "still active")
	})

	t.Run("Edge Case: A completed fast without a post weigh-in reports missing_post_fast", func(t *testing.T) {
		svc, fastStore, bodyLogStore, profileStore := setupAnalytics()

		onlyStart := []*domain.BodyLogEntry{
			logEntry("e-start", startTime.Add(-30*time.Minute), 180, domain.TagFastStart),
		}
		fastStore.On("GetFastByID", ctx, fid).Return(completed, nil)
		bodyLogStore.On("GetBodyLogEntriesByFastID", ctx, fid).Return(onlyStart, nil)
		bodyLogStore.On("GetBodyLogEntriesByUser", ctx, uid, mock.Anything).Return([]*domain.BodyLogEntry{}, nil)
		profileStore.On("GetUserProfile", ctx, uid).Return(nil, domain.ErrProfileNotFound)

		res, err := svc.GetFastEffectiveness(ctx, uid, fid)

		require.NoError(t, err)
		assert.Equal(t, domain.StatusMissingPostFast, res.Status)
		assert.Contains(t, res.Message, "Log a post-fast weigh-in")
	})

	t.Run("Edge Case: No resolvable start reports missing_start", func(t *testing.T) {
		svc, fastStore, bodyLogStore, profileStore := setupAnalytics()

		onlyPost := []*domain.BodyLogEntry{
			logEntry("e-post", endTime, 175, domain.TagPostFast),
		}
		fastStore.On("GetFastByID", ctx, fid).Return(completed, nil)
		bodyLogStore.On("GetBodyLogEntriesByFastID", ctx, fid).Return(onlyPost, nil)
		bodyLogStore.On("GetBodyLogEntriesByUser", ctx, uid, mock.Anything).Return([]*domain.BodyLogEntry{}, nil)
		profileStore.On("GetUserProfile", ctx, uid).Return(nil, domain.ErrProfileNotFound)

		res, err := svc.GetFastEffectiveness(ctx, uid, fid)

		require.NoError(t, err)
		assert.Equal(t, domain.StatusMissingStart, res.Status)
		assert.Contains(t, res.Message, "No starting weight")
	})

	t.Run("Fail: Store errors propagate", func(t *testing.T) {
		svc, fastStore, bodyLogStore, _ := setupAnalytics()

		dbErr := errors.New("db connection lost")
		fastStore.On("GetFastByID", ctx, fid).Return(completed, nil)
		bodyLogStore.On("GetBodyLogEntriesByFastID", ctx, fid).Return(nil, dbErr)

		res, err := svc.GetFastEffectiveness(ctx, uid, fid)

		assert.ErrorIs(t, err, dbErr)
		assert.Nil(t, res)
	})
}

func TestAnalyticsService_GetAnalytics(t *testing.T) {
	ctx := context.Background()
	uid := "user-123"

	startTime := time.Date(2025, 3, 3, 20, 0, 0, 0, time.UTC)
	endTime := startTime.Add(36 * time.Hour)

	t.Run("Success: Should assemble the full dashboard bundle", func(t *testing.T) {
		svc, fastStore, bodyLogStore, profileStore := setupAnalytics()

		fast := &domain.Fast{ID: "fast-a", UserID: uid, StartTime: startTime, EndTime: &endTime, PlannedDurationHours: 36}

		start := logEntry("e-start", startTime.Add(-30*time.Minute), 180, domain.TagFastStart)
		start.BodyFatPercent = floatPtr(20)
		post := logEntry("e-post", endTime, 175, domain.TagPostFast)
		post.BodyFatPercent = floatPtr(19.5)
		next := logEntry("e-next", endTime.Add(24*time.Hour), 177, domain.TagMorning)

		canonical := []*domain.BodyLogEntry{start, post, next}
		linked := map[string][]*domain.BodyLogEntry{"fast-a": {start, post}}

		fastStore.On("GetFastsByUserAndDateRange", mock.Anything, uid, mock.Anything, mock.Anything).
			Return([]*domain.Fast{fast}, nil)
		bodyLogStore.On("GetCanonicalEntriesByRange", mock.Anything, uid, mock.Anything, mock.Anything).
			Return(canonical, nil)
		bodyLogStore.On("GetBodyLogEntriesByUser", mock.Anything, uid, mock.Anything).
			Return(canonical, nil)
		bodyLogStore.On("GetBodyLogEntriesByFastIDs", mock.Anything, []string{"fast-a"}).
			Return(linked, nil)
		profileStore.On("GetUserProfile", mock.Anything, uid).Return(nil, domain.ErrProfileNotFound)

		overview, err := svc.GetAnalytics(ctx, uid, services.AnalyticsOptions{})

		require.NoError(t, err)
		require.NotNil(t, overview)

		assert.Len(t, overview.Fasts, 1)
		assert.Len(t, overview.CanonicalEntries, 3)

		require.NotNil(t, overview.FastEffectiveness)
		assert.Equal(t, domain.StatusOK, overview.FastEffectiveness.Status)
		assert.InDelta(t, 5.0, overview.FastEffectiveness.TotalWeightLost, 0.001)

		require.NotNil(t, overview.Retention)
		assert.Equal(t, domain.StatusOK, overview.Retention.Status)
		assert.InDelta(t, 60.0, overview.Retention.RetentionPercent, 0.001)

		require.NotNil(t, overview.RollingInsights)
		assert.Equal(t, domain.StatusOK, overview.RollingInsights.Status)
		assert.Equal(t, 90, overview.RollingInsights.WindowDays)
		require.Len(t, overview.RollingInsights.Protocols, 1)
		assert.Equal(t, "36h Deep Reset", overview.RollingInsights.Protocols[0].Protocol.Label)

		require.Len(t, overview.WeeklyComposition, 1)
		assert.Equal(t, 3, overview.WeeklyComposition[0].Samples)

		fastStore.AssertExpectations(t)
		bodyLogStore.AssertExpectations(t)
		profileStore.AssertExpectations(t)
	})

	t.Run("Success: No completed fasts yields no-data placeholders", func(t *testing.T) {
		svc, fastStore, bodyLogStore, profileStore := setupAnalytics()

		active := &domain.Fast{ID: "fast-active", UserID: uid, StartTime: startTime}

		fastStore.On("GetFastsByUserAndDateRange", mock.Anything, uid, mock.Anything, mock.Anything).
			Return([]*domain.Fast{active}, nil)
		bodyLogStore.On("GetCanonicalEntriesByRange", mock.Anything, uid, mock.Anything, mock.Anything).
			Return([]*domain.BodyLogEntry{}, nil)
		bodyLogStore.On("GetBodyLogEntriesByUser", mock.Anything, uid, mock.Anything).
			Return([]*domain.BodyLogEntry{}, nil)
		profileStore.On("GetUserProfile", mock.Anything, uid).Return(nil, domain.ErrProfileNotFound)

		overview, err := svc.GetAnalytics(ctx, uid, services.AnalyticsOptions{})

		require.NoError(t, err)
		assert.Equal(t, domain.StatusNoData, overview.FastEffectiveness.Status)
		assert.Contains(t, overview.FastEffectiveness.Message, "Complete a fast")
		assert.Equal(t, domain.StatusNoData, overview.Retention.Status)
		assert.Equal(t, domain.StatusNoData, overview.RollingInsights.Status)
		assert.Empty(t, overview.WeeklyComposition)

		bodyLogStore.AssertNotCalled(t, "GetBodyLogEntriesByFastIDs", mock.Anything, mock.Anything)
	})

	t.Run("Fail: Any failed read aborts the bundle", func(t *testing.T) {
		svc, fastStore, bodyLogStore, profileStore := setupAnalytics()

		dbErr := errors.New("db connection lost")
		fastStore.On("GetFastsByUserAndDateRange", mock.Anything, uid, mock.Anything, mock.Anything).
			Return([]*domain.Fast{}, nil)
		bodyLogStore.On("GetCanonicalEntriesByRange", mock.Anything, uid, mock.Anything, mock.Anything).
			Return(nil, dbErr)
		bodyLogStore.On("GetBodyLogEntriesByUser", mock.Anything, uid, mock.Anything).
			Return([]*domain.BodyLogEntry{}, nil)
		profileStore.On("GetUserProfile", mock.Anything, uid).Return(nil, domain.ErrProfileNotFound)

		overview, err := svc.GetAnalytics(ctx, uid, services.AnalyticsOptions{})

		assert.ErrorIs(t, err, dbErr)
		assert.Nil(t, overview)
	})

	t.Run("Edge Case: Window days clamp to a year", func(t *testing.T) {
		svc, fastStore, bodyLogStore, profileStore := setupAnalytics()

		fastStore.On("GetFastsByUserAndDateRange", mock.Anything, uid, mock.Anything, mock.Anything).
			Return([]*domain.Fast{}, nil)
		bodyLogStore.On("GetCanonicalEntriesByRange", mock.Anything, uid, mock.Anything, mock.Anything).
			Return([]*domain.BodyLogEntry{}, nil)
		bodyLogStore.On("GetBodyLogEntriesByUser", mock.Anything, uid, mock.Anything).
			Return([]*domain.BodyLogEntry{}, nil)
		profileStore.On("GetUserProfile", mock.Anything, uid).Return(nil, domain.ErrProfileNotFound)

		overview, err := svc.GetAnalytics(ctx, uid, services.AnalyticsOptions{Days: 9999})

		require.NoError(t, err)
		assert.Equal(t, 365, overview.RollingInsights.WindowDays)
	})
}

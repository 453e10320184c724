package services

import (
	"sort"

	"github.com/fastline/analytics-engine/internal/core/domain"
)

const (
	defaultInsightsWindowDays = 90
	defaultLimitProtocols     = 4
)

const msgInsightsNoData = "Complete a few fasts with weigh-ins to unlock rolling insights."

// InsightsOptions tunes the rolling aggregation. Zero values take the
// defaults (90 days, 4 protocol buckets).
type InsightsOptions struct {
	Days           int
	LimitProtocols int
}

func (o InsightsOptions) normalized() InsightsOptions {
	if o.Days <= 0 {
		o.Days = defaultInsightsWindowDays
	}
	if o.LimitProtocols <= 0 {
		o.LimitProtocols = defaultLimitProtocols
	}
	return o
}

// InsightsService rolls per-fast effectiveness and retention up into
// protocol-bucketed averages. It computes over data handed to it; store
// reads stay with the analytics service so the aggregation itself is
// pure and never errors.
type InsightsService struct {
	resolver   *SnapshotResolver
	calculator *EffectivenessCalculator
	retention  *RetentionCalculator
}

func NewInsightsService(resolver *SnapshotResolver, calculator *EffectivenessCalculator, retention *RetentionCalculator) *InsightsService {
	return &InsightsService{
		resolver:   resolver,
		calculator: calculator,
		retention:  retention,
	}
}

type fastSample struct {
	group         domain.ProtocolGroup
	effectiveness *domain.EffectivenessResult
	retention     *domain.RetentionResult
}

// ComputeRollingInsights resolves every completed fast into a sample
// (snapshot, effectiveness, retention, protocol bucket), skipping fasts
// whose effectiveness is not "ok", then aggregates overall and
// per-bucket. Buckets are sorted by sample count, ties by longer anchor,
// and truncated to LimitProtocols with the remainder kept as overflow.
func (s *InsightsService) ComputeRollingInsights(
	fasts []*domain.Fast,
	entriesByFast map[string][]*domain.BodyLogEntry,
	allEntries []*domain.BodyLogEntry,
	canonicalEntries []*domain.BodyLogEntry,
	profile *domain.UserProfile,
	opts InsightsOptions,
) *domain.RollingInsights {
	opts = opts.normalized()

	var samples []fastSample
	for _, fast := range fasts {
		if fast == nil || !fast.Completed() {
			continue
		}

		snap := s.resolver.Build(fast, entriesByFast[fast.ID], allEntries)
		eff := s.calculator.Calculate(paramsFromSnapshot(fast, snap, profile))
		if eff.Status != domain.StatusOK {
			continue
		}

		samples = append(samples, fastSample{
			group:         domain.ProtocolGroupFor(fast.PlannedDurationHours, fast.EffectiveDurationHours()),
			effectiveness: eff,
			retention:     s.retention.ForFast(fast, snap, canonicalEntries),
		})
	}

	if len(samples) == 0 {
		return &domain.RollingInsights{
			Status:     domain.StatusNoData,
			Message:    msgInsightsNoData,
			WindowDays: opts.Days,
			Protocols:  []*domain.ProtocolStats{},
		}
	}

	byGroup := make(map[string][]fastSample)
	for _, sample := range samples {
		byGroup[sample.group.Key] = append(byGroup[sample.group.Key], sample)
	}

	protocols := make([]*domain.ProtocolStats, 0, len(byGroup))
	for _, grouped := range byGroup {
		totals := aggregateSamples(grouped)
		protocols = append(protocols, &domain.ProtocolStats{
			Protocol:            grouped[0].group,
			SampleSize:          totals.SampleSize,
			AvgWeightDelta:      totals.AvgWeightDelta,
			AvgWeightDrop:       totals.AvgWeightDrop,
			AvgRetentionPercent: totals.AvgRetentionPercent,
			AvgFatLoss:          totals.AvgFatLoss,
		})
	}

	sort.Slice(protocols, func(i, j int) bool {
		if protocols[i].SampleSize != protocols[j].SampleSize {
			return protocols[i].SampleSize > protocols[j].SampleSize
		}
		if protocols[i].Protocol.AnchorHours != protocols[j].Protocol.AnchorHours {
			return protocols[i].Protocol.AnchorHours > protocols[j].Protocol.AnchorHours
		}
		return protocols[i].Protocol.Key > protocols[j].Protocol.Key
	})

	insights := &domain.RollingInsights{
		Status:     domain.StatusOK,
		WindowDays: opts.Days,
		Overall:    aggregateSamples(samples),
		Protocols:  protocols,
	}
	if len(protocols) > opts.LimitProtocols {
		insights.Overflow = protocols[opts.LimitProtocols:]
		insights.Protocols = protocols[:opts.LimitProtocols]
	}
	return insights
}

// aggregateSamples averages one group of samples. Weight drop only
// counts fasts that actually lost weight, retention only "ok" samples;
// either average is nil when no sample qualifies.
func aggregateSamples(samples []fastSample) domain.InsightTotals {
	totals := domain.InsightTotals{SampleSize: len(samples)}

	var (
		deltaSum     float64
		fatSum       float64
		dropSum      float64
		dropCount    int
		retentionSum float64
		retentionOK  int
	)
	for _, s := range samples {
		deltaSum += s.effectiveness.TotalWeightLost
		fatSum += s.effectiveness.FatLoss

		if s.effectiveness.TotalWeightLost > 0 {
			dropSum += s.effectiveness.TotalWeightLost
			dropCount++
		}
		if s.retention != nil && s.retention.Status == domain.StatusOK {
			retentionSum += s.retention.RetentionPercent
			retentionOK++
		}
	}

	totals.AvgWeightDelta = round1(deltaSum / float64(len(samples)))
	totals.AvgFatLoss = round1(fatSum / float64(len(samples)))
	if dropCount > 0 {
		avg := round1(dropSum / float64(dropCount))
		totals.AvgWeightDrop = &avg
	}
	if retentionOK > 0 {
		avg := round1(retentionSum / float64(retentionOK))
		totals.AvgRetentionPercent = &avg
	}
	return totals
}

package services

import (
	"math"
	"time"

	"github.com/fastline/analytics-engine/internal/core/domain"
)

const retentionWindow = 48 * time.Hour

const (
	msgRetentionNoData  = "Not enough weigh-in data to measure retention for this fast yet."
	msgRetentionWaiting = "No canonical weigh-in in the 48 hours after this fast yet. Check back after your next morning weigh-in."
)

// RetentionCalculator measures how much of a fast's loss survives the
// first 48 hours of refeeding. Stateless; safe to share.
type RetentionCalculator struct{}

func NewRetentionCalculator() *RetentionCalculator {
	return &RetentionCalculator{}
}

// ForFast compares the post-fast weight to the earliest canonical
// weigh-in logged inside (postFastLoggedAt, postFastLoggedAt+48h],
// excluding the post-fast entry itself. It always returns a result:
// unresolved weights yield "no-data" and an empty window yields
// "waiting", each with guidance.
func (c *RetentionCalculator) ForFast(fast *domain.Fast, snap *domain.FastSnapshot, canonicalEntries []*domain.BodyLogEntry) *domain.RetentionResult {
	res := &domain.RetentionResult{}
	if fast != nil {
		res.FastID = fast.ID
	}

	if snap == nil || snap.PostEntry == nil || snap.PostWeight == nil || snap.StartWeight == nil {
		res.Status = domain.StatusNoData
		res.Message = msgRetentionNoData
		return res
	}

	postWeight := *snap.PostWeight
	lossDuringFast := *snap.StartWeight - postWeight

	res.PostFastWeight = &postWeight
	res.WeightLostDuringFast = lossDuringFast

	next := earliestCanonicalInWindow(canonicalEntries, snap.PostEntry, retentionWindow)
	if next == nil {
		res.Status = domain.StatusWaiting
		res.Message = msgRetentionWaiting
		return res
	}

	nextWeight := next.Weight
	regained := math.Max(0, nextWeight-postWeight)
	retained := math.Max(0, lossDuringFast-regained)

	percent := 0.0
	if lossDuringFast > 0 {
		percent = round1(math.Min(retained/lossDuringFast, 1) * 100)
	}

	res.Status = domain.StatusOK
	res.NextCanonicalWeight = &nextWeight
	res.WeightRegained = regained
	res.RetentionPercent = percent
	return res
}

func earliestCanonicalInWindow(entries []*domain.BodyLogEntry, postEntry *domain.BodyLogEntry, window time.Duration) *domain.BodyLogEntry {
	windowEnd := postEntry.LoggedAt.Add(window)

	var earliest *domain.BodyLogEntry
	for _, e := range entries {
		if !e.Usable() || e.ID == postEntry.ID {
			continue
		}
		if !e.LoggedAt.After(postEntry.LoggedAt) || e.LoggedAt.After(windowEnd) {
			continue
		}
		if earliest == nil || e.LoggedAt.Before(earliest.LoggedAt) {
			earliest = e
		}
	}
	return earliest
}

package services

import (
	"sort"
	"time"

	"github.com/fastline/analytics-engine/internal/core/domain"
)

// SnapshotResolver picks the start and post-fast reference weigh-ins for
// a fast out of a noisy, multiply-tagged entry log. Stateless; safe to
// share.
type SnapshotResolver struct{}

func NewSnapshotResolver() *SnapshotResolver {
	return &SnapshotResolver{}
}

// Build resolves a fast's snapshot from its linked entries plus, for the
// last-resort start search, the user's full entry history.
//
// The post entry is the earliest linked entry tagged post_fast. The
// start entry resolves through three tiers: a linked fast_start entry,
// then the earliest linked entry logged before the fast began, then the
// most recent entry anywhere in the user's log from the same local day
// strictly before the start. Users frequently log a weight shortly
// before a fast without tagging it, which is what the fallback tiers
// are for. Start values fall back to the fast's legacy fields when no
// entry resolves. Malformed entries are skipped, never fatal.
func (r *SnapshotResolver) Build(fast *domain.Fast, fastLinked, allUserEntries []*domain.BodyLogEntry) *domain.FastSnapshot {
	snap := &domain.FastSnapshot{}
	if fast == nil {
		return snap
	}

	linked := usableSortedByLoggedAt(fastLinked)

	snap.PostEntry = firstWithTag(linked, domain.TagPostFast)

	snap.StartEntry = firstWithTag(linked, domain.TagFastStart)
	if snap.StartEntry == nil {
		snap.StartEntry = firstBefore(linked, fast.StartTime)
	}
	if snap.StartEntry == nil {
		refOffset := domain.ReferenceUTCOffset(allUserEntries)
		startLocalDay := domain.LocalDayAt(fast.StartTime, refOffset)
		snap.StartEntry = lastSameDayBefore(allUserEntries, fast.StartTime, startLocalDay)
	}

	if snap.StartEntry != nil {
		w := snap.StartEntry.Weight
		snap.StartWeight = &w
		snap.StartBodyFat = snap.StartEntry.BodyFatPercent
	} else {
		snap.StartWeight = fast.Weight
		snap.StartBodyFat = fast.BodyFatPercent
	}

	if snap.PostEntry != nil {
		w := snap.PostEntry.Weight
		snap.PostWeight = &w
		snap.PostBodyFat = snap.PostEntry.BodyFatPercent
	}

	return snap
}

// usableSortedByLoggedAt filters out malformed entries and orders the
// rest ascending, so "first match" lookups are deterministic regardless
// of store ordering.
func usableSortedByLoggedAt(entries []*domain.BodyLogEntry) []*domain.BodyLogEntry {
	out := make([]*domain.BodyLogEntry, 0, len(entries))
	for _, e := range entries {
		if e.Usable() {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LoggedAt.Before(out[j].LoggedAt)
	})
	return out
}

func firstWithTag(sorted []*domain.BodyLogEntry, tag domain.EntryTag) *domain.BodyLogEntry {
	for _, e := range sorted {
		if e.EntryTag == tag {
			return e
		}
	}
	return nil
}

func firstBefore(sorted []*domain.BodyLogEntry, cutoff time.Time) *domain.BodyLogEntry {
	for _, e := range sorted {
		if e.LoggedAt.Before(cutoff) {
			return e
		}
	}
	return nil
}

// lastSameDayBefore scans the unfiltered history for the most recent
// usable entry logged strictly before the cutoff whose local day matches.
func lastSameDayBefore(entries []*domain.BodyLogEntry, cutoff time.Time, localDay string) *domain.BodyLogEntry {
	var best *domain.BodyLogEntry
	for _, e := range entries {
		if !e.Usable() || !e.LoggedAt.Before(cutoff) {
			continue
		}
		if e.EffectiveLocalDate() != localDay {
			continue
		}
		if best == nil || e.LoggedAt.After(best.LoggedAt) {
			best = e
		}
	}
	return best
}

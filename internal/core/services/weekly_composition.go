package services

import (
	"sort"
	"time"

	"github.com/fastline/analytics-engine/internal/core/domain"
)

const weekStartLayout = "2006-01-02"

// BuildWeeklyComposition rolls canonical weigh-ins into ISO-week buckets
// (Monday start), newest week first. Fat/lean estimates appear only for
// weeks with at least one body-fat reading; WeightDelta compares each
// week's average against the chronologically previous bucket.
func BuildWeeklyComposition(entries []*domain.BodyLogEntry) []*domain.WeeklyComposition {
	type bucket struct {
		weekStart   string
		weightSum   float64
		samples     int
		bodyFatSum  float64
		bodyFatSeen int
	}

	buckets := make(map[string]*bucket)
	for _, e := range entries {
		if !e.Usable() {
			continue
		}
		day, err := time.Parse(weekStartLayout, e.EffectiveLocalDate())
		if err != nil {
			continue
		}

		key := mondayOf(day).Format(weekStartLayout)
		b, exists := buckets[key]
		if !exists {
			b = &bucket{weekStart: key}
			buckets[key] = b
		}

		b.weightSum += e.Weight
		b.samples++
		if e.BodyFatPercent != nil {
			b.bodyFatSum += *e.BodyFatPercent
			b.bodyFatSeen++
		}
	}

	ordered := make([]*bucket, 0, len(buckets))
	for _, b := range buckets {
		ordered = append(ordered, b)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].weekStart < ordered[j].weekStart
	})

	weeks := make([]*domain.WeeklyComposition, 0, len(ordered))
	var prevAvg *float64
	for _, b := range ordered {
		avgWeight := b.weightSum / float64(b.samples)

		w := &domain.WeeklyComposition{
			WeekStart: b.weekStart,
			Samples:   b.samples,
			AvgWeight: round1(avgWeight),
		}

		if b.bodyFatSeen > 0 {
			avgBF := b.bodyFatSum / float64(b.bodyFatSeen)
			fatMass := round1(avgWeight * avgBF / 100)
			leanMass := round1(avgWeight - avgWeight*avgBF/100)
			avgBFRounded := round1(avgBF)

			w.AvgBodyFat = &avgBFRounded
			w.EstFatMass = &fatMass
			w.EstLeanMass = &leanMass
		}

		if prevAvg != nil {
			delta := round1(avgWeight - *prevAvg)
			w.WeightDelta = &delta
		}
		prev := avgWeight
		prevAvg = &prev

		weeks = append(weeks, w)
	}

	// Newest first for the dashboard.
	for i, j := 0, len(weeks)-1; i < j; i, j = i+1, j-1 {
		weeks[i], weeks[j] = weeks[j], weeks[i]
	}
	return weeks
}

// mondayOf returns the Monday of t's week at midnight UTC. AddDate
// handles month/year boundaries safely.
func mondayOf(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -(weekday - 1))
}

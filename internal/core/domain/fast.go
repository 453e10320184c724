package domain

import "time"

// Fast is one fasting session as recorded by the upstream tracker.
// Durations are hours; an active fast has no EndTime yet.
type Fast struct {
	ID     string `json:"id" db:"id"`
	UserID string `json:"user_id" db:"user_id"`

	StartTime            time.Time  `json:"start_time" db:"start_time"`
	EndTime              *time.Time `json:"end_time,omitempty" db:"end_time"`
	DurationHours        float64    `json:"duration_hours" db:"duration_hours"`
	PlannedDurationHours float64    `json:"planned_duration_hours" db:"planned_duration_hours"`

	// Legacy single-measurement fields from before the body log existed.
	// Snapshot resolution prefers linked log entries and falls back here.
	Weight         *float64 `json:"weight,omitempty" db:"weight"`
	BodyFatPercent *float64 `json:"body_fat_percent,omitempty" db:"body_fat_percent"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Completed reports whether the fast has ended. Only completed fasts
// participate in effectiveness and retention analysis.
func (f *Fast) Completed() bool {
	return f.EndTime != nil
}

// EffectiveDurationHours prefers the recorded duration and falls back to
// the start/end delta for rows where the tracker never wrote one.
// Returns 0 for active fasts with no recorded duration.
func (f *Fast) EffectiveDurationHours() float64 {
	if f.DurationHours > 0 {
		return f.DurationHours
	}
	if f.EndTime != nil && f.EndTime.After(f.StartTime) {
		return f.EndTime.Sub(f.StartTime).Hours()
	}
	return 0
}

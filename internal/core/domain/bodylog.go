package domain

import (
	"time"
)

// EntryTag classifies what a weigh-in represents relative to fasting
// activity. Tags are assigned by the upstream tracker; the analytics
// engine only reads them.
type EntryTag string

const (
	TagMorning        EntryTag = "morning"
	TagPreFast        EntryTag = "pre_fast"
	TagFastStart      EntryTag = "fast_start"
	TagPostFast       EntryTag = "post_fast"
	TagAdHoc          EntryTag = "ad_hoc"
	TagManualOverride EntryTag = "manual_override"
)

const (
	CanonicalStatusAuto   = "auto"
	CanonicalStatusManual = "manual"
)

const localDateLayout = "2006-01-02"

// BodyLogEntry is one body-weight observation. Weights are pounds,
// body fat is a 0-100 percentage. Records come from the store through a
// single mapping function and are never mutated after that.
type BodyLogEntry struct {
	ID     string  `json:"id" db:"id"`
	UserID string  `json:"user_id" db:"user_id"`
	FastID *string `json:"fast_id,omitempty" db:"fast_id"`

	LoggedAt              time.Time `json:"logged_at" db:"logged_at"`
	LocalDate             string    `json:"local_date" db:"local_date"`
	TimezoneOffsetMinutes *int      `json:"timezone_offset_minutes,omitempty" db:"timezone_offset_minutes"`

	Weight         float64  `json:"weight" db:"weight"`
	BodyFatPercent *float64 `json:"body_fat_percent,omitempty" db:"body_fat_percent"`

	EntryTag        EntryTag `json:"entry_tag" db:"entry_tag"`
	Source          string   `json:"source" db:"source"`
	IsCanonical     bool     `json:"is_canonical" db:"is_canonical"`
	CanonicalStatus string   `json:"canonical_status" db:"canonical_status"`
	CanonicalReason string   `json:"canonical_reason" db:"canonical_reason"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Usable reports whether the entry carries enough data to participate in
// analysis. Malformed rows are skipped, never fatal.
func (e *BodyLogEntry) Usable() bool {
	return e != nil && !e.LoggedAt.IsZero() && e.Weight > 0
}

// LocalDateAt derives the calendar day of LoggedAt under an arbitrary
// UTC offset, expressed in minutes east of UTC.
func (e *BodyLogEntry) LocalDateAt(offsetMinutes int) string {
	return LocalDayAt(e.LoggedAt, offsetMinutes)
}

// EffectiveLocalDate returns the stored local date when the store
// provided one, otherwise derives it from the entry's own offset
// (UTC when the entry carries none).
func (e *BodyLogEntry) EffectiveLocalDate() string {
	if e.LocalDate != "" {
		return e.LocalDate
	}
	offset := 0
	if e.TimezoneOffsetMinutes != nil {
		offset = *e.TimezoneOffsetMinutes
	}
	return e.LocalDateAt(offset)
}

// LocalDayAt formats the calendar day of an instant shifted by
// offsetMinutes from UTC.
func LocalDayAt(t time.Time, offsetMinutes int) string {
	return t.UTC().Add(time.Duration(offsetMinutes) * time.Minute).Format(localDateLayout)
}

// ReferenceUTCOffset picks a timezone offset to interpret local days with
// when an instant itself carries none: the first entry in the list that
// recorded an offset wins, otherwise UTC (offset 0). Users who never
// logged an offset may therefore have start-weights attributed to the
// wrong local day; the tradeoff is deliberate and covered by tests.
func ReferenceUTCOffset(entries []*BodyLogEntry) int {
	for _, e := range entries {
		if e != nil && e.TimezoneOffsetMinutes != nil {
			return *e.TimezoneOffsetMinutes
		}
	}
	return 0
}

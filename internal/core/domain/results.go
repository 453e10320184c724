package domain

// Result statuses. Missing-data conditions are first-class statuses with
// guidance messages, never errors: callers branch on strings, not on
// exception types, for "not enough data yet" cases.
const (
	StatusOK              = "ok"
	StatusError           = "error"
	StatusWaiting         = "waiting"
	StatusNoData          = "no-data"
	StatusNotFound        = "not_found"
	StatusMissingStart    = "missing_start"
	StatusMissingPostFast = "missing_post_fast"
)

const (
	BreakdownMeasured  = "measured"
	BreakdownEstimated = "estimated"
)

// FastSnapshot carries the resolved reference measurements for one fast.
// Derived at read time, never persisted.
type FastSnapshot struct {
	StartEntry *BodyLogEntry `json:"start_entry,omitempty"`
	PostEntry  *BodyLogEntry `json:"post_entry,omitempty"`

	StartWeight  *float64 `json:"start_weight,omitempty"`
	PostWeight   *float64 `json:"post_weight,omitempty"`
	StartBodyFat *float64 `json:"start_body_fat,omitempty"`
	PostBodyFat  *float64 `json:"post_body_fat,omitempty"`
}

// EffectivenessResult partitions one fast's weight change into fat, true
// muscle, lean-associated water and other transient fluid, all in pounds
// rounded to one decimal. When Status is "ok" and TotalWeightLost > 0,
// FatLoss+MuscleLoss+FluidLoss stays within 0.2 lbs of TotalWeightLost
// and every component is non-negative.
type EffectivenessResult struct {
	Status string `json:"status"`
	FastID string `json:"fast_id,omitempty"`

	TotalWeightLost float64 `json:"total_weight_lost"`
	FatLoss         float64 `json:"fat_loss"`
	MuscleLoss      float64 `json:"muscle_loss"`
	LeanWaterLoss   float64 `json:"lean_water_loss"`
	OtherFluidLoss  float64 `json:"other_fluid_loss"`
	FluidLoss       float64 `json:"fluid_loss"`

	BreakdownSource string `json:"breakdown_source,omitempty"`
	Message         string `json:"message"`
}

// RetentionResult compares a fast's post-fast weight against the next
// canonical weigh-in inside a 48-hour window.
type RetentionResult struct {
	Status string `json:"status"`
	FastID string `json:"fast_id,omitempty"`

	PostFastWeight      *float64 `json:"post_fast_weight,omitempty"`
	NextCanonicalWeight *float64 `json:"next_canonical_weight,omitempty"`

	WeightLostDuringFast float64 `json:"weight_lost_during_fast"`
	WeightRegained       float64 `json:"weight_regained"`
	RetentionPercent     float64 `json:"retention_percent"`

	Message string `json:"message,omitempty"`
}

package domain

import "math"

// ProtocolGroup is the duration bucket a completed fast is attributed to
// for rolling aggregation.
type ProtocolGroup struct {
	Key         string  `json:"key"`
	Label       string  `json:"label"`
	AnchorHours float64 `json:"anchor_hours"`
}

const (
	ProtocolKey72Plus = "72h_plus"
	ProtocolKeyCustom = "custom"
)

var protocolAnchors = []ProtocolGroup{
	{Key: "18h", Label: "18h Fast", AnchorHours: 18},
	{Key: "24h", Label: "24h Reset", AnchorHours: 24},
	{Key: "36h", Label: "36h Deep Reset", AnchorHours: 36},
	{Key: "48h", Label: "48h Extended Fast", AnchorHours: 48},
	{Key: "60h", Label: "60h Extended Fast", AnchorHours: 60},
	{Key: "72h", Label: "72h Extended Fast", AnchorHours: 72},
}

var (
	protocol72Plus = ProtocolGroup{Key: ProtocolKey72Plus, Label: "72h+ Marathon", AnchorHours: 72}
	protocolCustom = ProtocolGroup{Key: ProtocolKeyCustom, Label: "Custom Duration", AnchorHours: 0}
)

// ProtocolGroupFor buckets a fast by duration, preferring the planned
// duration over the actual one. Durations more than half an anchor gap
// past the edges (under 9h, over 78h) leave the anchor grid and land in
// the custom or 72h+ buckets; everything else snaps to the nearest
// anchor, ties going to the shorter protocol.
func ProtocolGroupFor(plannedHours, actualHours float64) ProtocolGroup {
	d := plannedHours
	if d <= 0 {
		d = actualHours
	}

	switch {
	case d < 9:
		return protocolCustom
	case d > 78:
		return protocol72Plus
	}

	best := protocolAnchors[0]
	for _, p := range protocolAnchors[1:] {
		if math.Abs(d-p.AnchorHours) < math.Abs(d-best.AnchorHours) {
			best = p
		}
	}
	return best
}

// InsightTotals are the rolled-up averages for one group of fasts.
// AvgWeightDrop only averages fasts that actually lost weight, and
// AvgRetentionPercent only fasts with an "ok" retention sample; both are
// nil when no qualifying sample exists.
type InsightTotals struct {
	SampleSize          int      `json:"sample_size"`
	AvgWeightDelta      float64  `json:"avg_weight_delta"`
	AvgWeightDrop       *float64 `json:"avg_weight_drop,omitempty"`
	AvgRetentionPercent *float64 `json:"avg_retention_percent,omitempty"`
	AvgFatLoss          float64  `json:"avg_fat_loss"`
}

// ProtocolStats is InsightTotals attributed to one protocol bucket.
type ProtocolStats struct {
	Protocol            ProtocolGroup `json:"protocol"`
	SampleSize          int           `json:"sample_size"`
	AvgWeightDelta      float64       `json:"avg_weight_delta"`
	AvgWeightDrop       *float64      `json:"avg_weight_drop,omitempty"`
	AvgRetentionPercent *float64      `json:"avg_retention_percent,omitempty"`
	AvgFatLoss          float64       `json:"avg_fat_loss"`
}

// RollingInsights is the cross-fast summary for one user's recent window.
type RollingInsights struct {
	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
	WindowDays int    `json:"window_days"`

	Overall   InsightTotals    `json:"overall"`
	Protocols []*ProtocolStats `json:"protocols"`
	Overflow  []*ProtocolStats `json:"overflow,omitempty"`
}

// WeeklyComposition is an ISO-week (Monday-start) roll-up of canonical
// weigh-ins. Fat/lean estimates appear only for weeks with at least one
// body-fat reading; WeightDelta compares against the previous week.
type WeeklyComposition struct {
	WeekStart   string   `json:"week_start"`
	Samples     int      `json:"samples"`
	AvgWeight   float64  `json:"avg_weight"`
	AvgBodyFat  *float64 `json:"avg_body_fat,omitempty"`
	EstFatMass  *float64 `json:"est_fat_mass,omitempty"`
	EstLeanMass *float64 `json:"est_lean_mass,omitempty"`
	WeightDelta *float64 `json:"weight_delta,omitempty"`
}

// AnalyticsOverview bundles everything the dashboard needs in one shot.
// Retention and FastEffectiveness describe the latest completed fast.
type AnalyticsOverview struct {
	CanonicalEntries  []*BodyLogEntry      `json:"canonical_entries"`
	Fasts             []*Fast              `json:"fasts"`
	WeeklyComposition []*WeeklyComposition `json:"weekly_composition"`
	Retention         *RetentionResult     `json:"retention,omitempty"`
	FastEffectiveness *EffectivenessResult `json:"fast_effectiveness,omitempty"`
	RollingInsights   *RollingInsights     `json:"rolling_insights"`
}

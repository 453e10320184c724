package physiology

import (
	"math"

	"github.com/fastline/analytics-engine/internal/core/domain"
)

const (
	glycogenCapacityFraction = 0.015
	glycogenDepletionTau     = 24.0
	boundWaterPerGlycogen    = 3.2
)

// carbStatusMultipliers scales glycogen stores by recent carbohydrate
// intake; unknown statuses count as normal.
var carbStatusMultipliers = map[string]float64{
	domain.CarbStatusLow:    0.6,
	domain.CarbStatusNormal: 1.0,
	domain.CarbStatusHigh:   1.1,
}

// GlycogenInput feeds the glycogen/bound-water kinetics.
type GlycogenInput struct {
	LeanMassLbs float64
	Hours       float64
	CarbStatus  string
}

// GlycogenDepletion is the store drawdown after some hours of fasting,
// in pounds. Every gram of glycogen burned releases 3.2 g of bound
// water, which is why early fast weight moves so fast.
type GlycogenDepletion struct {
	GlycogenLbs   float64
	BoundWaterLbs float64
}

// EstimateGlycogenAndBoundWater models stores as 1.5% of lean mass,
// scaled by carb status, draining exponentially with a 24-hour time
// constant.
func EstimateGlycogenAndBoundWater(in GlycogenInput) GlycogenDepletion {
	if in.LeanMassLbs <= 0 {
		return GlycogenDepletion{}
	}

	mult, found := carbStatusMultipliers[in.CarbStatus]
	if !found {
		mult = carbStatusMultipliers[domain.CarbStatusNormal]
	}

	capacityLbs := glycogenCapacityFraction * in.LeanMassLbs * mult
	depletedFrac := 1 - math.Exp(-math.Max(0, in.Hours)/glycogenDepletionTau)

	glycogenLbs := capacityLbs * depletedFrac
	return GlycogenDepletion{
		GlycogenLbs:   glycogenLbs,
		BoundWaterLbs: glycogenLbs * boundWaterPerGlycogen,
	}
}

package physiology

import (
	"github.com/fastline/analytics-engine/internal/core/domain"
)

const (
	defaultHeightCm = 175.0
	defaultAgeYears = 35
)

// Mifflin-St Jeor sex constants; unknown takes the midpoint.
const (
	sexConstantMale    = 5.0
	sexConstantFemale  = -161.0
	sexConstantUnknown = -78.0
)

// activityMultipliers maps activity level strings to their TDEE
// multiplier. This is the single source of truth for recognized levels;
// anything else falls back to sedentary.
var activityMultipliers = map[string]float64{
	domain.ActivitySedentary:  1.2,
	domain.ActivityLight:      1.375,
	domain.ActivityModerate:   1.55,
	domain.ActivityActive:     1.725,
	domain.ActivityVeryActive: 1.9,
}

// TDEEInput feeds the energy-expenditure model. WeightLbs is required;
// zero-valued optionals take the model defaults (175 cm, 35 years,
// unknown sex, sedentary).
type TDEEInput struct {
	WeightLbs     float64
	HeightCm      float64
	AgeYears      int
	Sex           string
	ActivityLevel string
}

// EstimateTDEE computes total daily energy expenditure in kcal/day:
// Mifflin-St Jeor BMR scaled by the activity multiplier.
func EstimateTDEE(in TDEEInput) float64 {
	heightCm := in.HeightCm
	if heightCm <= 0 {
		heightCm = defaultHeightCm
	}
	age := in.AgeYears
	if age <= 0 {
		age = defaultAgeYears
	}

	weightKg := in.WeightLbs / LbsPerKg

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	switch in.Sex {
	case domain.SexMale:
		bmr += sexConstantMale
	case domain.SexFemale:
		bmr += sexConstantFemale
	default:
		bmr += sexConstantUnknown
	}

	mult, found := activityMultipliers[in.ActivityLevel]
	if !found {
		mult = activityMultipliers[domain.ActivitySedentary]
	}
	return bmr * mult
}

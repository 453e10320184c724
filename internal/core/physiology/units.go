package physiology

// Unit conversions shared across the estimators. Weights travel through
// the engine in pounds; the metabolic formulas work in kilograms.
const (
	LbsPerKg     = 2.20462
	GramsPerLb   = 453.592
	KcalPerLbFat = 3500.0
)

// DefaultBodyFatPct stands in when no body-fat reading is available.
const DefaultBodyFatPct = 25.0

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SplitBodyComposition divides total weight into fat and lean pounds for
// a 0-100 body-fat percentage, falling back to the 25% reference when
// the reading is absent or implausible.
func SplitBodyComposition(weightLbs float64, bodyFatPct *float64) (fatLbs, leanLbs float64) {
	pct := DefaultBodyFatPct
	if bodyFatPct != nil && *bodyFatPct > 0 && *bodyFatPct < 100 {
		pct = *bodyFatPct
	}
	fatLbs = weightLbs * pct / 100
	return fatLbs, weightLbs - fatLbs
}

package physiology

const (
	proteinLossPerKgLeanDay = 0.5 // grams of protein an unsparing fast costs per kg lean mass per day
	ketoSparingStrength     = 0.6
	wetLeanPerProteinGram   = 4.0
	leanWaterFraction       = 0.75
)

// LeanLossInput carries the time-averaged factors the lean model needs.
type LeanLossInput struct {
	LeanMassLbs   float64
	Hours         float64
	KetosisFactor float64
	ProteinBuffer float64
}

// LeanLossComponents breaks a fast's lean-tissue cost into its water and
// true-muscle parts, in pounds.
type LeanLossComponents struct {
	ProteinGrams  float64
	WetLeanLbs    float64
	LeanWaterLbs  float64
	TrueMuscleLbs float64
}

// EstimateLeanLossComponents models protein catabolized during a fast:
// 0.5 g/kg lean/day, spared up to 60% by ketosis depth and further by
// the pre-fast protein buffer. Each gram of protein takes roughly 4 g of
// wet lean tissue with it, of which 75% is intracellular water and 25%
// contractile muscle.
func EstimateLeanLossComponents(in LeanLossInput) LeanLossComponents {
	if in.LeanMassLbs <= 0 || in.Hours <= 0 {
		return LeanLossComponents{}
	}

	days := in.Hours / 24
	leanKg := in.LeanMassLbs / LbsPerKg

	sparing := 1 - ketoSparingStrength*clamp(in.KetosisFactor, 0, 1)
	buffer := clamp(in.ProteinBuffer, 0, 1)

	proteinGrams := proteinLossPerKgLeanDay * sparing * buffer * leanKg * days
	wetLeanLbs := proteinGrams * wetLeanPerProteinGram / GramsPerLb

	return LeanLossComponents{
		ProteinGrams:  proteinGrams,
		WetLeanLbs:    wetLeanLbs,
		LeanWaterLbs:  wetLeanLbs * leanWaterFraction,
		TrueMuscleLbs: wetLeanLbs * (1 - leanWaterFraction),
	}
}

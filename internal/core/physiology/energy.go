package physiology

import "math"

// fatFuelCeilingKcalPerKgDay caps how fast adipose tissue can release
// energy; deficits beyond it come from non-fat sources and must not be
// booked as fat loss.
const fatFuelCeilingKcalPerKgDay = 69.0

// FatLossInput feeds the estimated-mode fat model.
type FatLossInput struct {
	TDEE             float64
	AdaptationFactor float64
	FatMassLbs       float64
	Hours            float64
}

// EstimateFatLossLbs converts the adapted daily deficit into pounds of
// fat at 3500 kcal/lb, limited by the fat-release ceiling and never
// exceeding the fat mass actually available.
func EstimateFatLossLbs(in FatLossInput) float64 {
	if in.FatMassLbs <= 0 || in.Hours <= 0 {
		return 0
	}

	days := in.Hours / 24
	deficit := in.TDEE * in.AdaptationFactor

	fatKg := in.FatMassLbs / LbsPerKg
	ceiling := fatFuelCeilingKcalPerKgDay * fatKg

	lbsPerDay := math.Min(deficit, ceiling) / KcalPerLbFat
	return math.Min(lbsPerDay*days, in.FatMassLbs)
}

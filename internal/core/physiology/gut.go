package physiology

const (
	gutContentFraction = 0.008
	gutContentMinLbs   = 1.0
	gutContentMaxLbs   = 4.0
)

// gutClearanceFraction is piecewise linear through (0h,0), (8h,10%),
// (24h,85%), (36h,95%), flat afterwards: slow at first, fastest through
// the second half of day one, then trailing off.
func gutClearanceFraction(hours float64) float64 {
	switch {
	case hours <= 0:
		return 0
	case hours < 8:
		return hours / 8 * 0.10
	case hours < 24:
		return 0.10 + (hours-8)/16*0.75
	case hours < 36:
		return 0.85 + (hours-24)/12*0.10
	default:
		return 0.95
	}
}

// EstimateGutContentLoss returns the pounds of digestive-tract content
// cleared after some hours of fasting. Peak content scales with body
// weight, clamped to the 1-4 lbs plausible band.
func EstimateGutContentLoss(weightLbs, hours float64) float64 {
	peak := clamp(weightLbs*gutContentFraction, gutContentMinLbs, gutContentMaxLbs)
	return peak * gutClearanceFraction(hours)
}

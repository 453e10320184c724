package physiology

import "math"

const (
	maxBaselineKetosis = 0.6
	ketoAdaptedLevel   = 0.5
	ketoBlendHours     = 48.0
)

// ketosisCurve holds the fasting-progress plateau levels: depth of
// ketosis reached after crossing each hour threshold.
var ketosisCurve = []struct {
	fromHour float64
	toHour   float64
	level    float64
}{
	{0, 16, 0},
	{16, 24, 0.2},
	{24, 48, 0.5},
	{48, 72, 0.7},
	{72, math.Inf(1), 0.8},
}

// KetosisInput describes the metabolic state a fast begins from.
type KetosisInput struct {
	BaselineKetosis float64
	StartsInKetosis bool
}

// KetosisFactor returns the time-AVERAGED ketosis level over [0, hours],
// not a point sample: the muscle-sparing math downstream needs the mean
// effect across the whole fast so far. The instantaneous level blends
// from the starting state toward the fasting-progress curve over the
// first 48 hours (weight t/48), so the average is a closed-form
// piecewise integral rather than a lookup.
func KetosisFactor(hours float64, in KetosisInput) float64 {
	early := clamp(in.BaselineKetosis, 0, maxBaselineKetosis)
	if in.StartsInKetosis && early < ketoAdaptedLevel {
		early = ketoAdaptedLevel
	}
	if hours <= 0 {
		return early
	}

	// On [a,b) before the blend completes the integrand is
	// early + (level-early)*t/48, integrating to
	// early*(b-a) + (level-early)*(b*b-a*a)/96. Past 48h the curve
	// applies unblended.
	total := 0.0
	for _, seg := range ketosisCurve {
		a := seg.fromHour
		b := math.Min(seg.toHour, hours)
		if b <= a {
			break
		}
		if a >= ketoBlendHours {
			total += seg.level * (b - a)
			continue
		}
		total += early*(b-a) + (seg.level-early)*(b*b-a*a)/(2*ketoBlendHours)
	}

	return total / hours
}

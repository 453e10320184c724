package physiology

import "math"

const (
	proteinBufferDepth    = 0.35
	proteinSaturationG    = 80.0
	bufferFadeStartHours  = 24.0
	bufferFadeEndHours    = 48.0
	bufferFadeWindowHours = bufferFadeEndHours - bufferFadeStartHours
)

// ProteinBufferFactor returns the time-averaged muscle-protection
// multiplier over [0, hours]. A protein-rich final meal suppresses early
// catabolism: the multiplier starts at 1 - 0.35*(1-e^(-grams/80)),
// saturating near 100 g, holds through 24 hours, fades linearly back to
// 1 by 48 hours and stays there. Averaged in closed form like the
// ketosis factor.
func ProteinBufferFactor(hours, preFastProteinGrams float64) float64 {
	grams := math.Max(0, preFastProteinGrams)
	start := 1 - proteinBufferDepth*(1-math.Exp(-grams/proteinSaturationG))
	if hours <= 0 {
		return start
	}

	total := 0.0
	if b := math.Min(hours, bufferFadeStartHours); b > 0 {
		total += start * b
	}
	if hours > bufferFadeStartHours {
		// Linear fade from start to 1 across [24,48): the running
		// integral is start*t + (1-start)*t^2/48 in fade-relative time.
		rel := math.Min(hours, bufferFadeEndHours) - bufferFadeStartHours
		total += start*rel + (1-start)*rel*rel/(2*bufferFadeWindowHours)
	}
	if hours > bufferFadeEndHours {
		total += hours - bufferFadeEndHours
	}

	return total / hours
}

package physiology

const (
	adaptationOnsetHours    = 36.0
	adaptationDropPerHour   = 0.0008 // 0.08% of TDEE per hour past onset
	adaptationBaseDropCap   = 0.12
	adaptationTotalDropCap  = 0.15
	leannessAdjustmentLimit = 0.05
	minAdaptationFactor     = 0.85
)

// MetabolicAdaptationFactor returns the multiplier, in [0.85, 1.0], that
// expenditure drops to as a fast stretches on. Nothing happens for the
// first 36 hours; past that the base drop grows 0.08%/hour up to 12%,
// shifted up to five percentage points by how the body fat compares to
// the 25% reference (leaner bodies defend expenditure harder), with the
// total drop clamped to 15%.
func MetabolicAdaptationFactor(hours, bodyFatPct float64) float64 {
	if hours <= adaptationOnsetHours {
		return 1.0
	}

	drop := (hours - adaptationOnsetHours) * adaptationDropPerHour
	if drop > adaptationBaseDropCap {
		drop = adaptationBaseDropCap
	}

	if bodyFatPct > 0 {
		adj := leannessAdjustmentLimit * (bodyFatPct - DefaultBodyFatPct) / DefaultBodyFatPct
		drop += clamp(adj, -leannessAdjustmentLimit, leannessAdjustmentLimit)
	}

	drop = clamp(drop, 0, adaptationTotalDropCap)

	return clamp(1-drop, minAdaptationFactor, 1.0)
}

package physiology_test

import (
	"testing"

	"github.com/fastline/analytics-engine/internal/core/domain"
	"github.com/fastline/analytics-engine/internal/core/physiology"
	"github.com/stretchr/testify/assert"
)

func TestEstimateTDEE(t *testing.T) {
	base := physiology.TDEEInput{
		WeightLbs:     180,
		HeightCm:      175,
		AgeYears:      35,
		ActivityLevel: domain.ActivitySedentary,
	}

	t.Run("Success: Male sedentary reference", func(t *testing.T) {
		in := base
		in.Sex = domain.SexMale

		// BMR = 10*81.65 + 6.25*175 - 5*35 + 5 = 1740.2, x1.2
		assert.InDelta(t, 2088.26, physiology.EstimateTDEE(in), 0.1)
	})

	t.Run("Success: Female reference", func(t *testing.T) {
		in := base
		in.Sex = domain.SexFemale

		assert.InDelta(t, 1889.06, physiology.EstimateTDEE(in), 0.1)
	})

	t.Run("Success: Unknown sex sits at the midpoint", func(t *testing.T) {
		in := base

		male := base
		male.Sex = domain.SexMale
		female := base
		female.Sex = domain.SexFemale

		mid := (physiology.EstimateTDEE(male) + physiology.EstimateTDEE(female)) / 2
		assert.InDelta(t, mid, physiology.EstimateTDEE(in), 1e-9)
	})

	t.Run("Success: Activity multiplier scales BMR", func(t *testing.T) {
		sedentary := base
		sedentary.Sex = domain.SexMale

		veryActive := sedentary
		veryActive.ActivityLevel = domain.ActivityVeryActive

		ratio := physiology.EstimateTDEE(veryActive) / physiology.EstimateTDEE(sedentary)
		assert.InDelta(t, 1.9/1.2, ratio, 1e-9)
	})

	t.Run("Edge Case: Missing optionals take defaults", func(t *testing.T) {
		sparse := physiology.TDEEInput{WeightLbs: 180}
		explicit := physiology.TDEEInput{
			WeightLbs:     180,
			HeightCm:      175,
			AgeYears:      35,
			Sex:           domain.SexUnknown,
			ActivityLevel: domain.ActivitySedentary,
		}

		assert.InDelta(t, physiology.EstimateTDEE(explicit), physiology.EstimateTDEE(sparse), 1e-9)
	})

	t.Run("Edge Case: Unrecognized activity falls back to sedentary", func(t *testing.T) {
		in := base
		in.Sex = domain.SexMale
		in.ActivityLevel = "heroic"

		assert.InDelta(t, 2088.26, physiology.EstimateTDEE(in), 0.1)
	})
}

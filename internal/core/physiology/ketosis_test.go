package physiology_test

import (
	"testing"

	"github.com/fastline/analytics-engine/internal/core/physiology"
	"github.com/stretchr/testify/assert"
)

func TestKetosisFactor(t *testing.T) {
	none := physiology.KetosisInput{}

	t.Run("Success: 48h from a cold start averages ~0.2014", func(t *testing.T) {
		// Integral: 0 over [0,16), 0.2*(576-256)/96 + 0.5*(2304-576)/96 = 9.667,
		// averaged over 48h.
		assert.InDelta(t, 0.20139, physiology.KetosisFactor(48, none), 1e-4)
	})

	t.Run("Success: 96h from a cold start averages ~0.4757", func(t *testing.T) {
		assert.InDelta(t, 0.47569, physiology.KetosisFactor(96, none), 1e-4)
	})

	t.Run("Success: Below 16h a cold start stays at zero", func(t *testing.T) {
		assert.Zero(t, physiology.KetosisFactor(12, none))
	})

	t.Run("Success: Baseline ketosis lifts the early average", func(t *testing.T) {
		in := physiology.KetosisInput{BaselineKetosis: 0.3}

		// [0,16): 0.3*16 - 0.3*256/96 = 4.0; [16,24): 0.3*8 - 0.1*320/96 = 2.0667
		assert.InDelta(t, 0.25278, physiology.KetosisFactor(24, in), 1e-4)
	})

	t.Run("Success: Keto-adapted start dominates a lower baseline", func(t *testing.T) {
		adapted := physiology.KetosisInput{StartsInKetosis: true, BaselineKetosis: 0.1}

		// Early level 0.5 blending down toward the early curve.
		assert.InDelta(t, 0.4375, physiology.KetosisFactor(12, adapted), 1e-4)
	})

	t.Run("Edge Case: Zero hours returns the early level", func(t *testing.T) {
		assert.Zero(t, physiology.KetosisFactor(0, none))
		assert.InDelta(t, 0.5, physiology.KetosisFactor(0, physiology.KetosisInput{StartsInKetosis: true}), 1e-9)
	})

	t.Run("Edge Case: Baseline clamps to 0.6", func(t *testing.T) {
		in := physiology.KetosisInput{BaselineKetosis: 0.9}
		assert.InDelta(t, 0.6, physiology.KetosisFactor(0, in), 1e-9)
	})

	t.Run("Success: Cold-start average rises with fast length toward 0.8", func(t *testing.T) {
		prev := 0.0
		for h := 16.0; h <= 400; h += 8 {
			got := physiology.KetosisFactor(h, none)

			assert.Greater(t, got, prev, "average must keep climbing (h=%v)", h)
			assert.Less(t, got, 0.8)
			prev = got
		}
	})
}

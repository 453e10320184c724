package services

import (
	"math"

	"github.com/fastline/analytics-engine/internal/core/domain"
	"github.com/fastline/analytics-engine/internal/core/physiology"
)

// Message catalog for effectiveness results. Statuses carry guidance so
// callers never need to branch on error types for expected gaps.
const (
	msgMissingParams = "Start weight, post-fast weight and fast duration are required to analyze a fast."
	msgHeldSteady    = "Weight held steady through this fast."
	msgExcellent     = "Excellent fast: a meaningful share of this loss was body fat."
	msgGoodProgress  = "Good progress: solid fat loss for a fast of this length."
	msgMostlyFluid   = "Mostly fluid so far. Fluid returns quickly after refeeding; fat loss compounds across repeated fasts."
	msgGenericResult = "Fast complete. Keep a consistent protocol to see clearer trends."
)

const (
	excellentFatLossLbs = 1.0
	goodFatLossLbs      = 0.5
	mostlyFluidRatio    = 0.7
)

// EffectivenessParams feeds one partition run. StartWeight, PostWeight
// and a positive FastDurationHours are required. TDEE, when set,
// overrides the profile-derived estimate; Profile is optional and only
// consulted for estimator knobs.
type EffectivenessParams struct {
	FastID            string
	StartWeight       *float64
	PostWeight        *float64
	FastDurationHours float64

	StartBodyFat *float64
	PostBodyFat  *float64

	TDEE    *float64
	Profile *domain.UserProfile
}

// EffectivenessCalculator partitions one fast's weight delta into fat,
// true muscle, lean-associated water and other transient fluid.
// Stateless; safe to share.
type EffectivenessCalculator struct{}

func NewEffectivenessCalculator() *EffectivenessCalculator {
	return &EffectivenessCalculator{}
}

// Calculate runs the partition. With both body-fat readings present the
// fat component is measured from the composition delta; otherwise it is
// estimated from the adapted energy deficit. Lean components always come
// from the protein model. The other-fluid bucket is assembled under the
// mass-conservation valve: the modeled fluid baseline is scaled down so
// components never exceed the observed total, and any unexplained
// positive remainder is booked as residual water shift. Outputs are
// rounded to one decimal.
func (c *EffectivenessCalculator) Calculate(p EffectivenessParams) *domain.EffectivenessResult {
	if p.StartWeight == nil || p.PostWeight == nil || *p.StartWeight <= 0 || *p.PostWeight <= 0 || p.FastDurationHours <= 0 {
		return &domain.EffectivenessResult{
			Status:  domain.StatusError,
			FastID:  p.FastID,
			Message: msgMissingParams,
		}
	}

	startWeight := *p.StartWeight
	postWeight := *p.PostWeight
	hours := p.FastDurationHours
	total := startWeight - postWeight

	fatMass, leanMass := physiology.SplitBodyComposition(startWeight, p.StartBodyFat)
	bodyFatPct := fatMass / startWeight * 100

	ketoIn := physiology.KetosisInput{}
	proteinGrams := 0.0
	carbStatus := ""
	if p.Profile != nil {
		if p.Profile.BaselineKetosis != nil {
			ketoIn.BaselineKetosis = *p.Profile.BaselineKetosis
		}
		ketoIn.StartsInKetosis = p.Profile.StartsInKetosis
		if p.Profile.PreFastProteinGrams != nil {
			proteinGrams = *p.Profile.PreFastProteinGrams
		}
		carbStatus = p.Profile.CarbStatus
	}

	ketoFactor := physiology.KetosisFactor(hours, ketoIn)
	proteinBuffer := physiology.ProteinBufferFactor(hours, proteinGrams)

	lean := physiology.EstimateLeanLossComponents(physiology.LeanLossInput{
		LeanMassLbs:   leanMass,
		Hours:         hours,
		KetosisFactor: ketoFactor,
		ProteinBuffer: proteinBuffer,
	})

	var fatLoss float64
	source := domain.BreakdownEstimated
	if p.StartBodyFat != nil && p.PostBodyFat != nil {
		// Measured mode overrides fat only; lean still follows the model.
		source = domain.BreakdownMeasured
		fatLoss = math.Max(0, startWeight*(*p.StartBodyFat)/100-postWeight*(*p.PostBodyFat)/100)
	} else {
		tdee := c.resolveTDEE(p, startWeight)
		adaptation := physiology.MetabolicAdaptationFactor(hours, bodyFatPct)
		fatLoss = physiology.EstimateFatLossLbs(physiology.FatLossInput{
			TDEE:             tdee,
			AdaptationFactor: adaptation,
			FatMassLbs:       fatMass,
			Hours:            hours,
		})
	}

	glycogen := physiology.EstimateGlycogenAndBoundWater(physiology.GlycogenInput{
		LeanMassLbs: leanMass,
		Hours:       hours,
		CarbStatus:  carbStatus,
	})
	gutLoss := physiology.EstimateGutContentLoss(startWeight, hours)

	muscleLoss := lean.TrueMuscleLbs
	leanWaterLoss := lean.LeanWaterLbs

	// Mass-conservation valve: glycogen, bound water and gut content
	// shrink proportionally to fit the unexplained share of the observed
	// loss, and whatever they do not cover is residual water shift,
	// booked into the same bucket.
	available := math.Max(0, total-fatLoss-muscleLoss-leanWaterLoss)
	fluidBaseline := glycogen.GlycogenLbs + glycogen.BoundWaterLbs + gutLoss

	scale := 1.0
	if fluidBaseline > available && fluidBaseline > 0 {
		scale = available / fluidBaseline
	}
	otherFluidLoss := glycogen.GlycogenLbs*scale + glycogen.BoundWaterLbs*scale + gutLoss*scale
	if residual := available - otherFluidLoss; residual > 0 {
		otherFluidLoss += residual
	}

	res := &domain.EffectivenessResult{
		Status:          domain.StatusOK,
		FastID:          p.FastID,
		TotalWeightLost: round1(total),
		FatLoss:         round1(fatLoss),
		MuscleLoss:      round1(muscleLoss),
		LeanWaterLoss:   round1(leanWaterLoss),
		OtherFluidLoss:  round1(otherFluidLoss),
		BreakdownSource: source,
	}
	res.FluidLoss = res.LeanWaterLoss + res.OtherFluidLoss
	res.Message = selectMessage(res)

	return res
}

func (c *EffectivenessCalculator) resolveTDEE(p EffectivenessParams, startWeight float64) float64 {
	if p.TDEE != nil && *p.TDEE > 0 {
		return *p.TDEE
	}

	in := physiology.TDEEInput{WeightLbs: startWeight}
	if p.Profile != nil {
		if p.Profile.HeightCm != nil {
			in.HeightCm = *p.Profile.HeightCm
		}
		if p.Profile.AgeYears != nil {
			in.AgeYears = *p.Profile.AgeYears
		}
		in.Sex = p.Profile.Sex
		in.ActivityLevel = p.Profile.ActivityLevel
	}
	return physiology.EstimateTDEE(in)
}

// selectMessage works off the rounded figures so the guidance always
// agrees with the numbers shown.
func selectMessage(res *domain.EffectivenessResult) string {
	switch {
	case res.TotalWeightLost <= 0:
		return msgHeldSteady
	case res.FatLoss >= excellentFatLossLbs:
		return msgExcellent
	case res.FatLoss >= goodFatLossLbs:
		return msgGoodProgress
	case res.FluidLoss/res.TotalWeightLost > mostlyFluidRatio:
		return msgMostlyFluid
	default:
		return msgGenericResult
	}
}

// paramsFromSnapshot bundles a resolved snapshot into calculator input.
func paramsFromSnapshot(fast *domain.Fast, snap *domain.FastSnapshot, profile *domain.UserProfile) EffectivenessParams {
	return EffectivenessParams{
		FastID:            fast.ID,
		StartWeight:       snap.StartWeight,
		PostWeight:        snap.PostWeight,
		StartBodyFat:      snap.StartBodyFat,
		PostBodyFat:       snap.PostBodyFat,
		FastDurationHours: fast.EffectiveDurationHours(),
		Profile:           profile,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

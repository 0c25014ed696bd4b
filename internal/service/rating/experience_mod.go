package rating

import (
	"math"

	"github.com/mreiner/compquote/internal/domain"
)

const (
	// PrimaryLossLimit caps the primary portion of a single claim. The
	// remainder counts as excess and is weighted less, so one catastrophic
	// claim cannot dominate the mod.
	PrimaryLossLimit = 15000

	// FullCredibilityPayroll is the payroll at which the employer's own
	// loss experience is fully credible.
	FullCredibilityPayroll = 5_000_000

	MinExperienceMod = 0.75
	MaxExperienceMod = 2.00

	primaryLossWeight = 0.20
	excessLossWeight  = 0.10
	ballastRatio      = 0.05
)

type modFactors struct {
	primaryWeight       float64
	excessWeight        float64
	expectedLosses      float64
	actualPrimaryLosses float64
	actualExcessLosses  float64
	ballast             float64
	weighting           float64
}

// ExperienceMod converts loss history into an experience modification
// factor, rounded to two decimals and clamped to
// [MinExperienceMod, MaxExperienceMod].
func ExperienceMod(lossHistory []domain.LossRecord, expectedAnnualLosses, payroll float64) float64 {
	factors := calculateModFactors(lossHistory, expectedAnnualLosses, payroll)

	denominator := factors.expectedLosses*factors.primaryWeight*factors.weighting + factors.ballast

	var actualRatio float64
	if denominator > 0 {
		actualRatio = (factors.actualPrimaryLosses*factors.primaryWeight +
			factors.actualExcessLosses*factors.excessWeight) / denominator
	}

	cred := credibility(payroll)
	mod := 1 + (actualRatio-1)*cred

	mod = math.Round(mod*100) / 100
	return math.Min(MaxExperienceMod, math.Max(MinExperienceMod, mod))
}

func calculateModFactors(lossHistory []domain.LossRecord, expectedAnnualLosses, payroll float64) modFactors {
	primary, excess := splitLosses(lossHistory)

	return modFactors{
		primaryWeight:       primaryLossWeight,
		excessWeight:        excessLossWeight,
		expectedLosses:      expectedAnnualLosses,
		actualPrimaryLosses: primary,
		actualExcessLosses:  excess,
		ballast:             expectedAnnualLosses * ballastRatio,
		weighting:           credibility(payroll),
	}
}

// splitLosses accumulates primary/excess totals across all records,
// regardless of open/closed status.
func splitLosses(lossHistory []domain.LossRecord) (primary, excess float64) {
	for _, loss := range lossHistory {
		if loss.Amount <= PrimaryLossLimit {
			primary += loss.Amount
		} else {
			primary += PrimaryLossLimit
			excess += loss.Amount - PrimaryLossLimit
		}
	}

	return primary, excess
}

// credibility rises with payroll size and caps at 1 once payroll reaches
// FullCredibilityPayroll.
func credibility(payroll float64) float64 {
	if payroll <= 0 {
		return 0
	}
	return math.Min(1, math.Sqrt(payroll/FullCredibilityPayroll))
}

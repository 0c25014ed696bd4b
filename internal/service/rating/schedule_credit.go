package rating

import (
	"math"

	"github.com/mreiner/compquote/internal/domain"
)

// MaxScheduleCredit caps the total discretionary credit.
const MaxScheduleCredit = 0.25

const maxSafetyProgramCredit = 0.10

// ScheduleCredit converts workforce metrics, safety programs and business
// tenure into a discretionary credit in [0, MaxScheduleCredit]. Rules are
// additive and independent.
func ScheduleCredit(metrics domain.WorkforceMetrics, programs []domain.SafetyProgram, yearsInBusiness int) float64 {
	credit := 0.0

	// workforce stability
	if metrics.TurnoverRate < 0.15 {
		credit += 0.05
	}
	if metrics.AvgTenure > 5 {
		credit += 0.03
	}
	if metrics.TrainingHoursPerYear > 20 {
		credit += 0.04
	}

	// safety programs
	active := 0
	for _, p := range programs {
		if p.Status == domain.ProgramStatusActive {
			active++
		}
	}
	credit += math.Min(maxSafetyProgramCredit, float64(active)*0.02)

	// business maturity
	if yearsInBusiness > 10 {
		credit += 0.03
	} else if yearsInBusiness > 5 {
		credit += 0.02
	}

	return math.Min(MaxScheduleCredit, credit)
}

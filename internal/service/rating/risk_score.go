package rating

import (
	"math"
	"strings"
	"time"

	"github.com/mreiner/compquote/internal/domain"
)

const monthsPerYear = 12

// CalculateRiskScore derives a 0-100 composite risk score from the
// employer's safety programs, loss history, risk controls and industry
// profile. The score is informational; it never feeds the premium math.
func CalculateRiskScore(data *domain.BusinessInfo, now time.Time) *domain.RiskScore {
	safety := evaluateSafetyPrograms(data.SafetyPrograms, now)
	loss := evaluateLossHistory(data.LossHistory, now)
	control := evaluateRiskControls(data.RiskControls, now)
	industry := evaluateIndustryRisk(data)

	var factors []domain.RiskFactor

	if safety < 60 {
		factors = append(factors, domain.RiskFactor{
			Name:        "Inadequate Safety Programs",
			Impact:      -10,
			Description: "Implement comprehensive safety training and monitoring",
		})
	}

	if loss < 70 {
		factors = append(factors, domain.RiskFactor{
			Name:        "Adverse Loss History",
			Impact:      -15,
			Description: "Recent claims indicate need for improved risk management",
		})
	}

	if control < 65 {
		factors = append(factors, domain.RiskFactor{
			Name:        "Risk Control Deficiencies",
			Impact:      -12,
			Description: "Strengthen workplace safety measures and protocols",
		})
	}

	total := safety*0.30 + loss*0.25 + control*0.25 + industry*0.20

	return &domain.RiskScore{
		Total: int(math.Round(total)),
		Components: domain.RiskComponents{
			Safety:   safety,
			Loss:     loss,
			Control:  control,
			Industry: industry,
		},
		Factors: factors,
	}
}

func monthsSince(t, now time.Time) float64 {
	return now.Sub(t).Hours() / (24 * 30)
}

func evaluateSafetyPrograms(programs []domain.SafetyProgram, now time.Time) float64 {
	if len(programs) == 0 {
		return 50
	}

	sum := 0.0
	for _, program := range programs {
		score := 50.0

		switch program.Status {
		case domain.ProgramStatusActive:
			score += 30
		case domain.ProgramStatusUnderReview:
			score += 15
		}

		months := monthsSince(program.LastReviewDate, now)
		if months <= 3 {
			score += 20
		} else if months <= 6 {
			score += 10
		}

		sum += score
	}

	return math.Min(100, sum/float64(len(programs)))
}

func evaluateLossHistory(history []domain.LossRecord, now time.Time) float64 {
	if len(history) == 0 {
		return 85
	}

	score := 100.0

	totalLosses := 0.0
	recent := 0
	open := 0
	for _, loss := range history {
		totalLosses += loss.Amount
		if monthsSince(loss.Date, now) <= monthsPerYear {
			recent++
		}
		if loss.Status == domain.LossStatusOpen {
			open++
		}
	}

	switch {
	case totalLosses > 500_000:
		score -= 30
	case totalLosses > 250_000:
		score -= 20
	case totalLosses > 100_000:
		score -= 10
	}

	score -= float64(recent) * 5
	score -= float64(open) * 8

	return math.Max(0, score)
}

func evaluateRiskControls(controls []domain.RiskControl, now time.Time) float64 {
	if len(controls) == 0 {
		return 50
	}

	sum := 0.0
	for _, control := range controls {
		var score float64
		switch control.Effectiveness {
		case domain.ControlEffectivenessHigh:
			score = 80
		case domain.ControlEffectivenessMedium:
			score = 60
		default:
			score = 40
		}

		months := monthsSince(control.LastAssessmentDate, now)
		if months <= 3 {
			score += 20
		} else if months <= 6 {
			score += 10
		}

		sum += score
	}

	return math.Min(100, sum/float64(len(controls)))
}

func evaluateIndustryRisk(data *domain.BusinessInfo) float64 {
	score := 75.0 // moderate risk default

	description := strings.ToLower(data.Description)

	if strings.Contains(description, "construction") ||
		strings.Contains(description, "manufacturing") ||
		strings.Contains(description, "transportation") {
		score -= 15
	}

	if strings.Contains(description, "office") ||
		strings.Contains(description, "clerical") ||
		strings.Contains(description, "professional") {
		score += 15
	}

	if data.YearsInBusiness > 10 {
		score += 10
	} else if data.YearsInBusiness > 5 {
		score += 5
	} else if data.YearsInBusiness < 2 {
		score -= 5
	}

	return math.Min(100, math.Max(0, score))
}

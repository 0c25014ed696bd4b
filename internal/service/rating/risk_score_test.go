package rating

import (
	"testing"
	"time"

	"github.com/mreiner/compquote/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scoreNow = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func TestCalculateRiskScore_EmptyProfileDefaults(t *testing.T) {
	score := CalculateRiskScore(&domain.BusinessInfo{}, scoreNow)
	require.NotNil(t, score)

	assert.Equal(t, 50.0, score.Components.Safety)
	assert.Equal(t, 85.0, score.Components.Loss)
	assert.Equal(t, 50.0, score.Components.Control)
	assert.Equal(t, 70.0, score.Components.Industry) // moderate default, young business

	// 50*0.30 + 85*0.25 + 50*0.25 + 70*0.20 = 62.75
	assert.Equal(t, 63, score.Total)

	names := make([]string, 0, len(score.Factors))
	for _, f := range score.Factors {
		names = append(names, f.Name)
	}
	assert.Contains(t, names, "Inadequate Safety Programs")
	assert.Contains(t, names, "Risk Control Deficiencies")
	assert.NotContains(t, names, "Adverse Loss History")
}

func TestCalculateRiskScore_ActiveRecentProgramScoresFull(t *testing.T) {
	data := &domain.BusinessInfo{
		SafetyPrograms: []domain.SafetyProgram{
			{Status: domain.ProgramStatusActive, LastReviewDate: scoreNow.AddDate(0, -1, 0)},
		},
	}

	score := CalculateRiskScore(data, scoreNow)
	assert.Equal(t, 100.0, score.Components.Safety)
}

func TestCalculateRiskScore_LossHistoryPenalties(t *testing.T) {
	data := &domain.BusinessInfo{
		LossHistory: []domain.LossRecord{
			{Date: scoreNow.AddDate(0, -2, 0), Amount: 300_000, Status: domain.LossStatusOpen},
			{Date: scoreNow.AddDate(-3, 0, 0), Amount: 10_000, Status: domain.LossStatusClosed},
		},
	}

	score := CalculateRiskScore(data, scoreNow)
	// 100 - 20 (total > 250k) - 5 (one recent) - 8 (one open) = 67
	assert.Equal(t, 67.0, score.Components.Loss)
}

func TestCalculateRiskScore_IndustryKeywords(t *testing.T) {
	construction := &domain.BusinessInfo{Description: "Commercial construction contractor", YearsInBusiness: 7}
	office := &domain.BusinessInfo{Description: "Professional office services", YearsInBusiness: 7}

	assert.Less(t,
		CalculateRiskScore(construction, scoreNow).Components.Industry,
		CalculateRiskScore(office, scoreNow).Components.Industry)
}

func TestCalculateRiskScore_BoundedZeroToHundred(t *testing.T) {
	losses := make([]domain.LossRecord, 30)
	for i := range losses {
		losses[i] = domain.LossRecord{Date: scoreNow.AddDate(0, -1, 0), Amount: 100_000, Status: domain.LossStatusOpen}
	}

	score := CalculateRiskScore(&domain.BusinessInfo{LossHistory: losses}, scoreNow)
	assert.GreaterOrEqual(t, score.Components.Loss, 0.0)
	assert.GreaterOrEqual(t, score.Total, 0)
	assert.LessOrEqual(t, score.Total, 100)
}

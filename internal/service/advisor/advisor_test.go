package advisor

import (
	"context"
	"testing"

	"github.com/mreiner/compquote/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeOptimizations_FallbackWithoutClient(t *testing.T) {
	svc := NewService("", "")

	optimization := svc.AnalyzeOptimizations(context.Background(), &domain.BusinessInfo{}, &domain.RatingResult{})

	require.NotNil(t, optimization)
	assert.NotEmpty(t, optimization.Suggestions)
	assert.NotEmpty(t, optimization.PrioritizedActions)
	assert.False(t, optimization.Timestamp.IsZero())
}

func TestBuildPrompt_ContainsRatingContext(t *testing.T) {
	data := &domain.BusinessInfo{
		SafetyPrograms: []domain.SafetyProgram{{Name: "Forklift Certification", Status: domain.ProgramStatusActive}},
	}
	result := &domain.RatingResult{
		TotalPremium: 12345.67,
		Breakdowns: []*domain.PremiumBreakdown{
			{StateCode: "CA", ClassCode: "8810", FinalPremium: 12345.67},
		},
	}

	prompt, err := buildPrompt(data, result)
	require.NoError(t, err)

	assert.Contains(t, prompt, "12345.67")
	assert.Contains(t, prompt, "8810")
	assert.Contains(t, prompt, "Forklift Certification")
}

package rating

import (
	"testing"

	"github.com/mreiner/compquote/internal/domain"
	"github.com/stretchr/testify/assert"
)

// metrics that qualify for nothing
var neutralMetrics = domain.WorkforceMetrics{
	TurnoverRate:         0.30,
	AvgTenure:            3,
	TrainingHoursPerYear: 10,
}

func activePrograms(n int) []domain.SafetyProgram {
	programs := make([]domain.SafetyProgram, n)
	for i := range programs {
		programs[i] = domain.SafetyProgram{Name: "program", Status: domain.ProgramStatusActive}
	}
	return programs
}

func TestScheduleCredit_NoQualifyingFactors(t *testing.T) {
	assert.Zero(t, ScheduleCredit(neutralMetrics, nil, 1))
}

func TestScheduleCredit_WorkforceRules(t *testing.T) {
	m := neutralMetrics
	m.TurnoverRate = 0.10
	assert.Equal(t, 0.05, ScheduleCredit(m, nil, 1))

	m = neutralMetrics
	m.AvgTenure = 6
	assert.Equal(t, 0.03, ScheduleCredit(m, nil, 1))

	m = neutralMetrics
	m.TrainingHoursPerYear = 25
	assert.Equal(t, 0.04, ScheduleCredit(m, nil, 1))
}

func TestScheduleCredit_SafetyProgramsCappedAtTenPercent(t *testing.T) {
	assert.InDelta(t, 0.02, ScheduleCredit(neutralMetrics, activePrograms(1), 1), 1e-9)
	assert.InDelta(t, 0.06, ScheduleCredit(neutralMetrics, activePrograms(3), 1), 1e-9)
	assert.InDelta(t, 0.10, ScheduleCredit(neutralMetrics, activePrograms(5), 1), 1e-9)
	assert.InDelta(t, 0.10, ScheduleCredit(neutralMetrics, activePrograms(8), 1), 1e-9)
}

func TestScheduleCredit_InactiveProgramsDoNotCount(t *testing.T) {
	programs := []domain.SafetyProgram{
		{Status: domain.ProgramStatusActive},
		{Status: domain.ProgramStatusInactive},
		{Status: domain.ProgramStatusUnderReview},
	}
	assert.InDelta(t, 0.02, ScheduleCredit(neutralMetrics, programs, 1), 1e-9)
}

func TestScheduleCredit_BusinessMaturity(t *testing.T) {
	assert.Zero(t, ScheduleCredit(neutralMetrics, nil, 5))
	assert.Equal(t, 0.02, ScheduleCredit(neutralMetrics, nil, 6))
	assert.Equal(t, 0.02, ScheduleCredit(neutralMetrics, nil, 10))
	assert.Equal(t, 0.03, ScheduleCredit(neutralMetrics, nil, 11))
}

func TestScheduleCredit_TotalCapped(t *testing.T) {
	m := domain.WorkforceMetrics{
		TurnoverRate:         0.05,
		AvgTenure:            8,
		TrainingHoursPerYear: 40,
	}
	credit := ScheduleCredit(m, activePrograms(10), 20)
	assert.Equal(t, MaxScheduleCredit, credit)
}

func TestScheduleCredit_AlwaysWithinBounds(t *testing.T) {
	for years := 0; years <= 30; years += 3 {
		for programs := 0; programs <= 12; programs += 4 {
			credit := ScheduleCredit(domain.WorkforceMetrics{}, activePrograms(programs), years)
			assert.GreaterOrEqual(t, credit, 0.0)
			assert.LessOrEqual(t, credit, MaxScheduleCredit)
		}
	}
}

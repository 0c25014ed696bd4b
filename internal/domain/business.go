package domain

import "time"

type LossStatus string

const (
	LossStatusOpen   LossStatus = "open"
	LossStatusClosed LossStatus = "closed"
)

type ProgramStatus string

const (
	ProgramStatusActive      ProgramStatus = "active"
	ProgramStatusInactive    ProgramStatus = "inactive"
	ProgramStatusUnderReview ProgramStatus = "under_review"
)

type ControlEffectiveness string

const (
	ControlEffectivenessHigh   ControlEffectiveness = "high"
	ControlEffectivenessMedium ControlEffectiveness = "medium"
	ControlEffectivenessLow    ControlEffectiveness = "low"
)

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// PayrollLine is one state/class-code combination the employer reports.
// Immutable once a rating run starts.
type PayrollLine struct {
	StateCode     string  `json:"stateCode"`
	ClassCode     string  `json:"classCode"`
	AnnualPayroll float64 `json:"annualPayroll"`
	EmployeeCount int     `json:"employeeCount"`
}

// LossRecord is one historical claim.
type LossRecord struct {
	Date        time.Time  `json:"date"`
	Amount      float64    `json:"amount"`
	Status      LossStatus `json:"status"`
	ClaimNumber string     `json:"claimNumber,omitempty"`
}

type WorkforceMetrics struct {
	TurnoverRate         float64 `json:"turnoverRate"`
	AvgTenure            float64 `json:"avgTenure"`
	TrainingHoursPerYear float64 `json:"trainingHoursPerYear"`
}

type SafetyProgram struct {
	Name           string        `json:"name"`
	Status         ProgramStatus `json:"status"`
	LastReviewDate time.Time     `json:"lastReviewDate"`
}

type RiskControl struct {
	Name               string               `json:"name"`
	Effectiveness      ControlEffectiveness `json:"effectiveness"`
	LastAssessmentDate time.Time            `json:"lastAssessmentDate"`
}

type SupplementalCoverage struct {
	ID       string  `json:"id"`
	Selected bool    `json:"selected"`
	Premium  float64 `json:"premium"`
}

type PremiumModifiers struct {
	ExperienceMod         float64                `json:"experienceMod"`
	ScheduleCredit        float64                `json:"scheduleCredit"`
	SafetyCredit          float64                `json:"safetyCredit"`
	SupplementalCoverages []SupplementalCoverage `json:"supplementalCoverages,omitempty"`
}

// BusinessInfo aggregates everything the employer reports for a rating run.
// Read-only while rating is in progress.
type BusinessInfo struct {
	Name             string           `json:"name"`
	Description      string           `json:"description"`
	YearsInBusiness  int              `json:"yearsInBusiness"`
	Locations        []Address        `json:"locations"`
	PayrollLines     []PayrollLine    `json:"payrollLines"`
	LossHistory      []LossRecord     `json:"lossHistory"`
	WorkforceMetrics WorkforceMetrics `json:"workforceMetrics"`
	SafetyPrograms   []SafetyProgram  `json:"safetyPrograms"`
	RiskControls     []RiskControl    `json:"riskControls"`
	Modifiers        PremiumModifiers `json:"modifiers"`
}

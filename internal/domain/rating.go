package domain

import "time"

// ClassCodeRate is a versioned manual rate for one state/class-code pair.
// Looked up by the engine, never mutated by it.
type ClassCodeRate struct {
	ID            int64     `db:"id" json:"-"`
	StateCode     string    `db:"state_code" json:"stateCode"`
	ClassCode     string    `db:"class_code" json:"classCode"`
	EffectiveDate time.Time `db:"effective_date" json:"effectiveDate"`
	// BaseRate is expressed per $100 of payroll.
	BaseRate      float64   `db:"base_rate" json:"baseRate"`
	HazardGroup   string    `db:"hazard_group" json:"hazardGroup"`
	IndustryGroup string    `db:"industry_group" json:"industryGroup"`
	CreatedAt     time.Time `db:"created_at" json:"-"`
	UpdatedAt     time.Time `db:"updated_at" json:"-"`
}

type ZipRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Territory is a geographic rating zone with its own premium multiplier.
type Territory struct {
	ID             int64      `db:"id" json:"-"`
	TerritoryCode  string     `db:"territory_code" json:"territoryCode"`
	StateCode      string     `db:"state_code" json:"stateCode"`
	EffectiveDate  time.Time  `db:"effective_date" json:"effectiveDate"`
	RateMultiplier float64    `db:"rate_multiplier" json:"rateMultiplier"`
	ZipRanges      []ZipRange `db:"zip_ranges" json:"zipRanges"`
	Description    string     `db:"description" json:"description"`
	CreatedAt      time.Time  `db:"created_at" json:"-"`
	UpdatedAt      time.Time  `db:"updated_at" json:"-"`
}

// PremiumBreakdown is the immutable per-line rating result. Intermediate
// figures are retained for audit traceability.
type PremiumBreakdown struct {
	StateCode           string   `json:"stateCode"`
	ClassCode           string   `json:"classCode"`
	Payroll             float64  `json:"payroll"`
	BaseRate            float64  `json:"baseRate"`
	TerritoryCode       string   `json:"territoryCode"`
	TerritoryMultiplier float64  `json:"territoryMultiplier"`
	ExperienceMod       float64  `json:"experienceMod"`
	ScheduleCredit      float64  `json:"scheduleCredit"`
	ManualPremium       float64  `json:"manualPremium"`
	ModifiedPremium     float64  `json:"modifiedPremium"`
	FinalPremium        float64  `json:"finalPremium"`
	Warnings            []string `json:"warnings,omitempty"`
}

type RatingResult struct {
	Breakdowns    []*PremiumBreakdown `json:"breakdowns"`
	TotalPremium  float64             `json:"totalPremium"`
	RiskScore     *RiskScore          `json:"riskScore"`
	EffectiveDate time.Time           `json:"effectiveDate"`
	Warnings      []string            `json:"warnings,omitempty"`
}

type RiskComponents struct {
	Safety   float64 `json:"safetyScore"`
	Loss     float64 `json:"lossScore"`
	Control  float64 `json:"controlScore"`
	Industry float64 `json:"industryScore"`
}

type RiskFactor struct {
	Name        string  `json:"name"`
	Impact      float64 `json:"impact"`
	Description string  `json:"description"`
}

// RiskScore is a 0-100 composite of the employer's risk posture.
type RiskScore struct {
	Total      int            `json:"total"`
	Components RiskComponents `json:"components"`
	Factors    []RiskFactor   `json:"factors"`
}

type OptimizationSuggestion struct {
	Type             string  `json:"type"`
	Description      string  `json:"description"`
	PotentialSavings float64 `json:"potentialSavings"`
	Implementation   string  `json:"implementation"`
	Timeframe        string  `json:"timeframe"`
	Confidence       float64 `json:"confidence"`
}

type PremiumOptimization struct {
	Suggestions           []OptimizationSuggestion `json:"suggestions"`
	TotalPotentialSavings float64                  `json:"totalPotentialSavings"`
	PrioritizedActions    []string                 `json:"prioritizedActions"`
	Timestamp             time.Time                `json:"timestamp"`
}

package rating

import (
	"context"
	"time"

	"github.com/mreiner/compquote/internal/domain"
	"github.com/mreiner/compquote/internal/pkg/constants"
	"github.com/mreiner/compquote/internal/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// DefaultExpectedLossRatio approximates expected annual losses as a share
// of manual premium. Carried over from the original rating worksheet
// without documented actuarial backing; overridable via
// WithExpectedLossRatio pending review by the actuarial team.
const DefaultExpectedLossRatio = 0.05

// Engine sequences the rating pipeline per payroll line and aggregates the
// per-line breakdowns into a total premium. Reference data is treated as
// immutable for the duration of a run.
type Engine struct {
	source            RateSource
	expectedLossRatio float64
	now               func() time.Time
}

type Option func(*Engine)

func WithExpectedLossRatio(ratio float64) Option {
	return func(e *Engine) {
		if ratio > 0 {
			e.expectedLossRatio = ratio
		}
	}
}

func NewEngine(source RateSource, opts ...Option) *Engine {
	e := &Engine{
		source:            source,
		expectedLossRatio: DefaultExpectedLossRatio,
		now:               time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// CalculatePremium rates every payroll line and returns one breakdown per
// line, in input order. Missing reference data degrades a line to its
// documented defaults with a warning attached to the breakdown; no line
// failure aborts the others. Calling with no payroll lines at all is a
// contract violation and returns an error.
func (e *Engine) CalculatePremium(
	ctx context.Context,
	data *domain.BusinessInfo,
	effectiveDate time.Time,
) (*domain.RatingResult, error) {
	if len(data.PayrollLines) == 0 {
		return nil, constants.ErrNoPayrollLines
	}

	// same inputs for every line, so computed once per run
	scheduleCredit := ScheduleCredit(data.WorkforceMetrics, data.SafetyPrograms, data.YearsInBusiness)

	breakdowns := make([]*domain.PremiumBreakdown, len(data.PayrollLines))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, line := range data.PayrollLines {
		i, line := i, line
		eg.Go(func() error {
			breakdowns[i] = e.rateLine(egCtx, data, line, scheduleCredit, effectiveDate)
			return nil
		})
	}

	// rateLine degrades instead of failing, so Wait only propagates ctx errors
	if err := eg.Wait(); err != nil {
		logger.Errorf(ctx, "rating fan-out: %s", err.Error())
	}

	total := 0.0
	for _, b := range breakdowns {
		total += b.FinalPremium
	}

	return &domain.RatingResult{
		Breakdowns:    breakdowns,
		TotalPremium:  total,
		RiskScore:     CalculateRiskScore(data, e.now()),
		EffectiveDate: effectiveDate,
	}, nil
}

func (e *Engine) rateLine(
	ctx context.Context,
	data *domain.BusinessInfo,
	line domain.PayrollLine,
	scheduleCredit float64,
	effectiveDate time.Time,
) *domain.PremiumBreakdown {
	rate, warnings := lookupClassCodeRate(ctx, e.source, line.StateCode, line.ClassCode, effectiveDate)

	territories, err := e.source.Territories(ctx, line.StateCode, effectiveDate)
	if err != nil {
		logger.Errorf(ctx, "Territories %s: %s", line.StateCode, err.Error())
		warnings = append(warnings, "territory lookup failed for "+line.StateCode+"; using base territory")
		territories = nil
	}
	territory := ResolveTerritory(locationForState(data.Locations, line.StateCode), line.StateCode, territories)

	manualPremium := line.AnnualPayroll / 100 * rate.BaseRate
	territoryAdjusted := manualPremium * territory.RateMultiplier

	expMod := ExperienceMod(data.LossHistory, manualPremium*e.expectedLossRatio, line.AnnualPayroll)

	modifiedPremium := territoryAdjusted * expMod
	finalPremium := modifiedPremium * (1 - scheduleCredit)

	return &domain.PremiumBreakdown{
		StateCode:           line.StateCode,
		ClassCode:           line.ClassCode,
		Payroll:             line.AnnualPayroll,
		BaseRate:            rate.BaseRate,
		TerritoryCode:       territory.TerritoryCode,
		TerritoryMultiplier: territory.RateMultiplier,
		ExperienceMod:       expMod,
		ScheduleCredit:      scheduleCredit,
		ManualPremium:       manualPremium,
		ModifiedPremium:     modifiedPremium,
		FinalPremium:        finalPremium,
		Warnings:            warnings,
	}
}

func locationForState(locations []domain.Address, stateCode string) domain.Address {
	for _, loc := range locations {
		if loc.State == stateCode {
			return loc
		}
	}
	return domain.Address{}
}

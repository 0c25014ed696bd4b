package rating

import (
	"context"
	"fmt"
	"time"

	"github.com/mreiner/compquote/internal/domain"
	"github.com/mreiner/compquote/internal/pkg/logger"
)

// RateSource provides the read-only reference data a rating run needs.
// Implementations must resolve the rate/territory set active as of the
// given date.
type RateSource interface {
	ClassCodeRate(ctx context.Context, stateCode, classCode string, asOf time.Time) (*domain.ClassCodeRate, error)
	Territories(ctx context.Context, stateCode string, asOf time.Time) ([]*domain.Territory, error)
}

// lookupClassCodeRate resolves the manual rate for a payroll line. A missing
// rate never fails the run: the line degrades to a zero base rate with the
// documented safe defaults, and the miss is surfaced as a warning.
func lookupClassCodeRate(
	ctx context.Context,
	source RateSource,
	stateCode, classCode string,
	asOf time.Time,
) (*domain.ClassCodeRate, []string) {
	rate, err := source.ClassCodeRate(ctx, stateCode, classCode, asOf)
	if err != nil || rate == nil {
		if err != nil {
			logger.Errorf(ctx, "ClassCodeRate %s-%s: %s", stateCode, classCode, err.Error())
		}

		warning := fmt.Sprintf(
			"no class code rate on file for %s-%s as of %s; line rated at zero base rate",
			stateCode, classCode, asOf.Format("2006-01-02"),
		)

		return &domain.ClassCodeRate{
			StateCode:     stateCode,
			ClassCode:     classCode,
			EffectiveDate: asOf,
			BaseRate:      0,
			HazardGroup:   "A",
			IndustryGroup: "Unknown",
		}, []string{warning}
	}

	return rate, nil
}

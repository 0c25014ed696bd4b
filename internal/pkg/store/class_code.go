package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/mreiner/compquote/internal/domain"
	"github.com/mreiner/compquote/internal/pkg/logger"
)

var classCodeRateColumns = []string{
	"id", "state_code", "class_code", "effective_date",
	"base_rate", "hazard_group", "industry_group", "created_at", "updated_at",
}

// ClassCodeRate returns the rate active for the state/class pair as of the
// given date: the newest record whose effective date does not exceed it.
func (s *store) ClassCodeRate(ctx context.Context, stateCode, classCode string, asOf time.Time) (*domain.ClassCodeRate, error) {
	query := builder().Select(classCodeRateColumns...).
		From(tableClassCodeRates).
		Where(sq.And{
			sq.Eq{"state_code": stateCode},
			sq.Eq{"class_code": classCode},
			sq.LtOrEq{"effective_date": asOf},
		}).
		OrderBy("effective_date desc").
		Limit(1)

	var selected domain.ClassCodeRate
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) ListClassCodeRates(ctx context.Context, stateCode string) ([]*domain.ClassCodeRate, error) {
	query := builder().Select(classCodeRateColumns...).
		From(tableClassCodeRates).
		Where(sq.Eq{"state_code": stateCode}).
		OrderBy("class_code, effective_date desc")

	var selected []*domain.ClassCodeRate
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		logger.Errorf(ctx, "ListClassCodeRates: %s", err.Error())
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) UpsertClassCodeRate(ctx context.Context, rate *domain.ClassCodeRate) (*domain.ClassCodeRate, error) {
	query := builder().Insert(tableClassCodeRates).
		Columns("state_code", "class_code", "effective_date", "base_rate", "hazard_group", "industry_group").
		Values(rate.StateCode, rate.ClassCode, rate.EffectiveDate, rate.BaseRate, rate.HazardGroup, rate.IndustryGroup).
		Suffix(`
on conflict (state_code, class_code, effective_date)
do update
set
	base_rate = excluded.base_rate,
	hazard_group = excluded.hazard_group,
	industry_group = excluded.industry_group,
	updated_at = now()`)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return nil, fmt.Errorf("upsert class code rate %s-%s: %w", rate.StateCode, rate.ClassCode, err)
	}

	selectQuery := builder().Select(classCodeRateColumns...).
		From(tableClassCodeRates).
		Where(sq.And{
			sq.Eq{"state_code": rate.StateCode},
			sq.Eq{"class_code": rate.ClassCode},
			sq.Eq{"effective_date": rate.EffectiveDate},
		})

	var selected domain.ClassCodeRate
	if err := s.pool.Getx(ctx, &selected, selectQuery); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/bytedance/sonic"
	"github.com/mreiner/compquote/internal/domain"
	"github.com/mreiner/compquote/internal/pkg/logger"
)

var territoryColumns = []string{
	"id", "territory_code", "state_code", "effective_date",
	"rate_multiplier", "zip_ranges", "description", "created_at", "updated_at",
}

// Territories returns the territory set for a state as of the given date:
// the newest vintage of each territory code that is already effective.
func (s *store) Territories(ctx context.Context, stateCode string, asOf time.Time) ([]*domain.Territory, error) {
	query := builder().Select(territoryColumns...).
		Options("distinct on (territory_code)").
		From(tableTerritories).
		Where(sq.And{
			sq.Eq{"state_code": stateCode},
			sq.LtOrEq{"effective_date": asOf},
		}).
		OrderBy("territory_code, effective_date desc")

	var selected []*domain.Territory
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListTerritories(ctx context.Context, stateCode string) ([]*domain.Territory, error) {
	query := builder().Select(territoryColumns...).
		From(tableTerritories).
		Where(sq.Eq{"state_code": stateCode}).
		OrderBy("territory_code, effective_date desc")

	var selected []*domain.Territory
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		logger.Errorf(ctx, "ListTerritories: %s", err.Error())
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) UpsertTerritory(ctx context.Context, territory *domain.Territory) (*domain.Territory, error) {
	zipRanges, err := sonic.Marshal(territory.ZipRanges)
	if err != nil {
		return nil, fmt.Errorf("marshal zip ranges: %w", err)
	}

	query := builder().Insert(tableTerritories).
		Columns("territory_code", "state_code", "effective_date", "rate_multiplier", "zip_ranges", "description").
		Values(territory.TerritoryCode, territory.StateCode, territory.EffectiveDate,
			territory.RateMultiplier, zipRanges, territory.Description).
		Suffix(`
on conflict (territory_code, effective_date)
do update
set
	rate_multiplier = excluded.rate_multiplier,
	zip_ranges = excluded.zip_ranges,
	description = excluded.description,
	updated_at = now()`)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return nil, fmt.Errorf("upsert territory %s: %w", territory.TerritoryCode, err)
	}

	selectQuery := builder().Select(territoryColumns...).
		From(tableTerritories).
		Where(sq.And{
			sq.Eq{"territory_code": territory.TerritoryCode},
			sq.Eq{"effective_date": territory.EffectiveDate},
		})

	var selected domain.Territory
	if err := s.pool.Getx(ctx, &selected, selectQuery); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

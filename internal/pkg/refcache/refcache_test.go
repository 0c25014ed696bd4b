package refcache

import (
	"context"
	"testing"
	"time"

	"github.com/mreiner/compquote/internal/domain"
	"github.com/mreiner/compquote/internal/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSource struct {
	rateCalls      int
	territoryCalls int
}

func (s *countingSource) ClassCodeRate(_ context.Context, stateCode, classCode string, _ time.Time) (*domain.ClassCodeRate, error) {
	s.rateCalls++
	if classCode == "0000" {
		return nil, constants.ErrDBNotFound
	}
	return &domain.ClassCodeRate{StateCode: stateCode, ClassCode: classCode, BaseRate: 1.23}, nil
}

func (s *countingSource) Territories(_ context.Context, stateCode string, _ time.Time) ([]*domain.Territory, error) {
	s.territoryCalls++
	return []*domain.Territory{{TerritoryCode: stateCode + "-01", StateCode: stateCode, RateMultiplier: 1.1}}, nil
}

func TestSource_CachesLookups(t *testing.T) {
	next := &countingSource{}
	source := New(next, time.Minute)
	ctx := context.Background()
	asOf := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		rate, err := source.ClassCodeRate(ctx, "CA", "8810", asOf)
		require.NoError(t, err)
		assert.Equal(t, 1.23, rate.BaseRate)

		territories, err := source.Territories(ctx, "CA", asOf)
		require.NoError(t, err)
		assert.Len(t, territories, 1)
	}

	assert.Equal(t, 1, next.rateCalls)
	assert.Equal(t, 1, next.territoryCalls)
}

func TestSource_DoesNotCacheErrors(t *testing.T) {
	next := &countingSource{}
	source := New(next, time.Minute)
	ctx := context.Background()
	asOf := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 2; i++ {
		_, err := source.ClassCodeRate(ctx, "CA", "0000", asOf)
		assert.ErrorIs(t, err, constants.ErrDBNotFound)
	}

	assert.Equal(t, 2, next.rateCalls)
}

func TestSource_InvalidateDropsEntries(t *testing.T) {
	next := &countingSource{}
	source := New(next, time.Minute)
	ctx := context.Background()
	asOf := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := source.ClassCodeRate(ctx, "CA", "8810", asOf)
	require.NoError(t, err)

	source.Invalidate()

	_, err = source.ClassCodeRate(ctx, "CA", "8810", asOf)
	require.NoError(t, err)
	assert.Equal(t, 2, next.rateCalls)
}

package refcache

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/mreiner/compquote/internal/domain"
	"github.com/mreiner/compquote/internal/service/rating"
)

// Source caches reference-data lookups in front of another RateSource.
// Reference data changes rarely relative to how often it is read during
// rating runs, so a short TTL keeps the store mostly idle.
type Source struct {
	next rating.RateSource
	mem  *gocache.Cache
}

func New(next rating.RateSource, ttl time.Duration) *Source {
	return &Source{
		next: next,
		mem:  gocache.New(ttl, 2*ttl),
	}
}

func (s *Source) ClassCodeRate(ctx context.Context, stateCode, classCode string, asOf time.Time) (*domain.ClassCodeRate, error) {
	key := fmt.Sprintf("rate:%s:%s:%s", stateCode, classCode, asOf.Format("2006-01-02"))
	if cached, found := s.mem.Get(key); found {
		return cached.(*domain.ClassCodeRate), nil
	}

	rate, err := s.next.ClassCodeRate(ctx, stateCode, classCode, asOf)
	if err != nil {
		return nil, err
	}

	s.mem.SetDefault(key, rate)
	return rate, nil
}

func (s *Source) Territories(ctx context.Context, stateCode string, asOf time.Time) ([]*domain.Territory, error) {
	key := fmt.Sprintf("territories:%s:%s", stateCode, asOf.Format("2006-01-02"))
	if cached, found := s.mem.Get(key); found {
		return cached.([]*domain.Territory), nil
	}

	territories, err := s.next.Territories(ctx, stateCode, asOf)
	if err != nil {
		return nil, err
	}

	s.mem.SetDefault(key, territories)
	return territories, nil
}

// Invalidate drops all cached entries. Called after reference-data
// administration changes.
func (s *Source) Invalidate() {
	s.mem.Flush()
}

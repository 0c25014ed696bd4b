package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mreiner/compquote/internal/domain"
	"github.com/mreiner/compquote/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

// Store is the persistence boundary: read-only reference data for the
// rating engine plus saved ratings and quotes for the application shell.
type Store interface {
	// reference data (implements rating.RateSource)
	ClassCodeRate(ctx context.Context, stateCode, classCode string, asOf time.Time) (*domain.ClassCodeRate, error)
	Territories(ctx context.Context, stateCode string, asOf time.Time) ([]*domain.Territory, error)

	ListClassCodeRates(ctx context.Context, stateCode string) ([]*domain.ClassCodeRate, error)
	UpsertClassCodeRate(ctx context.Context, rate *domain.ClassCodeRate) (*domain.ClassCodeRate, error)
	ListTerritories(ctx context.Context, stateCode string) ([]*domain.Territory, error)
	UpsertTerritory(ctx context.Context, territory *domain.Territory) (*domain.Territory, error)

	// saved ratings and quotes
	InsertRating(ctx context.Context, rating *domain.SavedRating) error
	GetRating(ctx context.Context, id uuid.UUID) (*domain.SavedRating, error)
	ListRatings(ctx context.Context) ([]*domain.SavedRating, error)
	UpdateRatingStatus(ctx context.Context, id uuid.UUID, status domain.RatingStatus) error
	InsertQuote(ctx context.Context, quote *domain.Quote) error
	ListQuotes(ctx context.Context) ([]*domain.Quote, error)
	CountQuotesByRating(ctx context.Context, ratingID uuid.UUID) (int, error)
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}

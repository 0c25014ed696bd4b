package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/mreiner/compquote/internal/domain"
	"github.com/mreiner/compquote/internal/pkg/constants"
	"github.com/mreiner/compquote/internal/pkg/logger"
)

var (
	ratingColumns = []string{"id", "business_info", "breakdowns", "total_premium", "risk_score", "status", "saved_at"}
	quoteColumns  = []string{"id", "quote_number", "rating_id", "premium", "effective_date", "expiration_date", "status", "created_at"}
)

func (s *store) InsertRating(ctx context.Context, rating *domain.SavedRating) error {
	if rating.ID == uuid.Nil {
		rating.ID = uuid.New()
	}
	if rating.SavedAt.IsZero() {
		rating.SavedAt = time.Now().UTC()
	}

	businessInfo, err := sonic.Marshal(rating.BusinessInfo)
	if err != nil {
		return fmt.Errorf("marshal business info: %w", err)
	}

	breakdowns, err := sonic.Marshal(rating.Breakdowns)
	if err != nil {
		return fmt.Errorf("marshal breakdowns: %w", err)
	}

	query := builder().Insert(tableRatings).
		Columns(ratingColumns...).
		Values(rating.ID, businessInfo, breakdowns, rating.TotalPremium.Round(2),
			rating.RiskScore, rating.Status, rating.SavedAt)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		logger.Errorf(ctx, "InsertRating: %s", err.Error())
		return fmt.Errorf("insert rating: %w", err)
	}

	return nil
}

func (s *store) GetRating(ctx context.Context, id uuid.UUID) (*domain.SavedRating, error) {
	query := builder().Select(ratingColumns...).
		From(tableRatings).
		Where(sq.Eq{"id": id})

	var selected domain.SavedRating
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) ListRatings(ctx context.Context) ([]*domain.SavedRating, error) {
	query := builder().Select(ratingColumns...).
		From(tableRatings).
		OrderBy("saved_at desc")

	var selected []*domain.SavedRating
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		logger.Errorf(ctx, "ListRatings: %s", err.Error())
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) UpdateRatingStatus(ctx context.Context, id uuid.UUID, status domain.RatingStatus) error {
	query := builder().Update(tableRatings).
		Set("status", status).
		Where(sq.Eq{"id": id})

	tag, err := s.pool.Execx(ctx, query)
	if err != nil {
		return fmt.Errorf("update rating status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return constants.ErrRatingNotFound
	}

	return nil
}

func (s *store) InsertQuote(ctx context.Context, quote *domain.Quote) error {
	if quote.ID == uuid.Nil {
		quote.ID = uuid.New()
	}
	if quote.CreatedAt.IsZero() {
		quote.CreatedAt = time.Now().UTC()
	}

	query := builder().Insert(tableQuotes).
		Columns(quoteColumns...).
		Values(quote.ID, quote.QuoteNumber, quote.RatingID, quote.Premium.Round(2),
			quote.EffectiveDate, quote.ExpirationDate, quote.Status, quote.CreatedAt)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		logger.Errorf(ctx, "InsertQuote: %s", err.Error())
		return fmt.Errorf("insert quote: %w", err)
	}

	return nil
}

func (s *store) ListQuotes(ctx context.Context) ([]*domain.Quote, error) {
	query := builder().Select(quoteColumns...).
		From(tableQuotes).
		OrderBy("created_at desc")

	var selected []*domain.Quote
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		logger.Errorf(ctx, "ListQuotes: %s", err.Error())
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) CountQuotesByRating(ctx context.Context, ratingID uuid.UUID) (int, error) {
	query := builder().Select("count(*)").
		From(tableQuotes).
		Where(sq.Eq{"rating_id": ratingID})

	var count int
	if err := s.pool.Getx(ctx, &count, query); err != nil {
		return 0, wrapErr(err)
	}

	return count, nil
}

package quoting

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/gommon/random"
	"github.com/shopspring/decimal"

	"github.com/mreiner/compquote/internal/domain"
	"github.com/mreiner/compquote/internal/pkg/constants"
	"github.com/mreiner/compquote/internal/pkg/logger"
	"github.com/mreiner/compquote/internal/pkg/store"
	"github.com/mreiner/compquote/internal/service/advisor"
	"github.com/mreiner/compquote/internal/service/rating"
)

// quoteValidity is how long an issued quote stays open.
const quoteValidity = 30 * 24 * time.Hour

// Service drives the quoting workflow: validate, rate, advise, persist.
type Service struct {
	engine  *rating.Engine
	advisor *advisor.Service
	store   store.Store
}

func NewService(engine *rating.Engine, adv *advisor.Service, st store.Store) *Service {
	return &Service{engine: engine, advisor: adv, store: st}
}

// CalculateResult pairs the numeric rating result with the advisory
// narrative. Warnings carries the validation pass advisories.
type CalculateResult struct {
	Rating       *domain.RatingResult        `json:"rating"`
	Optimization *domain.PremiumOptimization `json:"optimization,omitempty"`
	Warnings     []string                    `json:"warnings,omitempty"`
}

// Calculate runs the validation pass and, when it carries no errors, the
// rating pipeline. Validation errors abort with a ValidationError; the
// optimization narrative is additive and never fails the call.
func (s *Service) Calculate(ctx context.Context, data *domain.BusinessInfo, effectiveDate time.Time) (*CalculateResult, error) {
	validation := rating.ValidateRatingData(data)
	if !validation.Valid() {
		return nil, &constants.ValidationError{Fields: validation.Errors}
	}

	result, err := s.engine.CalculatePremium(ctx, data, effectiveDate)
	if err != nil {
		return nil, fmt.Errorf("CalculatePremium: %w", err)
	}

	return &CalculateResult{
		Rating:       result,
		Optimization: s.advisor.AnalyzeOptimizations(ctx, data, result),
		Warnings:     validation.Warnings,
	}, nil
}

// RateAndSave validates and rates the submission, then persists it as a
// draft. The optimization narrative is skipped; it is advisory output for
// the calculate endpoint, not part of the saved record.
func (s *Service) RateAndSave(ctx context.Context, data *domain.BusinessInfo, effectiveDate time.Time) (*domain.SavedRating, error) {
	validation := rating.ValidateRatingData(data)
	if !validation.Valid() {
		return nil, &constants.ValidationError{Fields: validation.Errors}
	}

	result, err := s.engine.CalculatePremium(ctx, data, effectiveDate)
	if err != nil {
		return nil, fmt.Errorf("CalculatePremium: %w", err)
	}

	return s.SaveRating(ctx, data, result)
}

func (s *Service) SaveRating(ctx context.Context, data *domain.BusinessInfo, result *domain.RatingResult) (*domain.SavedRating, error) {
	saved := &domain.SavedRating{
		ID:           uuid.New(),
		BusinessInfo: data,
		Breakdowns:   result.Breakdowns,
		TotalPremium: decimal.NewFromFloat(result.TotalPremium),
		RiskScore:    result.RiskScore.Total,
		Status:       domain.RatingStatusDraft,
		SavedAt:      time.Now().UTC(),
	}

	if err := s.store.InsertRating(ctx, saved); err != nil {
		return nil, fmt.Errorf("InsertRating: %w", err)
	}

	return saved, nil
}

func (s *Service) ListRatings(ctx context.Context) ([]*domain.SavedRating, error) {
	return s.store.ListRatings(ctx)
}

// IssueQuote creates a quote against a saved rating and marks the rating
// quoted.
func (s *Service) IssueQuote(ctx context.Context, ratingID uuid.UUID, effectiveDate time.Time) (*domain.Quote, error) {
	saved, err := s.store.GetRating(ctx, ratingID)
	if err != nil {
		return nil, constants.ErrRatingNotFound
	}

	quote := &domain.Quote{
		ID:             uuid.New(),
		QuoteNumber:    "Q-" + random.String(8, random.Uppercase, random.Numeric),
		RatingID:       saved.ID,
		Premium:        saved.TotalPremium,
		EffectiveDate:  effectiveDate,
		ExpirationDate: effectiveDate.Add(quoteValidity),
		Status:         domain.QuoteStatusIssued,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.store.InsertQuote(ctx, quote); err != nil {
		return nil, fmt.Errorf("InsertQuote: %w", err)
	}

	if err := s.store.UpdateRatingStatus(ctx, saved.ID, domain.RatingStatusQuoted); err != nil {
		// the quote exists; a stale rating status is recoverable
		logger.Errorf(ctx, "UpdateRatingStatus: %s", err.Error())
	}

	return quote, nil
}

func (s *Service) ListQuotes(ctx context.Context) ([]*domain.Quote, error) {
	return s.store.ListQuotes(ctx)
}

func (s *Service) QuoteCount(ctx context.Context, ratingID uuid.UUID) (int, error) {
	return s.store.CountQuotesByRating(ctx, ratingID)
}

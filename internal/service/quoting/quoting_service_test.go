package quoting

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mreiner/compquote/internal/domain"
	"github.com/mreiner/compquote/internal/pkg/constants"
	"github.com/mreiner/compquote/internal/service/advisor"
	"github.com/mreiner/compquote/internal/service/rating"
)

// memStore is an in-memory stand-in for the persistence layer.
type memStore struct {
	rates       map[string]*domain.ClassCodeRate
	territories map[string][]*domain.Territory
	ratings     map[uuid.UUID]*domain.SavedRating
	quotes      []*domain.Quote
	statuses    map[uuid.UUID]domain.RatingStatus
}

func newMemStore() *memStore {
	return &memStore{
		rates:       map[string]*domain.ClassCodeRate{},
		territories: map[string][]*domain.Territory{},
		ratings:     map[uuid.UUID]*domain.SavedRating{},
		statuses:    map[uuid.UUID]domain.RatingStatus{},
	}
}

func (m *memStore) ClassCodeRate(_ context.Context, stateCode, classCode string, _ time.Time) (*domain.ClassCodeRate, error) {
	rate, ok := m.rates[stateCode+"-"+classCode]
	if !ok {
		return nil, constants.ErrDBNotFound
	}
	return rate, nil
}

func (m *memStore) Territories(_ context.Context, stateCode string, _ time.Time) ([]*domain.Territory, error) {
	return m.territories[stateCode], nil
}

func (m *memStore) ListClassCodeRates(_ context.Context, _ string) ([]*domain.ClassCodeRate, error) {
	return nil, nil
}

func (m *memStore) UpsertClassCodeRate(_ context.Context, rate *domain.ClassCodeRate) (*domain.ClassCodeRate, error) {
	m.rates[rate.StateCode+"-"+rate.ClassCode] = rate
	return rate, nil
}

func (m *memStore) ListTerritories(_ context.Context, _ string) ([]*domain.Territory, error) {
	return nil, nil
}

func (m *memStore) UpsertTerritory(_ context.Context, territory *domain.Territory) (*domain.Territory, error) {
	m.territories[territory.StateCode] = append(m.territories[territory.StateCode], territory)
	return territory, nil
}

func (m *memStore) InsertRating(_ context.Context, saved *domain.SavedRating) error {
	m.ratings[saved.ID] = saved
	return nil
}

func (m *memStore) GetRating(_ context.Context, id uuid.UUID) (*domain.SavedRating, error) {
	saved, ok := m.ratings[id]
	if !ok {
		return nil, constants.ErrDBNotFound
	}
	return saved, nil
}

func (m *memStore) ListRatings(_ context.Context) ([]*domain.SavedRating, error) {
	out := make([]*domain.SavedRating, 0, len(m.ratings))
	for _, saved := range m.ratings {
		out = append(out, saved)
	}
	return out, nil
}

func (m *memStore) UpdateRatingStatus(_ context.Context, id uuid.UUID, status domain.RatingStatus) error {
	m.statuses[id] = status
	return nil
}

func (m *memStore) InsertQuote(_ context.Context, quote *domain.Quote) error {
	m.quotes = append(m.quotes, quote)
	return nil
}

func (m *memStore) ListQuotes(_ context.Context) ([]*domain.Quote, error) {
	return m.quotes, nil
}

func (m *memStore) CountQuotesByRating(_ context.Context, ratingID uuid.UUID) (int, error) {
	count := 0
	for _, quote := range m.quotes {
		if quote.RatingID == ratingID {
			count++
		}
	}
	return count, nil
}

func newTestService(st *memStore) *Service {
	return NewService(rating.NewEngine(st), advisor.NewService("", ""), st)
}

func clericalSubmission() *domain.BusinessInfo {
	return &domain.BusinessInfo{
		Name:            "Acme Staffing LLC",
		YearsInBusiness: 4,
		Locations: []domain.Address{
			{Street: "1 Main St", City: "Sacramento", State: "CA", ZipCode: "95814"},
		},
		PayrollLines: []domain.PayrollLine{
			{StateCode: "CA", ClassCode: "8810", AnnualPayroll: 100_000, EmployeeCount: 4},
		},
		WorkforceMetrics: domain.WorkforceMetrics{TurnoverRate: 0.30, AvgTenure: 3, TrainingHoursPerYear: 10},
	}
}

func TestCalculate(t *testing.T) {
	st := newMemStore()
	st.rates["CA-8810"] = &domain.ClassCodeRate{
		StateCode: "CA", ClassCode: "8810", BaseRate: 0.35, HazardGroup: "A", IndustryGroup: "Clerical",
	}
	svc := newTestService(st)

	result, err := svc.Calculate(context.Background(), clericalSubmission(), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Len(t, result.Rating.Breakdowns, 1)
	assert.InDelta(t, 301.00, result.Rating.TotalPremium, 1e-9)
	assert.NotNil(t, result.Rating.RiskScore)
	assert.NotNil(t, result.Optimization)
	assert.Contains(t, result.Warnings, "no loss history provided")
}

func TestCalculate_ValidationFailure(t *testing.T) {
	svc := newTestService(newMemStore())

	data := clericalSubmission()
	data.PayrollLines = nil

	_, err := svc.Calculate(context.Background(), data, time.Now())
	require.Error(t, err)

	var validationErr *constants.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Fields, "at least one payroll classification is required")
}

func TestRateAndSave(t *testing.T) {
	st := newMemStore()
	st.rates["CA-8810"] = &domain.ClassCodeRate{
		StateCode: "CA", ClassCode: "8810", BaseRate: 0.35, HazardGroup: "A", IndustryGroup: "Clerical",
	}
	svc := newTestService(st)

	saved, err := svc.RateAndSave(context.Background(), clericalSubmission(), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, saved.ID)
	assert.Equal(t, domain.RatingStatusDraft, saved.Status)
	assert.Equal(t, "301", saved.TotalPremium.String())
	require.Contains(t, st.ratings, saved.ID)
}

func TestIssueQuote(t *testing.T) {
	st := newMemStore()
	st.rates["CA-8810"] = &domain.ClassCodeRate{
		StateCode: "CA", ClassCode: "8810", BaseRate: 0.35, HazardGroup: "A", IndustryGroup: "Clerical",
	}
	svc := newTestService(st)

	saved, err := svc.RateAndSave(context.Background(), clericalSubmission(), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	effective := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	quote, err := svc.IssueQuote(context.Background(), saved.ID, effective)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(quote.QuoteNumber, "Q-"))
	assert.Len(t, quote.QuoteNumber, 10)
	assert.True(t, quote.Premium.Equal(saved.TotalPremium))
	assert.Equal(t, effective.Add(30*24*time.Hour), quote.ExpirationDate)
	assert.Equal(t, domain.QuoteStatusIssued, quote.Status)
	assert.Equal(t, domain.RatingStatusQuoted, st.statuses[saved.ID])

	count, err := svc.QuoteCount(context.Background(), saved.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestIssueQuote_UnknownRating(t *testing.T) {
	svc := newTestService(newMemStore())

	_, err := svc.IssueQuote(context.Background(), uuid.New(), time.Now())
	assert.ErrorIs(t, err, constants.ErrRatingNotFound)
}

package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RatingStatus string

const (
	RatingStatusDraft    RatingStatus = "draft"
	RatingStatusQuoted   RatingStatus = "quoted"
	RatingStatusArchived RatingStatus = "archived"
)

type QuoteStatus string

const (
	QuoteStatusIssued   QuoteStatus = "issued"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusExpired  QuoteStatus = "expired"
)

// SavedRating is a persisted rating run.
type SavedRating struct {
	ID           uuid.UUID           `db:"id" json:"id"`
	BusinessInfo *BusinessInfo       `db:"business_info" json:"businessInfo"`
	Breakdowns   []*PremiumBreakdown `db:"breakdowns" json:"breakdowns"`
	TotalPremium decimal.Decimal     `db:"total_premium" json:"totalPremium"`
	RiskScore    int                 `db:"risk_score" json:"riskScore"`
	Status       RatingStatus        `db:"status" json:"status"`
	SavedAt      time.Time           `db:"saved_at" json:"savedAt"`
}

// Quote is issued against a saved rating.
type Quote struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	QuoteNumber    string          `db:"quote_number" json:"quoteNumber"`
	RatingID       uuid.UUID       `db:"rating_id" json:"ratingId"`
	Premium        decimal.Decimal `db:"premium" json:"premium"`
	EffectiveDate  time.Time       `db:"effective_date" json:"effectiveDate"`
	ExpirationDate time.Time       `db:"expiration_date" json:"expirationDate"`
	Status         QuoteStatus     `db:"status" json:"status"`
	CreatedAt      time.Time       `db:"created_at" json:"createdAt"`
}

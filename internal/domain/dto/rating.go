package dto

import (
	"time"

	"github.com/mreiner/compquote/internal/domain"
)

// DateLayout is the wire format for plain dates (effective dates and the
// like). Loss and review dates inside BusinessInfo use RFC 3339.
const DateLayout = "2006-01-02"

// RatingRequest is the body of the calculate and save endpoints.
type RatingRequest struct {
	Business      *domain.BusinessInfo `json:"business" validate:"required"`
	EffectiveDate string               `json:"effectiveDate" validate:"omitempty,datetime=2006-01-02"`
}

// QuoteRequest is the body of the quote issuance endpoint.
type QuoteRequest struct {
	EffectiveDate string `json:"effectiveDate" validate:"omitempty,datetime=2006-01-02"`
}

// UpsertRateRequest is the admin body for loading a single class-code rate.
type UpsertRateRequest struct {
	StateCode     string  `json:"stateCode" validate:"required,len=2"`
	ClassCode     string  `json:"classCode" validate:"required"`
	EffectiveDate string  `json:"effectiveDate" validate:"required,datetime=2006-01-02"`
	BaseRate      float64 `json:"baseRate" validate:"gte=0"`
	HazardGroup   string  `json:"hazardGroup"`
	IndustryGroup string  `json:"industryGroup"`
}

func (r *UpsertRateRequest) ToDomain() *domain.ClassCodeRate {
	effective, _ := time.Parse(DateLayout, r.EffectiveDate)
	return &domain.ClassCodeRate{
		StateCode:     r.StateCode,
		ClassCode:     r.ClassCode,
		EffectiveDate: effective,
		BaseRate:      r.BaseRate,
		HazardGroup:   r.HazardGroup,
		IndustryGroup: r.IndustryGroup,
	}
}

// UpsertTerritoryRequest is the admin body for loading a territory.
type UpsertTerritoryRequest struct {
	TerritoryCode  string            `json:"territoryCode" validate:"required"`
	StateCode      string            `json:"stateCode" validate:"required,len=2"`
	Description    string            `json:"description"`
	RateMultiplier float64           `json:"rateMultiplier" validate:"gt=0"`
	ZipRanges      []domain.ZipRange `json:"zipRanges"`
	EffectiveDate  string            `json:"effectiveDate" validate:"required,datetime=2006-01-02"`
}

func (r *UpsertTerritoryRequest) ToDomain() *domain.Territory {
	effective, _ := time.Parse(DateLayout, r.EffectiveDate)
	return &domain.Territory{
		TerritoryCode:  r.TerritoryCode,
		StateCode:      r.StateCode,
		Description:    r.Description,
		RateMultiplier: r.RateMultiplier,
		ZipRanges:      r.ZipRanges,
		EffectiveDate:  effective,
	}
}

// ImportBulletinRequest is the admin body for the rate bulletin importer.
type ImportBulletinRequest struct {
	URL           string `json:"url" validate:"required,url"`
	StateCode     string `json:"stateCode" validate:"required,len=2"`
	EffectiveDate string `json:"effectiveDate" validate:"required,datetime=2006-01-02"`
}

package controller

import (
	"time"

	"github.com/spf13/viper"

	"github.com/mreiner/compquote/internal/domain/dto"
	"github.com/mreiner/compquote/internal/pkg/constants"
	"github.com/mreiner/compquote/internal/pkg/store"
	"github.com/mreiner/compquote/internal/service/quoting"
	"github.com/mreiner/compquote/internal/service/refdata"
)

type Controller struct {
	quotingService *quoting.Service
	refdataService *refdata.Service
	store          store.Store
	invalidate     func()
}

func NewController(
	quotingService *quoting.Service,
	refdataService *refdata.Service,
	st store.Store,
	invalidate func(),
) *Controller {
	return &Controller{
		quotingService: quotingService,
		refdataService: refdataService,
		store:          st,
		invalidate:     invalidate,
	}
}

// effectiveDate resolves the rating effective date: the request value wins,
// then the configured default, then today.
func effectiveDate(raw string) time.Time {
	if parsed, err := time.Parse(dto.DateLayout, raw); err == nil {
		return parsed
	}

	if configured := viper.GetString(constants.ViperEffectiveDate); configured != "" {
		if parsed, err := time.Parse(dto.DateLayout, configured); err == nil {
			return parsed
		}
	}

	return time.Now().UTC().Truncate(24 * time.Hour)
}

package controller

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/mreiner/compquote/internal/domain/dto"
	"github.com/mreiner/compquote/internal/pkg/constants"
)

func (c *Controller) CalculateRating(ctx echo.Context) error {
	var req dto.RatingRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	result, err := c.quotingService.Calculate(ctx.Request().Context(), req.Business, effectiveDate(req.EffectiveDate))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, result)
}

func (c *Controller) SaveRating(ctx echo.Context) error {
	var req dto.RatingRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	saved, err := c.quotingService.RateAndSave(ctx.Request().Context(), req.Business, effectiveDate(req.EffectiveDate))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, saved)
}

func (c *Controller) ListRatings(ctx echo.Context) error {
	ratings, err := c.quotingService.ListRatings(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, ratings)
}

func (c *Controller) IssueQuote(ctx echo.Context) error {
	ratingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return constants.NewCodedError(http.StatusBadRequest, "invalid rating id")
	}

	var req dto.QuoteRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	quote, err := c.quotingService.IssueQuote(ctx.Request().Context(), ratingID, effectiveDate(req.EffectiveDate))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, quote)
}

func (c *Controller) ListQuotes(ctx echo.Context) error {
	quotes, err := c.quotingService.ListQuotes(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, quotes)
}

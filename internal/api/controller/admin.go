package controller

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mreiner/compquote/internal/domain/dto"
)

func (c *Controller) UpsertClassCodeRate(ctx echo.Context) error {
	var req dto.UpsertRateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	rate, err := c.store.UpsertClassCodeRate(ctx.Request().Context(), req.ToDomain())
	if err != nil {
		return err
	}
	c.invalidate()

	return ctx.JSON(http.StatusOK, rate)
}

func (c *Controller) UpsertTerritory(ctx echo.Context) error {
	var req dto.UpsertTerritoryRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	territory, err := c.store.UpsertTerritory(ctx.Request().Context(), req.ToDomain())
	if err != nil {
		return err
	}
	c.invalidate()

	return ctx.JSON(http.StatusOK, territory)
}

func (c *Controller) ImportRateBulletin(ctx echo.Context) error {
	var req dto.ImportBulletinRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	effective, _ := time.Parse(dto.DateLayout, req.EffectiveDate)
	imported, err := c.refdataService.ImportRateBulletin(ctx.Request().Context(), req.URL, req.StateCode, effective)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, imported)
}

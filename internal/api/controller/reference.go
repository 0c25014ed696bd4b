package controller

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mreiner/compquote/internal/pkg/constants"
)

func stateParam(ctx echo.Context) (string, error) {
	state := strings.ToUpper(ctx.Param("state"))
	if len(state) != 2 {
		return "", constants.NewCodedError(http.StatusBadRequest, "state must be a two-letter code")
	}

	return state, nil
}

func (c *Controller) GetClassCodeRates(ctx echo.Context) error {
	state, err := stateParam(ctx)
	if err != nil {
		return err
	}

	rates, err := c.store.ListClassCodeRates(ctx.Request().Context(), state)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, rates)
}

func (c *Controller) GetTerritories(ctx echo.Context) error {
	state, err := stateParam(ctx)
	if err != nil {
		return err
	}

	territories, err := c.store.ListTerritories(ctx.Request().Context(), state)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, territories)
}

package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mreiner/compquote/internal/domain"
	"github.com/mreiner/compquote/internal/pkg/constants"
)

func httpErrorHandler(err error, c echo.Context) {
	var validationErr *constants.ValidationError
	if errors.As(err, &validationErr) {
		_ = c.JSON(http.StatusBadRequest, domain.ErrorResponse{
			Message: validationErr.Error(),
			Code:    http.StatusBadRequest,
			Fields:  validationErr.Fields,
		})
		return
	}

	msg := err.Error()
	code := http.StatusInternalServerError
	for unwrapped := err; unwrapped != nil; unwrapped = errors.Unwrap(unwrapped) {
		if ce, ok := unwrapped.(*constants.CodedError); ok {
			code = ce.Code()
			break
		}
		if he, ok := unwrapped.(*echo.HTTPError); ok {
			code = he.Code
			msg = fmt.Sprintf("%v", he.Message)
			break
		}
	}

	_ = c.JSON(code, domain.ErrorResponse{
		Message: msg,
		Code:    code,
	})
}

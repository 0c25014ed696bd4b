package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mreiner/compquote/internal/domain/dto"
	"github.com/mreiner/compquote/internal/pkg/constants"
)

func bindRequest(body string, target interface{}) error {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return NewBinder().Bind(target, e.NewContext(req, rec))
}

func TestBinder_DecodesJSON(t *testing.T) {
	var req dto.RatingRequest

	err := bindRequest(`{"business":{"name":"Acme"},"effectiveDate":"2024-01-01"}`, &req)
	require.NoError(t, err)

	require.NotNil(t, req.Business)
	assert.Equal(t, "Acme", req.Business.Name)
	assert.Equal(t, "2024-01-01", req.EffectiveDate)
}

func TestBinder_MalformedJSON(t *testing.T) {
	var req dto.RatingRequest

	err := bindRequest(`{"business":`, &req)
	require.Error(t, err)

	coded, ok := err.(*constants.CodedError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, coded.Code())
}

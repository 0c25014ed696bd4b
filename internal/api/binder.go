package api

import (
	"io"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"

	"github.com/mreiner/compquote/internal/pkg/constants"
)

// Binder decodes JSON bodies with sonic and falls back to echo's default
// binder for everything else (path and query params included).
type Binder struct {
	fallback echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i interface{}, ctx echo.Context) error {
	req := ctx.Request()
	contentType := req.Header.Get(echo.HeaderContentType)

	if req.ContentLength != 0 && strings.HasPrefix(contentType, echo.MIMEApplicationJSON) {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return constants.NewCodedError(http.StatusBadRequest, "failed to read request body")
		}

		if err := sonic.Unmarshal(body, i); err != nil {
			return constants.NewCodedError(http.StatusBadRequest, "malformed request body")
		}

		if err := b.fallback.BindPathParams(ctx, i); err != nil {
			return err
		}
		return b.fallback.BindQueryParams(ctx, i)
	}

	return b.fallback.Bind(i, ctx)
}

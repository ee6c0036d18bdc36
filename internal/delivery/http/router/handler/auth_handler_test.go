package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpvalidator "hub/internal/delivery/http/validator"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlerContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = httpvalidator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(http.MethodPost, "/", reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_EmptyBodyFailsValidation(t *testing.T) {
	c, _ := newHandlerContext(t, "")
	h := NewAuthHandler(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	// An empty body binds into a zero struct; the required uuid must still
	// fail validation instead of reaching the usecase.
	err := h.Register(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Code)
}

func TestAuthHandler_Register_MalformedBody(t *testing.T) {
	c, rec := newHandlerContext(t, "{not json")
	h := NewAuthHandler(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := h.Register(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestAuthHandler_Refresh_MissingTokenFailsValidation(t *testing.T) {
	c, _ := newHandlerContext(t, `{"uuid":"device-1"}`)
	h := NewAuthHandler(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := h.Refresh(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Code)
}

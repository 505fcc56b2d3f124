package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/employees-api/internal/config"
	"github.com/deppfellow/employees-api/internal/errs"
	"github.com/deppfellow/employees-api/internal/server"
)

func handleError(t *testing.T, method string, err error) (*httptest.ResponseRecorder, errs.HTTPError) {
	t.Helper()

	log := zerolog.Nop()
	global := NewGlobalMiddlewares(&server.Server{Config: config.DefaultConfig(), Logger: &log})

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(method, "/", nil), rec)
	global.GlobalErrorHandler(err, c)

	var body errs.HTTPError
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestGlobalErrorHandler(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"http error", errs.NewBadRequestError("Invalid employee id", nil, nil), http.StatusBadRequest, "Invalid employee id"},
		{"wrapped http error", fmt.Errorf("ctx: %w", errs.NewNotFoundError("Employee not found", nil)), http.StatusNotFound, "Employee not found"},
		{"echo not found", echo.ErrNotFound, http.StatusNotFound, MsgRouteNotFound},
		{"echo method not allowed", echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed, "Method Not Allowed"},
		{"no rows", fmt.Errorf("get employee 3: %w", pgx.ErrNoRows), http.StatusNotFound, "Resource not found"},
		{"bad date", &pgconn.PgError{Code: "22007", Message: "invalid input syntax for type date"}, http.StatusInternalServerError, errs.InternalServerErrorMessage},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError, errs.InternalServerErrorMessage},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, body := handleError(t, http.MethodGet, tc.err)

			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, tc.status, body.Status)
			assert.Equal(t, tc.message, body.Message)
			assert.NotEmpty(t, body.Code)
		})
	}
}

func TestGlobalErrorHandler_HeadHasNoBody(t *testing.T) {
	rec, _ := handleError(t, http.MethodHead, echo.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, rec.Body.Len())
}

func TestStatusOf(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	require.NoError(t, c.NoContent(http.StatusNoContent))
	assert.Equal(t, http.StatusNoContent, statusOf(c, nil))
	assert.Equal(t, http.StatusBadRequest, statusOf(c, errs.NewBadRequestError("x", nil, nil)))
	assert.Equal(t, http.StatusTooManyRequests, statusOf(c, echo.ErrTooManyRequests))
	assert.Equal(t, http.StatusNotFound, statusOf(c, pgx.ErrNoRows))
	assert.Equal(t, http.StatusInternalServerError, statusOf(c, fmt.Errorf("boom")))
}

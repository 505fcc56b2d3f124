package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPError_JSONShape(t *testing.T) {
	err := NewBadRequestError("Missing required field(s)", nil, []FieldError{
		{Field: "birthday", Error: "is required"},
	})

	body, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)

	assert.JSONEq(t, `{
		"error": "Missing required field(s)",
		"code": "BAD_REQUEST",
		"status": 400,
		"errors": [{"field": "birthday", "error": "is required"}]
	}`, string(body))
}

func TestHTTPError_OmitsEmptyFieldErrors(t *testing.T) {
	body, err := json.Marshal(NewNotFoundError("Employee not found", nil))
	require.NoError(t, err)

	assert.JSONEq(t, `{"error":"Employee not found","code":"NOT_FOUND","status":404}`, string(body))
}

func TestNewInternalServerError_IsGeneric(t *testing.T) {
	err := NewInternalServerError()

	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Equal(t, "Internal server error", err.Message)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", err.Code)
}

func TestNewBadRequestError_CustomCode(t *testing.T) {
	code := "EMPLOYEE_INVALID"
	err := NewBadRequestError("bad", &code, nil)

	assert.Equal(t, "EMPLOYEE_INVALID", err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)
}

func TestHTTPError_MatchesThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("get employee: %w", NewNotFoundError("Employee not found", nil))

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.True(t, errors.Is(wrapped, &HTTPError{}))
}

func TestNewHTTPError_DefaultsMessage(t *testing.T) {
	err := NewHTTPError(http.StatusTooManyRequests, "")

	assert.Equal(t, "Too Many Requests", err.Message)
	assert.Equal(t, "TOO_MANY_REQUESTS", err.Code)
}

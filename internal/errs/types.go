package errs

import (
	"net/http"
)

// InternalServerErrorMessage is the only text a client ever sees for a 500.
const InternalServerErrorMessage = "Internal server error"

// statusCode derives the default machine code from the status text,
// e.g. 404 -> "NOT_FOUND".
func statusCode(status int) string {
	return MakeUpperCaseWithUnderscores(http.StatusText(status))
}

// NewBadRequestError creates a 400 HTTPError.
//
// code overrides the default "BAD_REQUEST" when non-nil; errors carries
// per-field validation failures.
func NewBadRequestError(message string, code *string, errors []FieldError) *HTTPError {
	formattedCode := statusCode(http.StatusBadRequest)
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Message: message,
		Code:    formattedCode,
		Status:  http.StatusBadRequest,
		Errors:  errors,
	}
}

// NewNotFoundError creates a 404 HTTPError.
func NewNotFoundError(message string, code *string) *HTTPError {
	formattedCode := statusCode(http.StatusNotFound)
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Message: message,
		Code:    formattedCode,
		Status:  http.StatusNotFound,
	}
}

// NewInternalServerError creates a 500 HTTPError with a generic message.
// The real cause is logged, never returned.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Message: InternalServerErrorMessage,
		Code:    statusCode(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
	}
}

// NewHTTPError creates an HTTPError for any other status, using the status
// text as the message when message is empty.
func NewHTTPError(status int, message string) *HTTPError {
	if message == "" {
		message = http.StatusText(status)
	}
	return &HTTPError{
		Message: message,
		Code:    statusCode(status),
		Status:  status,
	}
}

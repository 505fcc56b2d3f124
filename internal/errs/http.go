// Package errs defines the error types returned to API clients.
//
// Every failure that reaches the client is an *HTTPError, serialized as
//
//	{"error": "Employee not found", "code": "NOT_FOUND", "status": 404}
//
// with an optional "errors" list of field-level validation problems.
package errs

import "strings"

// FieldError is a validation problem tied to one request field.
//
//	{ "field": "birthday", "error": "is required" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the error type for API responses. It is serialized directly
// as the response body.
type HTTPError struct {
	// Message is the human-readable text, exposed under the "error" key.
	Message string `json:"error"`

	// Code is a machine-friendly identifier such as "BAD_REQUEST".
	Code string `json:"code"`

	Status int `json:"status"`

	// Errors holds field-level validation errors.
	Errors []FieldError `json:"errors,omitempty"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError. Code and Status are not
// compared.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// MakeUpperCaseWithUnderscores turns "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}

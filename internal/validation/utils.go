package validation

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/employees-api/internal/errs"
)

// Validatable is implemented by request payloads that validate themselves.
// Validate may return an *errs.HTTPError, validator.ValidationErrors or
// CustomValidationErrors.
type Validatable interface {
	Validate() error
}

// BodyReceiver is implemented by payloads that decode the raw request body
// themselves instead of relying on echo's binder.
type BodyReceiver interface {
	ReceiveBody(raw []byte)
}

// CustomValidationError is a validation issue that struct tags cannot express.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// maxBodyBytes caps how much of a request body a BodyReceiver is given.
const maxBodyBytes = 1 << 20

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// instance returns the shared validator. Field errors are named after the
// json tag so clients see "birthday", not "Birthday".
func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Struct validates s against its validate tags.
func Struct(s any) error {
	return instance().Struct(s)
}

// NewFieldsError converts a validation failure into a 400 with field errors.
func NewFieldsError(message string, err error) *errs.HTTPError {
	_, fieldErrors := extractValidationError(err)
	return errs.NewBadRequestError(message, nil, fieldErrors)
}

// BindAndValidate binds path parameters into payload, hands the body to
// BodyReceivers, then runs payload.Validate.
//
// Only BodyReceivers see the request body, and only when it is declared as
// JSON; any other body reaches them as empty. Payloads that do not take a
// body never have it read.
func BindAndValidate(c echo.Context, payload Validatable) error {
	binder := &echo.DefaultBinder{}
	if err := binder.BindPathParams(c, payload); err != nil {
		return errs.NewBadRequestError("Invalid request", nil, nil)
	}

	if receiver, ok := payload.(BodyReceiver); ok {
		var raw []byte
		if isJSON(c.Request()) {
			var err error
			if raw, err = readBody(c); err != nil {
				return errs.NewBadRequestError("Invalid request body", nil, nil)
			}
		}
		receiver.ReceiveBody(raw)
	}

	if err := payload.Validate(); err != nil {
		var httpErr *errs.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}

		msg, fieldErrors := extractValidationError(err)
		return errs.NewBadRequestError(msg, nil, fieldErrors)
	}

	return nil
}

func isJSON(r *http.Request) bool {
	ctype := strings.ToLower(r.Header.Get(echo.HeaderContentType))
	return strings.HasPrefix(ctype, echo.MIMEApplicationJSON)
}

func readBody(c echo.Context) ([]byte, error) {
	body := c.Request().Body
	if body == nil {
		return nil, nil
	}
	return io.ReadAll(io.LimitReader(body, maxBodyBytes))
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var customErrors CustomValidationErrors
	if errors.As(err, &customErrors) {
		for _, e := range customErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: e.Field,
				Error: e.Message,
			})
		}
		return "Validation failed", fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "Validation failed", []errs.FieldError{{Field: "", Error: err.Error()}}
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		var msg string

		switch e.Tag() {
		case "required":
			msg = "is required"
		case "min":
			if e.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", e.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", e.Param())
			}
		case "max":
			if e.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", e.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", e.Param())
			}
		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", e.Param())
		case "email":
			msg = "must be a valid email address"
		case "datetime":
			msg = fmt.Sprintf("must be a date in the format %s", e.Param())
		default:
			if e.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, e.Tag(), e.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, e.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}

package model

import (
	"bytes"
	"encoding/json"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/deppfellow/employees-api/internal/errs"
	"github.com/deppfellow/employees-api/internal/validation"
)

// Client-facing messages for request validation failures.
const (
	MsgInvalidEmployeeID = "Invalid employee id"
	MsgBodyRequired      = "Request body required"
	MsgInvalidBody       = "Invalid request body"
	MsgMissingFields     = "Missing required field(s)"
)

// EmployeeBody is the JSON object accepted by create and update. Salary is
// a pointer so an absent or null salary can be told apart from zero.
type EmployeeBody struct {
	Name     string           `json:"name" validate:"required"`
	Birthday string           `json:"birthday" validate:"required"`
	Salary   *decimal.Decimal `json:"salary" validate:"required"`
}

// Fields converts a validated body into store input.
func (b EmployeeBody) Fields() EmployeeFields {
	fields := EmployeeFields{
		Name:     b.Name,
		Birthday: b.Birthday,
	}
	if b.Salary != nil {
		fields.Salary = *b.Salary
	}
	return fields
}

// decodeEmployeeBody checks that raw is a JSON object and decodes its
// "name", "birthday" and "salary" members. Keys match exactly; any other
// spelling is ignored.
func decodeEmployeeBody(raw []byte) (EmployeeBody, error) {
	var body EmployeeBody

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return body, errs.NewBadRequestError(MsgBodyRequired, nil, nil)
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &members); err != nil {
		return body, errs.NewBadRequestError(MsgInvalidBody, nil, nil)
	}

	for key, dst := range map[string]any{
		"name":     &body.Name,
		"birthday": &body.Birthday,
		"salary":   &body.Salary,
	} {
		value, ok := members[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(value, dst); err != nil {
			return EmployeeBody{}, errs.NewBadRequestError(MsgInvalidBody, nil, nil)
		}
	}

	return body, nil
}

// validateEmployeeBody reports missing fields with their JSON names.
func validateEmployeeBody(body EmployeeBody) error {
	if err := validation.Struct(body); err != nil {
		return validation.NewFieldsError(MsgMissingFields, err)
	}
	return nil
}

// parseID unescapes and validates the raw :id path segment.
func parseID(raw string) (int64, error) {
	segment, err := url.PathUnescape(raw)
	if err != nil {
		return 0, errs.NewBadRequestError(MsgInvalidEmployeeID, nil, nil)
	}

	id, err := validation.ParseEmployeeID(segment)
	if err != nil {
		return 0, errs.NewBadRequestError(MsgInvalidEmployeeID, nil, nil)
	}
	return id, nil
}

// ListEmployeesRequest has no inputs.
type ListEmployeesRequest struct{}

func (r *ListEmployeesRequest) Validate() error {
	return nil
}

// GetEmployeeRequest addresses one employee by path id.
type GetEmployeeRequest struct {
	RawID string `param:"id" json:"-"`
	ID    int64  `json:"-"`
}

func (r *GetEmployeeRequest) Validate() error {
	id, err := parseID(r.RawID)
	if err != nil {
		return err
	}
	r.ID = id
	return nil
}

// DeleteEmployeeRequest addresses one employee by path id.
type DeleteEmployeeRequest struct {
	RawID string `param:"id" json:"-"`
	ID    int64  `json:"-"`
}

func (r *DeleteEmployeeRequest) Validate() error {
	id, err := parseID(r.RawID)
	if err != nil {
		return err
	}
	r.ID = id
	return nil
}

// CreateEmployeeRequest carries the raw body of POST /employees.
type CreateEmployeeRequest struct {
	raw  []byte
	Body EmployeeBody
}

// ReceiveBody implements validation.BodyReceiver.
func (r *CreateEmployeeRequest) ReceiveBody(raw []byte) {
	r.raw = raw
}

func (r *CreateEmployeeRequest) Validate() error {
	body, err := decodeEmployeeBody(r.raw)
	if err != nil {
		return err
	}
	if err := validateEmployeeBody(body); err != nil {
		return err
	}
	r.Body = body
	return nil
}

// UpdateEmployeeRequest carries the path id and raw body of
// PUT /employees/:id. The id is checked before the body.
type UpdateEmployeeRequest struct {
	RawID string `param:"id"`
	ID    int64
	raw   []byte
	Body  EmployeeBody
}

// ReceiveBody implements validation.BodyReceiver.
func (r *UpdateEmployeeRequest) ReceiveBody(raw []byte) {
	r.raw = raw
}

func (r *UpdateEmployeeRequest) Validate() error {
	id, err := parseID(r.RawID)
	if err != nil {
		return err
	}

	body, err := decodeEmployeeBody(r.raw)
	if err != nil {
		return err
	}
	if err := validateEmployeeBody(body); err != nil {
		return err
	}

	r.ID = id
	r.Body = body
	return nil
}

package model

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/employees-api/internal/errs"
)

func requireBadRequest(t *testing.T, err error, message string) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %v", err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, message, httpErr.Message)
	return httpErr
}

func createRequest(body string) *CreateEmployeeRequest {
	req := &CreateEmployeeRequest{}
	req.ReceiveBody([]byte(body))
	return req
}

func TestCreateEmployeeRequest_Valid(t *testing.T) {
	req := createRequest(`{"name":"Jane","birthday":"2000-01-01","salary":0}`)

	require.NoError(t, req.Validate())
	assert.Equal(t, "Jane", req.Body.Name)
	assert.True(t, req.Body.Fields().Salary.IsZero())
}

func TestCreateEmployeeRequest_NumericStringSalary(t *testing.T) {
	req := createRequest(`{"name":"Jane","birthday":"2000-01-01","salary":"65000.50"}`)

	require.NoError(t, req.Validate())
	assert.True(t, decimal.RequireFromString("65000.5").Equal(req.Body.Fields().Salary))
}

func TestCreateEmployeeRequest_BodyRequired(t *testing.T) {
	for _, body := range []string{"", "   ", "null", "[]", `[{"name":"Jane"}]`, `"Jane"`, "42", "true"} {
		requireBadRequest(t, createRequest(body).Validate(), MsgBodyRequired)
	}
}

func TestCreateEmployeeRequest_InvalidBody(t *testing.T) {
	for _, body := range []string{
		`{"name":`,
		`{"name": 5, "birthday": "2000-01-01", "salary": 1}`,
		`{"name": "Jane", "birthday": "2000-01-01", "salary": "lots"}`,
	} {
		requireBadRequest(t, createRequest(body).Validate(), MsgInvalidBody)
	}
}

func TestCreateEmployeeRequest_MissingFields(t *testing.T) {
	httpErr := requireBadRequest(t, createRequest(`{"name":"Jane"}`).Validate(), MsgMissingFields)

	assert.ElementsMatch(t, []errs.FieldError{
		{Field: "birthday", Error: "is required"},
		{Field: "salary", Error: "is required"},
	}, httpErr.Errors)
}

func TestCreateEmployeeRequest_EmptyAndNullFieldsAreMissing(t *testing.T) {
	httpErr := requireBadRequest(t,
		createRequest(`{"name":"","birthday":"2000-01-01","salary":null}`).Validate(),
		MsgMissingFields)

	assert.ElementsMatch(t, []errs.FieldError{
		{Field: "name", Error: "is required"},
		{Field: "salary", Error: "is required"},
	}, httpErr.Errors)
}

func TestCreateEmployeeRequest_KeysAreCaseSensitive(t *testing.T) {
	httpErr := requireBadRequest(t,
		createRequest(`{"NAME":"Jane","Birthday":"2000-01-01","SALARY":1}`).Validate(),
		MsgMissingFields)

	assert.ElementsMatch(t, []errs.FieldError{
		{Field: "name", Error: "is required"},
		{Field: "birthday", Error: "is required"},
		{Field: "salary", Error: "is required"},
	}, httpErr.Errors)
}

func TestCreateEmployeeRequest_UnknownKeysIgnored(t *testing.T) {
	req := createRequest(`{"name":"Jane","Name":"Other","birthday":"2000-01-01","salary":1,"id":99}`)

	require.NoError(t, req.Validate())
	assert.Equal(t, "Jane", req.Body.Name)
}

func TestUpdateEmployeeRequest_IDCheckedFirst(t *testing.T) {
	req := &UpdateEmployeeRequest{RawID: "abc"}
	req.ReceiveBody(nil)

	requireBadRequest(t, req.Validate(), MsgInvalidEmployeeID)
}

func TestUpdateEmployeeRequest_Valid(t *testing.T) {
	req := &UpdateEmployeeRequest{RawID: "1.0"}
	req.ReceiveBody([]byte(`{"name":"Jane","birthday":"2000-01-01","salary":1}`))

	require.NoError(t, req.Validate())
	assert.Equal(t, int64(1), req.ID)
}

func TestGetEmployeeRequest_RejectsExponent(t *testing.T) {
	req := &GetEmployeeRequest{RawID: "1e1"}

	requireBadRequest(t, req.Validate(), MsgInvalidEmployeeID)
}

func TestGetEmployeeRequest_UnescapesPathSegment(t *testing.T) {
	req := &GetEmployeeRequest{RawID: "%31"}
	require.NoError(t, req.Validate())
	assert.Equal(t, int64(1), req.ID)

	req = &GetEmployeeRequest{RawID: "%31e1"}
	requireBadRequest(t, req.Validate(), MsgInvalidEmployeeID)

	req = &GetEmployeeRequest{RawID: "%zz"}
	requireBadRequest(t, req.Validate(), MsgInvalidEmployeeID)
}

func TestEmployee_SalaryIsJSONNumber(t *testing.T) {
	data, err := json.Marshal(Employee{ID: 1, Name: "Jane", Birthday: "2000-01-01", Salary: decimal.NewFromInt(65000)})
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":1,"name":"Jane","birthday":"2000-01-01","salary":65000}`, string(data))
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "employees:12", CacheKey(12))
}

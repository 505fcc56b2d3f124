package model

import (
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"
)

// Employee is the single persisted resource.
type Employee struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Birthday string          `json:"birthday"`
	Salary   decimal.Decimal `json:"salary"`
}

// EmployeeFields are the mutable columns of an Employee, as supplied to
// create and update.
type EmployeeFields struct {
	Name     string
	Birthday string
	Salary   decimal.Decimal
}

// Fields returns the mutable part of e.
func (e Employee) Fields() EmployeeFields {
	return EmployeeFields{
		Name:     e.Name,
		Birthday: e.Birthday,
		Salary:   e.Salary,
	}
}

// CacheKey is the Redis key an employee is cached under.
func CacheKey(id int64) string {
	return "employees:" + strconv.FormatInt(id, 10)
}

// MarshalBinary lets go-redis store an Employee directly.
func (e *Employee) MarshalBinary() ([]byte, error) {
	return json.Marshal(e)
}

// UnmarshalBinary lets go-redis scan a cached Employee.
func (e *Employee) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, e)
}

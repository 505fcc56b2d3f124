package email

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/employees-api/internal/model"
)

func TestRender_EmployeeChanged(t *testing.T) {
	html, err := Render(TemplateEmployeeChanged, EmployeeChangedData{
		Action: "updated",
		Employee: model.Employee{
			ID:       3,
			Name:     "Michael <Brown>",
			Birthday: "1988-11-08",
			Salary:   decimal.NewFromInt(68000),
		},
	})
	require.NoError(t, err)

	assert.Contains(t, html, "Employee 3 was updated")
	assert.Contains(t, html, "Michael &lt;Brown&gt;")
	assert.Contains(t, html, "1988-11-08")
	assert.Contains(t, html, "68000")
}

func TestRender_DeletedOmitsFields(t *testing.T) {
	html, err := Render(TemplateEmployeeChanged, EmployeeChangedData{
		Action:   "deleted",
		Employee: model.Employee{ID: 9},
	})
	require.NoError(t, err)

	assert.Contains(t, html, "Employee 9 was deleted")
	assert.NotContains(t, html, "Birthday")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, err := Render("missing", nil)
	assert.Error(t, err)
}

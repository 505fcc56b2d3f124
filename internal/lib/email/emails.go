package email

import (
	"fmt"

	"github.com/deppfellow/employees-api/internal/model"
)

// EmployeeChangedData is what employee_changed.html renders.
type EmployeeChangedData struct {
	Action   string
	Employee model.Employee
}

// SendEmployeeChanged tells the notification address that an employee was
// created, updated or deleted.
func (c *Client) SendEmployeeChanged(to string, data EmployeeChangedData) error {
	subject := fmt.Sprintf("Employee %d %s", data.Employee.ID, data.Action)
	return c.SendEmail(to, subject, TemplateEmployeeChanged, data)
}

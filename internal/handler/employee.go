package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/employees-api/internal/model"
	"github.com/deppfellow/employees-api/internal/server"
	"github.com/deppfellow/employees-api/internal/service"
)

// EmployeeHandler serves the /employees resource.
type EmployeeHandler struct {
	Handler
	employees *service.EmployeeService
}

func NewEmployeeHandler(s *server.Server, employees *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		Handler:   NewHandler(s),
		employees: employees,
	}
}

func (h *EmployeeHandler) ListEmployees(c echo.Context, _ *model.ListEmployeesRequest) ([]model.Employee, error) {
	return h.employees.List(c.Request().Context())
}

func (h *EmployeeHandler) GetEmployee(c echo.Context, req *model.GetEmployeeRequest) (*model.Employee, error) {
	return h.employees.Get(c.Request().Context(), req.ID)
}

func (h *EmployeeHandler) CreateEmployee(c echo.Context, req *model.CreateEmployeeRequest) (*model.Employee, error) {
	return h.employees.Create(c.Request().Context(), req.Body.Fields())
}

func (h *EmployeeHandler) UpdateEmployee(c echo.Context, req *model.UpdateEmployeeRequest) (*model.Employee, error) {
	return h.employees.Update(c.Request().Context(), req.ID, req.Body.Fields())
}

func (h *EmployeeHandler) DeleteEmployee(c echo.Context, req *model.DeleteEmployeeRequest) error {
	return h.employees.Delete(c.Request().Context(), req.ID)
}

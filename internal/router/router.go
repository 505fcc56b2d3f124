// Package router builds the echo instance: global middleware, the error
// handler, system routes and the employee routes.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/employees-api/internal/handler"
	"github.com/deppfellow/employees-api/internal/middleware"
	"github.com/deppfellow/employees-api/internal/model"
	"github.com/deppfellow/employees-api/internal/server"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Pre(middlewares.Global.RemoveTrailingSlash())

	router.Use(
		middleware.RequestID(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.RateLimit.RateLimiter(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Metrics.Middleware(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h, middlewares)
	registerEmployeeRoutes(router, h.Employee)

	return router
}

func registerEmployeeRoutes(r *echo.Echo, h *handler.EmployeeHandler) {
	employees := r.Group("/employees")

	employees.GET("", handler.Handle(h.Handler, h.ListEmployees, http.StatusOK,
		func() *model.ListEmployeesRequest { return &model.ListEmployeesRequest{} }))

	employees.POST("", handler.Handle(h.Handler, h.CreateEmployee, http.StatusCreated,
		func() *model.CreateEmployeeRequest { return &model.CreateEmployeeRequest{} }))

	employees.GET("/:id", handler.Handle(h.Handler, h.GetEmployee, http.StatusOK,
		func() *model.GetEmployeeRequest { return &model.GetEmployeeRequest{} }))

	employees.PUT("/:id", handler.Handle(h.Handler, h.UpdateEmployee, http.StatusOK,
		func() *model.UpdateEmployeeRequest { return &model.UpdateEmployeeRequest{} }))

	employees.DELETE("/:id", handler.HandleNoContent(h.Handler, h.DeleteEmployee, http.StatusNoContent,
		func() *model.DeleteEmployeeRequest { return &model.DeleteEmployeeRequest{} }))
}

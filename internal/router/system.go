package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/employees-api/internal/handler"
	"github.com/deppfellow/employees-api/internal/middleware"
)

func registerSystemRoutes(r *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	r.GET("/", handler.Welcome)

	r.GET("/status", h.Health.CheckHealth)

	r.GET("/metrics", m.Metrics.Handler())

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)

	r.GET("/static/openapi.json", handler.HandleFile(h.OpenAPI.Handler, h.OpenAPI.GetOpenAPISpec, http.StatusOK,
		func() *handler.OpenAPISpecRequest { return &handler.OpenAPISpecRequest{} },
		"openapi.json", echo.MIMEApplicationJSON))
}

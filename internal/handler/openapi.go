package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/employees-api/internal/server"
	"github.com/deppfellow/employees-api/static"
)

type OpenAPIHandler struct {
	Handler
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

// OpenAPISpecRequest has no inputs.
type OpenAPISpecRequest struct{}

func (r *OpenAPISpecRequest) Validate() error {
	return nil
}

// ServeOpenAPIUI serves the Swagger UI page.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	page, err := static.FS.ReadFile("openapi.html")
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.HTMLBlob(http.StatusOK, page)
}

// GetOpenAPISpec returns the embedded OpenAPI document.
func (h *OpenAPIHandler) GetOpenAPISpec(c echo.Context, _ *OpenAPISpecRequest) ([]byte, error) {
	doc, err := static.FS.ReadFile("openapi.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read OpenAPI document: %w", err)
	}
	return doc, nil
}

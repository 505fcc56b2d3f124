package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const WelcomeMessage = "Welcome to the Fullstack Employees API."

// Welcome answers GET / with a plain-text greeting.
func Welcome(c echo.Context) error {
	return c.String(http.StatusOK, WelcomeMessage)
}

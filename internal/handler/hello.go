package handler

import (
	"net/http"

	"storefront-service/pkg/logger"

	"github.com/labstack/echo/v4"
)

// Root greets callers of the service root
func Root(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Hello from storefront-service root")
	return c.JSON(http.StatusOK, echo.Map{"message": "Hello from the storefront backend!"})
}

// Hello greets callers of the API hello route
func Hello(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Hello from storefront-service API")
	return c.JSON(http.StatusOK, echo.Map{"message": "Hello from the backend API!"})
}

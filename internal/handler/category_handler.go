package handler

import (
	"net/http"

	"storefront-service/pkg/logger"
	"storefront-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CategoryHandler serves the category listing route
type CategoryHandler struct {
	catalog ProductCatalog
}

// NewCategoryHandler creates a CategoryHandler over the given catalog
func NewCategoryHandler(catalog ProductCatalog) *CategoryHandler {
	return &CategoryHandler{catalog: catalog}
}

// List returns the distinct product categories, sorted. When the database is
// unavailable this degrades to an empty list instead of an error, unlike the
// product listing route.
func (h *CategoryHandler) List(c echo.Context) error {
	log := logger.FromContext(c)

	if h.catalog == nil {
		log.Warn("Database not available, returning empty category list")
		return c.JSON(http.StatusOK, []string{})
	}

	categories, err := h.catalog.Categories(c.Request().Context())
	if err != nil {
		log.Error("Failed to retrieve categories", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve categories",
		})
	}

	prometheus.RecordProductOperation("list_categories")
	log.Info("Categories retrieved successfully", zap.Int("count", len(categories)))
	return c.JSON(http.StatusOK, categories)
}

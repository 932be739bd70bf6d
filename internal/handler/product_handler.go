package handler

import (
	"context"
	"net/http"

	"storefront-service/internal/model"
	"storefront-service/pkg/logger"
	"storefront-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// ProductCatalog is the view of the product store that the catalog handlers
// need. A nil ProductCatalog means the database is unavailable.
type ProductCatalog interface {
	Find(ctx context.Context, category, search string) ([]bson.M, error)
	Categories(ctx context.Context) ([]string, error)
}

// ProductHandler serves the product listing routes
type ProductHandler struct {
	catalog ProductCatalog
}

// NewProductHandler creates a ProductHandler over the given catalog
func NewProductHandler(catalog ProductCatalog) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// List handles retrieving all products with optional filtering
func (h *ProductHandler) List(c echo.Context) error {
	log := logger.FromContext(c)

	if h.catalog == nil {
		log.Error("Database not available for product listing")
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Database not available",
		})
	}

	category := c.QueryParam("category")
	search := c.QueryParam("search")
	log.Info("Listing products",
		zap.String("category", category),
		zap.String("search", search))

	docs, err := h.catalog.Find(c.Request().Context(), category, search)
	if err != nil {
		log.Error("Failed to list products", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve products",
		})
	}

	products := make([]bson.M, 0, len(docs))
	for _, doc := range docs {
		products = append(products, model.SerializeDocument(doc))
	}

	prometheus.RecordProductOperation("list")
	log.Info("Products retrieved successfully", zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, products)
}

package handler

import (
	"context"
	"net/http"

	"storefront-service/internal/model"
	"storefront-service/pkg/logger"
	"storefront-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// OrderWriter is the view of the order store that order creation needs. A nil
// OrderWriter means the database is unavailable.
type OrderWriter interface {
	Insert(ctx context.Context, order model.Order) (string, error)
}

// OrderHandler serves the order creation route
type OrderHandler struct {
	orders OrderWriter
}

// NewOrderHandler creates an OrderHandler over the given order store
func NewOrderHandler(orders OrderWriter) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Create validates an incoming order payload, computes its total and persists
// it. Item prices and titles are trusted from the client; the catalog is not
// consulted.
func (h *OrderHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Creating new order")

	var req model.OrderCreate
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid order payload", zap.Error(err))
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"error": "Invalid request data",
		})
	}
	if err := c.Validate(&req); err != nil {
		log.Warn("Order payload failed validation", zap.Error(err))
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"error": err.Error(),
		})
	}

	if h.orders == nil {
		log.Error("Database not available for order creation")
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Database not available",
		})
	}

	order := req.Order()
	id, err := h.orders.Insert(c.Request().Context(), order)
	if err != nil {
		log.Error("Failed to create order",
			zap.String("email", req.Email),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create order",
		})
	}

	prometheus.RecordOrderOperation("create")
	prometheus.RecordOrderTotal(order.Total)
	log.Info("Order created successfully",
		zap.String("order_id", id),
		zap.Int("items", len(order.Items)),
		zap.Float64("total", order.Total))
	return c.JSON(http.StatusOK, echo.Map{
		"id":     id,
		"total":  order.Total,
		"status": "received",
	})
}

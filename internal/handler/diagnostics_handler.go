package handler

import (
	"context"
	"net/http"

	"storefront-service/pkg/config"
	"storefront-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// DatabaseInfo is the view of the store that diagnostics needs. A nil
// DatabaseInfo means the database is unavailable.
type DatabaseInfo interface {
	Name() string
	CollectionNames(ctx context.Context) ([]string, error)
}

// DiagnosticsReport describes backend and database health. Every failure mode
// is rendered into its string fields; the endpoint itself never errors.
type DiagnosticsReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseName     string   `json:"database_name,omitempty"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
	DatabaseURLEnv   string   `json:"database_url"`
	DatabaseNameEnv  string   `json:"database_name_env"`
}

// DiagnosticsHandler serves the database health-report route
type DiagnosticsHandler struct {
	db DatabaseInfo
}

// NewDiagnosticsHandler creates a DiagnosticsHandler over the given database
func NewDiagnosticsHandler(db DatabaseInfo) *DiagnosticsHandler {
	return &DiagnosticsHandler{db: db}
}

// Report checks whether the database is available and accessible. It always
// responds 200; unavailability shows up as descriptive field values.
func (h *DiagnosticsHandler) Report(c echo.Context) error {
	log := logger.FromContext(c)

	report := DiagnosticsReport{
		Backend:          "running",
		Database:         "not available",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if h.db != nil {
		report.Database = "available"
		report.ConnectionStatus = "connected"
		report.DatabaseName = h.db.Name()

		names, err := h.db.CollectionNames(c.Request().Context())
		if err != nil {
			log.Warn("Failed to list collections", zap.Error(err))
			report.Database = "connected but error: " + truncate(err.Error(), 50)
		} else {
			if len(names) > 10 {
				names = names[:10]
			}
			report.Collections = names
			report.Database = "connected & working"
		}
	}

	// Presence only, never the values.
	report.DatabaseURLEnv = presence(config.DatabaseURLSet())
	report.DatabaseNameEnv = presence(config.DatabaseNameSet())

	return c.JSON(http.StatusOK, report)
}

func presence(set bool) string {
	if set {
		return "set"
	}
	return "not set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

package main

import (
	"context"
	"net/http"

	"storefront-service/internal/handler"
	mid "storefront-service/internal/middleware"
	"storefront-service/internal/seed"
	"storefront-service/internal/store"
	"storefront-service/pkg/config"
	"storefront-service/pkg/database"
	"storefront-service/pkg/logger"
	"storefront-service/prometheus"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// requestValidator wires go-playground/validator into echo's bind/validate path
type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func main() {
	// Load configuration (reads .env if present)
	cfg, err := config.Load("storefront-service")
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	if err := logger.InitLogger(cfg); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting storefront-service",
		zap.String("environment", cfg.Server.Env),
		zap.String("port", cfg.Server.Port))

	// Initialize Prometheus metrics
	prometheus.InitMetrics(cfg)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", cfg.Metrics.Prefix))

	// Connect to the database. Failure is not fatal: the service keeps serving
	// in degraded mode and reports the condition on /test.
	var st *store.Store
	db, err := database.Connect(context.Background(), cfg)
	if err != nil {
		log.Warn("Database unavailable, serving in degraded mode", zap.Error(err))
	} else {
		st = store.New(db)
		log.Info("Database connection established",
			zap.String("db_name", db.Name()))

		// Seed the product catalog before accepting connections. Best effort:
		// seeding failures are logged inside Run and never abort startup.
		seed.Run(context.Background(), st.Products(), log)
	}

	// A nil store stays a nil interface so handlers can detect it.
	var (
		catalog handler.ProductCatalog
		orders  handler.OrderWriter
		dbinfo  handler.DatabaseInfo
	)
	if st != nil {
		catalog = st.Products()
		orders = st.Orders()
		dbinfo = st
	}

	productHandler := handler.NewProductHandler(catalog)
	categoryHandler := handler.NewCategoryHandler(catalog)
	orderHandler := handler.NewOrderHandler(orders)
	diagnostics := handler.NewDiagnosticsHandler(dbinfo)

	// Initialize Echo instance
	e := echo.New()
	e.Validator = &requestValidator{validate: validator.New()}

	// Middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}))
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Routes
	e.GET("/", handler.Root)
	e.GET("/api/hello", handler.Hello)
	e.GET("/api/products", productHandler.List)
	e.GET("/api/categories", categoryHandler.List)
	e.POST("/api/orders", orderHandler.Create)
	e.GET("/test", diagnostics.Report)

	// Start server
	port := cfg.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}

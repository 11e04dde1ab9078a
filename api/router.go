package api

import (
	"net/http"
	"salesledger_server/api/health"
	"salesledger_server/api/middleware"
	"salesledger_server/api/products"
	"salesledger_server/api/sales"
	"salesledger_server/config"
	"salesledger_server/database"
	"salesledger_server/lib"
	"salesledger_server/services"
	"salesledger_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	chiware "github.com/go-chi/chi/v5/middleware"
)

// App assembles the full HTTP surface. Every dependency is passed in
// explicitly; nothing here reaches for package-level state.
func App(cfg *structs.Config, logger *gecho.Logger, db *database.DB, cache *services.CacheService) chi.Router {
	r := chi.NewRouter()

	logLevel := gecho.ParseLogLevel(config.GetLogLevel())
	mwLogger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(false), gecho.WithLogLevel(logLevel)))

	// stores
	saleStore := database.NewSaleStore(db)
	productStore := database.NewProductStore(db)

	// services
	saleService := services.NewSaleService(logger, saleStore, productStore)
	productService := services.NewProductService(logger, productStore)
	healthService := services.NewHealthService(logger, db)

	// Initialize middleware
	mw := middleware.NewMiddleware(cfg, mwLogger, cache)

	// Core infra
	r.Use(mw.RequestID())
	r.Use(chiware.RealIP)
	r.Use(chiware.Recoverer)

	// Limits & security
	r.Use(mw.BodyLimit(1 * 1024 * 1024))
	r.Use(mw.SecurityHeaders())

	// Observability
	r.Use(middleware.MetricsMiddleware)
	r.Use(gecho.Handlers.CreateLoggingMiddleware(mwLogger))

	// CORS (must run before the rate limiter so preflights pass through)
	r.Use(mw.SetupCORS().Handler)
	r.Use(mw.RateLimitMiddleware())

	// Register all routes
	NewRouterManager(
		sales.NewSalesRoutesManager(logger, saleService),
		products.NewProductRoutesManager(logger, productService),
		health.NewHealthRoutesManager(healthService),
	).RegisterRoutes(r)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		lib.WriteMessage(w, http.StatusOK, "Backend is running")
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		lib.WriteError(w, http.StatusNotFound, "not found")
	})

	return r
}

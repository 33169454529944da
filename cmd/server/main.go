package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/mdanwarhossen/emajohn/internal"
	"github.com/mdanwarhossen/emajohn/internal/catalog"
	"github.com/mdanwarhossen/emajohn/internal/engine"
	"github.com/mdanwarhossen/emajohn/internal/handler/storefront"
	"github.com/mdanwarhossen/emajohn/internal/middleware"
	"github.com/mdanwarhossen/emajohn/internal/router"
)

func run() error {
	ctx := context.Background()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Load the catalog once per session. Load never fails: on fetch or
	// decode problems it logs and returns the fallback catalog.
	logger.Info("Loading product catalog...", "url", cfg.CatalogURL)
	loader := catalog.NewLoader(cfg.CatalogURL, cfg.CatalogTimeout, logger)
	products := loader.Load(ctx)
	logger.Info("Catalog loaded", "products", len(products))

	// Initialize the state engine
	eng := engine.New(products, logger)
	eng.SetViewportWidth(cfg.ViewportWidth)

	// Initialize handlers
	viewHandler := storefront.NewViewHandler(eng)
	searchHandler := storefront.NewSearchHandler(eng)
	sortHandler := storefront.NewSortHandler(eng)
	addToCartHandler := storefront.NewAddToCartHandler(eng)
	adjustQtyHandler := storefront.NewAdjustQtyHandler(eng)
	resizeHandler := storefront.NewResizeHandler(eng)
	pageHandler := storefront.NewPageHandler()

	// Initialize middleware
	metrics := middleware.NewMetrics("emajohn")
	rateLimiter := middleware.NewRateLimiter(middleware.DefaultRateLimiterConfig())

	r := router.New(
		router.Recovery(logger),
		middleware.RequestID,
		metrics.Middleware,
		middleware.MaxBodySize(),
		middleware.Timeout(),
		rateLimiter.Middleware,
		router.Logger(logger),
		router.CORS(cfg.AllowedOrigins),
	)

	// Metrics endpoint (protect via firewall in production)
	r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
		metrics.Handler().ServeHTTP(w, req)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Renderer boundary: snapshot out, events in
	r.Get("/api/view", viewHandler.ServeHTTP)
	r.Post("/api/events/search", searchHandler.ServeHTTP)
	r.Post("/api/events/sort", sortHandler.ServeHTTP)
	r.Post("/api/events/cart/add", addToCartHandler.ServeHTTP)
	r.Post("/api/events/cart/adjust", adjustQtyHandler.ServeHTTP)
	r.Post("/api/events/resize", resizeHandler.ServeHTTP)
	r.Get("/api/pages/{page}", pageHandler.ServeHTTP)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("Starting storefront server", "address", addr)

	if err := http.ListenAndServe(addr, r); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/stridewear/storefront/internal/cart"
	cartRepo "github.com/stridewear/storefront/internal/cart/repository"
	"github.com/stridewear/storefront/internal/catalog"
	catalogRepo "github.com/stridewear/storefront/internal/catalog/repository"
	"github.com/stridewear/storefront/internal/checkout"
	checkoutDomain "github.com/stridewear/storefront/internal/checkout/domain"
	checkoutRepo "github.com/stridewear/storefront/internal/checkout/repository"
	"github.com/stridewear/storefront/internal/config"
	"github.com/stridewear/storefront/pkg/logger"
	"github.com/stridewear/storefront/pkg/middleware"
	"github.com/stridewear/storefront/pkg/tracing"
)

const serviceVersion = "1.0.0"

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()

	// Initialize logger
	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Msg("Starting storefront service")

	// Initialize tracer
	tp, err := tracing.InitTracer(cfg.ServiceName, serviceVersion)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Catalog backed by the embedded seed
	products, err := catalogRepo.NewMemoryCatalogRepository()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to load product catalog")
	}
	catalogRepository := catalogRepo.NewTracedCatalogRepository(products)

	logger.Logger.Info().
		Int("products", products.Count()).
		Msg("Product catalog loaded")

	// Session store with TTL eviction
	sessions := cartRepo.NewMemorySessionRepository(cfg.SessionTTL, cfg.SweepInterval)
	defer sessions.Close()

	orders := checkoutRepo.NewMemoryOrderRepository()
	rules := checkoutDomain.NewRules(cfg.CouponCodes)
	pricing := checkoutDomain.PricingConfig{
		PlatformFee:           cfg.Pricing.PlatformFee,
		FreeShippingThreshold: cfg.Pricing.FreeShippingThreshold,
		ShippingFlatFee:       cfg.Pricing.ShippingFlatFee,
		OrderDiscountBps:      cfg.Pricing.OrderDiscountBps,
	}

	// Initialize handlers with Wire DI
	catalogHandler, err := catalog.InitializeHandler(catalogRepository)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize catalog handler")
	}

	cartHandler, err := cart.InitializeHandler(sessions, catalogRepository, func() float64 {
		return float64(sessions.Len())
	})
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize cart handler")
	}

	checkoutHandler, err := checkout.InitializeHandler(sessions, orders, rules, pricing)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize checkout handler")
	}

	logger.Logger.Info().
		Int("coupon_codes", len(cfg.CouponCodes)).
		Int64("platform_fee", cfg.Pricing.PlatformFee).
		Int64("free_shipping_threshold", cfg.Pricing.FreeShippingThreshold).
		Msg("Handlers initialized")

	// Setup router
	router := mux.NewRouter()

	router.Use(middleware.Logging)
	router.Use(func(next http.Handler) http.Handler {
		return middleware.Tracing("http-request", next)
	})

	catalogHandler.RegisterRoutes(router)
	cartHandler.RegisterRoutes(router)
	checkoutHandler.RegisterRoutes(router)

	catalogHandler.RegisterHealthCheck(router)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"X-Session-ID"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: c.Handler(router),
	}

	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("metrics_endpoint", "/metrics").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Forced server shutdown")
	}
}

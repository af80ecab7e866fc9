package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/stridewear/storefront/internal/catalog/domain"
	"github.com/stridewear/storefront/internal/catalog/usecase/query"
	"github.com/stridewear/storefront/pkg/logger"
)

// CatalogHandler handles HTTP requests for the product catalog
type CatalogHandler struct {
	listHandler   *query.ListProductsHandler
	getHandler    *query.GetProductHandler
	facetsHandler *query.GetFacetsHandler

	repo domain.CatalogRepository

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	catalogSize    prometheus.Gauge
}

// NewCatalogHandler creates a new catalog handler (manual DI)
func NewCatalogHandler(repo domain.CatalogRepository) *CatalogHandler {
	return NewCatalogHandlerWithDI(
		query.NewListProductsHandler(repo),
		query.NewGetProductHandler(repo),
		query.NewGetFacetsHandler(repo),
		repo,
	)
}

// NewCatalogHandlerWithDI creates a new catalog handler using
// dependency injection; used by Wire.
func NewCatalogHandlerWithDI(
	listHandler *query.ListProductsHandler,
	getHandler *query.GetProductHandler,
	facetsHandler *query.GetFacetsHandler,
	repo domain.CatalogRepository,
) *CatalogHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_requests_total",
			Help: "Total number of requests to the catalog endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_request_duration_seconds",
			Help:    "Duration of catalog requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	catalogSize := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_products_total",
			Help: "Number of products in the catalog",
		},
	)

	prometheus.MustRegister(requestCounter, requestLatency, catalogSize)
	catalogSize.Set(float64(repo.Count()))

	return &CatalogHandler{
		listHandler:    listHandler,
		getHandler:     getHandler,
		facetsHandler:  facetsHandler,
		repo:           repo,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
		catalogSize:    catalogSize,
	}
}

// Response is the JSON envelope returned by every endpoint.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *CatalogHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}

// RegisterRoutes registers the catalog routes on the router.
func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/products", h.metricsMiddleware("/api/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/api/products/filters", h.metricsMiddleware("/api/products/filters", h.GetFacets)).Methods("GET")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", h.GetProduct)).Methods("GET")
}

// ListProducts handles GET /api/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	minPrice, _ := strconv.ParseInt(params.Get("min_price"), 10, 64)
	maxPrice, _ := strconv.ParseInt(params.Get("max_price"), 10, 64)
	page, _ := strconv.Atoi(params.Get("page"))
	pageSize, _ := strconv.Atoi(params.Get("page_size"))

	q := query.ListProductsQuery{
		Genders:    splitParam(params.Get("gender")),
		Categories: splitParam(params.Get("category")),
		Brands:     splitParam(params.Get("brand")),
		MinPrice:   minPrice,
		MaxPrice:   maxPrice,
		Search:     params.Get("search"),
		Sort:       parseSort(params.Get("sort")),
		Page:       page,
		PageSize:   pageSize,
	}

	result := h.listHandler.Handle(q)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"products":    result.Products,
			"total":       result.TotalCount,
			"total_pages": result.TotalPages,
			"page":        result.Page,
			"page_size":   result.PageSize,
		},
	})
}

// GetProduct handles GET /api/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	product, err := h.getHandler.Handle(query.GetProductQuery{ID: uint(id)})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Product not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    product,
	})
}

// GetFacets handles GET /api/products/filters
func (h *CatalogHandler) GetFacets(w http.ResponseWriter, r *http.Request) {
	facets := h.facetsHandler.Handle(query.GetFacetsQuery{})

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    facets,
	})
}

// RegisterHealthCheck registers the service health endpoint.
func (h *CatalogHandler) RegisterHealthCheck(router *mux.Router) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Storefront service is healthy",
		})
	}).Methods("GET")
}

// splitParam parses a comma-separated multi-value query parameter.
func splitParam(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

// parseSort validates the sort parameter; unknown values fall back to
// the newest-first default.
func parseSort(raw string) domain.SortOption {
	switch domain.SortOption(raw) {
	case domain.SortPriceLow, domain.SortPriceHigh, domain.SortRating, domain.SortNewest:
		return domain.SortOption(raw)
	default:
		if raw != "" {
			logger.Logger.Debug().Str("sort", raw).Msg("Unknown sort option, using newest")
		}
		return domain.SortNewest
	}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

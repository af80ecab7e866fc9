package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/stridewear/storefront/internal/cart/repository"
	"github.com/stridewear/storefront/internal/cart/usecase/command"
	"github.com/stridewear/storefront/internal/cart/usecase/query"
	catalogDomain "github.com/stridewear/storefront/internal/catalog/domain"
	"github.com/stridewear/storefront/pkg/logger"
)

// SessionCounter reports the number of live sessions for the metrics
// gauge.
type SessionCounter func() float64

// CartHandler handles HTTP requests for the cart and wishlist
type CartHandler struct {
	// Command handlers
	addHandler            *command.AddItemHandler
	removeHandler         *command.RemoveItemHandler
	updateHandler         *command.UpdateQuantityHandler
	clearHandler          *command.ClearCartHandler
	toggleHandler         *command.ToggleWishlistHandler
	addWishlistHandler    *command.AddToWishlistHandler
	removeWishlistHandler *command.RemoveFromWishlistHandler

	// Query handlers
	getCartHandler     *query.GetCartHandler
	getWishlistHandler *query.GetWishlistHandler
	inWishlistHandler  *query.InWishlistHandler

	sessions repository.SessionRepository

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	activeSessions prometheus.GaugeFunc
}

// NewCartHandler creates a new cart handler (manual DI)
func NewCartHandler(sessions repository.SessionRepository, catalog catalogDomain.CatalogRepository, sessionCount SessionCounter) *CartHandler {
	return NewCartHandlerWithDI(
		command.NewAddItemHandler(sessions, catalog),
		command.NewRemoveItemHandler(sessions),
		command.NewUpdateQuantityHandler(sessions),
		command.NewClearCartHandler(sessions),
		command.NewToggleWishlistHandler(sessions, catalog),
		command.NewAddToWishlistHandler(sessions, catalog),
		command.NewRemoveFromWishlistHandler(sessions),
		query.NewGetCartHandler(sessions),
		query.NewGetWishlistHandler(sessions),
		query.NewInWishlistHandler(sessions),
		sessions,
		sessionCount,
	)
}

// NewCartHandlerWithDI creates a new cart handler using dependency
// injection; used by Wire.
func NewCartHandlerWithDI(
	addHandler *command.AddItemHandler,
	removeHandler *command.RemoveItemHandler,
	updateHandler *command.UpdateQuantityHandler,
	clearHandler *command.ClearCartHandler,
	toggleHandler *command.ToggleWishlistHandler,
	addWishlistHandler *command.AddToWishlistHandler,
	removeWishlistHandler *command.RemoveFromWishlistHandler,
	getCartHandler *query.GetCartHandler,
	getWishlistHandler *query.GetWishlistHandler,
	inWishlistHandler *query.InWishlistHandler,
	sessions repository.SessionRepository,
	sessionCount SessionCounter,
) *CartHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_requests_total",
			Help: "Total number of requests to cart and wishlist endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cart_request_duration_seconds",
			Help:    "Duration of cart and wishlist requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	activeSessions := prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "cart_active_sessions",
			Help: "Number of live shopper sessions",
		},
		func() float64 { return sessionCount() },
	)

	prometheus.MustRegister(requestCounter, requestLatency, activeSessions)

	return &CartHandler{
		addHandler:            addHandler,
		removeHandler:         removeHandler,
		updateHandler:         updateHandler,
		clearHandler:          clearHandler,
		toggleHandler:         toggleHandler,
		addWishlistHandler:    addWishlistHandler,
		removeWishlistHandler: removeWishlistHandler,
		getCartHandler:        getCartHandler,
		getWishlistHandler:    getWishlistHandler,
		inWishlistHandler:     inWishlistHandler,
		sessions:              sessions,
		requestCounter:        requestCounter,
		requestLatency:        requestLatency,
		activeSessions:        activeSessions,
	}
}

// Response is the JSON envelope returned by every endpoint.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (h *CartHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}

// RegisterRoutes registers cart and wishlist routes on the router. All
// routes run behind the session middleware.
func (h *CartHandler) RegisterRoutes(router *mux.Router) {
	session := SessionMiddleware(h.sessions)

	router.HandleFunc("/api/cart", h.metricsMiddleware("/api/cart", session(h.GetCart))).Methods("GET")
	router.HandleFunc("/api/cart/items", h.metricsMiddleware("/api/cart/items", session(h.AddItem))).Methods("POST")
	router.HandleFunc("/api/cart/items", h.metricsMiddleware("/api/cart/items", session(h.UpdateQuantity))).Methods("PATCH")
	router.HandleFunc("/api/cart/items", h.metricsMiddleware("/api/cart/items", session(h.RemoveItem))).Methods("DELETE")
	router.HandleFunc("/api/cart", h.metricsMiddleware("/api/cart", session(h.ClearCart))).Methods("DELETE")

	router.HandleFunc("/api/wishlist", h.metricsMiddleware("/api/wishlist", session(h.GetWishlist))).Methods("GET")
	router.HandleFunc("/api/wishlist/toggle", h.metricsMiddleware("/api/wishlist/toggle", session(h.ToggleWishlist))).Methods("POST")
	router.HandleFunc("/api/wishlist/{id}", h.metricsMiddleware("/api/wishlist/{id}", session(h.InWishlist))).Methods("GET")
	router.HandleFunc("/api/wishlist/{id}", h.metricsMiddleware("/api/wishlist/{id}", session(h.AddToWishlist))).Methods("PUT")
	router.HandleFunc("/api/wishlist/{id}", h.metricsMiddleware("/api/wishlist/{id}", session(h.RemoveFromWishlist))).Methods("DELETE")
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.getCartHandler.Handle(query.GetCartQuery{SessionID: SessionFromContext(r.Context())})
	if err != nil {
		respondSessionError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: view})
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID uint `json:"product_id"`
		Quantity  int  `json:"quantity"`
		Size      any  `json:"size"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	line, err := h.addHandler.Handle(command.AddItemCommand{
		SessionID: SessionFromContext(r.Context()),
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Size:      req.Size,
	})
	if err != nil {
		if errors.Is(err, catalogDomain.ErrProductNotFound) {
			respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Product not found"})
			return
		}
		logger.Error(r.Context()).Err(err).Msg("Failed to add item to cart")
		respondSessionError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Item added to cart",
		Data:    line,
	})
}

// UpdateQuantity handles PATCH /api/cart/items
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID uint `json:"product_id"`
		Quantity  int  `json:"quantity"`
		Size      any  `json:"size"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	err := h.updateHandler.Handle(command.UpdateQuantityCommand{
		SessionID: SessionFromContext(r.Context()),
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Size:      req.Size,
	})
	if err != nil {
		respondSessionError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Quantity updated"})
}

// RemoveItem handles DELETE /api/cart/items
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseUint(r.URL.Query().Get("product_id"), 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return
	}

	err = h.removeHandler.Handle(command.RemoveItemCommand{
		SessionID: SessionFromContext(r.Context()),
		ProductID: uint(productID),
		Size:      r.URL.Query().Get("size"),
	})
	if err != nil {
		respondSessionError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Item removed from cart"})
}

// ClearCart handles DELETE /api/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.clearHandler.Handle(command.ClearCartCommand{SessionID: SessionFromContext(r.Context())}); err != nil {
		respondSessionError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Cart cleared"})
}

// GetWishlist handles GET /api/wishlist
func (h *CartHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	view, err := h.getWishlistHandler.Handle(query.GetWishlistQuery{SessionID: SessionFromContext(r.Context())})
	if err != nil {
		respondSessionError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: view})
}

// ToggleWishlist handles POST /api/wishlist/toggle
func (h *CartHandler) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID uint `json:"product_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	inWishlist, err := h.toggleHandler.Handle(command.ToggleWishlistCommand{
		SessionID: SessionFromContext(r.Context()),
		ProductID: req.ProductID,
	})
	if err != nil {
		if errors.Is(err, catalogDomain.ErrProductNotFound) {
			respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Product not found"})
			return
		}
		respondSessionError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    map[string]interface{}{"in_wishlist": inWishlist},
	})
}

// InWishlist handles GET /api/wishlist/{id}
func (h *CartHandler) InWishlist(w http.ResponseWriter, r *http.Request) {
	id, err := parseProductID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return
	}

	in, err := h.inWishlistHandler.Handle(query.InWishlistQuery{
		SessionID: SessionFromContext(r.Context()),
		ProductID: id,
	})
	if err != nil {
		respondSessionError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    map[string]interface{}{"in_wishlist": in},
	})
}

// AddToWishlist handles PUT /api/wishlist/{id}
func (h *CartHandler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	id, err := parseProductID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return
	}

	err = h.addWishlistHandler.Handle(command.AddToWishlistCommand{
		SessionID: SessionFromContext(r.Context()),
		ProductID: id,
	})
	if err != nil {
		if errors.Is(err, catalogDomain.ErrProductNotFound) {
			respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Product not found"})
			return
		}
		respondSessionError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Added to wishlist"})
}

// RemoveFromWishlist handles DELETE /api/wishlist/{id}
func (h *CartHandler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	id, err := parseProductID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return
	}

	err = h.removeWishlistHandler.Handle(command.RemoveFromWishlistCommand{
		SessionID: SessionFromContext(r.Context()),
		ProductID: id,
	})
	if err != nil {
		respondSessionError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Removed from wishlist"})
}

func parseProductID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	return uint(id), err
}

// respondSessionError maps repository errors; the middleware makes an
// unknown session unlikely, but the session can expire mid-flight.
func respondSessionError(w http.ResponseWriter, err error) {
	if errors.Is(err, repository.ErrSessionNotFound) {
		respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Session expired"})
		return
	}
	respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Internal error"})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	cartHttp "github.com/stridewear/storefront/internal/cart/delivery/http"
	cartRepo "github.com/stridewear/storefront/internal/cart/repository"
	"github.com/stridewear/storefront/internal/checkout/domain"
	"github.com/stridewear/storefront/internal/checkout/usecase/command"
	"github.com/stridewear/storefront/internal/checkout/usecase/query"
	"github.com/stridewear/storefront/pkg/logger"
)

// CheckoutHandler handles HTTP requests for checkout pricing and orders
type CheckoutHandler struct {
	// Command handlers
	applyHandler  *command.ApplyCouponHandler
	removeHandler *command.RemoveCouponHandler
	placeHandler  *command.PlaceOrderHandler

	// Query handlers
	summaryHandler *query.GetSummaryHandler
	getOrder       *query.GetOrderHandler
	listOrders     *query.ListOrdersHandler

	sessions cartRepo.SessionRepository

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	ordersPlaced   prometheus.Counter
	couponRejected prometheus.Counter
}

// NewCheckoutHandler creates a new checkout handler (manual DI)
func NewCheckoutHandler(
	sessions cartRepo.SessionRepository,
	orders domain.OrderRepository,
	rules domain.Rules,
	pricing domain.PricingConfig,
) *CheckoutHandler {
	return NewCheckoutHandlerWithDI(
		command.NewApplyCouponHandler(sessions, rules),
		command.NewRemoveCouponHandler(sessions),
		command.NewPlaceOrderHandler(sessions, orders, pricing),
		query.NewGetSummaryHandler(sessions, pricing),
		query.NewGetOrderHandler(orders),
		query.NewListOrdersHandler(orders),
		sessions,
	)
}

// NewCheckoutHandlerWithDI creates a new checkout handler using
// dependency injection; used by Wire.
func NewCheckoutHandlerWithDI(
	applyHandler *command.ApplyCouponHandler,
	removeHandler *command.RemoveCouponHandler,
	placeHandler *command.PlaceOrderHandler,
	summaryHandler *query.GetSummaryHandler,
	getOrder *query.GetOrderHandler,
	listOrders *query.ListOrdersHandler,
	sessions cartRepo.SessionRepository,
) *CheckoutHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_requests_total",
			Help: "Total number of requests to checkout endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "checkout_request_duration_seconds",
			Help:    "Duration of checkout requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	ordersPlaced := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "checkout_orders_placed_total",
			Help: "Total number of orders placed",
		},
	)

	couponRejected := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "checkout_invalid_coupons_total",
			Help: "Total number of rejected coupon codes",
		},
	)

	prometheus.MustRegister(requestCounter, requestLatency, ordersPlaced, couponRejected)

	return &CheckoutHandler{
		applyHandler:   applyHandler,
		removeHandler:  removeHandler,
		placeHandler:   placeHandler,
		summaryHandler: summaryHandler,
		getOrder:       getOrder,
		listOrders:     listOrders,
		sessions:       sessions,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
		ordersPlaced:   ordersPlaced,
		couponRejected: couponRejected,
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

func (h *CheckoutHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}

// RegisterRoutes registers checkout routes behind the session middleware.
func (h *CheckoutHandler) RegisterRoutes(router *mux.Router) {
	session := cartHttp.SessionMiddleware(h.sessions)

	router.HandleFunc("/api/checkout/summary", h.metricsMiddleware("/api/checkout/summary", session(h.GetSummary))).Methods("GET")
	router.HandleFunc("/api/checkout/coupon", h.metricsMiddleware("/api/checkout/coupon", session(h.ApplyCoupon))).Methods("POST")
	router.HandleFunc("/api/checkout/coupon", h.metricsMiddleware("/api/checkout/coupon", session(h.RemoveCoupon))).Methods("DELETE")
	router.HandleFunc("/api/checkout/orders", h.metricsMiddleware("/api/checkout/orders", session(h.PlaceOrder))).Methods("POST")
	router.HandleFunc("/api/checkout/orders", h.metricsMiddleware("/api/checkout/orders", session(h.ListOrders))).Methods("GET")
	router.HandleFunc("/api/checkout/orders/{id}", h.metricsMiddleware("/api/checkout/orders/{id}", session(h.GetOrder))).Methods("GET")
}

// GetSummary handles GET /api/checkout/summary
func (h *CheckoutHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.summaryHandler.Handle(query.GetSummaryQuery{
		SessionID: cartHttp.SessionFromContext(r.Context()),
	})
	if err != nil {
		respondSessionError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: summary})
}

// ApplyCoupon handles POST /api/checkout/coupon
func (h *CheckoutHandler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	applied, err := h.applyHandler.Handle(command.ApplyCouponCommand{
		SessionID: cartHttp.SessionFromContext(r.Context()),
		Code:      req.Code,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCoupon) {
			h.couponRejected.Inc()
			respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid coupon code"})
			return
		}
		respondSessionError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Coupon applied",
		Data:    applied,
	})
}

// RemoveCoupon handles DELETE /api/checkout/coupon
func (h *CheckoutHandler) RemoveCoupon(w http.ResponseWriter, r *http.Request) {
	err := h.removeHandler.Handle(command.RemoveCouponCommand{
		SessionID: cartHttp.SessionFromContext(r.Context()),
	})
	if err != nil {
		respondSessionError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Coupon removed"})
}

// PlaceOrder handles POST /api/checkout/orders
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.placeHandler.Handle(command.PlaceOrderCommand{
		SessionID: cartHttp.SessionFromContext(r.Context()),
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Cart is empty"})
			return
		}
		logger.Error(r.Context()).Err(err).Msg("Failed to place order")
		respondSessionError(w, err)
		return
	}

	h.ordersPlaced.Inc()

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Order placed",
		Data:    order,
	})
}

// ListOrders handles GET /api/checkout/orders
func (h *CheckoutHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders := h.listOrders.Handle(query.ListOrdersQuery{
		SessionID: cartHttp.SessionFromContext(r.Context()),
	})

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    map[string]interface{}{"orders": orders, "total": len(orders)},
	})
}

// GetOrder handles GET /api/checkout/orders/{id}
func (h *CheckoutHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.getOrder.Handle(query.GetOrderQuery{
		SessionID: cartHttp.SessionFromContext(r.Context()),
		OrderID:   mux.Vars(r)["id"],
	})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "Order not found"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: order})
}

func respondSessionError(w http.ResponseWriter, err error) {
	if errors.Is(err, cartRepo.ErrSessionNotFound) {
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

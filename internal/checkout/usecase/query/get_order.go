package query

import (
	"fmt"

	"github.com/stridewear/storefront/internal/checkout/domain"
)

// GetOrderQuery represents the query to fetch a placed order.
type GetOrderQuery struct {
	SessionID string
	OrderID   string
}

// GetOrderHandler handles the get order query
type GetOrderHandler struct {
	orders domain.OrderRepository
}

// NewGetOrderHandler creates a new get order handler
func NewGetOrderHandler(orders domain.OrderRepository) *GetOrderHandler {
	return &GetOrderHandler{orders: orders}
}

// Handle fetches the order; orders are scoped to the placing session.
func (h *GetOrderHandler) Handle(q GetOrderQuery) (*domain.Order, error) {
	order, err := h.orders.FindByID(q.OrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order %s: %w", q.OrderID, err)
	}
	if order.SessionID != q.SessionID {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

// ListOrdersQuery represents the query for the session's order history.
type ListOrdersQuery struct {
	SessionID string
}

// ListOrdersHandler handles the order history query
type ListOrdersHandler struct {
	orders domain.OrderRepository
}

// NewListOrdersHandler creates a new list orders handler
func NewListOrdersHandler(orders domain.OrderRepository) *ListOrdersHandler {
	return &ListOrdersHandler{orders: orders}
}

// Handle lists the session's placed orders, oldest first.
func (h *ListOrdersHandler) Handle(q ListOrdersQuery) []domain.Order {
	return h.orders.ListBySession(q.SessionID)
}

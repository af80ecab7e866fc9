package command

import (
	"time"

	"github.com/google/uuid"

	cartRepo "github.com/stridewear/storefront/internal/cart/repository"
	"github.com/stridewear/storefront/internal/checkout/domain"
)

// PlaceOrderCommand represents the command to turn the session's cart
// into a placed order.
type PlaceOrderCommand struct {
	SessionID string
}

// PlaceOrderHandler handles the place order command
type PlaceOrderHandler struct {
	sessions cartRepo.SessionRepository
	orders   domain.OrderRepository
	pricing  domain.PricingConfig
}

// NewPlaceOrderHandler creates a new place order handler
func NewPlaceOrderHandler(sessions cartRepo.SessionRepository, orders domain.OrderRepository, pricing domain.PricingConfig) *PlaceOrderHandler {
	return &PlaceOrderHandler{sessions: sessions, orders: orders, pricing: pricing}
}

// Handle snapshots the priced cart into an order, then clears the cart
// and the coupon slot. Placing an order on an empty cart fails with
// ErrEmptyCart and changes nothing.
func (h *PlaceOrderHandler) Handle(cmd PlaceOrderCommand) (*domain.Order, error) {
	var order *domain.Order
	var emptyCart bool

	err := h.sessions.Mutate(cmd.SessionID, func(s *cartRepo.Session) {
		if s.Cart.IsEmpty() {
			emptyCart = true
			return
		}

		summary := domain.Summarize(s.Cart.Subtotal(), s.Cart.ItemCount(), s.Coupon, h.pricing)
		order = &domain.Order{
			ID:             uuid.NewString(),
			SessionID:      s.ID,
			Lines:          s.Cart.Lines(),
			Subtotal:       summary.Subtotal,
			PlatformFee:    summary.PlatformFee,
			CouponCode:     summary.CouponCode,
			CouponDiscount: summary.CouponDiscount,
			OrderDiscount:  summary.OrderDiscount,
			Shipping:       summary.Shipping,
			Total:          summary.Total,
			PlacedAt:       time.Now(),
		}

		s.Cart.Clear()
		s.Coupon = nil
	})
	if err != nil {
		return nil, err
	}
	if emptyCart {
		return nil, domain.ErrEmptyCart
	}

	if err := h.orders.Save(order); err != nil {
		return nil, err
	}
	return order, nil
}

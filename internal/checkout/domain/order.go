package domain

import (
	"errors"
	"time"

	cartDomain "github.com/stridewear/storefront/internal/cart/domain"
)

// ErrOrderNotFound is returned when an order id is unknown.
var ErrOrderNotFound = errors.New("order not found")

// ErrEmptyCart is returned when placing an order on an empty cart.
var ErrEmptyCart = errors.New("cart is empty")

// Order is a placed-order snapshot: the priced cart at the moment of
// checkout. Orders are immutable once placed.
type Order struct {
	ID             string            `json:"id"`
	SessionID      string            `json:"-"`
	Lines          []cartDomain.Line `json:"lines"`
	Subtotal       int64             `json:"subtotal"`
	PlatformFee    int64             `json:"platform_fee"`
	CouponCode     string            `json:"coupon_code,omitempty"`
	CouponDiscount int64             `json:"coupon_discount"`
	OrderDiscount  int64             `json:"order_discount"`
	Shipping       int64             `json:"shipping"`
	Total          int64             `json:"total"`
	PlacedAt       time.Time         `json:"placed_at"`
}

// OrderRepository defines access to placed orders.
type OrderRepository interface {
	Save(order *Order) error
	FindByID(id string) (*Order, error)
	ListBySession(sessionID string) []Order
}

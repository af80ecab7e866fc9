package domain

import "errors"

// ErrInvalidCoupon is returned when a coupon code has no known rule.
// It is a result, not a panic: applying a bogus code changes nothing.
var ErrInvalidCoupon = errors.New("invalid coupon code")

// Rule maps a coupon code to its flat discount in minor currency units.
type Rule struct {
	Code     string
	Discount int64
}

// Rules is the coupon lookup table.
type Rules map[string]Rule

// NewRules builds the table from a code → discount mapping.
func NewRules(codes map[string]int64) Rules {
	rules := make(Rules, len(codes))
	for code, discount := range codes {
		rules[code] = Rule{Code: code, Discount: discount}
	}
	return rules
}

// Lookup resolves a code to its rule.
func (r Rules) Lookup(code string) (Rule, error) {
	rule, ok := r[code]
	if !ok {
		return Rule{}, ErrInvalidCoupon
	}
	return rule, nil
}

// AppliedCoupon is the single per-session coupon slot. Applying a new
// valid coupon replaces it; there is no stacking.
type AppliedCoupon struct {
	Code     string `json:"code"`
	Discount int64  `json:"discount"`
}

// ComputeTotal is the payable amount: subtotal plus platform fee minus
// the applied discount, clamped at zero. A discount can never drive
// the total negative.
func ComputeTotal(subtotal, platformFee int64, coupon *AppliedCoupon) int64 {
	var discount int64
	if coupon != nil {
		discount = coupon.Discount
	}
	total := subtotal + platformFee - discount
	if total < 0 {
		return 0
	}
	return total
}

// ShippingCost is zero once the subtotal strictly exceeds the
// free-shipping threshold, otherwise the flat fee.
func ShippingCost(subtotal, threshold, flatFee int64) int64 {
	if subtotal > threshold {
		return 0
	}
	return flatFee
}

// PricingConfig carries the checkout pricing knobs. Amounts are in
// minor currency units, OrderDiscountBps in basis points.
type PricingConfig struct {
	PlatformFee           int64
	FreeShippingThreshold int64
	ShippingFlatFee       int64
	OrderDiscountBps      int64
}

// PercentDiscount is the order-level discount in basis points, floored
// by integer division.
func PercentDiscount(subtotal, rateBps int64) int64 {
	if subtotal <= 0 || rateBps <= 0 {
		return 0
	}
	return subtotal * rateBps / 10000
}

// Summary is the priced view of a cart at checkout.
type Summary struct {
	Subtotal       int64  `json:"subtotal"`
	PlatformFee    int64  `json:"platform_fee"`
	CouponCode     string `json:"coupon_code,omitempty"`
	CouponDiscount int64  `json:"coupon_discount"`
	OrderDiscount  int64  `json:"order_discount"`
	Shipping       int64  `json:"shipping"`
	Total          int64  `json:"total"`
	ItemCount      int    `json:"item_count"`
}

// Summarize composes the pricing rules over a cart subtotal. An empty
// cart prices to an all-zero summary. Discounts clamp the goods-and-fee
// portion at zero; shipping is charged on top of the clamped amount.
func Summarize(subtotal int64, itemCount int, coupon *AppliedCoupon, cfg PricingConfig) Summary {
	if itemCount == 0 {
		return Summary{}
	}

	summary := Summary{
		Subtotal:      subtotal,
		PlatformFee:   cfg.PlatformFee,
		OrderDiscount: PercentDiscount(subtotal, cfg.OrderDiscountBps),
		Shipping:      ShippingCost(subtotal, cfg.FreeShippingThreshold, cfg.ShippingFlatFee),
		ItemCount:     itemCount,
	}
	if coupon != nil {
		summary.CouponCode = coupon.Code
		summary.CouponDiscount = coupon.Discount
	}

	payable := subtotal + summary.PlatformFee - summary.CouponDiscount - summary.OrderDiscount
	if payable < 0 {
		payable = 0
	}
	summary.Total = payable + summary.Shipping

	return summary
}

package command

import (
	cartRepo "github.com/stridewear/storefront/internal/cart/repository"
	"github.com/stridewear/storefront/internal/checkout/domain"
)

// ApplyCouponCommand represents the command to apply a coupon code to
// the session.
type ApplyCouponCommand struct {
	SessionID string
	Code      string
}

// ApplyCouponHandler handles the apply coupon command
type ApplyCouponHandler struct {
	sessions cartRepo.SessionRepository
	rules    domain.Rules
}

// NewApplyCouponHandler creates a new apply coupon handler
func NewApplyCouponHandler(sessions cartRepo.SessionRepository, rules domain.Rules) *ApplyCouponHandler {
	return &ApplyCouponHandler{sessions: sessions, rules: rules}
}

// Handle validates the code and fills the session's single coupon
// slot, replacing whatever was applied before. An unknown code returns
// ErrInvalidCoupon and leaves the slot untouched.
func (h *ApplyCouponHandler) Handle(cmd ApplyCouponCommand) (*domain.AppliedCoupon, error) {
	rule, err := h.rules.Lookup(cmd.Code)
	if err != nil {
		return nil, err
	}

	applied := &domain.AppliedCoupon{Code: rule.Code, Discount: rule.Discount}
	err = h.sessions.Mutate(cmd.SessionID, func(s *cartRepo.Session) {
		s.Coupon = applied
	})
	if err != nil {
		return nil, err
	}
	return applied, nil
}

package command

import (
	cartRepo "github.com/stridewear/storefront/internal/cart/repository"
)

// RemoveCouponCommand represents the command to clear the coupon slot.
type RemoveCouponCommand struct {
	SessionID string
}

// RemoveCouponHandler handles the remove coupon command
type RemoveCouponHandler struct {
	sessions cartRepo.SessionRepository
}

// NewRemoveCouponHandler creates a new remove coupon handler
func NewRemoveCouponHandler(sessions cartRepo.SessionRepository) *RemoveCouponHandler {
	return &RemoveCouponHandler{sessions: sessions}
}

// Handle clears the slot unconditionally; clearing an empty slot is a
// no-op.
func (h *RemoveCouponHandler) Handle(cmd RemoveCouponCommand) error {
	return h.sessions.Mutate(cmd.SessionID, func(s *cartRepo.Session) {
		s.Coupon = nil
	})
}

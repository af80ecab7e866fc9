package command

import (
	"github.com/stridewear/storefront/internal/cart/repository"
)

// ClearCartCommand represents the command to empty the cart.
type ClearCartCommand struct {
	SessionID string
}

// ClearCartHandler handles the clear-cart command
type ClearCartHandler struct {
	sessions repository.SessionRepository
}

// NewClearCartHandler creates a new clear cart handler
func NewClearCartHandler(sessions repository.SessionRepository) *ClearCartHandler {
	return &ClearCartHandler{sessions: sessions}
}

// Handle empties the cart unconditionally.
func (h *ClearCartHandler) Handle(cmd ClearCartCommand) error {
	return h.sessions.Mutate(cmd.SessionID, func(s *repository.Session) {
		s.Cart.Clear()
	})
}

package command

import (
	cartDomain "github.com/stridewear/storefront/internal/cart/domain"
	"github.com/stridewear/storefront/internal/cart/repository"
)

// RemoveItemCommand represents the command to remove one cart line.
type RemoveItemCommand struct {
	SessionID string
	ProductID uint
	Size      any
}

// RemoveItemHandler handles the remove-from-cart command
type RemoveItemHandler struct {
	sessions repository.SessionRepository
}

// NewRemoveItemHandler creates a new remove item handler
func NewRemoveItemHandler(sessions repository.SessionRepository) *RemoveItemHandler {
	return &RemoveItemHandler{sessions: sessions}
}

// Handle executes the remove command. Removing an absent line is a
// valid silent outcome, not an error.
func (h *RemoveItemHandler) Handle(cmd RemoveItemCommand) error {
	size := cartDomain.NormalizeSize(cmd.Size)
	return h.sessions.Mutate(cmd.SessionID, func(s *repository.Session) {
		s.Cart.Remove(cmd.ProductID, size)
	})
}

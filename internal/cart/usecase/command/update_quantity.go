package command

import (
	cartDomain "github.com/stridewear/storefront/internal/cart/domain"
	"github.com/stridewear/storefront/internal/cart/repository"
)

// UpdateQuantityCommand represents the command to set a cart line's
// quantity to an absolute value.
type UpdateQuantityCommand struct {
	SessionID string
	ProductID uint
	Quantity  int
	Size      any
}

// UpdateQuantityHandler handles the update-quantity command
type UpdateQuantityHandler struct {
	sessions repository.SessionRepository
}

// NewUpdateQuantityHandler creates a new update quantity handler
func NewUpdateQuantityHandler(sessions repository.SessionRepository) *UpdateQuantityHandler {
	return &UpdateQuantityHandler{sessions: sessions}
}

// Handle executes the update. A quantity of zero or below removes the
// line, identical to RemoveItem.
func (h *UpdateQuantityHandler) Handle(cmd UpdateQuantityCommand) error {
	size := cartDomain.NormalizeSize(cmd.Size)
	return h.sessions.Mutate(cmd.SessionID, func(s *repository.Session) {
		s.Cart.SetQuantity(cmd.ProductID, cmd.Quantity, size)
	})
}

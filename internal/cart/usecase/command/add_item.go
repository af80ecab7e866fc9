package command

import (
	"fmt"

	cartDomain "github.com/stridewear/storefront/internal/cart/domain"
	"github.com/stridewear/storefront/internal/cart/repository"
	catalogDomain "github.com/stridewear/storefront/internal/catalog/domain"
)

// AddItemCommand represents the command to add a product to the cart.
// Size is the raw value from the client and is normalized at this
// boundary.
type AddItemCommand struct {
	SessionID string
	ProductID uint
	Quantity  int
	Size      any
}

// AddItemHandler handles the add-to-cart command
type AddItemHandler struct {
	sessions repository.SessionRepository
	catalog  catalogDomain.CatalogRepository
}

// NewAddItemHandler creates a new add item handler
func NewAddItemHandler(sessions repository.SessionRepository, catalog catalogDomain.CatalogRepository) *AddItemHandler {
	return &AddItemHandler{sessions: sessions, catalog: catalog}
}

// Handle executes the add-to-cart command. The product must exist in
// the catalog; repeated adds for the same (product, size) accumulate
// quantity on one line.
func (h *AddItemHandler) Handle(cmd AddItemCommand) (*cartDomain.Line, error) {
	product, err := h.catalog.FindByID(cmd.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to add product %d to cart: %w", cmd.ProductID, err)
	}

	size := cartDomain.NormalizeSize(cmd.Size)

	var line cartDomain.Line
	err = h.sessions.Mutate(cmd.SessionID, func(s *repository.Session) {
		s.Cart.Add(*product, cmd.Quantity, size)
		line = *s.Cart.Find(product.ID, size)
	})
	if err != nil {
		return nil, err
	}
	return &line, nil
}

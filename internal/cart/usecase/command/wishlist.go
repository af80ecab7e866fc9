package command

import (
	"fmt"

	"github.com/stridewear/storefront/internal/cart/repository"
	catalogDomain "github.com/stridewear/storefront/internal/catalog/domain"
)

// ToggleWishlistCommand flips wishlist membership for a product.
type ToggleWishlistCommand struct {
	SessionID string
	ProductID uint
}

// ToggleWishlistHandler handles the wishlist toggle command
type ToggleWishlistHandler struct {
	sessions repository.SessionRepository
	catalog  catalogDomain.CatalogRepository
}

// NewToggleWishlistHandler creates a new toggle wishlist handler
func NewToggleWishlistHandler(sessions repository.SessionRepository, catalog catalogDomain.CatalogRepository) *ToggleWishlistHandler {
	return &ToggleWishlistHandler{sessions: sessions, catalog: catalog}
}

// Handle toggles membership and reports the resulting state.
func (h *ToggleWishlistHandler) Handle(cmd ToggleWishlistCommand) (bool, error) {
	product, err := h.catalog.FindByID(cmd.ProductID)
	if err != nil {
		return false, fmt.Errorf("failed to toggle wishlist for product %d: %w", cmd.ProductID, err)
	}

	var inWishlist bool
	err = h.sessions.Mutate(cmd.SessionID, func(s *repository.Session) {
		inWishlist = s.Wishlist.Toggle(*product)
	})
	return inWishlist, err
}

// AddToWishlistCommand adds a product to the wishlist (idempotent).
type AddToWishlistCommand struct {
	SessionID string
	ProductID uint
}

// AddToWishlistHandler handles the direct wishlist add command
type AddToWishlistHandler struct {
	sessions repository.SessionRepository
	catalog  catalogDomain.CatalogRepository
}

// NewAddToWishlistHandler creates a new add to wishlist handler
func NewAddToWishlistHandler(sessions repository.SessionRepository, catalog catalogDomain.CatalogRepository) *AddToWishlistHandler {
	return &AddToWishlistHandler{sessions: sessions, catalog: catalog}
}

// Handle adds the product; adding an already-present product is a no-op.
func (h *AddToWishlistHandler) Handle(cmd AddToWishlistCommand) error {
	product, err := h.catalog.FindByID(cmd.ProductID)
	if err != nil {
		return fmt.Errorf("failed to add product %d to wishlist: %w", cmd.ProductID, err)
	}

	return h.sessions.Mutate(cmd.SessionID, func(s *repository.Session) {
		s.Wishlist.Add(*product)
	})
}

// RemoveFromWishlistCommand removes a product from the wishlist.
type RemoveFromWishlistCommand struct {
	SessionID string
	ProductID uint
}

// RemoveFromWishlistHandler handles the direct wishlist remove command
type RemoveFromWishlistHandler struct {
	sessions repository.SessionRepository
}

// NewRemoveFromWishlistHandler creates a new remove from wishlist handler
func NewRemoveFromWishlistHandler(sessions repository.SessionRepository) *RemoveFromWishlistHandler {
	return &RemoveFromWishlistHandler{sessions: sessions}
}

// Handle removes the product; removing an absent id is a no-op.
func (h *RemoveFromWishlistHandler) Handle(cmd RemoveFromWishlistCommand) error {
	return h.sessions.Mutate(cmd.SessionID, func(s *repository.Session) {
		s.Wishlist.Remove(cmd.ProductID)
	})
}

package query

import (
	"github.com/stridewear/storefront/internal/cart/repository"
	catalogDomain "github.com/stridewear/storefront/internal/catalog/domain"
)

// GetWishlistQuery represents the query for the session's wishlist.
type GetWishlistQuery struct {
	SessionID string
}

// WishlistView is the derived wishlist read model.
type WishlistView struct {
	Items []catalogDomain.Product `json:"items"`
	Count int                     `json:"count"`
}

// GetWishlistHandler handles the wishlist view query
type GetWishlistHandler struct {
	sessions repository.SessionRepository
}

// NewGetWishlistHandler creates a new get wishlist handler
func NewGetWishlistHandler(sessions repository.SessionRepository) *GetWishlistHandler {
	return &GetWishlistHandler{sessions: sessions}
}

// Handle executes the wishlist view query
func (h *GetWishlistHandler) Handle(q GetWishlistQuery) (*WishlistView, error) {
	var view WishlistView
	err := h.sessions.View(q.SessionID, func(s *repository.Session) {
		view = WishlistView{
			Items: s.Wishlist.Items(),
			Count: s.Wishlist.Count(),
		}
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// InWishlistQuery is the membership predicate query.
type InWishlistQuery struct {
	SessionID string
	ProductID uint
}

// InWishlistHandler handles the wishlist membership query
type InWishlistHandler struct {
	sessions repository.SessionRepository
}

// NewInWishlistHandler creates a new membership query handler
func NewInWishlistHandler(sessions repository.SessionRepository) *InWishlistHandler {
	return &InWishlistHandler{sessions: sessions}
}

// Handle reports whether the product is wishlisted.
func (h *InWishlistHandler) Handle(q InWishlistQuery) (bool, error) {
	var in bool
	err := h.sessions.View(q.SessionID, func(s *repository.Session) {
		in = s.Wishlist.Contains(q.ProductID)
	})
	return in, err
}

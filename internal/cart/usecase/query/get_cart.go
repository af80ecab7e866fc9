package query

import (
	cartDomain "github.com/stridewear/storefront/internal/cart/domain"
	"github.com/stridewear/storefront/internal/cart/repository"
)

// GetCartQuery represents the query for the session's cart view.
type GetCartQuery struct {
	SessionID string
}

// CartView is the derived read model pushed to the UI. Every aggregate
// is recomputed from the line set on each query.
type CartView struct {
	Lines     []cartDomain.Line `json:"lines"`
	Subtotal  int64             `json:"subtotal"`
	ItemCount int               `json:"item_count"`
	LineCount int               `json:"line_count"`
}

// GetCartHandler handles the cart view query
type GetCartHandler struct {
	sessions repository.SessionRepository
}

// NewGetCartHandler creates a new get cart handler
func NewGetCartHandler(sessions repository.SessionRepository) *GetCartHandler {
	return &GetCartHandler{sessions: sessions}
}

// Handle executes the cart view query
func (h *GetCartHandler) Handle(q GetCartQuery) (*CartView, error) {
	var view CartView
	err := h.sessions.View(q.SessionID, func(s *repository.Session) {
		view = CartView{
			Lines:     s.Cart.Lines(),
			Subtotal:  s.Cart.Subtotal(),
			ItemCount: s.Cart.ItemCount(),
			LineCount: s.Cart.LineCount(),
		}
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

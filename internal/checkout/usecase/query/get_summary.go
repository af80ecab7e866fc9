package query

import (
	cartRepo "github.com/stridewear/storefront/internal/cart/repository"
	"github.com/stridewear/storefront/internal/checkout/domain"
)

// GetSummaryQuery represents the query for the session's checkout
// summary.
type GetSummaryQuery struct {
	SessionID string
}

// GetSummaryHandler handles the checkout summary query
type GetSummaryHandler struct {
	sessions cartRepo.SessionRepository
	pricing  domain.PricingConfig
}

// NewGetSummaryHandler creates a new summary handler
func NewGetSummaryHandler(sessions cartRepo.SessionRepository, pricing domain.PricingConfig) *GetSummaryHandler {
	return &GetSummaryHandler{sessions: sessions, pricing: pricing}
}

// Handle recomputes the summary from the session's current cart and
// coupon slot; nothing is cached between reads.
func (h *GetSummaryHandler) Handle(q GetSummaryQuery) (*domain.Summary, error) {
	var summary domain.Summary
	err := h.sessions.View(q.SessionID, func(s *cartRepo.Session) {
		summary = domain.Summarize(s.Cart.Subtotal(), s.Cart.ItemCount(), s.Coupon, h.pricing)
	})
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

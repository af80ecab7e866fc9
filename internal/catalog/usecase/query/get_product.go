package query

import (
	"fmt"

	"github.com/stridewear/storefront/internal/catalog/domain"
)

// GetProductQuery represents the query to fetch a single product
type GetProductQuery struct {
	ID uint
}

// GetProductHandler handles the get product query
type GetProductHandler struct {
	repo domain.CatalogRepository
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(repo domain.CatalogRepository) *GetProductHandler {
	return &GetProductHandler{repo: repo}
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(q GetProductQuery) (*domain.Product, error) {
	product, err := h.repo.FindByID(q.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product %d: %w", q.ID, err)
	}
	return product, nil
}

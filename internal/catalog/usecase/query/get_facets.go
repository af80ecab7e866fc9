package query

import (
	"github.com/stridewear/storefront/internal/catalog/domain"
)

// GetFacetsQuery represents the query for filter-panel metadata
type GetFacetsQuery struct{}

// GetFacetsHandler handles the facets query
type GetFacetsHandler struct {
	repo domain.CatalogRepository
}

// NewGetFacetsHandler creates a new facets handler
func NewGetFacetsHandler(repo domain.CatalogRepository) *GetFacetsHandler {
	return &GetFacetsHandler{repo: repo}
}

// Handle returns the selectable filter values and price bounds derived
// from the catalog.
func (h *GetFacetsHandler) Handle(GetFacetsQuery) domain.Facets {
	return h.repo.Facets()
}

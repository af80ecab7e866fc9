package query

import (
	"github.com/stridewear/storefront/internal/catalog/domain"
)

const (
	defaultPageSize = 12
	maxPageSize     = 100
)

// ListProductsQuery represents one filtered, sorted, paginated catalog
// listing request.
type ListProductsQuery struct {
	Genders    []string
	Categories []string
	Brands     []string
	MinPrice   int64
	MaxPrice   int64
	Search     string
	Sort       domain.SortOption
	Page       int
	PageSize   int
}

// ListProductsResult is the visible page plus pagination metadata.
type ListProductsResult struct {
	Products   []domain.Product
	TotalCount int
	TotalPages int
	Page       int
	PageSize   int
}

// ListProductsHandler handles the list products query
type ListProductsHandler struct {
	repo domain.CatalogRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.CatalogRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query. Filtering never fails; an
// impossible combination simply returns an empty page.
func (h *ListProductsHandler) Handle(q ListProductsQuery) ListProductsResult {
	// Defaults
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = defaultPageSize
	}
	if q.PageSize > maxPageSize {
		q.PageSize = maxPageSize
	}
	if q.MaxPrice <= 0 {
		q.MaxPrice = int64(1) << 62
	}
	if q.Sort == "" {
		q.Sort = domain.SortNewest
	}

	result := domain.ComputeFilteredProducts(h.repo.List(), domain.FilterConfig{
		Genders:    q.Genders,
		Categories: q.Categories,
		Brands:     q.Brands,
		MinPrice:   q.MinPrice,
		MaxPrice:   q.MaxPrice,
		Search:     q.Search,
		Sort:       q.Sort,
		Page:       q.Page,
		PageSize:   q.PageSize,
	})

	return ListProductsResult{
		Products:   result.Page,
		TotalCount: result.TotalCount,
		TotalPages: result.TotalPages,
		Page:       q.Page,
		PageSize:   q.PageSize,
	}
}

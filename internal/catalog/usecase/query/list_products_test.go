package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridewear/storefront/internal/catalog/domain"
	"github.com/stridewear/storefront/internal/catalog/repository"
)

func newTestRepo(t *testing.T, products []domain.Product) domain.CatalogRepository {
	t.Helper()
	repo, err := repository.NewMemoryCatalogRepositoryFromProducts(products)
	require.NoError(t, err)
	return repo
}

func TestListProducts_Defaults(t *testing.T) {
	products := make([]domain.Product, 30)
	for i := range products {
		products[i] = domain.Product{ID: uint(i + 1), Price: int64(i + 1)}
	}
	h := NewListProductsHandler(newTestRepo(t, products))

	result := h.Handle(ListProductsQuery{})

	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 12, result.PageSize)
	assert.Len(t, result.Products, 12)
	assert.Equal(t, 30, result.TotalCount)
	assert.Equal(t, 3, result.TotalPages)
}

func TestListProducts_PageSizeCapped(t *testing.T) {
	h := NewListProductsHandler(newTestRepo(t, []domain.Product{{ID: 1, Price: 10}}))

	result := h.Handle(ListProductsQuery{PageSize: 5000})
	assert.Equal(t, 100, result.PageSize)
}

func TestListProducts_ZeroMaxPriceMeansUnbounded(t *testing.T) {
	h := NewListProductsHandler(newTestRepo(t, []domain.Product{
		{ID: 1, Price: 1},
		{ID: 2, Price: 1_000_000},
	}))

	result := h.Handle(ListProductsQuery{})
	assert.Equal(t, 2, result.TotalCount)
}

func TestListProducts_FiltersApplied(t *testing.T) {
	h := NewListProductsHandler(newTestRepo(t, []domain.Product{
		{ID: 1, Gender: domain.GenderMen, Brand: "Nike", Category: "Running", Price: 500},
		{ID: 2, Gender: domain.GenderWomen, Brand: "Nike", Category: "Running", Price: 700},
		{ID: 3, Gender: domain.GenderMen, Brand: "Puma", Category: "Sneakers", Price: 300},
	}))

	result := h.Handle(ListProductsQuery{
		Genders: []string{"men"},
		Brands:  []string{"Nike"},
	})

	require.Len(t, result.Products, 1)
	assert.Equal(t, uint(1), result.Products[0].ID)
}

func TestGetProduct(t *testing.T) {
	repo := newTestRepo(t, []domain.Product{{ID: 7, Name: "Old Skool", Price: 4999}})
	h := NewGetProductHandler(repo)

	product, err := h.Handle(GetProductQuery{ID: 7})
	require.NoError(t, err)
	assert.Equal(t, "Old Skool", product.Name)

	_, err = h.Handle(GetProductQuery{ID: 8})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestGetFacets(t *testing.T) {
	repo := newTestRepo(t, []domain.Product{
		{ID: 1, Brand: "Vans", Category: "Sneakers", Gender: domain.GenderKids, Price: 2999},
	})
	h := NewGetFacetsHandler(repo)

	facets := h.Handle(GetFacetsQuery{})
	assert.Equal(t, []domain.FacetOption{{Value: "Vans", Count: 1}}, facets.Brands)
}

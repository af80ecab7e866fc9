package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridewear/storefront/internal/catalog/domain"
)

func TestNewMemoryCatalogRepository_LoadsSeed(t *testing.T) {
	repo, err := NewMemoryCatalogRepository()
	require.NoError(t, err)

	assert.Greater(t, repo.Count(), 0)

	first, err := repo.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Air Zoom Pegasus 40", first.Name)
}

func TestMemoryCatalogRepository_RejectsDuplicateIDs(t *testing.T) {
	_, err := NewMemoryCatalogRepositoryFromProducts([]domain.Product{
		{ID: 1, Name: "a"},
		{ID: 1, Name: "b"},
	})
	assert.Error(t, err)
}

func TestMemoryCatalogRepository_ListReturnsCopyInSeedOrder(t *testing.T) {
	products := []domain.Product{
		{ID: 3, Price: 30},
		{ID: 1, Price: 10},
		{ID: 2, Price: 20},
	}
	repo, err := NewMemoryCatalogRepositoryFromProducts(products)
	require.NoError(t, err)

	listed := repo.List()
	require.Len(t, listed, 3)
	assert.Equal(t, uint(3), listed[0].ID)

	listed[0].Price = 999
	again := repo.List()
	assert.Equal(t, int64(30), again[0].Price)
}

func TestMemoryCatalogRepository_FindByIDUnknown(t *testing.T) {
	repo, err := NewMemoryCatalogRepositoryFromProducts(nil)
	require.NoError(t, err)

	_, err = repo.FindByID(42)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestMemoryCatalogRepository_Facets(t *testing.T) {
	repo, err := NewMemoryCatalogRepositoryFromProducts([]domain.Product{
		{ID: 1, Brand: "Nike", Category: "Running", Gender: domain.GenderMen, Price: 500},
		{ID: 2, Brand: "Nike", Category: "Sneakers", Gender: domain.GenderWomen, Price: 100},
		{ID: 3, Brand: "Puma", Category: "Running", Gender: domain.GenderMen, Price: 900},
	})
	require.NoError(t, err)

	facets := repo.Facets()
	assert.Equal(t, []domain.FacetOption{{Value: "Nike", Count: 2}, {Value: "Puma", Count: 1}}, facets.Brands)
	assert.Equal(t, []domain.FacetOption{{Value: "Running", Count: 2}, {Value: "Sneakers", Count: 1}}, facets.Categories)
	assert.Equal(t, int64(100), facets.PriceMin)
	assert.Equal(t, int64(900), facets.PriceMax)
}

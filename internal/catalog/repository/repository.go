package repository

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/stridewear/storefront/internal/catalog/domain"
)

//go:embed seed/products.json
var seedCatalog []byte

// MemoryCatalogRepository serves the read-only product catalog from
// memory, preserving seed order for the lifetime of the process.
type MemoryCatalogRepository struct {
	products []domain.Product
	byID     map[uint]int
	facets   domain.Facets
}

// NewMemoryCatalogRepository loads the embedded seed catalog.
func NewMemoryCatalogRepository() (*MemoryCatalogRepository, error) {
	var products []domain.Product
	if err := json.Unmarshal(seedCatalog, &products); err != nil {
		return nil, fmt.Errorf("failed to load seed catalog: %w", err)
	}
	return NewMemoryCatalogRepositoryFromProducts(products)
}

// NewMemoryCatalogRepositoryFromProducts builds a repository over the
// given products. Duplicate ids are rejected.
func NewMemoryCatalogRepositoryFromProducts(products []domain.Product) (*MemoryCatalogRepository, error) {
	byID := make(map[uint]int, len(products))
	for i, p := range products {
		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %d in catalog", p.ID)
		}
		byID[p.ID] = i
	}

	return &MemoryCatalogRepository{
		products: products,
		byID:     byID,
		facets:   buildFacets(products),
	}, nil
}

// List returns the catalog in stable seed order. The returned slice is
// a copy; callers may not mutate catalog records.
func (r *MemoryCatalogRepository) List() []domain.Product {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out
}

func (r *MemoryCatalogRepository) FindByID(id uint) (*domain.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	p := r.products[i]
	return &p, nil
}

func (r *MemoryCatalogRepository) Count() int {
	return len(r.products)
}

func (r *MemoryCatalogRepository) Facets() domain.Facets {
	return r.facets
}

// buildFacets derives the filter-panel metadata once at load time.
func buildFacets(products []domain.Product) domain.Facets {
	genders := make(map[string]int)
	categories := make(map[string]int)
	brands := make(map[string]int)

	var priceMin, priceMax int64
	for i, p := range products {
		genders[p.Gender]++
		categories[p.Category]++
		brands[p.Brand]++
		if i == 0 || p.Price < priceMin {
			priceMin = p.Price
		}
		if p.Price > priceMax {
			priceMax = p.Price
		}
	}

	return domain.Facets{
		Genders:    toOptions(genders),
		Categories: toOptions(categories),
		Brands:     toOptions(brands),
		PriceMin:   priceMin,
		PriceMax:   priceMax,
	}
}

func toOptions(counts map[string]int) []domain.FacetOption {
	options := make([]domain.FacetOption, 0, len(counts))
	for value, count := range counts {
		options = append(options, domain.FacetOption{Value: value, Count: count})
	}
	sort.Slice(options, func(i, j int) bool {
		return options[i].Value < options[j].Value
	})
	return options
}

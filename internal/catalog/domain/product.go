package domain

import "errors"

// Gender values carried by catalog products. Comparison against filter
// input is case-insensitive to tolerate route-param casing.
const (
	GenderMen   = "Men"
	GenderWomen = "Women"
	GenderKids  = "Kids"
)

// ErrProductNotFound is returned when a product id is not in the catalog.
var ErrProductNotFound = errors.New("product not found")

// Product is an immutable catalog record. Price is in minor currency
// units. The catalog's slice order is the stable input order the filter
// engine's tie-breaking depends on.
type Product struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"`
	Gender      string  `json:"gender"`
	Description string  `json:"description,omitempty"`
	Price       int64   `json:"price"`
	Rating      float64 `json:"rating,omitempty"`
	Stock       int     `json:"stock,omitempty"`
	IsNew       bool    `json:"is_new,omitempty"`
}

// FacetOption is a single selectable filter value with the number of
// catalog products carrying it.
type FacetOption struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Facets is the filter-panel metadata derived from the catalog:
// selectable genders, categories and brands plus the price slider bounds.
type Facets struct {
	Genders    []FacetOption `json:"genders"`
	Categories []FacetOption `json:"categories"`
	Brands     []FacetOption `json:"brands"`
	PriceMin   int64         `json:"price_min"`
	PriceMax   int64         `json:"price_max"`
}

// CatalogRepository defines read access to the product catalog.
type CatalogRepository interface {
	// List returns all products in stable catalog order.
	List() []Product
	FindByID(id uint) (*Product, error)
	Count() int
	Facets() Facets
}

package domain

import (
	"sort"
	"strings"
)

// SortOption selects the comparator applied to the filtered set.
type SortOption string

const (
	// SortNewest partitions new arrivals ahead of the rest, keeping
	// relative order within each partition. There is no creation
	// timestamp in the model; this is a stable boolean-key sort.
	SortNewest SortOption = "newest"
	// SortPriceLow sorts ascending by price.
	SortPriceLow SortOption = "price-low"
	// SortPriceHigh sorts descending by price.
	SortPriceHigh SortOption = "price-high"
	// SortRating sorts descending by rating, missing ratings last.
	SortRating SortOption = "rating"
)

// FilterConfig describes one filter/sort/pagination request. Empty
// slices mean no restriction on that dimension. Price bounds are
// inclusive on both ends. Page is 1-based.
type FilterConfig struct {
	Genders    []string
	Categories []string
	Brands     []string
	MinPrice   int64
	MaxPrice   int64
	Search     string
	Sort       SortOption
	Page       int
	PageSize   int
}

// FilterResult is the derived visible page plus pagination metadata.
// TotalPages is 0 when nothing matched; callers treat 0 and 1 pages
// the same.
type FilterResult struct {
	Page       []Product
	TotalCount int
	TotalPages int
}

// ComputeFilteredProducts derives the visible page of products for the
// given configuration. It is pure: the input slice is never mutated and
// identical inputs yield identical output. Impossible filter
// combinations yield zero results, never an error.
func ComputeFilteredProducts(products []Product, cfg FilterConfig) FilterResult {
	matched := make([]Product, 0, len(products))
	query := strings.ToLower(strings.TrimSpace(cfg.Search))

	for _, p := range products {
		if !matchesGender(p, cfg.Genders) {
			continue
		}
		if !matchesAny(p.Category, cfg.Categories) {
			continue
		}
		if !matchesAny(p.Brand, cfg.Brands) {
			continue
		}
		if p.Price < cfg.MinPrice || p.Price > cfg.MaxPrice {
			continue
		}
		if !matchesSearch(p, query) {
			continue
		}
		matched = append(matched, p)
	}

	sortProducts(matched, cfg.Sort)

	totalCount := len(matched)
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		return FilterResult{Page: []Product{}, TotalCount: totalCount}
	}

	totalPages := (totalCount + pageSize - 1) / pageSize

	start := (cfg.Page - 1) * pageSize
	if start < 0 || start >= totalCount {
		return FilterResult{Page: []Product{}, TotalCount: totalCount, TotalPages: totalPages}
	}
	end := start + pageSize
	if end > totalCount {
		end = totalCount
	}

	return FilterResult{Page: matched[start:end], TotalCount: totalCount, TotalPages: totalPages}
}

// matchesGender compares case-insensitively; route params and catalog
// data disagree on casing.
func matchesGender(p Product, genders []string) bool {
	if len(genders) == 0 {
		return true
	}
	for _, g := range genders {
		if strings.EqualFold(p.Gender, g) {
			return true
		}
	}
	return false
}

// matchesAny is the exact-match restriction used for the canonical
// category and brand strings.
func matchesAny(value string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

func matchesSearch(p Product, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Brand), query) ||
		strings.Contains(strings.ToLower(p.Category), query) ||
		strings.Contains(strings.ToLower(p.Description), query)
}

// sortProducts orders the matched set in place. Every comparator is
// stable: equal keys keep their catalog-order relation.
func sortProducts(products []Product, by SortOption) {
	switch by {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	default:
		// newest: new arrivals first, stable within both partitions.
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].IsNew && !products[j].IsNew
		})
	}
}

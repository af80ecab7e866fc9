package domain

import (
	catalog "github.com/stridewear/storefront/internal/catalog/domain"
)

// Wishlist is a membership set of products keyed solely by product id.
// There is no variant dimension and no count; a product is either in
// or out.
type Wishlist struct {
	items []catalog.Product
}

// Toggle removes the product when present and adds it when absent.
// The returned bool is the resulting membership.
func (w *Wishlist) Toggle(product catalog.Product) bool {
	if w.Contains(product.ID) {
		w.Remove(product.ID)
		return false
	}
	w.items = append(w.items, product)
	return true
}

// Add inserts the product unless already present. Idempotent.
func (w *Wishlist) Add(product catalog.Product) {
	if w.Contains(product.ID) {
		return
	}
	w.items = append(w.items, product)
}

// Remove deletes the product by id. Removing an absent id is a no-op.
func (w *Wishlist) Remove(productID uint) {
	for i := range w.items {
		if w.items[i].ID == productID {
			w.items = append(w.items[:i], w.items[i+1:]...)
			return
		}
	}
}

// Contains reports membership for the given product id.
func (w *Wishlist) Contains(productID uint) bool {
	for i := range w.items {
		if w.items[i].ID == productID {
			return true
		}
	}
	return false
}

// Items returns a copy of the wishlist in insertion order.
func (w *Wishlist) Items() []catalog.Product {
	out := make([]catalog.Product, len(w.items))
	copy(out, w.items)
	return out
}

// Count is the number of wishlisted products.
func (w *Wishlist) Count() int {
	return len(w.items)
}

package domain

import (
	"strconv"

	catalog "github.com/stridewear/storefront/internal/catalog/domain"
)

// Line is one cart entry: a product plus quantity and the chosen size.
// Identity for merge and lookup is the (Product.ID, Size) pair; the
// empty size is a valid key of its own, distinct from every concrete
// size.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
	Size     string          `json:"size,omitempty"`
}

// Cart holds the session's cart lines. Quantities are always ≥ 1; a
// line whose quantity would drop to zero is removed instead. All
// aggregates are folds over the current lines on every call, so they
// can never drift from the line set.
type Cart struct {
	lines []Line
}

// NormalizeSize coerces the loosely-typed size discriminator to a
// string at the store boundary, so a JSON number 9 and the string "9"
// land on the same cart line. Nil means no size chosen.
func NormalizeSize(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		if s == float64(int64(s)) {
			return strconv.FormatInt(int64(s), 10)
		}
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	default:
		return ""
	}
}

// Add merges quantity into the line keyed by (product.ID, size), or
// appends a new line. Quantities below 1 count as 1: repeated add
// clicks accumulate, they never remove.
func (c *Cart) Add(product catalog.Product, quantity int, size string) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.lines {
		if c.lines[i].Product.ID == product.ID && c.lines[i].Size == size {
			c.lines[i].Quantity += quantity
			return
		}
	}
	c.lines = append(c.lines, Line{Product: product, Quantity: quantity, Size: size})
}

// Remove deletes the line keyed by (productID, size). Removing an
// absent line is a silent no-op.
func (c *Cart) Remove(productID uint, size string) {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID && c.lines[i].Size == size {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity sets the line's quantity to exactly quantity. A quantity
// of zero or below behaves exactly like Remove. Setting an absent line
// is a no-op.
func (c *Cart) SetQuantity(productID uint, quantity int, size string) {
	if quantity <= 0 {
		c.Remove(productID, size)
		return
	}
	for i := range c.lines {
		if c.lines[i].Product.ID == productID && c.lines[i].Size == size {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.lines = nil
}

// Find returns the line for (productID, size), or nil.
func (c *Cart) Find(productID uint, size string) *Line {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID && c.lines[i].Size == size {
			return &c.lines[i]
		}
	}
	return nil
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Subtotal is the sum of price × quantity over all lines.
func (c *Cart) Subtotal() int64 {
	var total int64
	for _, l := range c.lines {
		total += l.Product.Price * int64(l.Quantity)
	}
	return total
}

// ItemCount is the sum of quantities over all lines, the "items in
// your bag" badge number.
func (c *Cart) ItemCount() int {
	var count int
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}

// LineCount is the number of distinct lines.
func (c *Cart) LineCount() int {
	return len(c.lines)
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/stridewear/storefront/internal/catalog/domain"
)

var (
	pegasus = catalog.Product{ID: 1, Name: "Air Zoom Pegasus 40", Price: 1000}
	suede   = catalog.Product{ID: 2, Name: "Suede Classic XXI", Price: 500}
)

func TestCart_AddMergesByProductAndSize(t *testing.T) {
	var cart Cart

	cart.Add(pegasus, 1, "9")
	cart.Add(pegasus, 2, "9")

	require.Equal(t, 1, cart.LineCount())
	line := cart.Find(pegasus.ID, "9")
	require.NotNil(t, line)
	assert.Equal(t, 3, line.Quantity)

	cart.Add(pegasus, 1, "10")
	assert.Equal(t, 2, cart.LineCount())
}

func TestCart_EmptySizeIsItsOwnKey(t *testing.T) {
	var cart Cart

	cart.Add(pegasus, 1, "")
	cart.Add(pegasus, 1, "9")

	assert.Equal(t, 2, cart.LineCount())
	require.NotNil(t, cart.Find(pegasus.ID, ""))
	assert.Equal(t, 1, cart.Find(pegasus.ID, "").Quantity)
}

func TestCart_AddClampsQuantityToOne(t *testing.T) {
	var cart Cart

	cart.Add(pegasus, 0, "")
	cart.Add(pegasus, -3, "")

	assert.Equal(t, 2, cart.Find(pegasus.ID, "").Quantity)
}

func TestCart_QuantityZeroEquivalentToRemove(t *testing.T) {
	build := func() *Cart {
		var c Cart
		c.Add(pegasus, 2, "9")
		c.Add(suede, 1, "")
		return &c
	}

	removed := build()
	removed.Remove(pegasus.ID, "9")

	setZero := build()
	setZero.SetQuantity(pegasus.ID, 0, "9")

	setNegative := build()
	setNegative.SetQuantity(pegasus.ID, -5, "9")

	assert.Equal(t, removed.Lines(), setZero.Lines())
	assert.Equal(t, removed.Lines(), setNegative.Lines())
}

func TestCart_SetQuantityIsAbsolute(t *testing.T) {
	var cart Cart
	cart.Add(pegasus, 2, "9")

	cart.SetQuantity(pegasus.ID, 7, "9")
	assert.Equal(t, 7, cart.Find(pegasus.ID, "9").Quantity)
}

func TestCart_RemoveAbsentIsNoop(t *testing.T) {
	var cart Cart
	cart.Add(pegasus, 1, "9")

	cart.Remove(pegasus.ID, "10")
	cart.Remove(suede.ID, "")

	assert.Equal(t, 1, cart.LineCount())
}

func TestCart_Aggregates(t *testing.T) {
	var cart Cart
	cart.Add(pegasus, 2, "9") // 1000 × 2
	cart.Add(suede, 1, "")    // 500 × 1

	assert.Equal(t, int64(2500), cart.Subtotal())
	assert.Equal(t, 3, cart.ItemCount())
	assert.Equal(t, 2, cart.LineCount())

	cart.Remove(pegasus.ID, "9")
	assert.Equal(t, int64(500), cart.Subtotal())
	assert.Equal(t, 1, cart.ItemCount())

	cart.Clear()
	assert.True(t, cart.IsEmpty())
	assert.Zero(t, cart.Subtotal())
	assert.Zero(t, cart.ItemCount())
}

func TestNormalizeSize(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "9", "9"},
		{"whole float from JSON", float64(9), "9"},
		{"half size", 9.5, "9.5"},
		{"int", 10, "10"},
		{"int64", int64(11), "11"},
		{"unsupported type", struct{}{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSize(tt.in))
		})
	}
}

func TestNormalizeSize_CollapsesNumericAndStringKeys(t *testing.T) {
	var cart Cart
	cart.Add(pegasus, 1, NormalizeSize("9"))
	cart.Add(pegasus, 1, NormalizeSize(float64(9)))

	assert.Equal(t, 1, cart.LineCount())
	assert.Equal(t, 2, cart.Find(pegasus.ID, "9").Quantity)
}

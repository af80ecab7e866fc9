package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRules_Lookup(t *testing.T) {
	rules := NewRules(map[string]int64{"WELCOME200": 200})

	rule, err := rules.Lookup("WELCOME200")
	require.NoError(t, err)
	assert.Equal(t, int64(200), rule.Discount)

	_, err = rules.Lookup("BOGUS")
	assert.ErrorIs(t, err, ErrInvalidCoupon)
}

func TestComputeTotal(t *testing.T) {
	coupon := &AppliedCoupon{Code: "WELCOME200", Discount: 200}

	tests := []struct {
		name        string
		subtotal    int64
		platformFee int64
		coupon      *AppliedCoupon
		want        int64
	}{
		{"no coupon", 2500, 20, nil, 2520},
		{"welcome coupon", 2500, 20, coupon, 2320},
		{"discount exceeds total clamps to zero", 100, 20, &AppliedCoupon{Code: "BIG", Discount: 5000}, 0},
		{"empty cart with fee", 0, 20, nil, 20},
		{"everything zero", 0, 0, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotal(tt.subtotal, tt.platformFee, tt.coupon)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, int64(0))
		})
	}
}

func TestShippingCost(t *testing.T) {
	assert.Equal(t, int64(50), ShippingCost(1000, 1000, 50), "at threshold still pays")
	assert.Equal(t, int64(0), ShippingCost(1001, 1000, 50), "strictly above threshold is free")
	assert.Equal(t, int64(50), ShippingCost(0, 1000, 50))
}

func TestPercentDiscount(t *testing.T) {
	assert.Equal(t, int64(125), PercentDiscount(2500, 500), "5% of 2500")
	assert.Equal(t, int64(0), PercentDiscount(19, 500), "floors to zero")
	assert.Equal(t, int64(0), PercentDiscount(0, 500))
	assert.Equal(t, int64(0), PercentDiscount(2500, 0))
	assert.Equal(t, int64(0), PercentDiscount(-100, 500))
}

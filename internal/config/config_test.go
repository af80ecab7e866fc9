package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "storefront", cfg.ServiceName)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, int64(20), cfg.Pricing.PlatformFee)
	assert.Equal(t, int64(1000), cfg.Pricing.FreeShippingThreshold)
	assert.Equal(t, map[string]int64{"WELCOME200": 200}, cfg.CouponCodes)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("PLATFORM_FEE", "35")
	t.Setenv("ENVIRONMENT", "production")

	cfg := Load()

	assert.Equal(t, "9000", cfg.HTTPPort)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, int64(35), cfg.Pricing.PlatformFee)
	assert.False(t, cfg.IsDevelopment())
}

func TestParseCoupons(t *testing.T) {
	coupons := parseCoupons("WELCOME200:200, SAVE50:50,FREESHIP:0")
	assert.Equal(t, map[string]int64{
		"WELCOME200": 200,
		"SAVE50":     50,
		"FREESHIP":   0,
	}, coupons)
}

func TestParseCouponsSkipsMalformed(t *testing.T) {
	coupons := parseCoupons("GOOD:100,broken,:5,NEG:-10,BAD:abc")
	assert.Equal(t, map[string]int64{"GOOD": 100}, coupons)
}

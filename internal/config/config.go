package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the storefront service configuration, loaded from the
// environment.
type Config struct {
	ServiceName string
	Environment string
	LogLevel    string
	HTTPPort    string

	SessionTTL    time.Duration
	SweepInterval time.Duration

	Pricing PricingConfig

	// CouponCodes maps a coupon code to its flat discount amount in
	// minor currency units.
	CouponCodes map[string]int64
}

// PricingConfig holds the checkout pricing knobs, all in minor
// currency units except OrderDiscountBps (basis points).
type PricingConfig struct {
	PlatformFee           int64
	FreeShippingThreshold int64
	ShippingFlatFee       int64
	OrderDiscountBps      int64
}

// Load builds the configuration from environment variables, applying
// defaults for anything unset.
func Load() *Config {
	return &Config{
		ServiceName: getEnv("OTEL_SERVICE_NAME", "storefront"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		HTTPPort:    getEnv("HTTP_PORT", "8080"),

		SessionTTL:    getDuration("SESSION_TTL", 24*time.Hour),
		SweepInterval: getDuration("SESSION_SWEEP_INTERVAL", 5*time.Minute),

		Pricing: PricingConfig{
			PlatformFee:           getInt64("PLATFORM_FEE", 20),
			FreeShippingThreshold: getInt64("FREE_SHIPPING_THRESHOLD", 1000),
			ShippingFlatFee:       getInt64("SHIPPING_FLAT_FEE", 50),
			OrderDiscountBps:      getInt64("ORDER_DISCOUNT_BPS", 500),
		},

		CouponCodes: parseCoupons(getEnv("COUPON_CODES", "WELCOME200:200")),
	}
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// parseCoupons parses a "CODE:amount,CODE:amount" list. Malformed
// entries are skipped.
func parseCoupons(raw string) map[string]int64 {
	coupons := make(map[string]int64)
	for _, entry := range strings.Split(raw, ",") {
		code, amount, ok := strings.Cut(strings.TrimSpace(entry), ":")
		if !ok || code == "" {
			continue
		}
		value, err := strconv.ParseInt(amount, 10, 64)
		if err != nil || value < 0 {
			continue
		}
		coupons[code] = value
	}
	return coupons
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

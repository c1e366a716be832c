package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	JWTSecret string
	StateDir  string // secure-store location

	ShippingCost  decimal.Decimal // flat shipping, free by default
	WalletBalance decimal.Decimal // opening wallet balance
	TopUpLimit    decimal.Decimal // maximum single top-up
	SessionTTL    time.Duration
	CheckoutDelay time.Duration // simulated payment processing
	TopUpDelay    time.Duration // simulated top-up processing
}

// Load reads .env (if present) and the environment, falling back to the
// defaults the mobile app shipped with.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		JWTSecret:     getEnv("JWT_SECRET", "storefront-dev-secret"),
		StateDir:      getEnv("STATE_DIR", ".storefront"),
		ShippingCost:  getDecimal("SHIPPING_COST", decimal.Zero),
		WalletBalance: getDecimal("WALLET_BALANCE", decimal.NewFromInt(250)),
		TopUpLimit:    getDecimal("TOPUP_LIMIT", decimal.NewFromInt(1000)),
		SessionTTL:    getDuration("SESSION_TTL", 24*time.Hour),
		CheckoutDelay: getDuration("CHECKOUT_DELAY", 2*time.Second),
		TopUpDelay:    getDuration("TOPUP_DELAY", time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDecimal(key string, fallback decimal.Decimal) decimal.Decimal {
	if v := os.Getenv(key); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			return d
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

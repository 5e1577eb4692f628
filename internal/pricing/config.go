package pricing

import (
	"os"
	"regexp"
	"strconv"
)

// Config holds the pricing constants the builder consumes. They are
// configuration owned by the deployment, not logic: the conversion rate and
// placeholder price must be adjustable without code changes.
type Config struct {
	// TokenRate is the display-currency value of one token.
	TokenRate float64
	// CurrencyCode labels the converted amount, e.g. "EUR".
	CurrencyCode string
	// CustomPlaceholder is the display-only token price stamped on custom
	// line items. It is never summed.
	CustomPlaceholder int
	// TitlePattern flags likely duplicate campaign titles (advisory only).
	// Nil disables the check.
	TitlePattern *regexp.Regexp
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		TokenRate:         250,
		CurrencyCode:      "EUR",
		CustomPlaceholder: 5,
		TitlePattern:      regexp.MustCompile(`(?i)new year 2027`),
	}
}

// LoadConfig reads pricing configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("BRIEFDESK_TOKEN_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.TokenRate = f
		}
	}
	if v := os.Getenv("BRIEFDESK_CURRENCY"); v != "" {
		cfg.CurrencyCode = v
	}
	if v := os.Getenv("BRIEFDESK_CUSTOM_PLACEHOLDER"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.CustomPlaceholder = n
		}
	}
	if v := os.Getenv("BRIEFDESK_TITLE_PATTERN"); v != "" {
		if re, err := regexp.Compile(v); err == nil {
			cfg.TitlePattern = re
		}
	}

	return cfg
}

// Currency converts a token total into the configured display currency.
func (c Config) Currency(tokens int) float64 {
	return float64(tokens) * c.TokenRate
}

package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()
	assert.Equal(t, 250.0, cfg.TokenRate)
	assert.Equal(t, "EUR", cfg.CurrencyCode)
	assert.Equal(t, 5, cfg.CustomPlaceholder)
	require.NotNil(t, cfg.TitlePattern)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("BRIEFDESK_TOKEN_RATE", "100.5")
	t.Setenv("BRIEFDESK_CURRENCY", "USD")
	t.Setenv("BRIEFDESK_CUSTOM_PLACEHOLDER", "12")
	t.Setenv("BRIEFDESK_TITLE_PATTERN", `(?i)holiday`)

	cfg := LoadConfig()
	assert.Equal(t, 100.5, cfg.TokenRate)
	assert.Equal(t, "USD", cfg.CurrencyCode)
	assert.Equal(t, 12, cfg.CustomPlaceholder)
	assert.True(t, cfg.TitlePattern.MatchString("Holiday splash"))
}

func TestLoadConfig_IgnoresInvalidValues(t *testing.T) {
	t.Setenv("BRIEFDESK_TOKEN_RATE", "-3")
	t.Setenv("BRIEFDESK_CUSTOM_PLACEHOLDER", "banana")
	t.Setenv("BRIEFDESK_TITLE_PATTERN", "(unclosed")

	cfg := LoadConfig()
	assert.Equal(t, 250.0, cfg.TokenRate)
	assert.Equal(t, 5, cfg.CustomPlaceholder)
	assert.NotNil(t, cfg.TitlePattern)
}

func TestCurrency(t *testing.T) {
	cfg := Config{TokenRate: 250}
	assert.Equal(t, 4000.0, cfg.Currency(16))
	assert.Equal(t, 0.0, cfg.Currency(0))
}

package assist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, "http://localhost:11434", cfg.Endpoint)
	assert.Equal(t, 1, cfg.MaxRetries)
	assert.Contains(t, cfg.Tasks, TaskFreeChat)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("BRIEFDESK_ASSIST_ENABLED", "true")
	t.Setenv("BRIEFDESK_ASSIST_ENDPOINT", "http://assist.internal:8080")
	t.Setenv("BRIEFDESK_ASSIST_MODEL", "mistral")
	t.Setenv("BRIEFDESK_ASSIST_TIMEOUT_MS", "2500")
	t.Setenv("BRIEFDESK_ASSIST_MAX_RETRIES", "0")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "http://assist.internal:8080", cfg.Endpoint)
	assert.Equal(t, "mistral", cfg.Model)
	assert.Equal(t, 2500, cfg.TimeoutMs)
	assert.Equal(t, 0, cfg.MaxRetries)
}

func TestLoadConfig_IgnoresInvalidNumbers(t *testing.T) {
	t.Setenv("BRIEFDESK_ASSIST_TIMEOUT_MS", "soon")
	t.Setenv("BRIEFDESK_ASSIST_MAX_RETRIES", "-1")

	cfg := LoadConfig()
	assert.Equal(t, 10000, cfg.TimeoutMs)
	assert.Equal(t, 1, cfg.MaxRetries)
}

func TestTaskTimeout(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 15000, cfg.TaskTimeout(TaskFreeChat))
	assert.Equal(t, cfg.TimeoutMs, cfg.TaskTimeout(TaskType("unknown")))
}

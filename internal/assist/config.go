package assist

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of assist exchange being performed.
type TaskType string

const (
	TaskRefineSummary      TaskType = "refine_summary"
	TaskSuggestDeliverable TaskType = "suggest_deliverable"
	TaskFreeChat           TaskType = "free_chat"
)

// TaskConfig holds per-task assist parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the assist subsystem.
type Config struct {
	Enabled    bool
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
	LogCalls   bool
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults.
// Assist is disabled by default; the canned responder covers that case.
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		Endpoint:   "http://localhost:11434",
		Model:      "llama3.2",
		TimeoutMs:  10000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskRefineSummary:      {Temperature: 0.3, MaxTokens: 1024, TimeoutMs: 8000},
			TaskSuggestDeliverable: {Temperature: 0.2, MaxTokens: 512, TimeoutMs: 8000},
			TaskFreeChat:           {Temperature: 0.4, MaxTokens: 2048, TimeoutMs: 15000},
		},
	}
}

// LoadConfig reads assist configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("BRIEFDESK_ASSIST_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("BRIEFDESK_ASSIST_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("BRIEFDESK_ASSIST_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("BRIEFDESK_ASSIST_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("BRIEFDESK_ASSIST_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("BRIEFDESK_ASSIST_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	return cfg
}

// TaskTimeout returns the effective timeout for a task in milliseconds.
func (c Config) TaskTimeout(task TaskType) int {
	if t, ok := c.Tasks[task]; ok && t.TimeoutMs > 0 {
		return t.TimeoutMs
	}
	return c.TimeoutMs
}

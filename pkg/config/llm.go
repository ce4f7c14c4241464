package config

import "time"

// LLMConfig contains extraction model and retry configuration.
type LLMConfig struct {
	// Model is the Anthropic model used for extraction.
	Model string `yaml:"model"`

	// APIKeyEnv is the environment variable holding the API key.
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// Optional custom endpoint/base URL
	BaseURL string `yaml:"base_url,omitempty"`

	// MaxTokens caps the completion size for a single extraction call.
	MaxTokens int `yaml:"max_tokens"`

	// RequestTimeout bounds a single API call, not the whole job.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// MaxRetries is the number of attempts for transient API failures
	// within one job execution.
	MaxRetries int `yaml:"max_retries"`

	// InitialBackoff seeds the exponential backoff between attempts:
	// initial * 2^(attempt-1), plus jitter.
	InitialBackoff time.Duration `yaml:"initial_backoff"`

	// BackoffJitter is the maximum random addition to each backoff.
	BackoffJitter time.Duration `yaml:"backoff_jitter"`

	// Breaker configures the circuit breaker wrapped around API calls.
	Breaker *BreakerConfig `yaml:"breaker,omitempty"`
}

// BreakerConfig tunes the extraction circuit breaker. The breaker opens
// when, within a rolling window, enough requests have been observed and
// enough of them failed; while open, jobs requeue without calling the API.
type BreakerConfig struct {
	// Window is the rolling interval over which failures are counted.
	Window time.Duration `yaml:"window"`

	// MinRequests is the minimum observations before the ratio applies.
	MinRequests int `yaml:"min_requests"`

	// FailureRatio opens the breaker once exceeded.
	FailureRatio float64 `yaml:"failure_ratio"`

	// OpenTimeout is how long the breaker stays open before probing.
	OpenTimeout time.Duration `yaml:"open_timeout"`

	// HalfOpenRequests is how many probes are allowed while half-open.
	HalfOpenRequests int `yaml:"half_open_requests"`
}

// DefaultLLMConfig returns the built-in extraction defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		Model:          "claude-sonnet-4-5",
		APIKeyEnv:      "ANTHROPIC_API_KEY",
		MaxTokens:      4096,
		RequestTimeout: 60 * time.Second,
		MaxRetries:     3,
		InitialBackoff: 2 * time.Second,
		BackoffJitter:  500 * time.Millisecond,
		Breaker:        DefaultBreakerConfig(),
	}
}

// DefaultBreakerConfig returns the built-in circuit breaker defaults.
func DefaultBreakerConfig() *BreakerConfig {
	return &BreakerConfig{
		Window:           60 * time.Second,
		MinRequests:      5,
		FailureRatio:     0.6,
		OpenTimeout:      30 * time.Second,
		HalfOpenRequests: 2,
	}
}

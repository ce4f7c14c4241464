package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a config that passes every validator check.
func validConfig() *Config {
	return &Config{
		Queue:     DefaultQueueConfig(),
		LLM:       DefaultLLMConfig(),
		Dedup:     DefaultDedupConfig(),
		Freshness: DefaultFreshnessConfig(),
		Delivery:  DefaultDeliveryConfig(),
		API:       DefaultAPIConfig(),
		Retention: DefaultRetentionConfig(),
	}
}

func TestValidateAllDefaults(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	err := NewValidator(validConfig()).ValidateAll()
	assert.NoError(t, err)
}

func TestValidateQueue(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	tests := []struct {
		name    string
		mutate  func(*QueueConfig)
		wantErr string
	}{
		{
			name:    "empty pipeline version",
			mutate:  func(q *QueueConfig) { q.PipelineVersion = "" },
			wantErr: "pipeline_version",
		},
		{
			name:    "zero workers",
			mutate:  func(q *QueueConfig) { q.WorkerCount = 0 },
			wantErr: "worker_count",
		},
		{
			name:    "too many workers",
			mutate:  func(q *QueueConfig) { q.WorkerCount = 51 },
			wantErr: "worker_count",
		},
		{
			name:    "zero claim batch",
			mutate:  func(q *QueueConfig) { q.ClaimBatchSize = 0 },
			wantErr: "claim_batch_size",
		},
		{
			name:    "jitter at least poll interval",
			mutate:  func(q *QueueConfig) { q.PollIntervalJitter = q.PollInterval },
			wantErr: "poll_interval_jitter",
		},
		{
			name: "stale threshold inside job budget",
			mutate: func(q *QueueConfig) {
				q.JobTimeout = 5 * time.Minute
				q.StaleThreshold = 4 * time.Minute
			},
			wantErr: "stale_threshold",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg.Queue)

			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateLLM(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	tests := []struct {
		name    string
		mutate  func(*LLMConfig)
		wantErr string
	}{
		{
			name:    "empty model",
			mutate:  func(l *LLMConfig) { l.Model = "" },
			wantErr: "model",
		},
		{
			name:    "max tokens too small",
			mutate:  func(l *LLMConfig) { l.MaxTokens = 100 },
			wantErr: "max_tokens",
		},
		{
			name:    "missing breaker",
			mutate:  func(l *LLMConfig) { l.Breaker = nil },
			wantErr: "breaker",
		},
		{
			name:    "failure ratio above one",
			mutate:  func(l *LLMConfig) { l.Breaker.FailureRatio = 1.5 },
			wantErr: "failure_ratio",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg.LLM)

			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateLLMAPIKeyEnvUnset(t *testing.T) {
	t.Setenv("ASSIGNFLOW_TEST_MISSING_KEY", "")

	cfg := validConfig()
	cfg.LLM.APIKeyEnv = "ASSIGNFLOW_TEST_MISSING_KEY"

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api_key_env")
}

func TestValidateDedup(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	tests := []struct {
		name    string
		mutate  func(*DedupConfig)
		wantErr string
	}{
		{
			name: "medium below low",
			mutate: func(d *DedupConfig) {
				d.LowThreshold = 80
				d.MediumThreshold = 70
			},
			wantErr: "medium_threshold",
		},
		{
			name:    "high above 100",
			mutate:  func(d *DedupConfig) { d.HighThreshold = 101 },
			wantErr: "high_threshold",
		},
		{
			name:    "negative weight",
			mutate:  func(d *DedupConfig) { d.Weights.Postal = -1 },
			wantErr: "weights.postal",
		},
		{
			name:    "fuzzy tolerance out of range",
			mutate:  func(d *DedupConfig) { d.FuzzyPostalTolerance = 5 },
			wantErr: "fuzzy_postal_tolerance",
		},
		{
			name:    "empty algorithm version",
			mutate:  func(d *DedupConfig) { d.AlgorithmVersion = "" },
			wantErr: "algorithm_version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg.Dedup)

			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateFreshnessOrdering(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	cfg := validConfig()
	cfg.Freshness.YellowMaxAge = cfg.Freshness.GreenMaxAge

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "yellow_max_age")
}

func TestValidateDelivery(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	t.Run("invalid duplicate mode", func(t *testing.T) {
		cfg := validConfig()
		cfg.Delivery.BroadcastDuplicateMode = "sometimes"

		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "broadcast_duplicate_mode")
	})

	t.Run("disabled delivery skips transport checks", func(t *testing.T) {
		cfg := validConfig()
		cfg.Delivery.Enabled = false
		cfg.Delivery.TransportAddr = ""

		assert.NoError(t, NewValidator(cfg).ValidateAll())
	})

	t.Run("enabled delivery requires transport addr", func(t *testing.T) {
		cfg := validConfig()
		cfg.Delivery.TransportAddr = ""

		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "transport_addr")
	})

	t.Run("click buckets must ascend", func(t *testing.T) {
		cfg := validConfig()
		cfg.Delivery.ClickBuckets = []int{5, 5, 10}

		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "click_buckets")
	})
}

func TestValidateAPI(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	cfg := validConfig()
	cfg.API.MaxPageSize = cfg.API.DefaultPageSize - 1

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_page_size")
}

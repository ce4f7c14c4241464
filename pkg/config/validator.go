package config

import (
	"fmt"
	"os"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	if err := v.validateQueue(); err != nil {
		return fmt.Errorf("queue validation failed: %w", err)
	}

	if err := v.validateLLM(); err != nil {
		return fmt.Errorf("llm validation failed: %w", err)
	}

	if err := v.validateDedup(); err != nil {
		return fmt.Errorf("dedup validation failed: %w", err)
	}

	if err := v.validateFreshness(); err != nil {
		return fmt.Errorf("freshness validation failed: %w", err)
	}

	if err := v.validateDelivery(); err != nil {
		return fmt.Errorf("delivery validation failed: %w", err)
	}

	if err := v.validateAPI(); err != nil {
		return fmt.Errorf("api validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateQueue() error {
	q := v.cfg.Queue
	if q == nil {
		return fmt.Errorf("queue configuration is nil")
	}

	if q.PipelineVersion == "" {
		return NewValidationError("queue", "pipeline_version", ErrMissingRequiredField)
	}
	if q.WorkerCount < 1 || q.WorkerCount > 50 {
		return NewValidationError("queue", "worker_count", fmt.Errorf("must be between 1 and 50"))
	}
	if q.ClaimBatchSize < 1 {
		return NewValidationError("queue", "claim_batch_size", fmt.Errorf("must be at least 1"))
	}
	if q.PollInterval <= 0 {
		return NewValidationError("queue", "poll_interval", fmt.Errorf("must be positive"))
	}
	if q.PollIntervalJitter < 0 {
		return NewValidationError("queue", "poll_interval_jitter", fmt.Errorf("must be non-negative"))
	}
	if q.PollIntervalJitter >= q.PollInterval {
		return NewValidationError("queue", "poll_interval_jitter", fmt.Errorf("must be less than poll_interval"))
	}
	if q.JobTimeout <= 0 {
		return NewValidationError("queue", "job_timeout", fmt.Errorf("must be positive"))
	}
	if q.MaxAttempts < 1 {
		return NewValidationError("queue", "max_attempts", fmt.Errorf("must be at least 1"))
	}
	if q.StaleCheckInterval <= 0 {
		return NewValidationError("queue", "stale_check_interval", fmt.Errorf("must be positive"))
	}
	if q.StaleThreshold <= q.JobTimeout {
		// A threshold inside the job budget would requeue jobs that are
		// still legitimately running.
		return NewValidationError("queue", "stale_threshold",
			fmt.Errorf("must exceed job_timeout (%s)", q.JobTimeout))
	}

	return nil
}

func (v *ConfigValidator) validateLLM() error {
	l := v.cfg.LLM
	if l == nil {
		return fmt.Errorf("llm configuration is nil")
	}

	if l.Model == "" {
		return NewValidationError("llm", "model", ErrMissingRequiredField)
	}
	if l.APIKeyEnv != "" {
		if value := os.Getenv(l.APIKeyEnv); value == "" {
			return NewValidationError("llm", "api_key_env",
				fmt.Errorf("environment variable %s is not set", l.APIKeyEnv))
		}
	}
	if l.MaxTokens < 256 {
		return NewValidationError("llm", "max_tokens", fmt.Errorf("must be at least 256"))
	}
	if l.RequestTimeout <= 0 {
		return NewValidationError("llm", "request_timeout", fmt.Errorf("must be positive"))
	}
	if l.MaxRetries < 1 {
		return NewValidationError("llm", "max_retries", fmt.Errorf("must be at least 1"))
	}
	if l.InitialBackoff <= 0 {
		return NewValidationError("llm", "initial_backoff", fmt.Errorf("must be positive"))
	}

	b := l.Breaker
	if b == nil {
		return NewValidationError("llm", "breaker", ErrMissingRequiredField)
	}
	if b.Window <= 0 {
		return NewValidationError("llm", "breaker.window", fmt.Errorf("must be positive"))
	}
	if b.MinRequests < 1 {
		return NewValidationError("llm", "breaker.min_requests", fmt.Errorf("must be at least 1"))
	}
	if b.FailureRatio <= 0 || b.FailureRatio > 1 {
		return NewValidationError("llm", "breaker.failure_ratio", fmt.Errorf("must be in (0, 1]"))
	}
	if b.OpenTimeout <= 0 {
		return NewValidationError("llm", "breaker.open_timeout", fmt.Errorf("must be positive"))
	}

	return nil
}

func (v *ConfigValidator) validateDedup() error {
	d := v.cfg.Dedup
	if d == nil {
		return fmt.Errorf("dedup configuration is nil")
	}

	if d.MediumThreshold <= d.LowThreshold {
		return NewValidationError("dedup", "medium_threshold",
			fmt.Errorf("must exceed low_threshold (%.0f)", d.LowThreshold))
	}
	if d.HighThreshold <= d.MediumThreshold {
		return NewValidationError("dedup", "high_threshold",
			fmt.Errorf("must exceed medium_threshold (%.0f)", d.MediumThreshold))
	}
	if d.HighThreshold > 100 {
		return NewValidationError("dedup", "high_threshold", fmt.Errorf("must not exceed 100"))
	}
	if d.TimeWindowDays < 1 {
		return NewValidationError("dedup", "time_window_days", fmt.Errorf("must be at least 1"))
	}
	if d.BatchSize < 1 {
		return NewValidationError("dedup", "batch_size", fmt.Errorf("must be at least 1"))
	}
	if d.FuzzyPostalTolerance < 0 || d.FuzzyPostalTolerance > 4 {
		return NewValidationError("dedup", "fuzzy_postal_tolerance", fmt.Errorf("must be in [0, 4]"))
	}
	if d.AlgorithmVersion == "" {
		return NewValidationError("dedup", "algorithm_version", ErrMissingRequiredField)
	}

	w := d.Weights
	if w == nil {
		return NewValidationError("dedup", "weights", ErrMissingRequiredField)
	}
	for field, weight := range map[string]float64{
		"postal":            w.Postal,
		"subjects":          w.Subjects,
		"levels":            w.Levels,
		"rate":              w.Rate,
		"assignment_code":   w.AssignmentCode,
		"temporal":          w.Temporal,
		"time_availability": w.TimeAvailability,
	} {
		if weight < 0 {
			return NewValidationError("dedup", "weights."+field, fmt.Errorf("must not be negative"))
		}
	}

	return nil
}

func (v *ConfigValidator) validateFreshness() error {
	f := v.cfg.Freshness
	if f == nil {
		return fmt.Errorf("freshness configuration is nil")
	}

	if f.Interval <= 0 {
		return NewValidationError("freshness", "interval", fmt.Errorf("must be positive"))
	}
	if f.BatchSize < 1 {
		return NewValidationError("freshness", "batch_size", fmt.Errorf("must be at least 1"))
	}
	if f.GreenMaxAge <= 0 {
		return NewValidationError("freshness", "green_max_age", fmt.Errorf("must be positive"))
	}
	if f.YellowMaxAge <= f.GreenMaxAge {
		return NewValidationError("freshness", "yellow_max_age",
			fmt.Errorf("must exceed green_max_age (%s)", f.GreenMaxAge))
	}
	if f.OrangeMaxAge <= f.YellowMaxAge {
		return NewValidationError("freshness", "orange_max_age",
			fmt.Errorf("must exceed yellow_max_age (%s)", f.YellowMaxAge))
	}

	return nil
}

func (v *ConfigValidator) validateDelivery() error {
	d := v.cfg.Delivery

	if !d.BroadcastDuplicateMode.IsValid() {
		return NewValidationError("delivery", "broadcast_duplicate_mode",
			fmt.Errorf("invalid mode: %s", d.BroadcastDuplicateMode))
	}

	if !d.Enabled {
		// Remaining fields are unused when delivery is off.
		return nil
	}

	if d.TransportAddr == "" {
		return NewValidationError("delivery", "transport_addr", ErrMissingRequiredField)
	}
	if d.BroadcastChannel == "" {
		return NewValidationError("delivery", "broadcast_channel", ErrMissingRequiredField)
	}
	if d.DMMaxDistanceKmDefault <= 0 {
		return NewValidationError("delivery", "dm_max_distance_km_default", fmt.Errorf("must be positive"))
	}
	if d.DMRatePerMinute <= 0 {
		return NewValidationError("delivery", "dm_rate_per_minute", fmt.Errorf("must be positive"))
	}
	if d.BroadcastRatePerMinute <= 0 {
		return NewValidationError("delivery", "broadcast_rate_per_minute", fmt.Errorf("must be positive"))
	}
	if d.RatingPercentile < 0 || d.RatingPercentile >= 1 {
		return NewValidationError("delivery", "rating_percentile", fmt.Errorf("must be in [0, 1)"))
	}
	for i := 1; i < len(d.ClickBuckets); i++ {
		if d.ClickBuckets[i] <= d.ClickBuckets[i-1] {
			return NewValidationError("delivery", "click_buckets", fmt.Errorf("must be strictly ascending"))
		}
	}

	return nil
}

func (v *ConfigValidator) validateAPI() error {
	a := v.cfg.API

	if a.ListenAddr == "" {
		return NewValidationError("api", "listen_addr", ErrMissingRequiredField)
	}
	if a.DefaultPageSize < 1 {
		return NewValidationError("api", "default_page_size", fmt.Errorf("must be at least 1"))
	}
	if a.MaxPageSize < a.DefaultPageSize {
		return NewValidationError("api", "max_page_size",
			fmt.Errorf("must be at least default_page_size (%d)", a.DefaultPageSize))
	}

	return nil
}

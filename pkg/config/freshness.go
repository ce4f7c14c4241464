package config

import "time"

// FreshnessConfig contains freshness tiering thresholds and schedule.
// Tier is computed from the age of source_last_seen, falling back to
// published_at, then created_at.
type FreshnessConfig struct {
	// Interval is how often open assignments are re-tiered.
	Interval time.Duration `yaml:"interval"`

	// BatchSize bounds each bulk tier update statement.
	BatchSize int `yaml:"batch_size"`

	// GreenMaxAge is the oldest an assignment can be and stay green.
	GreenMaxAge time.Duration `yaml:"green_max_age"`

	// YellowMaxAge is the oldest an assignment can be and stay yellow.
	YellowMaxAge time.Duration `yaml:"yellow_max_age"`

	// OrangeMaxAge is the oldest an assignment can be and stay orange.
	// Anything older is red.
	OrangeMaxAge time.Duration `yaml:"orange_max_age"`
}

// DefaultFreshnessConfig returns the built-in tiering defaults.
func DefaultFreshnessConfig() *FreshnessConfig {
	return &FreshnessConfig{
		Interval:     10 * time.Minute,
		BatchSize:    500,
		GreenMaxAge:  24 * time.Hour,
		YellowMaxAge: 3 * 24 * time.Hour,
		OrangeMaxAge: 7 * 24 * time.Hour,
	}
}

package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// RawRetentionDays is how many days to keep raw messages whose jobs
	// have all reached a terminal state before soft-deleting them
	// (setting deleted_at).
	RawRetentionDays int `yaml:"raw_retention_days"`

	// EventTTL is the maximum age of Event rows before deletion. The
	// events table is a notification transport, not an archive.
	EventTTL time.Duration `yaml:"event_ttl"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		RawRetentionDays: 180,
		EventTTL:         1 * time.Hour,
		CleanupInterval:  12 * time.Hour,
	}
}

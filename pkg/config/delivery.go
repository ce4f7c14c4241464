package config

import "time"

// DeliveryConfig contains fanout, transport, and rate limit configuration.
type DeliveryConfig struct {
	// Enabled disables all outbound delivery when false; the pipeline
	// still records assignments and duplicate groups.
	Enabled bool `yaml:"enabled"`

	// TransportAddr is the gRPC address of the bot gateway.
	TransportAddr string `yaml:"transport_addr"`

	// BroadcastChannel is the channel identifier broadcasts post to.
	BroadcastChannel string `yaml:"broadcast_channel"`

	// BroadcastDuplicateMode selects how non-primary group members are
	// broadcast: all, primary_only, or primary_with_note.
	BroadcastDuplicateMode DuplicateMode `yaml:"broadcast_duplicate_mode"`

	// DMSkipDuplicates suppresses direct messages for non-primary members.
	DMSkipDuplicates bool `yaml:"dm_skip_duplicates"`

	// DMMaxDistanceKmDefault applies to tutors without a profile radius.
	DMMaxDistanceKmDefault float64 `yaml:"dm_max_distance_km_default"`

	// DMRatePerMinute is the per-tutor direct message rate limit.
	DMRatePerMinute float64 `yaml:"dm_rate_per_minute"`

	// DMBurst is the per-tutor token bucket size.
	DMBurst int `yaml:"dm_burst"`

	// BroadcastRatePerMinute is the per-channel broadcast rate limit.
	BroadcastRatePerMinute float64 `yaml:"broadcast_rate_per_minute"`

	// BroadcastBurst is the per-channel token bucket size.
	BroadcastBurst int `yaml:"broadcast_burst"`

	// RatingPercentile is the cutoff for the adaptive rating threshold:
	// tutors scoring below this percentile of their recent ratings are
	// not matched.
	RatingPercentile float64 `yaml:"rating_percentile"`

	// RatingWindow is how many recent ratings feed the threshold.
	RatingWindow int `yaml:"rating_window"`

	// ClickBuckets are the ascending click counts at which a broadcast
	// post is edited to show interest (e.g. 5, then 10, then 25).
	ClickBuckets []int `yaml:"click_buckets,omitempty"`

	// SendTimeout bounds a single transport call.
	SendTimeout time.Duration `yaml:"send_timeout"`
}

// DefaultDeliveryConfig returns the built-in delivery defaults.
func DefaultDeliveryConfig() *DeliveryConfig {
	return &DeliveryConfig{
		Enabled:                true,
		TransportAddr:          "localhost:50051",
		BroadcastChannel:       "assignments",
		BroadcastDuplicateMode: DuplicateModePrimaryOnly,
		DMSkipDuplicates:       true,
		DMMaxDistanceKmDefault: 8,
		DMRatePerMinute:        20,
		DMBurst:                5,
		BroadcastRatePerMinute: 10,
		BroadcastBurst:         3,
		RatingPercentile:       0.25,
		RatingWindow:           50,
		ClickBuckets:           []int{5, 10, 25, 50},
		SendTimeout:            10 * time.Second,
	}
}

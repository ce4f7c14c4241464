package config

// Config is the umbrella configuration object returned by Initialize()
// and passed into every component at wiring time. Sections own their
// defaults; the loader merges user YAML on top of them.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// Queue and worker pool configuration
	Queue *QueueConfig

	// LLM extraction and circuit breaker configuration
	LLM *LLMConfig

	// Duplicate detector weights and thresholds
	Dedup *DedupConfig

	// Freshness tiering thresholds and schedule
	Freshness *FreshnessConfig

	// Delivery fanout, transport, and rate limits
	Delivery *DeliveryConfig

	// Listing API surface
	API *APIConfig

	// Event retention
	Retention *RetentionConfig
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// PipelineVersion is a convenience accessor for the queue's pipeline
// version, the identity under which jobs are enqueued and claimed.
func (c *Config) PipelineVersion() string {
	return c.Queue.PipelineVersion
}

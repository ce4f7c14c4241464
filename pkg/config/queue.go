package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how extraction jobs are polled, claimed, and processed.
type QueueConfig struct {
	// PipelineVersion is stamped onto every job this deployment enqueues
	// and is the partition its workers claim from. Bumping it re-extracts
	// the backlog without touching rows produced by older versions.
	PipelineVersion string `yaml:"pipeline_version"`

	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and processes jobs.
	WorkerCount int `yaml:"worker_count"`

	// ClaimBatchSize is the maximum number of jobs a worker claims per poll.
	ClaimBatchSize int `yaml:"claim_batch_size"`

	// PollInterval is the base interval for checking pending jobs.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// JobTimeout is the wall-clock budget for a single job, covering every
	// stage from raw-message load through the terminal status write.
	JobTimeout time.Duration `yaml:"job_timeout"`

	// MaxAttempts caps how many times a transiently-failing job is retried
	// before it is marked failed.
	MaxAttempts int `yaml:"max_attempts"`

	// HeartbeatInterval is how often a worker touches updated_at on its
	// in-flight jobs so the stale-requeue supervisor spares live work.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// StaleCheckInterval is how often to scan for stale processing jobs.
	StaleCheckInterval time.Duration `yaml:"stale_check_interval"`

	// StaleThreshold is how long a processing job can go without an
	// updated_at touch before it is considered abandoned and requeued.
	StaleThreshold time.Duration `yaml:"stale_threshold"`

	// GracefulShutdownTimeout is the max time to wait for in-flight jobs
	// to complete during shutdown. Should be at least JobTimeout.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		PipelineVersion:         "v1",
		WorkerCount:             5,
		ClaimBatchSize:          10,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		JobTimeout:              2 * time.Minute,
		MaxAttempts:             5,
		HeartbeatInterval:       30 * time.Second,
		StaleCheckInterval:      1 * time.Minute,
		StaleThreshold:          5 * time.Minute,
		GracefulShutdownTimeout: 2 * time.Minute,
	}
}

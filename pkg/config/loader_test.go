package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig writes an assignflow.yaml into a temp config dir.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assignflow.yaml"), []byte(content), 0644))
	return dir
}

func TestInitialize(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	configDir := writeConfig(t, `
queue:
  pipeline_version: v2
  worker_count: 3
llm:
  model: claude-sonnet-4-5
dedup:
  time_window_days: 14
`)

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// User values override defaults
	assert.Equal(t, "v2", cfg.Queue.PipelineVersion)
	assert.Equal(t, 3, cfg.Queue.WorkerCount)
	assert.Equal(t, 14, cfg.Dedup.TimeWindowDays)

	// Untouched sections keep defaults
	assert.Equal(t, 10, cfg.Queue.ClaimBatchSize)
	assert.Equal(t, 2*time.Minute, cfg.Queue.JobTimeout)
	assert.Equal(t, float64(50), cfg.Dedup.Weights.Postal)
	assert.Equal(t, 24*time.Hour, cfg.Freshness.GreenMaxAge)
	assert.Equal(t, ":8080", cfg.API.ListenAddr)
	assert.True(t, cfg.Delivery.Enabled)
	assert.Equal(t, "localhost:50051", cfg.Delivery.TransportAddr)

	assert.Equal(t, "v2", cfg.PipelineVersion())
	assert.Equal(t, configDir, cfg.ConfigDir())
}

func TestInitializeConfigNotFound(t *testing.T) {
	_, err := Initialize(context.Background(), "/nonexistent/directory")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestInitializeInvalidYAML(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	configDir := writeConfig(t, "queue: [not: a: mapping")

	_, err := Initialize(context.Background(), configDir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitializeEnvExpansion(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	t.Setenv("ASSIGNFLOW_PIPELINE", "v9")

	configDir := writeConfig(t, `
queue:
  pipeline_version: "{{.ASSIGNFLOW_PIPELINE}}"
`)

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)
	assert.Equal(t, "v9", cfg.Queue.PipelineVersion)
}

func TestInitializeValidationFailure(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	configDir := writeConfig(t, `
queue:
  worker_count: 500
`)

	_, err := Initialize(context.Background(), configDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "worker_count")
}

func TestInitializeDeliverySection(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	configDir := writeConfig(t, `
delivery:
  enabled: true
  transport_addr: gateway:50052
  broadcast_channel: "@assignments"
  broadcast_duplicate_mode: primary_with_note
  dm_skip_duplicates: false
  click_buckets: [5, 10, 25]
`)

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)

	assert.True(t, cfg.Delivery.Enabled)
	assert.Equal(t, "gateway:50052", cfg.Delivery.TransportAddr)
	assert.Equal(t, DuplicateModePrimaryWithNote, cfg.Delivery.BroadcastDuplicateMode)
	assert.False(t, cfg.Delivery.DMSkipDuplicates)
	assert.Equal(t, []int{5, 10, 25}, cfg.Delivery.ClickBuckets)

	// Unset delivery knobs keep their defaults.
	assert.Greater(t, cfg.Delivery.DMMaxDistanceKmDefault, 0.0)
	assert.Greater(t, cfg.Delivery.DMRatePerMinute, 0.0)
}

func TestInitializeEmptyFileUsesDefaults(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	configDir := writeConfig(t, "")

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)

	def := DefaultQueueConfig()
	assert.Equal(t, def.PipelineVersion, cfg.Queue.PipelineVersion)
	assert.Equal(t, def.WorkerCount, cfg.Queue.WorkerCount)
	assert.Equal(t, DefaultDedupConfig().MediumThreshold, cfg.Dedup.MediumThreshold)
}

package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// AssignflowYAMLConfig represents the complete assignflow.yaml file structure
type AssignflowYAMLConfig struct {
	Queue     *QueueConfig        `yaml:"queue"`
	LLM       *LLMConfig          `yaml:"llm"`
	Dedup     *DedupConfig        `yaml:"dedup"`
	Freshness *FreshnessConfig    `yaml:"freshness"`
	Delivery  *DeliveryYAMLConfig `yaml:"delivery"`
	API       *APIConfig          `yaml:"api"`
	Retention *RetentionConfig    `yaml:"retention"`
}

// DeliveryYAMLConfig holds delivery settings from YAML. Booleans are
// pointers so an absent key can be told apart from an explicit false.
type DeliveryYAMLConfig struct {
	Enabled                *bool         `yaml:"enabled,omitempty"`
	TransportAddr          string        `yaml:"transport_addr,omitempty"`
	BroadcastChannel       string        `yaml:"broadcast_channel,omitempty"`
	BroadcastDuplicateMode DuplicateMode `yaml:"broadcast_duplicate_mode,omitempty"`
	DMSkipDuplicates       *bool         `yaml:"dm_skip_duplicates,omitempty"`
	DMMaxDistanceKmDefault float64       `yaml:"dm_max_distance_km_default,omitempty"`
	DMRatePerMinute        float64       `yaml:"dm_rate_per_minute,omitempty"`
	DMBurst                int           `yaml:"dm_burst,omitempty"`
	BroadcastRatePerMinute float64       `yaml:"broadcast_rate_per_minute,omitempty"`
	BroadcastBurst         int           `yaml:"broadcast_burst,omitempty"`
	RatingPercentile       float64       `yaml:"rating_percentile,omitempty"`
	RatingWindow           int           `yaml:"rating_window,omitempty"`
	ClickBuckets           []int         `yaml:"click_buckets,omitempty"`
	SendTimeout            string        `yaml:"send_timeout,omitempty"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load assignflow.yaml from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge user values over built-in defaults, per section
//  5. Validate all configuration
//  6. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"pipeline_version", cfg.Queue.PipelineVersion,
		"workers", cfg.Queue.WorkerCount,
		"llm_model", cfg.LLM.Model,
		"delivery_enabled", cfg.Delivery.Enabled)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	userCfg, err := loader.loadAssignflowYAML()
	if err != nil {
		return nil, NewLoadError("assignflow.yaml", err)
	}

	// Each section starts from its built-in defaults; non-zero user
	// values override.
	queueCfg := DefaultQueueConfig()
	if err := mergeSection(queueCfg, userCfg.Queue, "queue"); err != nil {
		return nil, err
	}

	llmCfg := DefaultLLMConfig()
	if err := mergeSection(llmCfg, userCfg.LLM, "llm"); err != nil {
		return nil, err
	}

	dedupCfg := DefaultDedupConfig()
	if err := mergeSection(dedupCfg, userCfg.Dedup, "dedup"); err != nil {
		return nil, err
	}

	freshnessCfg := DefaultFreshnessConfig()
	if err := mergeSection(freshnessCfg, userCfg.Freshness, "freshness"); err != nil {
		return nil, err
	}

	deliveryCfg := resolveDeliveryConfig(userCfg.Delivery)

	apiCfg := DefaultAPIConfig()
	if err := mergeSection(apiCfg, userCfg.API, "api"); err != nil {
		return nil, err
	}

	retentionCfg := DefaultRetentionConfig()
	if err := mergeSection(retentionCfg, userCfg.Retention, "retention"); err != nil {
		return nil, err
	}

	return &Config{
		configDir: configDir,
		Queue:     queueCfg,
		LLM:       llmCfg,
		Dedup:     dedupCfg,
		Freshness: freshnessCfg,
		Delivery:  deliveryCfg,
		API:       apiCfg,
		Retention: retentionCfg,
	}, nil
}

// mergeSection merges user-provided config into defaults (non-zero values
// override). A nil user section keeps the defaults untouched.
func mergeSection[T any](defaults *T, user *T, name string) error {
	if user == nil {
		return nil
	}
	if err := mergo.Merge(defaults, user, mergo.WithOverride); err != nil {
		return fmt.Errorf("failed to merge %s config: %w", name, err)
	}
	return nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing YAML parser to handle the content (or fail with clearer error message)
	data = ExpandEnv(data)

	// Parse YAML
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadAssignflowYAML() (*AssignflowYAMLConfig, error) {
	var config AssignflowYAMLConfig

	if err := l.loadYAML("assignflow.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// resolveDeliveryConfig resolves delivery configuration from YAML,
// applying defaults.
func resolveDeliveryConfig(user *DeliveryYAMLConfig) *DeliveryConfig {
	cfg := DefaultDeliveryConfig()

	if user == nil {
		return cfg
	}

	if user.Enabled != nil {
		cfg.Enabled = *user.Enabled
	}
	if user.TransportAddr != "" {
		cfg.TransportAddr = user.TransportAddr
	}
	if user.BroadcastChannel != "" {
		cfg.BroadcastChannel = user.BroadcastChannel
	}
	if user.BroadcastDuplicateMode != "" {
		cfg.BroadcastDuplicateMode = user.BroadcastDuplicateMode
	}
	if user.DMSkipDuplicates != nil {
		cfg.DMSkipDuplicates = *user.DMSkipDuplicates
	}
	if user.DMMaxDistanceKmDefault > 0 {
		cfg.DMMaxDistanceKmDefault = user.DMMaxDistanceKmDefault
	}
	if user.DMRatePerMinute > 0 {
		cfg.DMRatePerMinute = user.DMRatePerMinute
	}
	if user.DMBurst > 0 {
		cfg.DMBurst = user.DMBurst
	}
	if user.BroadcastRatePerMinute > 0 {
		cfg.BroadcastRatePerMinute = user.BroadcastRatePerMinute
	}
	if user.BroadcastBurst > 0 {
		cfg.BroadcastBurst = user.BroadcastBurst
	}
	if user.RatingPercentile > 0 {
		cfg.RatingPercentile = user.RatingPercentile
	}
	if user.RatingWindow > 0 {
		cfg.RatingWindow = user.RatingWindow
	}
	if len(user.ClickBuckets) > 0 {
		cfg.ClickBuckets = user.ClickBuckets
	}
	if user.SendTimeout != "" {
		if d, err := time.ParseDuration(user.SendTimeout); err == nil {
			cfg.SendTimeout = d
		} else {
			slog.Warn("Invalid send_timeout in delivery config, using default",
				"value", user.SendTimeout,
				"default", cfg.SendTimeout,
				"error", err)
		}
	}

	return cfg
}

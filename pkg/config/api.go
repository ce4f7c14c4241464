package config

// APIConfig contains HTTP listing surface configuration.
type APIConfig struct {
	// ListenAddr is the HTTP bind address.
	ListenAddr string `yaml:"listen_addr"`

	// DefaultPageSize applies when a list request omits limit.
	DefaultPageSize int `yaml:"default_page_size"`

	// MaxPageSize is the hard cap on a single page; larger requests
	// are clamped, not rejected.
	MaxPageSize int `yaml:"max_page_size"`

	// SupervisorToken, when non-empty, authorizes supervisor-only
	// operations such as terminating jobs that are not processing.
	SupervisorToken string `yaml:"supervisor_token,omitempty"`
}

// DefaultAPIConfig returns the built-in API defaults.
func DefaultAPIConfig() *APIConfig {
	return &APIConfig{
		ListenAddr:      ":8080",
		DefaultPageSize: 50,
		MaxPageSize:     200,
	}
}

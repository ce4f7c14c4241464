package config

// DedupWeights assigns the maximum contribution of each similarity
// signal. The sum is the theoretical ceiling; scores are clamped to 100.
type DedupWeights struct {
	Postal           float64 `yaml:"postal"`
	Subjects         float64 `yaml:"subjects"`
	Levels           float64 `yaml:"levels"`
	Rate             float64 `yaml:"rate"`
	AssignmentCode   float64 `yaml:"assignment_code"`
	Temporal         float64 `yaml:"temporal"`
	TimeAvailability float64 `yaml:"time_availability"`
}

// DedupConfig contains duplicate detector thresholds and weights.
type DedupConfig struct {
	// HighThreshold and up is near-certain duplication.
	HighThreshold float64 `yaml:"high_threshold"`

	// MediumThreshold is the minimum score at which two assignments
	// are linked into a group.
	MediumThreshold float64 `yaml:"medium_threshold"`

	// LowThreshold and up is logged as a weak match but never linked.
	LowThreshold float64 `yaml:"low_threshold"`

	// Weights are the per-signal score contributions.
	Weights *DedupWeights `yaml:"weights,omitempty"`

	// TimeWindowDays bounds the candidate search by published_at distance.
	TimeWindowDays int `yaml:"time_window_days"`

	// BatchSize caps how many candidates are scored per detection.
	BatchSize int `yaml:"batch_size"`

	// FuzzyPostalTolerance is the number of differing digits still treated
	// as a partial postal match when the first two digits agree.
	FuzzyPostalTolerance int `yaml:"fuzzy_postal_tolerance"`

	// AlgorithmVersion is recorded on every group for later re-scoring.
	AlgorithmVersion string `yaml:"algorithm_version"`
}

// DefaultDedupConfig returns the built-in detector defaults.
func DefaultDedupConfig() *DedupConfig {
	return &DedupConfig{
		HighThreshold:        90,
		MediumThreshold:      70,
		LowThreshold:         55,
		Weights:              DefaultDedupWeights(),
		TimeWindowDays:       7,
		BatchSize:            100,
		FuzzyPostalTolerance: 2,
		AlgorithmVersion:     "v1",
	}
}

// DefaultDedupWeights returns the built-in per-signal weights.
func DefaultDedupWeights() *DedupWeights {
	return &DedupWeights{
		Postal:           50,
		Subjects:         35,
		Levels:           25,
		Rate:             15,
		AssignmentCode:   10,
		Temporal:         10,
		TimeAvailability: 5,
	}
}

package config

// DuplicateMode defines how delivery treats non-primary group members
type DuplicateMode string

const (
	// DuplicateModeAll delivers every assignment regardless of grouping
	DuplicateModeAll DuplicateMode = "all"
	// DuplicateModePrimaryOnly delivers only the primary of each group (default)
	DuplicateModePrimaryOnly DuplicateMode = "primary_only"
	// DuplicateModePrimaryWithNote delivers the primary with a duplicate note appended
	DuplicateModePrimaryWithNote DuplicateMode = "primary_with_note"
)

// IsValid checks if the duplicate mode is valid
func (m DuplicateMode) IsValid() bool {
	switch m {
	case DuplicateModeAll, DuplicateModePrimaryOnly, DuplicateModePrimaryWithNote:
		return true
	default:
		return false
	}
}

package masking

import (
	"regexp"
	"strings"
)

// Masker is the interface for code-based maskers that need structural
// awareness beyond regex pattern matching, such as line-level context.
type Masker interface {
	// Name returns the unique identifier for this masker.
	Name() string

	// AppliesTo performs a lightweight check on whether this masker
	// should process the data. Should be fast (string contains, not parsing).
	AppliesTo(data string) bool

	// Mask applies masking logic and returns the masked result.
	// Must be defensive: return original data on processing errors.
	Mask(data string) string
}

// contactKeywords flag lines that carry contact details. Matching is
// case-insensitive on the whole line.
var contactKeywords = []string{
	"contact", "whatsapp", "sms", "call ", "hp:", "hp ", "tel", "reach me",
	"wa.me", "t.me",
}

var contactLinePattern = regexp.MustCompile(`(?i)^(\s*\S*(?:contact|whatsapp|sms|hp|tel|wa\.me|t\.me)\S*)[:\s].*$`)

// ContactLineMasker blanks the payload of lines that announce contact
// details. Regex sweeps catch bare numbers; this catches handles, links,
// and creative spacing on lines that are explicitly about contacting.
type ContactLineMasker struct{}

func (m *ContactLineMasker) Name() string { return "contact_line" }

func (m *ContactLineMasker) AppliesTo(data string) bool {
	lower := strings.ToLower(data)
	for _, kw := range contactKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func (m *ContactLineMasker) Mask(data string) string {
	lines := strings.Split(data, "\n")
	for i, line := range lines {
		if contactLinePattern.MatchString(line) {
			lines[i] = contactLinePattern.ReplaceAllString(line, "$1 [contact]")
		}
	}
	return strings.Join(lines, "\n")
}

package masking

import (
	"log/slog"
	"regexp"
)

// CompiledPattern holds a pre-compiled regex pattern with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
	Description string
}

// builtinPatterns are the phone-shaped sweeps applied to every raw sample
// before it is stored anywhere. Order matters: link and international
// forms first so the generic digit-run sweep sees only leftovers.
var builtinPatterns = []struct {
	name        string
	pattern     string
	replacement string
	description string
}{
	{
		name:        "wa_link",
		pattern:     `(?i)\b(?:wa\.me|api\.whatsapp\.com/send\?phone=)/?\+?\d+`,
		replacement: "[phone]",
		description: "WhatsApp click-to-chat links",
	},
	{
		name:        "intl_phone",
		pattern:     `\+\d{1,3}[\s.-]?\d{3,4}[\s.-]?\d{3,4}(?:[\s.-]?\d{2,4})?`,
		replacement: "[phone]",
		description: "International format, +65 and friends",
	},
	{
		name:        "sg_mobile",
		pattern:     `\b[89]\d{3}[\s.-]?\d{4}\b`,
		replacement: "[phone]",
		description: "Singapore mobile, bare or with one separator",
	},
	{
		name:        "digit_run",
		pattern:     `\b\d(?:[\s.-]?\d){7,}\b`,
		replacement: "[phone]",
		description: "Any separated digit run of eight or more",
	},
}

// leakCheck is the post-masking verification sweep: a preview still
// matching it is discarded rather than stored.
var leakCheck = regexp.MustCompile(`\b[89]\d{7}\b|\+65\s?\d{8}`)

// compileBuiltinPatterns compiles the built-in sweeps. Invalid patterns
// are logged and skipped.
func compileBuiltinPatterns() []*CompiledPattern {
	patterns := make([]*CompiledPattern, 0, len(builtinPatterns))
	for _, p := range builtinPatterns {
		compiled, err := regexp.Compile(p.pattern)
		if err != nil {
			slog.Error("Failed to compile built-in masking pattern, skipping",
				"pattern", p.name, "error", err)
			continue
		}
		patterns = append(patterns, &CompiledPattern{
			Name:        p.name,
			Regex:       compiled,
			Replacement: p.replacement,
			Description: p.description,
		})
	}
	return patterns
}

// Package masking strips contact details from raw post samples before
// they are stored in error payloads or published on event channels. Raw
// rows keep the full text; everything derived from them for triage goes
// through here first.
package masking

import (
	"log/slog"
	"strings"
	"unicode/utf8"
)

// previewMaxLen bounds the redacted preview stored in error_json.
const previewMaxLen = 500

// Service applies phone and contact redaction. Created once at startup;
// thread-safe and stateless aside from compiled patterns.
type Service struct {
	patterns []*CompiledPattern
	maskers  []Masker
}

// NewService creates a masking service with compiled patterns and
// registered code maskers. Patterns are compiled eagerly.
func NewService() *Service {
	s := &Service{
		patterns: compileBuiltinPatterns(),
		maskers:  []Masker{&ContactLineMasker{}},
	}

	slog.Info("Masking service initialized",
		"compiled_patterns", len(s.patterns),
		"code_maskers", len(s.maskers))

	return s
}

// Redact applies code maskers then regex sweeps to text. Returns the
// redacted text; never fails open on phone-shaped content (see
// RedactPreview for the verified variant).
func (s *Service) Redact(text string) string {
	if text == "" {
		return text
	}

	masked := text
	for _, m := range s.maskers {
		if m.AppliesTo(masked) {
			masked = m.Mask(masked)
		}
	}
	for _, p := range s.patterns {
		masked = p.Regex.ReplaceAllString(masked, p.Replacement)
	}
	return masked
}

// RedactPreview produces the bounded, verified preview stored in
// error_json. Fail-closed: if phone-shaped content survives the sweeps,
// the preview is dropped entirely rather than stored.
func (s *Service) RedactPreview(raw string) string {
	masked := s.Redact(raw)
	if leakCheck.MatchString(masked) {
		slog.Error("Redaction leak check failed, dropping preview")
		return ""
	}
	return truncate(strings.TrimSpace(masked), previewMaxLen)
}

// truncate cuts s at max runes without splitting a rune.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max]) + "…"
}

// Package enrich contains the deterministic enrichers that run over every
// extraction: signal rollups from raw text, subject canonicalization,
// postal geo resolution, and rate parsing. Every function here is pure —
// re-running any enricher over its own output yields identical results.
package enrich

import (
	"fmt"
	"regexp"
	"strings"
)

// Level keywords recognized by the rollup, in canonical display form.
const (
	LevelPrimary   = "Primary"
	LevelSecondary = "Secondary"
	LevelJC        = "JC"
	LevelIB        = "IB"
	LevelIGCSE     = "IGCSE"
)

var levelPatterns = []struct {
	level string
	re    *regexp.Regexp
}{
	{LevelPrimary, regexp.MustCompile(`(?i)\b(?:primary|pri|p[1-6])\b`)},
	{LevelSecondary, regexp.MustCompile(`(?i)\b(?:secondary|sec|s[1-5]|o[\s-]?level)\b`)},
	{LevelJC, regexp.MustCompile(`(?i)\b(?:jc[12]?|junior\s+college|a[\s-]?level|h[123]\b)`)},
	{LevelIB, regexp.MustCompile(`(?i)\bib\b`)},
	{LevelIGCSE, regexp.MustCompile(`(?i)\bigcse\b`)},
}

var specificLevelPatterns = []struct {
	re     *regexp.Regexp
	format string
}{
	{regexp.MustCompile(`(?i)\bp(?:ri(?:mary)?)?\s*([1-6])\b`), "P%s"},
	{regexp.MustCompile(`(?i)\bsec(?:ondary)?\s*([1-5])\b`), "Sec %s"},
	{regexp.MustCompile(`(?i)\bs([1-5])\b`), "Sec %s"},
	{regexp.MustCompile(`(?i)\bjc\s*([12])\b`), "JC%s"},
	{regexp.MustCompile(`(?i)\bj([12])\b`), "JC%s"},
}

// subjectKeywords are scanned longest-first so compound labels ("A Math")
// win over their substrings ("Math"). Each maps to a display label.
var subjectKeywords = []struct {
	re    *regexp.Regexp
	label string
}{
	{regexp.MustCompile(`(?i)\b(?:a[\s-]?math|add(?:itional)?\s+math(?:s|ematics)?)\b`), "A Math"},
	{regexp.MustCompile(`(?i)\be[\s-]?math\b`), "E Math"},
	{regexp.MustCompile(`(?i)\bmath(?:s|ematics)?\b`), "Math"},
	{regexp.MustCompile(`(?i)\bphysics\b`), "Physics"},
	{regexp.MustCompile(`(?i)\bchemistry\b`), "Chemistry"},
	{regexp.MustCompile(`(?i)\bbiology\b`), "Biology"},
	{regexp.MustCompile(`(?i)\bcombined\s+science\b`), "Combined Science"},
	{regexp.MustCompile(`(?i)\bscience\b`), "Science"},
	{regexp.MustCompile(`(?i)\benglish\b`), "English"},
	{regexp.MustCompile(`(?i)\bhigher\s+chinese\b`), "Higher Chinese"},
	{regexp.MustCompile(`(?i)\bchinese\b`), "Chinese"},
	{regexp.MustCompile(`(?i)\bmalay\b`), "Malay"},
	{regexp.MustCompile(`(?i)\btamil\b`), "Tamil"},
	{regexp.MustCompile(`(?i)\becon(?:omic)?s?\b`), "Economics"},
	{regexp.MustCompile(`(?i)\bgeography\b`), "Geography"},
	{regexp.MustCompile(`(?i)\bhistory\b`), "History"},
	{regexp.MustCompile(`(?i)\bliterature\b`), "Literature"},
	{regexp.MustCompile(`(?i)\b(?:poa|principles?\s+of\s+accounts?)\b`), "POA"},
	{regexp.MustCompile(`(?i)\b(?:gp|general\s+paper)\b`), "General Paper"},
}

// Signals are the deterministic rollups from one raw post, independent of
// anything the LLM produced.
type Signals struct {
	Subjects       []string
	Levels         []string
	SpecificLevels []string
}

// RollupSignals tokenizes raw post text for level keywords, specific
// student levels, and subject mentions. Output arrays are deduplicated and
// ordered by first appearance of their pattern in the tables above, so the
// same text always yields the same arrays.
func RollupSignals(rawText string) Signals {
	var s Signals

	for _, lp := range levelPatterns {
		if lp.re.MatchString(rawText) {
			s.Levels = append(s.Levels, lp.level)
		}
	}

	seen := make(map[string]bool)
	for _, sp := range specificLevelPatterns {
		for _, m := range sp.re.FindAllStringSubmatch(rawText, -1) {
			label := fmt.Sprintf(sp.format, m[1])
			if !seen[label] {
				seen[label] = true
				s.SpecificLevels = append(s.SpecificLevels, label)
			}
		}
	}

	seenSubj := make(map[string]bool)
	for _, sk := range subjectKeywords {
		if sk.re.MatchString(rawText) && !seenSubj[sk.label] {
			seenSubj[sk.label] = true
			s.Subjects = append(s.Subjects, sk.label)
		}
	}

	return s
}

// MergeDedup unions two string slices preserving order of first appearance.
func MergeDedup(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, s := range a {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	for _, s := range b {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

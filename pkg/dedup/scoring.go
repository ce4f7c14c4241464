// Package dedup links cross-agency assignments that advertise the same
// underlying opportunity. Scoring is pure; all group transitions run in
// one transaction with groups locked in deterministic id order.
package dedup

import (
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/tuitionlab/assignflow/ent"
	"github.com/tuitionlab/assignflow/pkg/config"
)

const (
	fuzzyPostalFactor = 0.85
	codePrefixFactor  = 0.75
)

// Score is the weighted similarity of one candidate pair, clamped to 100,
// with the per-signal contributions kept for triage.
type Score struct {
	Total      float64            `json:"total"`
	Components map[string]float64 `json:"components"`
}

// Confidence tiers over the configured thresholds.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
	ConfidenceNone   Confidence = "none"
)

// scorePair computes the weighted similarity of two assignments.
func scorePair(a, b *ent.Assignment, cfg *config.DedupConfig) Score {
	w := cfg.Weights
	components := map[string]float64{
		"postal":            w.Postal * postalSimilarity(a.PostalCode, b.PostalCode, cfg.FuzzyPostalTolerance),
		"subjects":          w.Subjects * subjectSimilarity(a, b),
		"levels":            w.Levels * jaccard(levelUnion(a), levelUnion(b)),
		"rate":              w.Rate * rateOverlap(a, b),
		"assignment_code":   w.AssignmentCode * codeSimilarity(a.AssignmentCode, b.AssignmentCode),
		"temporal":          w.Temporal * temporalProximity(a.PublishedAt, b.PublishedAt),
		"time_availability": w.TimeAvailability * lexicalOverlap(deref(a.TimeAvailabilityNote), deref(b.TimeAvailabilityNote)),
	}

	total := 0.0
	for _, v := range components {
		total += v
	}
	return Score{Total: math.Min(total, 100), Components: components}
}

// confidence maps a total score onto the configured tiers.
func confidence(total float64, cfg *config.DedupConfig) Confidence {
	switch {
	case total >= cfg.HighThreshold:
		return ConfidenceHigh
	case total >= cfg.MediumThreshold:
		return ConfidenceMedium
	case total >= cfg.LowThreshold:
		return ConfidenceLow
	default:
		return ConfidenceNone
	}
}

// postalSimilarity: 1.0 on any exact code match; fuzzyPostalFactor when
// the best pair shares the sector (first two digits) and differs in at
// most tolerance digits; otherwise 0.
func postalSimilarity(a, b []string, tolerance int) float64 {
	best := 0.0
	for _, pa := range a {
		for _, pb := range b {
			switch {
			case pa == pb && len(pa) == 6:
				return 1.0
			case len(pa) == 6 && len(pb) == 6 && pa[:2] == pb[:2]:
				if differingDigits(pa, pb) <= tolerance {
					best = math.Max(best, fuzzyPostalFactor)
				}
			}
		}
	}
	return best
}

func differingDigits(a, b string) int {
	diff := 0
	for i := range a {
		if a[i] != b[i] {
			diff++
		}
	}
	return diff
}

// subjectSimilarity prefers the canonical codes and falls back to the raw
// signal labels when either side has none.
func subjectSimilarity(a, b *ent.Assignment) float64 {
	if len(a.SubjectsCanonical) > 0 && len(b.SubjectsCanonical) > 0 {
		return jaccard(a.SubjectsCanonical, b.SubjectsCanonical)
	}
	return jaccard(a.SignalsSubjects, b.SignalsSubjects)
}

func levelUnion(a *ent.Assignment) []string {
	return append(append([]string{}, a.SignalsLevels...), a.SignalsSpecificStudentLevels...)
}

// jaccard over case-insensitive sets; 0 when either side is empty.
func jaccard(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	setA := toSet(a)
	setB := toSet(b)
	inter := 0
	for k := range setA {
		if setB[k] {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, s := range items {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			set[s] = true
		}
	}
	return set
}

// rateOverlap is 1.0 when the two rate intervals intersect, including a
// shared boundary, and 0 otherwise. Missing rates on either side score 0.
func rateOverlap(a, b *ent.Assignment) float64 {
	aMin, aMax := rateInterval(a)
	bMin, bMax := rateInterval(b)
	if aMin == nil || bMin == nil {
		return 0
	}
	if math.Min(*aMax, *bMax) < math.Max(*aMin, *bMin) {
		return 0
	}
	return 1.0
}

func rateInterval(a *ent.Assignment) (*float64, *float64) {
	min, max := a.RateMin, a.RateMax
	if min == nil {
		min = max
	}
	if max == nil {
		max = min
	}
	return min, max
}

var codeCleaner = regexp.MustCompile(`[^A-Z0-9]+`)

// codeSimilarity: 1.0 on normalized equality, codePrefixFactor when one
// normalized code is a proper prefix of the other.
func codeSimilarity(a, b *string) float64 {
	if a == nil || b == nil {
		return 0
	}
	na := normalizeCode(*a)
	nb := normalizeCode(*b)
	if na == "" || nb == "" {
		return 0
	}
	if na == nb {
		return 1.0
	}
	if strings.HasPrefix(na, nb) || strings.HasPrefix(nb, na) {
		return codePrefixFactor
	}
	return 0
}

func normalizeCode(code string) string {
	return codeCleaner.ReplaceAllString(strings.ToUpper(code), "")
}

// temporalProximity: published within 48h scores 1.0, within 96h 0.6,
// beyond that 0. Missing timestamps score 0.
func temporalProximity(a, b *time.Time) float64 {
	if a == nil || b == nil {
		return 0
	}
	gap := a.Sub(*b)
	if gap < 0 {
		gap = -gap
	}
	switch {
	case gap <= 48*time.Hour:
		return 1.0
	case gap <= 96*time.Hour:
		return 0.6
	default:
		return 0
	}
}

// lexicalOverlap is 1.0 when both notes are present and share at least
// one token (case-insensitive), and 0 otherwise.
func lexicalOverlap(a, b string) float64 {
	setA := toSet(strings.Fields(a))
	setB := toSet(strings.Fields(b))
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}
	for k := range setA {
		if setB[k] {
			return 1.0
		}
	}
	return 0
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

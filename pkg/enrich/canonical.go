package enrich

import (
	"regexp"
	"sort"
	"strings"
)

// CanonicalizationVersion identifies the alias table below. Bump whenever
// aliases or codes change so reprocessed rows can be told apart from stale
// ones.
const CanonicalizationVersion = 3

// codeEntry pairs a stable level-aware subject code with its parent
// category.
type codeEntry struct {
	code    string
	general string
}

// aliasTable maps level -> normalized free-text label -> stable code.
// Labels are normalized by normalizeLabel before lookup.
var aliasTable = map[string]map[string]codeEntry{
	LevelPrimary: {
		"math":           {"MATH.PRI", "MATH"},
		"english":        {"ENG.PRI", "ENG"},
		"science":        {"SCI.PRI", "SCI"},
		"chinese":        {"CHI.PRI", "MTL"},
		"higher chinese": {"CHI.PRI_HCL", "MTL"},
		"malay":          {"ML.PRI", "MTL"},
		"tamil":          {"TL.PRI", "MTL"},
	},
	LevelSecondary: {
		"math":             {"MATH.SEC_EMATH", "MATH"},
		"e math":           {"MATH.SEC_EMATH", "MATH"},
		"a math":           {"MATH.SEC_AMATH", "MATH"},
		"physics":          {"SCI.SEC_PHYSICS", "SCI"},
		"chemistry":        {"SCI.SEC_CHEM", "SCI"},
		"biology":          {"SCI.SEC_BIO", "SCI"},
		"science":          {"SCI.SEC_COMBINED", "SCI"},
		"combined science": {"SCI.SEC_COMBINED", "SCI"},
		"english":          {"ENG.SEC", "ENG"},
		"chinese":          {"CHI.SEC", "MTL"},
		"higher chinese":   {"CHI.SEC_HCL", "MTL"},
		"malay":            {"ML.SEC", "MTL"},
		"tamil":            {"TL.SEC", "MTL"},
		"literature":       {"HUM.SEC_LIT", "HUM"},
		"history":          {"HUM.SEC_HIST", "HUM"},
		"geography":        {"HUM.SEC_GEOG", "HUM"},
		"poa":              {"BUS.SEC_POA", "BUS"},
	},
	LevelJC: {
		"math":          {"MATH.JC_H2", "MATH"},
		"physics":       {"SCI.JC_PHYSICS", "SCI"},
		"chemistry":     {"SCI.JC_CHEM", "SCI"},
		"biology":       {"SCI.JC_BIO", "SCI"},
		"economics":     {"ECONS.JC", "ECONS"},
		"general paper": {"ENG.JC_GP", "ENG"},
		"english":       {"ENG.JC_GP", "ENG"},
		"history":       {"HUM.JC_HIST", "HUM"},
		"geography":     {"HUM.JC_GEOG", "HUM"},
		"literature":    {"HUM.JC_LIT", "HUM"},
	},
	LevelIB: {
		"math":      {"MATH.IB", "MATH"},
		"physics":   {"SCI.IB_PHYSICS", "SCI"},
		"chemistry": {"SCI.IB_CHEM", "SCI"},
		"biology":   {"SCI.IB_BIO", "SCI"},
		"english":   {"ENG.IB", "ENG"},
		"economics": {"ECONS.IB", "ECONS"},
	},
	LevelIGCSE: {
		"math":      {"MATH.IGCSE", "MATH"},
		"physics":   {"SCI.IGCSE_PHYSICS", "SCI"},
		"chemistry": {"SCI.IGCSE_CHEM", "SCI"},
		"biology":   {"SCI.IGCSE_BIO", "SCI"},
		"english":   {"ENG.IGCSE", "ENG"},
	},
}

// knownCodes indexes every code in the alias table so canonicalization is
// idempotent: feeding codes back in returns them unchanged.
var knownCodes = func() map[string]codeEntry {
	idx := make(map[string]codeEntry)
	for _, entries := range aliasTable {
		for _, e := range entries {
			idx[e.code] = e
		}
	}
	return idx
}()

// labelAliases collapses spelling variants onto the alias table keys.
var labelAliases = map[string]string{
	"maths":                  "math",
	"mathematics":            "math",
	"emath":                  "e math",
	"elementary math":        "e math",
	"amath":                  "a math",
	"add math":               "a math",
	"additional math":        "a math",
	"econs":                  "economics",
	"gp":                     "general paper",
	"principles of accounts": "poa",
	"principle of accounts":  "poa",
	"accounting":             "poa",
	"lit":                    "literature",
	"geog":                   "geography",
	"sci":                    "science",
	"eng":                    "english",
}

var labelCleaner = regexp.MustCompile(`[^a-z0-9 ]+`)
var spaceCollapser = regexp.MustCompile(`\s+`)

// normalizeLabel lowercases, strips punctuation, collapses whitespace, and
// resolves spelling variants.
func normalizeLabel(label string) string {
	s := strings.ToLower(strings.TrimSpace(label))
	s = labelCleaner.ReplaceAllString(s, " ")
	s = spaceCollapser.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	if alias, ok := labelAliases[s]; ok {
		return alias
	}
	return s
}

// NormalizeLevel maps free-text level descriptions onto the canonical
// level keywords; empty when unrecognized.
func NormalizeLevel(level string) string {
	s := strings.ToLower(strings.TrimSpace(level))
	switch {
	case s == "":
		return ""
	case strings.HasPrefix(s, "pri"), strings.HasPrefix(s, "p1"), strings.HasPrefix(s, "p2"),
		strings.HasPrefix(s, "p3"), strings.HasPrefix(s, "p4"), strings.HasPrefix(s, "p5"),
		strings.HasPrefix(s, "p6"):
		return LevelPrimary
	case strings.HasPrefix(s, "sec"), strings.HasPrefix(s, "s1"), strings.HasPrefix(s, "s2"),
		strings.HasPrefix(s, "s3"), strings.HasPrefix(s, "s4"), strings.Contains(s, "o level"),
		strings.Contains(s, "o-level"):
		return LevelSecondary
	case strings.HasPrefix(s, "jc"), strings.Contains(s, "junior college"),
		strings.Contains(s, "a level"), strings.Contains(s, "a-level"):
		return LevelJC
	case strings.Contains(s, "igcse"):
		return LevelIGCSE
	case strings.Contains(s, "ib"):
		return LevelIB
	default:
		return ""
	}
}

// Canonicalize maps free-text subject labels through the level-aware alias
// table to stable codes and their parent categories. Unknown labels are
// dropped; already-canonical codes pass through unchanged. Both result
// slices are sorted and deduplicated, so the mapping is idempotent.
func Canonicalize(level string, labels []string) (codes, general []string) {
	normLevel := NormalizeLevel(level)
	table := aliasTable[normLevel]

	codeSet := make(map[string]bool)
	generalSet := make(map[string]bool)

	for _, label := range labels {
		// Codes round-trip as themselves regardless of level.
		if e, ok := knownCodes[strings.TrimSpace(label)]; ok {
			codeSet[e.code] = true
			generalSet[e.general] = true
			continue
		}
		if table == nil {
			continue
		}
		if e, ok := table[normalizeLabel(label)]; ok {
			codeSet[e.code] = true
			generalSet[e.general] = true
		}
	}

	codes = sortedKeys(codeSet)
	general = sortedKeys(generalSet)
	return codes, general
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

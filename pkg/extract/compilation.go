package extract

import "regexp"

// CompilationHeuristic decides whether a raw post looks enough like a
// compilation to be worth an LLM confirmation call. The heuristic only
// gates the call; the model's verdict is authoritative.
type CompilationHeuristic func(rawText string) bool

// Marker families counted by the default heuristic. Families are counted
// independently so one post section does not double-count.
var compilationMarkers = []*regexp.Regexp{
	// Numbered list items at line start: "1)", "2.", "3:".
	regexp.MustCompile(`(?m)^\s*\d{1,2}[).:]\s`),
	// Explicit "Assignment 1" / "Case #2" style headers.
	regexp.MustCompile(`(?i)\b(?:assignment|case|job)\s*#?\d+\b`),
	// Agency code lines: 2-4 letter prefix + digits at line start.
	regexp.MustCompile(`(?m)^\s*[A-Z]{2,4}\d{3,6}\b`),
	// Section dividers.
	regexp.MustCompile(`(?m)^\s*[-=*]{3,}\s*$`),
}

// MarkerCountHeuristic flags a post when any marker family appears at
// least threshold times.
func MarkerCountHeuristic(threshold int) CompilationHeuristic {
	return func(rawText string) bool {
		for _, re := range compilationMarkers {
			if len(re.FindAllStringIndex(rawText, -1)) >= threshold {
				return true
			}
		}
		return false
	}
}

// DefaultCompilationHeuristic suspects a compilation at two or more
// markers of the same family.
var DefaultCompilationHeuristic = MarkerCountHeuristic(2)

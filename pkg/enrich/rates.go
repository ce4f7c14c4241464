package enrich

import (
	"regexp"
	"strconv"
)

// ratePattern matches hourly-rate spans: "$40/hr", "$35-$45/h",
// "40 - 50 per hour", "$60/hour". Group 1 is the low bound, group 2 the
// optional high bound.
var ratePattern = regexp.MustCompile(
	`(?i)\$?\s*(\d{2,3}(?:\.\d{1,2})?)\s*(?:-|–|to)?\s*\$?\s*(\d{2,3}(?:\.\d{1,2})?)?\s*(?:/|per\s*)\s*h(?:r|our)?s?\b`)

// ParseRates extracts hourly rate bounds from rate-bearing text. Returns
// (nil, nil) when no rate span is found. A single figure yields
// min == max; multiple spans widen the interval.
func ParseRates(text string) (rateMin, rateMax *float64) {
	matches := ratePattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil, nil
	}

	var lo, hi float64
	found := false
	for _, m := range matches {
		low, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		high := low
		if m[2] != "" {
			if h, err := strconv.ParseFloat(m[2], 64); err == nil && h >= low {
				high = h
			}
		}
		if !found {
			lo, hi = low, high
			found = true
			continue
		}
		if low < lo {
			lo = low
		}
		if high > hi {
			hi = high
		}
	}
	if !found {
		return nil, nil
	}
	return &lo, &hi
}

package models

import (
	"fmt"
	"regexp"
)

// postalCodePattern matches Singapore six-digit postal codes.
var postalCodePattern = regexp.MustCompile(`^\d{6}$`)

// Array bounds for LLM-supplied fields. Anything beyond these is a schema
// violation, not data.
const (
	MaxPostalCodes    = 8
	MaxAddressLines   = 8
	MaxScheduleLines  = 12
	MaxSubjectLabels  = 16
	MaxTutorTypes     = 8
	MaxDisplayTextLen = 4000
)

// TutorType is one tagged tutor-category entry from the source post,
// e.g. {"type": "MOE", "rate": "$60-70/h"}.
type TutorType struct {
	Type string `json:"type"`
	Rate string `json:"rate,omitempty"`
}

// CanonicalExtraction is the typed record the LLM extractor returns. It is
// validated at the boundary and converted into the assignment row by the
// worker; the raw LLM JSON is kept only inside error previews.
type CanonicalExtraction struct {
	// Identity hints
	AssignmentCode string `json:"assignment_code,omitempty"`

	// Display
	AcademicDisplayText  string      `json:"academic_display_text"`
	Subjects             []string    `json:"subjects,omitempty"`
	Level                string      `json:"level,omitempty"`
	SpecificLevels       []string    `json:"specific_levels,omitempty"`
	LessonSchedule       []string    `json:"lesson_schedule,omitempty"`
	StartDate            string      `json:"start_date,omitempty"`
	TimeAvailabilityNote string      `json:"time_availability_note,omitempty"`
	TutorTypes           []TutorType `json:"tutor_types,omitempty"`
	LearningMode         string      `json:"learning_mode,omitempty"`
	RateRawText          string      `json:"rate_raw_text,omitempty"`
	RateBreakdown        string      `json:"rate_breakdown,omitempty"`

	// Location
	Address             []string `json:"address,omitempty"`
	PostalCode          []string `json:"postal_code,omitempty"`
	PostalCodeEstimated []string `json:"postal_code_estimated,omitempty"`

	// Numeric (nil when the post carries no parseable rate)
	RateMin *float64 `json:"rate_min,omitempty"`
	RateMax *float64 `json:"rate_max,omitempty"`
}

// Validate enforces the canonical schema business rules and returns reason
// codes for every violation found (empty means valid).
func (c *CanonicalExtraction) Validate() []string {
	var reasons []string

	if c.AcademicDisplayText == "" {
		reasons = append(reasons, "display_text_missing")
	}
	if len(c.AcademicDisplayText) > MaxDisplayTextLen {
		reasons = append(reasons, "display_text_too_long")
	}
	if c.RateMin != nil && c.RateMax != nil && *c.RateMin > *c.RateMax {
		reasons = append(reasons, "rate_min_gt_max")
	}
	if c.RateMin != nil && *c.RateMin < 0 {
		reasons = append(reasons, "rate_negative")
	}
	for _, pc := range c.PostalCode {
		if !postalCodePattern.MatchString(pc) {
			reasons = append(reasons, fmt.Sprintf("postal_code_invalid:%s", pc))
		}
	}
	for _, pc := range c.PostalCodeEstimated {
		if !postalCodePattern.MatchString(pc) {
			reasons = append(reasons, fmt.Sprintf("postal_code_estimated_invalid:%s", pc))
		}
	}
	if len(c.PostalCode) > MaxPostalCodes || len(c.PostalCodeEstimated) > MaxPostalCodes {
		reasons = append(reasons, "postal_codes_overflow")
	}
	if len(c.Address) > MaxAddressLines {
		reasons = append(reasons, "address_overflow")
	}
	if len(c.LessonSchedule) > MaxScheduleLines {
		reasons = append(reasons, "lesson_schedule_overflow")
	}
	if len(c.Subjects) > MaxSubjectLabels {
		reasons = append(reasons, "subjects_overflow")
	}
	if len(c.TutorTypes) > MaxTutorTypes {
		reasons = append(reasons, "tutor_types_overflow")
	}

	return reasons
}

// IsValidPostalCode reports whether s is a six-digit postal code.
func IsValidPostalCode(s string) bool {
	return postalCodePattern.MatchString(s)
}

// AgencyHints carries per-agency extraction context into the prompt:
// known formatting quirks, code prefixes, channel naming.
type AgencyHints struct {
	AgencyID    string `json:"agency_id"`
	Channel     string `json:"channel"`
	CodePrefix  string `json:"code_prefix,omitempty"`
	FormatNotes string `json:"format_notes,omitempty"`
}

// CompilationSplit is the LLM's verdict on a suspected multi-assignment
// post. Segment order follows the source text; indices are stable across
// reprocessings of the same raw version.
type CompilationSplit struct {
	IsCompilation bool     `json:"is_compilation"`
	Segments      []string `json:"segments,omitempty"`
}

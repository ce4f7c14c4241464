package extract

// extractionPromptTemplate renders the single-pass extraction prompt. The
// model must answer with one JSON object matching models.CanonicalExtraction
// and nothing else.
const extractionPromptTemplate = `You are an extraction engine for tutoring assignment posts from Singapore tuition agency channels.

Extract the assignment details from the message below into a single JSON object with exactly these fields (omit a field entirely when the message carries no value for it):

{
  "assignment_code": "agency-assigned code, e.g. TT4821, verbatim",
  "academic_display_text": "one-line summary: level + subjects + area",
  "subjects": ["subject labels as written, e.g. 'A Math', 'Chemistry'"],
  "level": "student level: Primary / Secondary / JC / IB / IGCSE",
  "specific_levels": ["e.g. 'Sec 3', 'P5', 'JC1'"],
  "lesson_schedule": ["one entry per session line, verbatim"],
  "start_date": "when lessons start, verbatim",
  "time_availability_note": "free-text availability constraints",
  "tutor_types": [{"type": "e.g. MOE / Full-time / Undergrad", "rate": "rate quoted for that type"}],
  "learning_mode": "online / in-person / hybrid",
  "rate_raw_text": "the rate phrase verbatim",
  "rate_breakdown": "per-type rate details, verbatim",
  "address": ["address lines, verbatim"],
  "postal_code": ["six-digit postal codes that appear verbatim"],
  "postal_code_estimated": ["six-digit codes you infer from named places; never mix with postal_code"],
  "rate_min": 40,
  "rate_max": 50
}

Rules:
- academic_display_text is required and must be non-empty.
- rate_min and rate_max are hourly SGD numbers; omit both if no rate is stated. A single figure means rate_min == rate_max.
- postal_code holds only codes printed in the message. Codes you derive from landmarks or district names go in postal_code_estimated.
- Copy text verbatim; do not translate, summarize, or invent values.
- Respond with the JSON object only. No markdown fences, no commentary.
{{if .Hints}}
Agency context (channel {{.Hints.Channel}}{{if .Hints.CodePrefix}}, assignment codes start with "{{.Hints.CodePrefix}}"{{end}}):
{{.Hints.FormatNotes}}
{{end}}
Message:
<<<
{{.RawText}}
>>>`

// compilationPromptTemplate asks the model to confirm and split a suspected
// compilation post. Segment order must follow the source text.
const compilationPromptTemplate = `The message below may be a compilation: a single post listing multiple independent tutoring assignments.

Decide whether it is a compilation, and if so split it into the independent assignment segments in the order they appear. Each segment must be self-contained (carry its own code, level, subjects, and location as present in the source) and copied verbatim; shared headers or footers belong to no segment.

Respond with a single JSON object only:

{"is_compilation": true, "segments": ["first assignment text", "second assignment text"]}

or

{"is_compilation": false}

A post describing one assignment with several schedule options or tutor-type rates is NOT a compilation.

Message:
<<<
{{.RawText}}
>>>`

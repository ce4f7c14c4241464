package queue

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/tuitionlab/assignflow/ent"
	"github.com/tuitionlab/assignflow/pkg/enrich"
	"github.com/tuitionlab/assignflow/pkg/models"
)

// Pre-filter patterns. Posts matching these never reach the LLM.
var (
	// Media placeholders with no text content.
	imageOnlyPattern = regexp.MustCompile(`(?i)^\s*(?:\[(?:photo|image|video|sticker|document|album)\]\s*)+$`)

	// Channel housekeeping and promo posts that agencies interleave with
	// assignments.
	spamPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bjoin\s+(?:our|the)\s+(?:channel|group)\b`),
		regexp.MustCompile(`(?i)\breferral\s+(?:bonus|programme|program)\b`),
		regexp.MustCompile(`(?i)\bpinned\s+message\b`),
		regexp.MustCompile(`(?i)^\s*(?:good\s+(?:morning|afternoon|evening)|happy\s+\w+day)\b[^\n]*$`),
	}
)

// prefilterReason returns a skip reason for posts that are clearly not
// assignments, or "" when the post should proceed to extraction.
func prefilterReason(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "empty"
	}
	if imageOnlyPattern.MatchString(trimmed) {
		return "image_only"
	}
	for _, p := range spamPatterns {
		if p.MatchString(trimmed) {
			return "spam_marker"
		}
	}
	return ""
}

// retryableCode reports whether a taxonomy code requeues with backoff
// instead of failing terminally.
func retryableCode(code string) bool {
	switch code {
	case models.ErrLLMTransient, models.ErrCircuitOpen, models.ErrTimeout:
		return true
	default:
		return false
	}
}

// backoffForAttempt doubles the base per completed attempt, capped.
// Attempt is 1-based (the claim increments it before processing).
func backoffForAttempt(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	backoff := retryBackoffBase
	for i := 1; i < attempt; i++ {
		backoff *= 2
		if backoff >= retryBackoffMax {
			return retryBackoffMax
		}
	}
	return backoff
}

// deriveExternalID builds the stable per-agency identity for one
// extracted assignment. An explicit assignment code wins so reposts of
// the same assignment merge; otherwise the source coordinates are used.
// Compilation segments get a 1-based "#i" suffix for stable indices
// across reprocessings.
func deriveExternalID(raw *ent.RawMessage, assignmentCode string, segment int) string {
	base := strings.TrimSpace(assignmentCode)
	if base == "" {
		base = raw.Channel + "/" + raw.MessageID
	}
	if segment > 0 {
		return fmt.Sprintf("%s#%d", base, segment)
	}
	return base
}

// messageLink pulls the upstream deep link from the collector payload.
func messageLink(raw *ent.RawMessage) string {
	if raw.Payload == nil {
		return ""
	}
	link, _ := raw.Payload["message_link"].(string)
	return link
}

// sourceLastSeen is the upstream edit time when present, otherwise the
// publish time.
func sourceLastSeen(raw *ent.RawMessage) *time.Time {
	if raw.SourceEditedAt != nil {
		return raw.SourceEditedAt
	}
	t := raw.SourcePublishedAt
	return &t
}

// buildUpsertInput merges the LLM extraction with the deterministic
// enrichment into one canonical-store write.
func buildUpsertInput(raw *ent.RawMessage, c *models.CanonicalExtraction, enr *enrich.Enrichment, segment int) *models.UpsertAssignmentInput {
	publishedAt := raw.SourcePublishedAt
	return &models.UpsertAssignmentInput{
		ExternalID:     deriveExternalID(raw, c.AssignmentCode, segment),
		AgencyID:       raw.AgencyID,
		AssignmentCode: c.AssignmentCode,
		MessageLink:    messageLink(raw),

		AcademicDisplayText:  c.AcademicDisplayText,
		LessonSchedule:       c.LessonSchedule,
		StartDate:            c.StartDate,
		TimeAvailabilityNote: c.TimeAvailabilityNote,
		TutorTypes:           c.TutorTypes,
		LearningMode:         c.LearningMode,
		RateRawText:          c.RateRawText,
		RateBreakdown:        c.RateBreakdown,

		Address:               c.Address,
		PostalCode:            c.PostalCode,
		PostalCodeEstimated:   c.PostalCodeEstimated,
		PostalLat:             enr.PostalLat,
		PostalLon:             enr.PostalLon,
		PostalCoordsEstimated: enr.PostalCoordsEstimated,
		Region:                enr.Region,
		NearestMRT:            enr.NearestMRT,
		NearestMRTLine:        enr.NearestMRTLine,
		NearestMRTDistanceM:   enr.NearestMRTDistanceM,

		RateMin: enr.RateMin,
		RateMax: enr.RateMax,

		SignalsSubjects:              enr.SignalsSubjects,
		SignalsLevels:                enr.SignalsLevels,
		SignalsSpecificStudentLevels: enr.SignalsSpecificStudentLevels,
		SubjectsCanonical:            enr.SubjectsCanonical,
		SubjectsGeneral:              enr.SubjectsGeneral,
		CanonicalizationVersion:      enr.CanonicalizationVersion,

		PublishedAt:    &publishedAt,
		SourceLastSeen: sourceLastSeen(raw),
	}
}

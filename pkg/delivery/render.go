package delivery

import (
	"fmt"
	"strings"

	"github.com/tuitionlab/assignflow/ent"
)

// Renderer builds the message bodies the transport sends. Broadcast
// bodies are stored on the broadcast record without the click note, so
// the editor can re-compose them when the bucket moves.
type Renderer struct {
	buckets []int
}

// NewRenderer creates a renderer with the given ascending click buckets.
func NewRenderer(buckets []int) *Renderer {
	return &Renderer{buckets: buckets}
}

// BucketFor returns the largest bucket threshold the click count has
// reached, or 0 when below the first threshold.
func (r *Renderer) BucketFor(clicks int64) int {
	bucket := 0
	for _, b := range r.buckets {
		if clicks >= int64(b) {
			bucket = b
		}
	}
	return bucket
}

// DMBody renders the direct-message body for one tutor. The distance is
// the tutor's own; it is omitted when either side lacks coordinates.
func (r *Renderer) DMBody(a *ent.Assignment, distanceKm *float64, duplicateNote string) string {
	var b strings.Builder
	b.WriteString(a.AcademicDisplayText)
	b.WriteString("\n")

	writeDetails(&b, a)

	if distanceKm != nil {
		fmt.Fprintf(&b, "📍 %.1f km from you\n", *distanceKm)
	}
	writeLink(&b, a)
	writeNote(&b, duplicateNote)
	return strings.TrimRight(b.String(), "\n")
}

// BroadcastBody renders the channel post body.
func (r *Renderer) BroadcastBody(a *ent.Assignment, duplicateNote string) string {
	var b strings.Builder
	b.WriteString(a.AcademicDisplayText)
	b.WriteString("\n")

	writeDetails(&b, a)
	writeLink(&b, a)
	writeNote(&b, duplicateNote)
	return strings.TrimRight(b.String(), "\n")
}

// WithClickNote appends the interest line for a bucket to a stored base
// body. Bucket 0 returns the body unchanged.
func (r *Renderer) WithClickNote(base string, bucket int) string {
	if bucket <= 0 {
		return base
	}
	return fmt.Sprintf("%s\n\n🔥 %d+ tutors interested", base, bucket)
}

// writeDetails appends the shared schedule / rate / location block.
func writeDetails(b *strings.Builder, a *ent.Assignment) {
	if a.AssignmentCode != nil && *a.AssignmentCode != "" {
		fmt.Fprintf(b, "Code: %s\n", *a.AssignmentCode)
	}
	for _, line := range a.LessonSchedule {
		fmt.Fprintf(b, "🗓 %s\n", line)
	}
	if a.StartDate != nil && *a.StartDate != "" {
		fmt.Fprintf(b, "Start: %s\n", *a.StartDate)
	}
	if a.TimeAvailabilityNote != nil && *a.TimeAvailabilityNote != "" {
		fmt.Fprintf(b, "%s\n", *a.TimeAvailabilityNote)
	}
	if a.RateRawText != nil && *a.RateRawText != "" {
		fmt.Fprintf(b, "💰 %s\n", *a.RateRawText)
	}
	if loc := locationLine(a); loc != "" {
		fmt.Fprintf(b, "📍 %s\n", loc)
	}
	if a.NearestMrtComputed != nil && *a.NearestMrtComputed != "" {
		fmt.Fprintf(b, "🚇 Near %s\n", *a.NearestMrtComputed)
	}
	if a.LearningMode != nil && *a.LearningMode != "" {
		fmt.Fprintf(b, "Mode: %s\n", *a.LearningMode)
	}
}

// locationLine picks the most specific location the assignment carries.
func locationLine(a *ent.Assignment) string {
	if len(a.Address) > 0 {
		return a.Address[0]
	}
	if len(a.PostalCode) > 0 {
		return "S(" + a.PostalCode[0] + ")"
	}
	if a.Region != nil && *a.Region != "" {
		return *a.Region
	}
	return ""
}

func writeLink(b *strings.Builder, a *ent.Assignment) {
	if a.MessageLink != nil && *a.MessageLink != "" {
		fmt.Fprintf(b, "🔗 %s\n", *a.MessageLink)
	}
}

func writeNote(b *strings.Builder, note string) {
	if note != "" {
		fmt.Fprintf(b, "\nℹ️ %s\n", note)
	}
}

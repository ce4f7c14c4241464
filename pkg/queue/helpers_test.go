package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tuitionlab/assignflow/ent"
	"github.com/tuitionlab/assignflow/pkg/enrich"
	"github.com/tuitionlab/assignflow/pkg/models"
)

func TestPrefilterReason(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		reason string
	}{
		{"empty", "", "empty"},
		{"whitespace only", "   \n\t ", "empty"},
		{"image only", "[Photo]", "image_only"},
		{"multiple media", "[photo] [video]", "image_only"},
		{"join channel promo", "Join our channel for more assignments!", "spam_marker"},
		{"referral promo", "Referral bonus: $20 per tutor", "spam_marker"},
		{"greeting post", "Good morning everyone!", "spam_marker"},
		{"real assignment", "Sec 3 E-Math @ Tampines, $40-50/h, code TT-4821", ""},
		{"assignment mentioning photo inline", "See [photo] above. Sec 2 Science, Yishun", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.reason, prefilterReason(tt.text))
		})
	}
}

func TestBackoffForAttempt(t *testing.T) {
	assert.Equal(t, retryBackoffBase, backoffForAttempt(0))
	assert.Equal(t, retryBackoffBase, backoffForAttempt(1))
	assert.Equal(t, 2*retryBackoffBase, backoffForAttempt(2))
	assert.Equal(t, 4*retryBackoffBase, backoffForAttempt(3))
	assert.Equal(t, retryBackoffMax, backoffForAttempt(20))
}

func TestDeriveExternalID(t *testing.T) {
	raw := &ent.RawMessage{Channel: "c/agencyA", MessageID: "1042"}

	assert.Equal(t, "TT-4821", deriveExternalID(raw, " TT-4821 ", 0))
	assert.Equal(t, "c/agencyA/1042", deriveExternalID(raw, "", 0))
	assert.Equal(t, "c/agencyA/1042#1", deriveExternalID(raw, "", 1))
	assert.Equal(t, "TT-4821#3", deriveExternalID(raw, "TT-4821", 3))
}

func TestSourceLastSeenPrefersEdit(t *testing.T) {
	published := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	edited := published.Add(2 * time.Hour)

	raw := &ent.RawMessage{SourcePublishedAt: published}
	assert.Equal(t, published, *sourceLastSeen(raw))

	raw.SourceEditedAt = &edited
	assert.Equal(t, edited, *sourceLastSeen(raw))
}

func TestBuildUpsertInputMergesEnrichment(t *testing.T) {
	published := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	raw := &ent.RawMessage{
		Channel:           "c/agencyA",
		MessageID:         "1042",
		AgencyID:          "agencyA",
		SourcePublishedAt: published,
		Payload:           map[string]interface{}{"message_link": "https://t.me/agencyA/1042"},
	}
	lat, lon := 1.3521, 103.8198
	rateMin, rateMax := 40.0, 50.0
	c := &models.CanonicalExtraction{
		AssignmentCode:      "TT-4821",
		AcademicDisplayText: "Sec 3 E-Math",
		PostalCode:          []string{"520123"},
	}
	enr := &enrich.Enrichment{
		PostalLat:               &lat,
		PostalLon:               &lon,
		Region:                  "east",
		SignalsSubjects:         []string{"Math"},
		SignalsLevels:           []string{"Secondary"},
		SubjectsCanonical:       []string{"MATH.SEC_EMATH"},
		SubjectsGeneral:         []string{"MATH"},
		CanonicalizationVersion: 3,
		RateMin:                 &rateMin,
		RateMax:                 &rateMax,
	}

	in := buildUpsertInput(raw, c, enr, 0)

	assert.Equal(t, "TT-4821", in.ExternalID)
	assert.Equal(t, "agencyA", in.AgencyID)
	assert.Equal(t, "https://t.me/agencyA/1042", in.MessageLink)
	assert.Equal(t, &lat, in.PostalLat)
	assert.Equal(t, []string{"MATH.SEC_EMATH"}, in.SubjectsCanonical)
	assert.Equal(t, 3, in.CanonicalizationVersion)
	assert.Equal(t, &rateMin, in.RateMin)
	assert.Equal(t, published, *in.PublishedAt)
	assert.Equal(t, published, *in.SourceLastSeen)
}

func TestRetryableCode(t *testing.T) {
	assert.True(t, retryableCode(models.ErrLLMTransient))
	assert.True(t, retryableCode(models.ErrCircuitOpen))
	assert.True(t, retryableCode(models.ErrTimeout))
	assert.False(t, retryableCode(models.ErrLLMPermanent))
	assert.False(t, retryableCode(models.ErrLLMSchemaInvalid))
	assert.False(t, retryableCode(models.ErrValidationFailed))
}

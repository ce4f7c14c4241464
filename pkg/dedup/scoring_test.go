package dedup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tuitionlab/assignflow/ent"
	"github.com/tuitionlab/assignflow/pkg/config"
)

func ts(s string) *time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func fp(v float64) *float64 { return &v }
func sp(v string) *string   { return &v }

func baseAssignment(id, agency string) *ent.Assignment {
	return &ent.Assignment{
		ID:                           id,
		AgencyID:                     agency,
		PostalCode:                   []string{"520123"},
		SubjectsCanonical:            []string{"MATH.SEC_EMATH"},
		SignalsSubjects:              []string{"Math"},
		SignalsLevels:                []string{"Secondary"},
		SignalsSpecificStudentLevels: []string{"Sec 3"},
		RateMin:                      fp(40),
		RateMax:                      fp(50),
		PublishedAt:                  ts("2026-08-20T10:00:00Z"),
	}
}

func TestScorePairIdenticalAcrossAgencies(t *testing.T) {
	cfg := config.DefaultDedupConfig()
	a := baseAssignment("a1", "agencyA")
	b := baseAssignment("b1", "agencyB")

	score := scorePair(a, b, cfg)
	// Postal 50 + Subjects 35 + Levels 25 + Rate 15 + Temporal 10 = 135,
	// clamped.
	assert.Equal(t, 100.0, score.Total)
	assert.Equal(t, ConfidenceHigh, confidence(score.Total, cfg))
}

func TestScorePairUnrelated(t *testing.T) {
	cfg := config.DefaultDedupConfig()
	a := baseAssignment("a1", "agencyA")
	b := &ent.Assignment{
		ID:              "b1",
		AgencyID:        "agencyB",
		PostalCode:      []string{"760001"},
		SignalsSubjects: []string{"Chinese"},
		SignalsLevels:   []string{"Primary"},
		PublishedAt:     ts("2026-08-01T10:00:00Z"),
	}

	score := scorePair(a, b, cfg)
	assert.Less(t, score.Total, cfg.LowThreshold)
	assert.Equal(t, ConfidenceNone, confidence(score.Total, cfg))
}

func TestPostalSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, postalSimilarity([]string{"520123"}, []string{"520123"}, 2))
	// Same sector, two differing digits: fuzzy.
	assert.Equal(t, fuzzyPostalFactor, postalSimilarity([]string{"520123"}, []string{"520153"}, 2))
	// Same sector but too many differing digits.
	assert.Equal(t, 0.0, postalSimilarity([]string{"520123"}, []string{"529987"}, 2))
	// Different sector.
	assert.Equal(t, 0.0, postalSimilarity([]string{"520123"}, []string{"760123"}, 2))
	assert.Equal(t, 0.0, postalSimilarity(nil, []string{"520123"}, 2))
}

func TestRateOverlap(t *testing.T) {
	mk := func(min, max *float64) *ent.Assignment {
		return &ent.Assignment{RateMin: min, RateMax: max}
	}

	assert.Equal(t, 1.0, rateOverlap(mk(fp(40), fp(50)), mk(fp(40), fp(50))))
	// Partial overlap counts the same as containment.
	assert.Equal(t, 1.0, rateOverlap(mk(fp(40), fp(50)), mk(fp(45), fp(60))))
	assert.Equal(t, 1.0, rateOverlap(mk(fp(30), fp(40)), mk(fp(35), fp(50))))
	// A shared boundary is an intersection.
	assert.Equal(t, 1.0, rateOverlap(mk(fp(30), fp(40)), mk(fp(40), fp(50))))
	// Disjoint.
	assert.Equal(t, 0.0, rateOverlap(mk(fp(30), fp(35)), mk(fp(50), fp(60))))
	// Point rates.
	assert.Equal(t, 1.0, rateOverlap(mk(fp(40), fp(40)), mk(fp(40), fp(40))))
	assert.Equal(t, 0.0, rateOverlap(mk(fp(40), fp(40)), mk(fp(45), fp(45))))
	// Missing side.
	assert.Equal(t, 0.0, rateOverlap(mk(nil, nil), mk(fp(40), fp(50))))
	// One-sided interval widens to a point.
	assert.Equal(t, 1.0, rateOverlap(mk(fp(40), nil), mk(fp(40), fp(40))))
}

func TestLexicalOverlap(t *testing.T) {
	// Any shared token scores full marks.
	assert.Equal(t, 1.0, lexicalOverlap("Mon 7-9pm", "Mon after 6pm"))
	assert.Equal(t, 1.0, lexicalOverlap("weekday evenings", "Weekday mornings"))
	assert.Equal(t, 0.0, lexicalOverlap("Mon 7-9pm", "Sat morning"))
	assert.Equal(t, 0.0, lexicalOverlap("", "Mon 7-9pm"))
	assert.Equal(t, 0.0, lexicalOverlap("", ""))
}

func TestCodeSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, codeSimilarity(sp("TT-4821"), sp("tt4821")))
	assert.Equal(t, codePrefixFactor, codeSimilarity(sp("TT4821"), sp("TT4821A")))
	assert.Equal(t, 0.0, codeSimilarity(sp("TT4821"), sp("CS9001")))
	assert.Equal(t, 0.0, codeSimilarity(nil, sp("TT4821")))
}

func TestTemporalProximity(t *testing.T) {
	base := ts("2026-08-20T10:00:00Z")
	assert.Equal(t, 1.0, temporalProximity(base, ts("2026-08-21T10:00:00Z")))
	assert.Equal(t, 0.6, temporalProximity(base, ts("2026-08-23T10:00:00Z")))
	assert.Equal(t, 0.0, temporalProximity(base, ts("2026-08-27T10:00:00Z")))
	// Symmetry.
	assert.Equal(t, temporalProximity(base, ts("2026-08-22T10:00:00Z")),
		temporalProximity(ts("2026-08-22T10:00:00Z"), base))
	assert.Equal(t, 0.0, temporalProximity(nil, base))
}

func TestJaccard(t *testing.T) {
	assert.Equal(t, 1.0, jaccard([]string{"Math"}, []string{"math"}))
	assert.InDelta(t, 2.0/3.0, jaccard([]string{"Math", "Physics"}, []string{"Math", "Chemistry", "Physics"}), 1e-9)
	assert.Equal(t, 0.0, jaccard([]string{"Math"}, nil))
}

func TestSubjectSimilarityFallsBackToSignals(t *testing.T) {
	a := &ent.Assignment{SignalsSubjects: []string{"Math"}}
	b := &ent.Assignment{SubjectsCanonical: []string{"MATH.SEC_EMATH"}, SignalsSubjects: []string{"Math"}}
	// a has no canonical codes, so the raw labels decide.
	assert.Equal(t, 1.0, subjectSimilarity(a, b))
}

func TestEarlierMemberTieBreak(t *testing.T) {
	a := &ent.Assignment{ID: "a", PublishedAt: ts("2026-08-20T10:00:00Z")}
	b := &ent.Assignment{ID: "b", PublishedAt: ts("2026-08-20T10:00:00Z")}
	assert.True(t, earlierMember(a, b))
	assert.False(t, earlierMember(b, a))

	later := &ent.Assignment{ID: "0", PublishedAt: ts("2026-08-21T10:00:00Z")}
	assert.True(t, earlierMember(a, later))
}

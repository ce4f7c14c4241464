package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuitionlab/assignflow/pkg/geodata"
	"github.com/tuitionlab/assignflow/pkg/models"
)

func newTestEnricher(t *testing.T) *Enricher {
	t.Helper()
	ds, err := geodata.Load("")
	require.NoError(t, err)
	return NewEnricher(ds)
}

func TestRollupSignals(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		wantLevels    []string
		wantSpecific  []string
		wantSubjects  []string
	}{
		{
			name:         "sec 3 math",
			text:         "Sec 3 Math, Tampines 520123, $40/hr, Mon 7-9pm",
			wantLevels:   []string{"Secondary"},
			wantSpecific: []string{"Sec 3"},
			wantSubjects: []string{"Math"},
		},
		{
			name:         "primary science and english",
			text:         "Looking for P5 Science and English tutor in Yishun",
			wantLevels:   []string{"Primary"},
			wantSpecific: []string{"P5"},
			wantSubjects: []string{"Science", "English"},
		},
		{
			name:         "jc econs",
			text:         "JC1 H2 Economics, urgent",
			wantLevels:   []string{"JC"},
			wantSpecific: []string{"JC1"},
			wantSubjects: []string{"Economics"},
		},
		{
			name:         "a math wins over math",
			text:         "Sec 4 A Math tuition",
			wantLevels:   []string{"Secondary"},
			wantSpecific: []string{"Sec 4"},
			wantSubjects: []string{"A Math", "Math"},
		},
		{
			name: "no signals",
			text: "hello everyone, welcome to the channel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RollupSignals(tt.text)
			for _, lv := range tt.wantLevels {
				assert.Contains(t, got.Levels, lv)
			}
			for _, sl := range tt.wantSpecific {
				assert.Contains(t, got.SpecificLevels, sl)
			}
			for _, s := range tt.wantSubjects {
				assert.Contains(t, got.Subjects, s)
			}
			if tt.wantLevels == nil {
				assert.Empty(t, got.Levels)
				assert.Empty(t, got.Subjects)
			}
		})
	}
}

func TestRollupSignalsDeterministic(t *testing.T) {
	text := "Sec 3 E Math and Physics, Bedok, $45-55/hr"
	first := RollupSignals(text)
	second := RollupSignals(text)
	assert.Equal(t, first, second)
}

func TestCanonicalize(t *testing.T) {
	codes, general := Canonicalize("Secondary", []string{"Math", "Physics"})
	assert.Equal(t, []string{"MATH.SEC_EMATH", "SCI.SEC_PHYSICS"}, codes)
	assert.Equal(t, []string{"MATH", "SCI"}, general)

	codes, general = Canonicalize("Primary", []string{"maths", "English"})
	assert.Equal(t, []string{"ENG.PRI", "MATH.PRI"}, codes)
	assert.Equal(t, []string{"ENG", "MATH"}, general)

	// Unknown labels are dropped, not invented.
	codes, _ = Canonicalize("Secondary", []string{"Astrology"})
	assert.Empty(t, codes)

	// Unknown level canonicalizes nothing but passes codes through.
	codes, _ = Canonicalize("", []string{"Math"})
	assert.Empty(t, codes)
}

func TestCanonicalizeIdentityOnCodes(t *testing.T) {
	codes, general := Canonicalize("Secondary", []string{"A Math", "Chemistry"})
	require.NotEmpty(t, codes)

	again, generalAgain := Canonicalize("Secondary", codes)
	assert.Equal(t, codes, again)
	assert.Equal(t, general, generalAgain)

	// Codes survive even under a different (or missing) level.
	crossLevel, _ := Canonicalize("", codes)
	assert.Equal(t, codes, crossLevel)
}

func TestNormalizeLevel(t *testing.T) {
	assert.Equal(t, LevelSecondary, NormalizeLevel("Sec 3"))
	assert.Equal(t, LevelSecondary, NormalizeLevel("secondary"))
	assert.Equal(t, LevelPrimary, NormalizeLevel("P5"))
	assert.Equal(t, LevelJC, NormalizeLevel("JC2"))
	assert.Equal(t, LevelJC, NormalizeLevel("A-Level"))
	assert.Equal(t, LevelIB, NormalizeLevel("IB Year 5"))
	assert.Equal(t, LevelIGCSE, NormalizeLevel("igcse"))
	assert.Equal(t, "", NormalizeLevel("kindergarten"))
	assert.Equal(t, "", NormalizeLevel(""))
}

func TestParseRates(t *testing.T) {
	tests := []struct {
		text     string
		wantMin  float64
		wantMax  float64
		wantNone bool
	}{
		{text: "$40/hr", wantMin: 40, wantMax: 40},
		{text: "$35-$45/h", wantMin: 35, wantMax: 45},
		{text: "40 - 50 per hour", wantMin: 40, wantMax: 50},
		{text: "$60/hour negotiable", wantMin: 60, wantMax: 60},
		{text: "rate: $30/hr or $50/hr for MOE", wantMin: 30, wantMax: 50},
		{text: "no rate mentioned", wantNone: true},
		{text: "", wantNone: true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			gotMin, gotMax := ParseRates(tt.text)
			if tt.wantNone {
				assert.Nil(t, gotMin)
				assert.Nil(t, gotMax)
				return
			}
			require.NotNil(t, gotMin)
			require.NotNil(t, gotMax)
			assert.Equal(t, tt.wantMin, *gotMin)
			assert.Equal(t, tt.wantMax, *gotMax)
		})
	}
}

func TestEnrichHappyPath(t *testing.T) {
	e := newTestEnricher(t)

	raw := "Sec 3 Math, Tampines 520123, $40/hr, Mon 7-9pm"
	c := &models.CanonicalExtraction{
		AcademicDisplayText: "Sec 3 Math @ Tampines",
		Subjects:            []string{"Math"},
		Level:               "Secondary",
		PostalCode:          []string{"520123"},
	}

	got := e.Enrich(raw, c)

	assert.Contains(t, got.SignalsLevels, "Secondary")
	assert.Contains(t, got.SignalsSpecificStudentLevels, "Sec 3")
	assert.Contains(t, got.SubjectsCanonical, "MATH.SEC_EMATH")
	assert.Contains(t, got.SubjectsGeneral, "MATH")
	assert.Equal(t, "East", got.Region)
	require.NotNil(t, got.RateMin)
	require.NotNil(t, got.RateMax)
	assert.Equal(t, 40.0, *got.RateMin)
	assert.Equal(t, 40.0, *got.RateMax)
	assert.False(t, got.PostalCoordsEstimated)
	assert.NotEmpty(t, got.NearestMRT)
	assert.Equal(t, CanonicalizationVersion, got.CanonicalizationVersion)
}

func TestEnrichEstimatedPostal(t *testing.T) {
	e := newTestEnricher(t)

	c := &models.CanonicalExtraction{
		AcademicDisplayText: "P5 English near Bishan",
		Level:               "Primary",
		PostalCodeEstimated: []string{"570123"},
	}
	got := e.Enrich("P5 English near Bishan", c)

	require.NotNil(t, got.PostalLat)
	assert.True(t, got.PostalCoordsEstimated)
	assert.Equal(t, "North-East", got.Region)
}

func TestEnrichLLMRatesWin(t *testing.T) {
	e := newTestEnricher(t)

	min, max := 55.0, 65.0
	c := &models.CanonicalExtraction{
		AcademicDisplayText: "JC2 Chemistry",
		Level:               "JC",
		RateMin:             &min,
		RateMax:             &max,
		RateRawText:         "$40/hr", // contradicts the numerics; LLM wins
	}
	got := e.Enrich("JC2 Chemistry $40/hr", c)

	assert.Equal(t, 55.0, *got.RateMin)
	assert.Equal(t, 65.0, *got.RateMax)
}

func TestEnrichIdempotent(t *testing.T) {
	e := newTestEnricher(t)

	raw := "Sec 2 Science, Hougang 530123, $35-40/hr"
	c := &models.CanonicalExtraction{
		AcademicDisplayText: "Sec 2 Science",
		Subjects:            []string{"Science"},
		Level:               "Secondary",
		PostalCode:          []string{"530123"},
	}

	first := e.Enrich(raw, c)
	second := e.Enrich(raw, c)
	assert.Equal(t, first, second)

	// Feeding canonical output back through canonicalization is stable.
	again, _ := Canonicalize("Secondary", first.SubjectsCanonical)
	assert.Equal(t, first.SubjectsCanonical, again)
}

func TestMergeDedup(t *testing.T) {
	got := MergeDedup([]string{"Math", "Physics"}, []string{"math", "Chemistry", ""})
	assert.Equal(t, []string{"Math", "Physics", "Chemistry"}, got)

	assert.Nil(t, MergeDedup(nil, nil))
}

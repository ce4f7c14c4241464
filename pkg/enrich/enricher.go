package enrich

import (
	"github.com/tuitionlab/assignflow/pkg/geodata"
	"github.com/tuitionlab/assignflow/pkg/models"
)

// Enrichment is everything the deterministic chain computed for one
// extraction. The worker merges it into the upsert input.
type Enrichment struct {
	// Geo
	PostalLat             *float64
	PostalLon             *float64
	PostalCoordsEstimated bool
	Region                string
	NearestMRT            string
	NearestMRTLine        string
	NearestMRTDistanceM   *int

	// Signals (raw-text rollups unioned with LLM labels)
	SignalsSubjects              []string
	SignalsLevels                []string
	SignalsSpecificStudentLevels []string

	// Canonicalization
	SubjectsCanonical       []string
	SubjectsGeneral         []string
	CanonicalizationVersion int

	// Rates (only set when the LLM supplied none)
	RateMin *float64
	RateMax *float64
}

// Enricher runs the full deterministic chain. Stateless apart from the
// loaded geo dataset; safe for concurrent use.
type Enricher struct {
	geo *geodata.Dataset
}

// NewEnricher creates an enricher over the given geo dataset.
// Panics on nil — the dataset is a hard wiring dependency.
func NewEnricher(geo *geodata.Dataset) *Enricher {
	if geo == nil {
		panic("enrich: geo dataset is required")
	}
	return &Enricher{geo: geo}
}

// Enrich computes the full enrichment for one extraction. Pure: the same
// (rawText, extraction) pair always yields an identical Enrichment, and
// enriching an already-enriched record changes nothing.
func (e *Enricher) Enrich(rawText string, c *models.CanonicalExtraction) *Enrichment {
	out := &Enrichment{CanonicalizationVersion: CanonicalizationVersion}

	// Signal rollups from raw text, unioned with LLM subject labels.
	sig := RollupSignals(rawText)
	out.SignalsSubjects = MergeDedup(sig.Subjects, c.Subjects)
	out.SignalsLevels = sig.Levels
	out.SignalsSpecificStudentLevels = MergeDedup(sig.SpecificLevels, c.SpecificLevels)

	// Canonicalization: LLM level first, rollup level as fallback.
	level := c.Level
	if NormalizeLevel(level) == "" && len(sig.Levels) > 0 {
		level = sig.Levels[0]
	}
	out.SubjectsCanonical, out.SubjectsGeneral = Canonicalize(level, out.SignalsSubjects)

	// Geo: first resolvable verbatim postal wins; estimated postals are
	// consulted only when no verbatim one resolves.
	if res := e.resolveFirst(c.PostalCode); res != nil {
		e.applyGeo(out, res, false)
	} else if res := e.resolveFirst(c.PostalCodeEstimated); res != nil {
		e.applyGeo(out, res, true)
	}

	// Rates: respect LLM numerics, otherwise parse deterministically from
	// the rate text, then the whole post.
	if c.RateMin != nil || c.RateMax != nil {
		out.RateMin, out.RateMax = c.RateMin, c.RateMax
	} else {
		rateText := c.RateRawText
		if rateText == "" {
			rateText = rawText
		}
		out.RateMin, out.RateMax = ParseRates(rateText)
	}

	return out
}

func (e *Enricher) resolveFirst(postals []string) *geodata.Resolution {
	for _, pc := range postals {
		if !models.IsValidPostalCode(pc) {
			continue
		}
		if res := e.geo.Resolve(pc); res != nil {
			return res
		}
	}
	return nil
}

func (e *Enricher) applyGeo(out *Enrichment, res *geodata.Resolution, estimated bool) {
	lat, lon := res.Lat, res.Lon
	out.PostalLat = &lat
	out.PostalLon = &lon
	out.PostalCoordsEstimated = estimated
	out.Region = res.Region
	out.NearestMRT = res.NearestMRT
	out.NearestMRTLine = res.MRTLine
	if res.NearestMRT != "" {
		distM := res.MRTDistM
		out.NearestMRTDistanceM = &distM
	}
}

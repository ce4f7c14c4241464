// Package geodata resolves Singapore postal codes to coordinates, regions,
// and nearest MRT stations from an embedded static dataset.
package geodata

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
)

// Resolution is the result of resolving one postal code.
type Resolution struct {
	Lat        float64
	Lon        float64
	Region     string // North | North-East | East | West | Central
	NearestMRT string
	MRTLine    string
	MRTDistM   int
}

// Dataset holds the loaded postal-district and MRT-station tables.
// Loaded once at startup; read-only afterwards, safe for concurrent use.
type Dataset struct {
	districts map[string]district // postal sector (first two digits) -> district
	stations  []Station
}

// Station is one MRT station with its primary line.
type Station struct {
	Name string  `json:"name"`
	Line string  `json:"line"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// Load builds the dataset from the embedded tables. When overridePath is
// non-empty, station data is replaced by the JSON file at that path (the
// district table is fixed by the national postal scheme and never overridden).
func Load(overridePath string) (*Dataset, error) {
	ds := &Dataset{
		districts: buildDistrictIndex(),
		stations:  embeddedStations,
	}

	if overridePath != "" {
		data, err := os.ReadFile(overridePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read station override: %w", err)
		}
		var stations []Station
		if err := json.Unmarshal(data, &stations); err != nil {
			return nil, fmt.Errorf("failed to parse station override: %w", err)
		}
		if len(stations) == 0 {
			return nil, fmt.Errorf("station override %s contains no stations", overridePath)
		}
		ds.stations = stations
		slog.Info("Loaded MRT station override", "path", overridePath, "stations", len(stations))
	}

	return ds, nil
}

// Resolve maps a six-digit postal code to coordinates, region, and the
// nearest MRT station. Returns nil when the sector is unknown.
//
// Coordinates are district centroids: precise enough for region assignment,
// MRT proximity, and the listing distance sort, which is all the pipeline
// needs from a postal code.
func (d *Dataset) Resolve(postalCode string) *Resolution {
	if len(postalCode) != 6 {
		return nil
	}
	if _, err := strconv.Atoi(postalCode); err != nil {
		return nil
	}

	sector := postalCode[:2]
	dist, ok := d.districts[sector]
	if !ok {
		return nil
	}

	res := &Resolution{
		Lat:    dist.lat,
		Lon:    dist.lon,
		Region: dist.region,
	}

	if st, distM := d.nearest(dist.lat, dist.lon); st != nil {
		res.NearestMRT = st.Name
		res.MRTLine = st.Line
		res.MRTDistM = distM
	}

	return res
}

// nearest returns the closest station to (lat, lon) and the distance in
// meters, or nil when the station table is empty.
func (d *Dataset) nearest(lat, lon float64) (*Station, int) {
	var best *Station
	bestKm := math.MaxFloat64
	for i := range d.stations {
		km := HaversineKm(lat, lon, d.stations[i].Lat, d.stations[i].Lon)
		if km < bestKm {
			bestKm = km
			best = &d.stations[i]
		}
	}
	if best == nil {
		return nil, 0
	}
	return best, int(math.Round(bestKm * 1000))
}

// HaversineKm computes the great-circle distance between two points in km.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKm = 6371.0

	rad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := rad(lat2 - lat1)
	dLon := rad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}

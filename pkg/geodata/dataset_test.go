package geodata

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	ds, err := Load("")
	require.NoError(t, err)

	tests := []struct {
		name       string
		postal     string
		wantRegion string
		wantMRT    string
	}{
		{"tampines", "520123", "East", "Tampines"},
		{"raffles place", "048616", "Central", "Raffles Place"},
		{"woodlands", "730123", "North", "Woodlands"},
		{"jurong", "600123", "West", "Jurong East"},
		{"hougang", "530123", "North-East", "Serangoon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ds.Resolve(tt.postal)
			require.NotNil(t, res)
			assert.Equal(t, tt.wantRegion, res.Region)
			assert.Equal(t, tt.wantMRT, res.NearestMRT)
			assert.NotEmpty(t, res.MRTLine)
			assert.Greater(t, res.MRTDistM, 0)
			assert.InDelta(t, 1.35, res.Lat, 0.2)
			assert.InDelta(t, 103.85, res.Lon, 0.3)
		})
	}
}

func TestResolveRejectsInvalid(t *testing.T) {
	ds, err := Load("")
	require.NoError(t, err)

	assert.Nil(t, ds.Resolve("12345"))   // five digits
	assert.Nil(t, ds.Resolve("1234567")) // seven digits
	assert.Nil(t, ds.Resolve("abc123"))  // non-numeric
	assert.Nil(t, ds.Resolve("990000"))  // unassigned sector
}

func TestResolveDeterministic(t *testing.T) {
	ds, err := Load("")
	require.NoError(t, err)

	first := ds.Resolve("520123")
	second := ds.Resolve("520123")
	require.NotNil(t, first)
	assert.Equal(t, first, second)
}

func TestLoadStationOverride(t *testing.T) {
	stations := []Station{{Name: "Only Stop", Line: "XX", Lat: 1.35, Lon: 103.94}}
	data, err := json.Marshal(stations)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "stations.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	ds, err := Load(path)
	require.NoError(t, err)

	res := ds.Resolve("520123")
	require.NotNil(t, res)
	assert.Equal(t, "Only Stop", res.NearestMRT)
	assert.Equal(t, "XX", res.MRTLine)
}

func TestLoadStationOverrideEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stations.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestHaversineKm(t *testing.T) {
	// Tampines MRT to Pasir Ris MRT is roughly 2.2km as the crow flies.
	km := HaversineKm(1.3532, 103.9453, 1.3725, 103.9493)
	assert.InDelta(t, 2.2, km, 0.3)

	// Zero distance
	assert.Zero(t, HaversineKm(1.35, 103.9, 1.35, 103.9))
}

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasValidCoordinates(t *testing.T) {
	cases := []struct {
		name      string
		lat, long float64
		want      bool
	}{
		{"campus coordinates", 45.5523, -94.1521, true},
		{"boundary values", 90, -180, true},
		{"latitude too high", 90.1, 0, false},
		{"latitude too low", -90.1, 0, false},
		{"longitude too high", 0, 180.1, false},
		{"longitude too low", 0, -180.1, false},
		{"origin is valid", 0, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := Building{Latitude: tc.lat, Longitude: tc.long}
			assert.Equal(t, tc.want, b.HasValidCoordinates())
		})
	}
}

func TestBuildingJSONShape(t *testing.T) {
	desc := "Main library"
	b := Building{
		ID:          1,
		Code:        "JWC",
		Name:        "Miller Center",
		Address:     "720 4th Ave S",
		Latitude:    45.5519,
		Longitude:   -94.1531,
		Description: &desc,
	}

	data, err := json.Marshal(b)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	// Wire keys clients depend on.
	assert.Contains(t, m, "building_code")
	assert.Contains(t, m, "latitude")
	assert.Contains(t, m, "longitude")
	assert.Equal(t, "JWC", m["building_code"])
}

func TestIsValidWeekday(t *testing.T) {
	for _, d := range Weekdays {
		assert.True(t, IsValidWeekday(string(d)))
	}
	assert.False(t, IsValidWeekday("Monday"))
	assert.False(t, IsValidWeekday("mon"))
	assert.False(t, IsValidWeekday(""))
}

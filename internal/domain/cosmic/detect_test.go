//go:build unit

package cosmic_test

import (
	"testing"

	"cosmic-courier/internal/domain/cosmic"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectIngresses(t *testing.T) {
	t.Run("body just inside a new sign", func(t *testing.T) {
		s := snapshotWith(map[cosmic.Body]float64{
			cosmic.Mars:  31.5, // 1.5° into Taurus
			cosmic.Venus: 75,   // mid Gemini
		})
		events := cosmic.DetectIngresses(s, 8)
		require.Len(t, events, 1)
		assert.Equal(t, "Mars enters Taurus", events[0].Name)
		assert.Equal(t, cosmic.EventIngress, events[0].Type)
		assert.Equal(t, 8, events[0].Priority)
		assert.Equal(t, cosmic.Mars, events[0].Planet)
		assert.InDelta(t, 1.5, events[0].DegreeInSign, 1e-9)
	})

	t.Run("exact boundary counts", func(t *testing.T) {
		s := snapshotWith(map[cosmic.Body]float64{cosmic.Jupiter: 120})
		events := cosmic.DetectIngresses(s, 8)
		require.Len(t, events, 1)
		assert.Equal(t, "Jupiter enters Leo", events[0].Name)
	})

	t.Run("two degrees in is no longer an ingress", func(t *testing.T) {
		s := snapshotWith(map[cosmic.Body]float64{cosmic.Jupiter: 122})
		assert.Empty(t, cosmic.DetectIngresses(s, 8))
	})

	t.Run("priority is caller-supplied", func(t *testing.T) {
		s := snapshotWith(map[cosmic.Body]float64{cosmic.Mercury: 60.5})
		events := cosmic.DetectIngresses(s, 4)
		require.Len(t, events, 1)
		assert.Equal(t, 4, events[0].Priority)
	})
}

func TestDetectSeasonal(t *testing.T) {
	testCases := []struct {
		name         string
		sunLongitude float64
		expected     string
	}{
		{name: "spring equinox at zero", sunLongitude: 0.4, expected: "Spring Equinox"},
		{name: "spring equinox approached from below", sunLongitude: 359.5, expected: "Spring Equinox"},
		{name: "summer solstice", sunLongitude: 90.7, expected: "Summer Solstice"},
		{name: "autumn equinox", sunLongitude: 180.3, expected: "Autumn Equinox"},
		{name: "winter solstice", sunLongitude: 269.2, expected: "Winter Solstice"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := snapshotWith(map[cosmic.Body]float64{cosmic.Sun: tc.sunLongitude})
			events := cosmic.DetectSeasonal(s)
			require.Len(t, events, 1)
			assert.Equal(t, tc.expected, events[0].Name)
			assert.Equal(t, cosmic.EventSeasonal, events[0].Type)
			assert.Equal(t, cosmic.PrioritySeasonal, events[0].Priority)
		})
	}

	t.Run("nothing fires between markers", func(t *testing.T) {
		for _, longitude := range []float64{45, 135, 225, 315, 1.5, 88.9} {
			s := snapshotWith(map[cosmic.Body]float64{cosmic.Sun: longitude})
			assert.Empty(t, cosmic.DetectSeasonal(s), "longitude %.1f", longitude)
		}
	})

	t.Run("no sun means no seasonal event", func(t *testing.T) {
		s := snapshotWith(map[cosmic.Body]float64{cosmic.Mars: 90})
		assert.Empty(t, cosmic.DetectSeasonal(s))
	})
}

func TestDetectRetrogrades(t *testing.T) {
	s := cosmic.Snapshot{Positions: map[cosmic.Body]cosmic.Position{
		cosmic.Mercury: {Longitude: 60.5, Sign: "Gemini", Retrograde: true},
		cosmic.Venus:   {Longitude: 90.5, Sign: "Cancer", Retrograde: false},
		cosmic.Saturn:  {Longitude: 95, Sign: "Cancer", Retrograde: true},
	}}

	events := cosmic.DetectRetrogrades(s, 8)
	require.Len(t, events, 1)
	assert.Equal(t, "Mercury is retrograde", events[0].Name)
	assert.Equal(t, cosmic.EventRetrograde, events[0].Type)
	assert.Equal(t, 8, events[0].Priority)
	assert.Equal(t, cosmic.Sign("Gemini"), events[0].Sign)
}

//go:build unit

package cosmic_test

import (
	"testing"

	"cosmic-courier/internal/domain/cosmic"

	"github.com/stretchr/testify/assert"
)

func TestSignForLongitude(t *testing.T) {
	testCases := []struct {
		name      string
		longitude float64
		expected  cosmic.Sign
	}{
		{name: "zero is Aries", longitude: 0, expected: "Aries"},
		{name: "just below first boundary", longitude: 29.999, expected: "Aries"},
		{name: "first boundary is Taurus", longitude: 30, expected: "Taurus"},
		{name: "mid zodiac", longitude: 185, expected: "Libra"},
		{name: "last sign", longitude: 359.999, expected: "Pisces"},
		{name: "negative wraps to Pisces", longitude: -10, expected: "Pisces"},
		{name: "above full circle wraps", longitude: 360, expected: "Aries"},
		{name: "multiple turns", longitude: 750, expected: "Taurus"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, cosmic.SignForLongitude(tc.longitude))
		})
	}
}

// sign(L) must equal sign(L + 360k) for any k.
func TestSignForLongitude_Periodicity(t *testing.T) {
	for longitude := 0.0; longitude < 360; longitude += 7.3 {
		base := cosmic.SignForLongitude(longitude)
		for _, k := range []float64{-2, -1, 1, 2, 5} {
			assert.Equal(t, base, cosmic.SignForLongitude(longitude+360*k),
				"longitude %.1f, k=%.0f", longitude, k)
		}
	}
}

func TestDegreeInSign(t *testing.T) {
	assert.InDelta(t, 0.0, cosmic.DegreeInSign(0), 1e-9)
	assert.InDelta(t, 15.5, cosmic.DegreeInSign(45.5), 1e-9)
	assert.InDelta(t, 29.9, cosmic.DegreeInSign(359.9), 1e-9)
	assert.InDelta(t, 20.0, cosmic.DegreeInSign(-10), 1e-9)
}

func TestNormalizeLongitude(t *testing.T) {
	assert.InDelta(t, 0.0, cosmic.NormalizeLongitude(720), 1e-9)
	assert.InDelta(t, 350.0, cosmic.NormalizeLongitude(-10), 1e-9)
	assert.InDelta(t, 180.3, cosmic.NormalizeLongitude(180.3), 1e-9)
}

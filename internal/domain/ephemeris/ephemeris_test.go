//go:build unit

package ephemeris_test

import (
	"context"
	"testing"
	"time"

	"cosmic-courier/internal/domain/cosmic"
	"cosmic-courier/internal/domain/ephemeris"
	"cosmic-courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSource replays canned readings keyed by instant.
type stubSource struct {
	readings map[time.Time]ephemeris.Reading
	err      error
	failAt   time.Time
}

func (s *stubSource) Read(_ context.Context, at time.Time) (ephemeris.Reading, error) {
	if s.err != nil && (s.failAt.IsZero() || s.failAt.Equal(at)) {
		return ephemeris.Reading{}, s.err
	}
	r, ok := s.readings[at]
	if !ok {
		return ephemeris.Reading{}, errs.New("no reading for instant")
	}
	return r, nil
}

func TestAdapter_Snapshot(t *testing.T) {
	at := time.Date(2026, time.April, 3, 12, 0, 0, 0, time.UTC)
	prior := at.Add(-24 * time.Hour)

	t.Run("classifies positions and derives retrograde", func(t *testing.T) {
		source := &stubSource{readings: map[time.Time]ephemeris.Reading{
			at: {
				Longitudes: map[cosmic.Body]float64{
					cosmic.Sun:     13.4,
					cosmic.Mercury: 28.1, // moved backwards since yesterday
					cosmic.Mars:    95.0,
				},
				MoonPhaseAngle:          182.9,
				MoonIlluminationPercent: 99.8,
			},
			prior: {
				Longitudes: map[cosmic.Body]float64{
					cosmic.Sun:     12.4,
					cosmic.Mercury: 28.9,
					cosmic.Mars:    94.5,
				},
			},
		}}

		s, err := ephemeris.NewAdapter(source).Snapshot(context.Background(), at)
		require.NoError(t, err)

		assert.Equal(t, at, s.Timestamp)

		sun, ok := s.Position(cosmic.Sun)
		require.True(t, ok)
		assert.Equal(t, cosmic.Sign("Aries"), sun.Sign)
		assert.False(t, sun.Retrograde)

		mercury, ok := s.Position(cosmic.Mercury)
		require.True(t, ok)
		assert.True(t, mercury.Retrograde)

		mars, ok := s.Position(cosmic.Mars)
		require.True(t, ok)
		assert.Equal(t, cosmic.Sign("Cancer"), mars.Sign)
		assert.False(t, mars.Retrograde)

		// April full moon window: phase angle 182.9 of 360 ≈ age 15.0 days.
		assert.Equal(t, "Pink Moon", s.Moon.Name)
		assert.True(t, s.Moon.IsSignificant)
		assert.InDelta(t, 15.0, s.Moon.AgeDays, 0.01)
	})

	t.Run("boundary crossing is not retrograde", func(t *testing.T) {
		source := &stubSource{readings: map[time.Time]ephemeris.Reading{
			at: {Longitudes: map[cosmic.Body]float64{cosmic.Venus: 0.3}},
			prior: {
				Longitudes: map[cosmic.Body]float64{cosmic.Venus: 359.5},
			},
		}}

		s, err := ephemeris.NewAdapter(source).Snapshot(context.Background(), at)
		require.NoError(t, err)

		venus, ok := s.Position(cosmic.Venus)
		require.True(t, ok)
		assert.False(t, venus.Retrograde, "crossing 360 to 0 is forward motion")
		assert.Equal(t, cosmic.Sign("Aries"), venus.Sign)
	})

	t.Run("reverse boundary crossing is retrograde", func(t *testing.T) {
		source := &stubSource{readings: map[time.Time]ephemeris.Reading{
			at:    {Longitudes: map[cosmic.Body]float64{cosmic.Venus: 359.8}},
			prior: {Longitudes: map[cosmic.Body]float64{cosmic.Venus: 0.2}},
		}}

		s, err := ephemeris.NewAdapter(source).Snapshot(context.Background(), at)
		require.NoError(t, err)

		venus, _ := s.Position(cosmic.Venus)
		assert.True(t, venus.Retrograde)
	})

	t.Run("source failure is fatal", func(t *testing.T) {
		source := &stubSource{err: errs.New("upstream down")}

		_, err := ephemeris.NewAdapter(source).Snapshot(context.Background(), at)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrEphemerisUnavailable)
	})

	t.Run("prior read failure is equally fatal", func(t *testing.T) {
		source := &stubSource{
			readings: map[time.Time]ephemeris.Reading{
				at: {Longitudes: map[cosmic.Body]float64{cosmic.Sun: 10}},
			},
			err:    errs.New("upstream down"),
			failAt: prior,
		}

		_, err := ephemeris.NewAdapter(source).Snapshot(context.Background(), at)

		assert.ErrorIs(t, err, errs.ErrEphemerisUnavailable)
	})
}

package ephemeris

import (
	"context"
	"time"

	"cosmic-courier/internal/domain/cosmic"
	"cosmic-courier/internal/pkg/errs"
)

// Reading is one raw observation from an ephemeris source: ecliptic
// longitudes per body plus the lunar state, before any classification.
type Reading struct {
	Timestamp               time.Time
	Longitudes              map[cosmic.Body]float64
	MoonIlluminationPercent float64
	MoonPhaseAngle          float64
}

// Source computes or fetches raw positions for an instant. The astronomy
// itself is a black box behind this interface.
type Source interface {
	Read(ctx context.Context, at time.Time) (Reading, error)
}

// Adapter turns raw readings into classified snapshots. Retrograde motion is
// derived by comparing each body's longitude against its position 24 hours
// earlier, so a snapshot costs two source reads.
type Adapter struct {
	source Source
}

func NewAdapter(source Source) *Adapter {
	return &Adapter{source: source}
}

// Snapshot builds the full classified sky state for an instant. Any source
// failure is fatal: detectors must never run on a partial sky.
func (a *Adapter) Snapshot(ctx context.Context, at time.Time) (cosmic.Snapshot, error) {
	now, err := a.source.Read(ctx, at)
	if err != nil {
		return cosmic.Snapshot{}, errs.Mark(errs.Wrap(err, "read ephemeris"), errs.ErrEphemerisUnavailable)
	}
	prior, err := a.source.Read(ctx, at.Add(-24*time.Hour))
	if err != nil {
		return cosmic.Snapshot{}, errs.Mark(errs.Wrap(err, "read prior ephemeris"), errs.ErrEphemerisUnavailable)
	}

	positions := make(map[cosmic.Body]cosmic.Position, len(cosmic.TrackedBodies))
	for _, body := range cosmic.TrackedBodies {
		longitude, ok := now.Longitudes[body]
		if !ok {
			continue
		}
		normalized := cosmic.NormalizeLongitude(longitude)
		p := cosmic.Position{
			Longitude: normalized,
			Sign:      cosmic.SignForLongitude(normalized),
		}
		if earlier, ok := prior.Longitudes[body]; ok {
			p.Retrograde = apparentMotion(earlier, longitude) < 0
		}
		positions[body] = p
	}

	ageDays := cosmic.MoonAgeDays(now.MoonPhaseAngle)
	moon := cosmic.ClassifyMoonPhase(ageDays, now.MoonIlluminationPercent, at.Month())

	return cosmic.Snapshot{
		Timestamp: at,
		Positions: positions,
		Moon:      moon,
	}, nil
}

// apparentMotion is the signed daily longitude change, corrected for the
// 0/360 boundary: a jump larger than 180 degrees means the body crossed the
// boundary, not that it swept most of the zodiac in a day.
func apparentMotion(earlier, later float64) float64 {
	delta := cosmic.NormalizeLongitude(later) - cosmic.NormalizeLongitude(earlier)
	if delta > 180 {
		delta -= 360
	}
	if delta < -180 {
		delta += 360
	}
	return delta
}

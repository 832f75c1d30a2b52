package cosmic

import "time"

// Position is one body's place on the ecliptic at the snapshot instant.
type Position struct {
	Longitude  float64
	Sign       Sign
	Retrograde bool
}

// Snapshot is the full sky state for one instant. It is recomputed per
// invocation and never persisted.
type Snapshot struct {
	Timestamp time.Time
	Positions map[Body]Position
	Moon      MoonPhaseReading
}

func (s Snapshot) Position(b Body) (Position, bool) {
	p, ok := s.Positions[b]
	return p, ok
}

// SunLongitude returns 0 when the Sun is missing; detectors treat that as
// "no seasonal event" rather than an error.
func (s Snapshot) SunLongitude() (float64, bool) {
	p, ok := s.Positions[Sun]
	return p.Longitude, ok
}

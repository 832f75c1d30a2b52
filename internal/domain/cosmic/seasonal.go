package cosmic

import "math"

const (
	PrioritySeasonal   = 8
	seasonalOrbDegrees = 1.0
)

type seasonalMarker struct {
	longitude float64
	name      string
	energy    string
}

var seasonalMarkers = []seasonalMarker{
	{0, "Spring Equinox", "Balance & New Growth"},
	{90, "Summer Solstice", "Maximum Solar Power"},
	{180, "Autumn Equinox", "Harvest & Reflection"},
	{270, "Winter Solstice", "Inner Light & Renewal"},
}

// DetectSeasonal fires when the Sun sits within 1° of a cardinal longitude.
// The four windows cannot overlap, so at most one event is returned.
func DetectSeasonal(s Snapshot) []Event {
	sunLongitude, ok := s.SunLongitude()
	if !ok {
		return nil
	}
	normalized := NormalizeLongitude(sunLongitude)

	for _, m := range seasonalMarkers {
		distance := math.Abs(normalized - m.longitude)
		if m.longitude == 0 && normalized > 180 {
			// 359.5° is half a degree from the equinox, not 359.5° away.
			distance = 360 - normalized
		}
		if distance < seasonalOrbDegrees {
			return []Event{{
				Name:     m.name,
				Type:     EventSeasonal,
				Priority: PrioritySeasonal,
				Energy:   m.energy,
			}}
		}
	}
	return nil
}

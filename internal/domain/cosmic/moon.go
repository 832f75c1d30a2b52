package cosmic

import "time"

// SynodicMonthDays is the New-Moon-to-New-Moon period.
const SynodicMonthDays = 29.530588853

// MoonPhaseReading is the classified lunar state for one instant. Derived,
// never persisted.
type MoonPhaseReading struct {
	Name                string
	Energy              string
	Priority            int
	IlluminationPercent float64
	AgeDays             float64
	IsSignificant       bool
}

// fullMoonNames maps calendar month to the traditional full-moon name.
var fullMoonNames = map[time.Month]string{
	time.January:   "Wolf Moon",
	time.February:  "Snow Moon",
	time.March:     "Worm Moon",
	time.April:     "Pink Moon",
	time.May:       "Flower Moon",
	time.June:      "Strawberry Moon",
	time.July:      "Buck Moon",
	time.August:    "Sturgeon Moon",
	time.September: "Harvest Moon",
	time.October:   "Hunter Moon",
	time.November:  "Beaver Moon",
	time.December:  "Cold Moon",
}

// FullMoonName returns the month's traditional name, falling back to the
// canonical "Full Moon".
func FullMoonName(month time.Month) string {
	if name, ok := fullMoonNames[month]; ok {
		return name
	}
	return "Full Moon"
}

// MoonAgeDays converts a phase angle (0-360, New Moon at 0) into days since
// New Moon.
func MoonAgeDays(phaseAngle float64) float64 {
	return NormalizeLongitude(phaseAngle) / 360 * SynodicMonthDays
}

// ClassifyMoonPhase buckets the moon's age into one of the eight canonical
// phases. The four tight windows (New Moon, quarters, Full Moon) are the
// significant ones; everything between falls into a crescent/gibbous bucket.
// The windows partition [0, SynodicMonthDays) with no gap and no overlap.
func ClassifyMoonPhase(ageDays, illuminationPercent float64, month time.Month) MoonPhaseReading {
	r := MoonPhaseReading{
		IlluminationPercent: illuminationPercent,
		AgeDays:             ageDays,
	}

	switch {
	case ageDays < 0.5:
		r.Name = "New Moon"
		r.Energy = "New Beginnings"
		r.Priority = PriorityMoonSignificant
		r.IsSignificant = true
	case ageDays >= 7.2 && ageDays <= 7.6:
		r.Name = "First Quarter"
		r.Energy = "Action & Decision"
		r.Priority = PriorityMoonSignificant
		r.IsSignificant = true
	case ageDays >= 14.5 && ageDays <= 15.5:
		r.Name = FullMoonName(month)
		r.Energy = "Peak Power"
		r.Priority = PriorityMoonSignificant
		r.IsSignificant = true
	case ageDays >= 22.0 && ageDays <= 22.4:
		r.Name = "Last Quarter"
		r.Energy = "Release & Letting Go"
		r.Priority = PriorityMoonSignificant
		r.IsSignificant = true
	case ageDays < 7.2:
		r.Name = "Waxing Crescent"
		r.Energy = "Growing Energy"
		r.Priority = 2
	case ageDays < 14.5:
		r.Name = "Waxing Gibbous"
		r.Energy = "Building Power"
		r.Priority = 2
	case ageDays < 22.0:
		r.Name = "Waning Gibbous"
		r.Energy = "Gratitude & Wisdom"
		r.Priority = 2
	default:
		r.Name = "Waning Crescent"
		r.Energy = "Rest & Reflection"
		r.Priority = 2
	}

	return r
}

// MoonEvent lifts a significant reading into the event stream. Returns false
// for the ordinary crescent/gibbous phases, which never notify.
func MoonEvent(r MoonPhaseReading) (Event, bool) {
	if !r.IsSignificant {
		return Event{}, false
	}
	return Event{
		Name:     r.Name,
		Type:     EventMoon,
		Priority: r.Priority,
		Energy:   r.Energy,
	}, true
}

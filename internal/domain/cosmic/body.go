package cosmic

import "math"

type Body string

const (
	Sun     Body = "Sun"
	Moon    Body = "Moon"
	Mercury Body = "Mercury"
	Venus   Body = "Venus"
	Mars    Body = "Mars"
	Jupiter Body = "Jupiter"
	Saturn  Body = "Saturn"
	Uranus  Body = "Uranus"
	Neptune Body = "Neptune"
	Pluto   Body = "Pluto"
)

// TrackedBodies is every body a snapshot carries.
var TrackedBodies = []Body{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto}

// AspectBodies excludes the Moon: its fast motion would flood the aspect
// detector with hour-lived aspects that are never notification material.
var AspectBodies = []Body{Sun, Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto}

// OuterBodies make an aspect slow-moving enough to matter for push dispatch.
var OuterBodies = []Body{Jupiter, Saturn, Uranus, Neptune, Pluto}

type Sign string

var Signs = []Sign{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// NormalizeLongitude maps any angle into [0, 360).
func NormalizeLongitude(longitude float64) float64 {
	l := math.Mod(longitude, 360)
	if l < 0 {
		l += 360
	}
	return l
}

func SignForLongitude(longitude float64) Sign {
	index := int(NormalizeLongitude(longitude) / 30)
	return Signs[index]
}

// DegreeInSign is the body's position within its current sign, [0, 30).
func DegreeInSign(longitude float64) float64 {
	return math.Mod(NormalizeLongitude(longitude), 30)
}

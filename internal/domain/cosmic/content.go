package cosmic

import (
	"fmt"
	"strings"
)

// Notification is the rendered push payload content for one event. Every
// dispatch surface (sweep, digest, interactive preview) renders through
// Classify so titles and bodies cannot drift apart again.
type Notification struct {
	Title string
	Body  string
	Tag   string
	Data  map[string]any
}

var aspectVerbs = map[AspectType]string{
	Conjunction: "unite their energies",
	Trine:       "flow harmoniously together",
	Square:      "create dynamic tension",
	Sextile:     "offer cooperative opportunities",
	Opposition:  "seek balance between",
}

var moonDescriptions = map[string]string{
	"New Moon":      "A powerful reset point for manifestation and new beginnings. Set intentions aligned with your deeper purpose.",
	"Full Moon":     "Peak illumination brings clarity to accomplishments and reveals areas ready for release and transformation.",
	"First Quarter": "A critical decision point supporting decisive action and breakthrough moments.",
	"Last Quarter":  "A time for reflection, release, and preparing for the next lunar cycle.",
}

var retrogradeMeanings = map[Body]string{
	Mercury: "invites reflection on communication, technology, and mental patterns",
	Venus:   "encourages review of relationships, values, and what brings beauty",
	Mars:    "suggests revisiting action, motivation, and how we channel energy",
	Jupiter: "invites reflection on expansion, growth, and philosophical beliefs",
	Saturn:  "encourages review of structures, responsibilities, and long-term goals",
	Uranus:  "brings revolutionary reflection on change, innovation, and freedom",
	Neptune: "invites reflection on dreams, intuition, and spiritual connection",
	Pluto:   "encourages deep transformation through shadow work and renewal",
}

var signDescriptions = map[Sign]string{
	"Aries":       "initiating and pioneering",
	"Taurus":      "grounding and stabilizing",
	"Gemini":      "communicating and adapting",
	"Cancer":      "nurturing and protective",
	"Leo":         "creative and expressive",
	"Virgo":       "practical and analytical",
	"Libra":       "harmonizing and diplomatic",
	"Scorpio":     "transforming and intense",
	"Sagittarius": "expanding and philosophical",
	"Capricorn":   "structuring and ambitious",
	"Aquarius":    "innovative and independent",
	"Pisces":      "intuitive and compassionate",
}

func SignDescription(sign Sign) string {
	if d, ok := signDescriptions[sign]; ok {
		return d
	}
	return "cosmic"
}

// Classify renders the title and body for an event. moonSign may be empty;
// it only decorates moon-phase bodies.
func Classify(e Event, moonSign Sign) Notification {
	n := Notification{
		Title: classifyTitle(e),
		Body:  classifyBody(e, moonSign),
		Tag:   "cosmic-" + string(e.Type),
		Data: map[string]any{
			"eventName": e.Name,
			"eventType": string(e.Type),
			"priority":  e.Priority,
		},
	}
	return n
}

func classifyTitle(e Event) string {
	switch e.Type {
	case EventAspect:
		if e.PlanetA != "" && e.PlanetB != "" && e.AspectType != "" {
			return fmt.Sprintf("%s-%s %s", e.PlanetA, e.PlanetB, titleCase(string(e.AspectType)))
		}
	case EventIngress:
		if e.Planet != "" && e.Sign != "" {
			return fmt.Sprintf("%s Enters %s", e.Planet, e.Sign)
		}
	case EventRetrograde:
		if e.Planet != "" {
			return fmt.Sprintf("%s Retrograde", e.Planet)
		}
	}
	if e.Name != "" {
		return e.Name
	}
	return "Cosmic Event"
}

func classifyBody(e Event, moonSign Sign) string {
	switch e.Type {
	case EventMoon:
		return moonBody(e.Name, moonSign)
	case EventAspect:
		return aspectBody(e)
	case EventSeasonal:
		return seasonalBody(e.Name)
	case EventIngress:
		return ingressBody(e)
	case EventRetrograde:
		return retrogradeBody(e)
	default:
		if e.Energy != "" {
			return e.Energy
		}
		return "Significant cosmic event occurring"
	}
}

func moonBody(phaseName string, moonSign Sign) string {
	description := "Lunar energy shift creating new opportunities for growth"
	for phase, desc := range moonDescriptions {
		if strings.Contains(phaseName, phase) {
			description = desc
			break
		}
	}
	if moonSign != "" {
		return fmt.Sprintf("Moon in %s: %s", moonSign, description)
	}
	return description
}

func aspectBody(e Event) string {
	if e.PlanetA == "" || e.PlanetB == "" || e.AspectType == "" {
		return "Powerful cosmic alignment creating new opportunities"
	}
	verb := aspectVerbs[e.AspectType]
	if verb == "" {
		verb = "align"
	}
	return fmt.Sprintf("%s and %s %s, creating powerful cosmic influence", e.PlanetA, e.PlanetB, verb)
}

func seasonalBody(name string) string {
	switch {
	case strings.Contains(name, "Equinox"):
		return "Equal day and night mark a powerful balance point, supporting new beginnings and equilibrium"
	case strings.Contains(name, "Solstice"):
		return "Peak daylight or darkness marks a turning point, supporting reflection and seasonal transition"
	default:
		return "Seasonal energy shift brings new themes and opportunities for growth"
	}
}

func ingressBody(e Event) string {
	if e.Planet == "" || e.Sign == "" {
		return "Planetary energy shift creating new opportunities"
	}
	return fmt.Sprintf("This amplifies focus on %s themes and energies", e.Sign)
}

func retrogradeBody(e Event) string {
	if e.Planet == "" {
		return "Planetary retrograde invites reflection and review"
	}
	meaning, ok := retrogradeMeanings[e.Planet]
	if !ok {
		meaning = "invites reflection and review"
	}
	if e.Sign != "" {
		return fmt.Sprintf("This %s in %s", meaning, e.Sign)
	}
	return "This " + meaning
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

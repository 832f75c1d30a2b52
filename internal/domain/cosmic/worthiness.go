package cosmic

import "strings"

// Priority8Scope decides which priority-8 events the worthiness predicate
// lets through. The product's two scheduler paths historically disagreed:
// the interactive preview treated every priority-8 event (seasonal, ingress,
// retrograde) as worthy, the automated sweep only seasonal ones. The scope
// is configuration, not code, until product picks one.
type Priority8Scope string

const (
	Priority8SeasonalOnly Priority8Scope = "seasonal"
	Priority8All          Priority8Scope = "all"
)

// WorthinessPolicy is the single predicate both scheduler paths share.
type WorthinessPolicy struct {
	Scope Priority8Scope
}

// canonicalMoonPhases are matched as substrings so that significance survives
// decoration, but traditional full-moon names (Pink Moon, Wolf Moon, ...)
// intentionally do not match: those qualify through the priority rules.
var canonicalMoonPhases = []string{"New Moon", "Full Moon", "First Quarter", "Last Quarter"}

// IsWorthy reports whether an event qualifies for push dispatch.
func (p WorthinessPolicy) IsWorthy(e Event) bool {
	if e.Type == EventMoon && e.Priority == PriorityMoonSignificant {
		for _, phase := range canonicalMoonPhases {
			if strings.Contains(e.Name, phase) {
				return true
			}
		}
	}

	// Extraordinary events always notify.
	if e.Priority >= 9 {
		return true
	}

	if e.Priority == 8 {
		if p.Scope == Priority8All {
			return true
		}
		return e.Type == EventSeasonal
	}

	if e.Type == EventAspect && e.Priority >= 7 && mentionsOuterBody(e) {
		return true
	}

	return false
}

func mentionsOuterBody(e Event) bool {
	for _, body := range OuterBodies {
		if e.PlanetA == body || e.PlanetB == body || strings.Contains(e.Name, string(body)) {
			return true
		}
	}
	return false
}

package cosmic

import (
	"fmt"
	"math"
	"sort"
)

type AspectType string

const (
	Conjunction AspectType = "conjunction"
	Sextile     AspectType = "sextile"
	Square      AspectType = "square"
	Trine       AspectType = "trine"
	Opposition  AspectType = "opposition"
)

const (
	PriorityConjunction      = 7
	PriorityGreatConjunction = 9
	PrioritySextile          = 5
	PrioritySquare           = 6
	PriorityTrine            = 6
	PriorityOpposition       = 6
)

// AngularSeparation is the smaller arc between two longitudes, [0, 180].
func AngularSeparation(longA, longB float64) float64 {
	sep := math.Abs(longA - longB)
	if sep > 180 {
		sep = 360 - sep
	}
	return sep
}

// classifyAspect maps a separation onto an aspect type. The orb windows are
// disjoint: a separation matches at most one aspect, or none.
func classifyAspect(separation float64) (AspectType, float64, bool) {
	switch {
	case separation < 8:
		return Conjunction, separation, true
	case math.Abs(separation-60) < 6:
		return Sextile, math.Abs(separation - 60), true
	case math.Abs(separation-90) < 8:
		return Square, math.Abs(separation - 90), true
	case math.Abs(separation-120) < 8:
		return Trine, math.Abs(separation - 120), true
	case math.Abs(separation-180) < 8:
		return Opposition, math.Abs(separation - 180), true
	default:
		return "", 0, false
	}
}

func aspectPriority(t AspectType, a, b Body) int {
	switch t {
	case Conjunction:
		// Jupiter-Saturn conjunctions happen roughly every 20 years.
		if (a == Jupiter && b == Saturn) || (a == Saturn && b == Jupiter) {
			return PriorityGreatConjunction
		}
		return PriorityConjunction
	case Sextile:
		return PrioritySextile
	case Square:
		return PrioritySquare
	case Trine:
		return PriorityTrine
	case Opposition:
		return PriorityOpposition
	default:
		return 0
	}
}

// DetectAspects classifies every unordered pair of aspect bodies present in
// the snapshot, sorted descending by priority.
func DetectAspects(s Snapshot) []Event {
	var events []Event

	for i := 0; i < len(AspectBodies); i++ {
		for j := i + 1; j < len(AspectBodies); j++ {
			a, b := AspectBodies[i], AspectBodies[j]
			posA, okA := s.Positions[a]
			posB, okB := s.Positions[b]
			if !okA || !okB {
				continue
			}

			separation := AngularSeparation(posA.Longitude, posB.Longitude)
			aspectType, orb, ok := classifyAspect(separation)
			if !ok {
				continue
			}

			events = append(events, Event{
				Name:       fmt.Sprintf("%s-%s %s", a, b, aspectType),
				Type:       EventAspect,
				Priority:   aspectPriority(aspectType, a, b),
				Energy:     fmt.Sprintf("%s %s %s", a, aspectType, b),
				PlanetA:    a,
				PlanetB:    b,
				AspectType: aspectType,
				Separation: math.Round(separation*10) / 10,
				Orb:        orb,
				SignA:      posA.Sign,
				SignB:      posB.Sign,
			})
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Priority > events[j].Priority
	})
	return events
}

package cosmic

import "fmt"

// retrogradeIngressOrb: a retrograde body this close to a sign start is
// re-entering the previous sign, which is when retrogrades get noticed.
const retrogradeIngressOrb = 1.0

// DetectRetrogrades emits an event for each retrograde body crossing a sign
// boundary. Priority is a knob for the same reason as ingress priority.
func DetectRetrogrades(s Snapshot, priority int) []Event {
	var events []Event

	for _, body := range TrackedBodies {
		pos, ok := s.Positions[body]
		if !ok || !pos.Retrograde {
			continue
		}
		degree := DegreeInSign(pos.Longitude)
		if degree >= retrogradeIngressOrb {
			continue
		}
		events = append(events, Event{
			Name:         fmt.Sprintf("%s is retrograde", body),
			Type:         EventRetrograde,
			Priority:     priority,
			Energy:       fmt.Sprintf("%s is retrograde", body),
			Planet:       body,
			Sign:         pos.Sign,
			DegreeInSign: degree,
		})
	}

	return events
}

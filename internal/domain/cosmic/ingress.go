package cosmic

import "fmt"

// IngressOrbDegrees is how far into a sign a body still counts as entering it.
const IngressOrbDegrees = 2.0

// DetectIngresses flags every body within the ingress orb of its sign's
// start. The event priority is caller-supplied: the product's surfaces do not
// agree on a single value, so it stays a knob rather than a constant.
func DetectIngresses(s Snapshot, priority int) []Event {
	var events []Event

	for _, body := range TrackedBodies {
		pos, ok := s.Positions[body]
		if !ok {
			continue
		}
		degree := DegreeInSign(pos.Longitude)
		if degree >= IngressOrbDegrees {
			continue
		}
		events = append(events, Event{
			Name:         fmt.Sprintf("%s enters %s", body, pos.Sign),
			Type:         EventIngress,
			Priority:     priority,
			Energy:       fmt.Sprintf("%s energy shifts", body),
			Planet:       body,
			Sign:         pos.Sign,
			DegreeInSign: degree,
		})
	}

	return events
}

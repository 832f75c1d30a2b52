package cosmic

import "fmt"

type EventType string

const (
	EventMoon       EventType = "moon"
	EventAspect     EventType = "aspect"
	EventIngress    EventType = "ingress"
	EventSeasonal   EventType = "seasonal"
	EventRetrograde EventType = "retrograde"
	EventGeneral    EventType = "general"
)

// Event is the single union type all detectors emit. Type-specific fields are
// zero-valued when they do not apply.
type Event struct {
	Name     string
	Type     EventType
	Priority int
	Energy   string

	// aspect
	PlanetA    Body
	PlanetB    Body
	AspectType AspectType
	Separation float64
	Orb        float64
	SignA      Sign
	SignB      Sign

	// ingress / retrograde
	Planet       Body
	Sign         Sign
	DegreeInSign float64
}

// Key is the deduplication identity for one calendar date. Two computations
// of the same astronomical event on the same date must produce the same key,
// and distinct events must never collide.
func (e Event) Key() string {
	name := e.Name
	if name == "" {
		name = "unknown"
	}
	typ := e.Type
	if typ == "" {
		typ = "unknown"
	}
	return fmt.Sprintf("%s-%s-%d", typ, name, e.Priority)
}

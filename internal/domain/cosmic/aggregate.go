package cosmic

import "sort"

const (
	PriorityMoonSignificant = 10
	PriorityCosmicFlow      = 1
	extraordinaryPriority   = 9
)

// Ranked is the ordered output of one full detection pass.
type Ranked struct {
	Primary   Event
	Secondary []Event
}

func (r Ranked) All() []Event {
	return append([]Event{r.Primary}, r.Secondary...)
}

// Aggregate merges every detector's output into a single ranked list. The
// concatenation order (significant moon, extraordinary aspects, ingresses,
// remaining aspects, seasonal, retrogrades) only matters as a tie-break:
// the final sort by priority is stable.
func Aggregate(s Snapshot, ingressPriority, retrogradePriority int) Ranked {
	var events []Event

	if moon, ok := MoonEvent(s.Moon); ok {
		events = append(events, moon)
	}

	aspects := DetectAspects(s)
	for _, a := range aspects {
		if a.Priority >= extraordinaryPriority {
			events = append(events, a)
		}
	}

	events = append(events, DetectIngresses(s, ingressPriority)...)

	for _, a := range aspects {
		if a.Priority < extraordinaryPriority {
			events = append(events, a)
		}
	}

	events = append(events, DetectSeasonal(s)...)
	events = append(events, DetectRetrogrades(s, retrogradePriority)...)

	if len(events) == 0 {
		events = append(events, Event{
			Name:     "Cosmic Flow",
			Type:     EventGeneral,
			Priority: PriorityCosmicFlow,
			Energy:   "Universal Harmony",
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Priority > events[j].Priority
	})

	return Ranked{Primary: events[0], Secondary: events[1:]}
}

// TopWorthy returns up to limit notification-worthy events in rank order.
// The dispatch path calls it with an unbounded limit and applies the
// spam-control cap after deduplication.
func (r Ranked) TopWorthy(policy WorthinessPolicy, limit int) []Event {
	var worthy []Event
	for _, e := range r.All() {
		if !policy.IsWorthy(e) {
			continue
		}
		worthy = append(worthy, e)
		if len(worthy) == limit {
			break
		}
	}
	return worthy
}

package sim

// EventKind tags the four event variants that drive the simulation.
type EventKind string

const (
	EventArrival    EventKind = "Arrival"
	EventCompletion EventKind = "Completion"
	EventBreakdown  EventKind = "Breakdown"
	EventResume     EventKind = "Resume"
)

// Event is a pending occurrence in the future event set. Events carry a
// unique, monotonically increasing id minted by the Simulator; the id breaks
// ties between events sharing a timestamp so that runs are deterministic.
//
// Completion events additionally carry the job they finish, and their
// timestamp is the only one mutated after scheduling: a breakdown shifts
// every pending completion later by the drawn repair duration while the
// event still sits in the heap (see EventHeap.ShiftMatching).
type Event struct {
	id   uint64
	kind EventKind
	time float64
	job  *Job // set on Completion events, nil otherwise
}

// EventID returns the event's unique id.
func (e *Event) EventID() uint64 {
	return e.id
}

// Kind returns the event's variant tag.
func (e *Event) Kind() EventKind {
	return e.kind
}

// Timestamp returns the simulation time at which the event fires.
func (e *Event) Timestamp() float64 {
	return e.time
}

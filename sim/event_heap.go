package sim

import "container/heap"

// EventHeap is the future event set: a min-priority queue of pending events.
// Ordering: timestamp → event id (ascending, deterministic tie-breaker).
type EventHeap struct {
	events []*Event
}

// NewEventHeap creates an empty event heap.
func NewEventHeap() *EventHeap {
	h := &EventHeap{
		events: make([]*Event, 0),
	}
	heap.Init(h)
	return h
}

// Len implements heap.Interface.
func (h *EventHeap) Len() int {
	return len(h.events)
}

// Less implements heap.Interface with deterministic ordering.
func (h *EventHeap) Less(i, j int) bool {
	ei, ej := h.events[i], h.events[j]
	if ei.time != ej.time {
		return ei.time < ej.time
	}
	return ei.id < ej.id
}

// Swap implements heap.Interface.
func (h *EventHeap) Swap(i, j int) {
	h.events[i], h.events[j] = h.events[j], h.events[i]
}

// Push implements heap.Interface.
func (h *EventHeap) Push(x interface{}) {
	h.events = append(h.events, x.(*Event))
}

// Pop implements heap.Interface.
func (h *EventHeap) Pop() interface{} {
	old := h.events
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	h.events = old[0 : n-1]
	return item
}

// Schedule adds a pending event to the heap.
func (h *EventHeap) Schedule(e *Event) {
	heap.Push(h, e)
}

// ExtractMin removes and returns the earliest pending event.
// Returns EmptyQueueError if no events remain.
func (h *EventHeap) ExtractMin() (*Event, error) {
	if h.Len() == 0 {
		return nil, &EmptyQueueError{}
	}
	return heap.Pop(h).(*Event), nil
}

// Peek returns the earliest pending event without removing it.
func (h *EventHeap) Peek() *Event {
	if h.Len() == 0 {
		return nil
	}
	return h.events[0]
}

// ShiftMatching adds delta to the timestamp of every pending event that
// satisfies pred, then restores heap order. Returns the number of events
// shifted.
//
// This is the increase-key operation ordinary priority queues lack: a linear
// scan followed by an O(n) rebuild. At this model's event counts (the heap
// holds at most one completion, one arrival and one breakdown or resume) the
// rebuild cost is irrelevant; large event populations would want a position
// index instead.
func (h *EventHeap) ShiftMatching(pred func(*Event) bool, delta float64) int {
	shifted := 0
	for _, e := range h.events {
		if pred(e) {
			e.time += delta
			shifted++
		}
	}
	if shifted > 0 {
		heap.Init(h)
	}
	return shifted
}

package sim

import (
	"errors"
	"testing"
)

// TestEventHeap_TimestampOrdering tests that events are extracted in timestamp order
func TestEventHeap_TimestampOrdering(t *testing.T) {
	h := NewEventHeap()

	h.Schedule(&Event{id: 1, kind: EventArrival, time: 100})
	h.Schedule(&Event{id: 2, kind: EventArrival, time: 50})
	h.Schedule(&Event{id: 3, kind: EventArrival, time: 150})

	want := []float64{50, 100, 150}
	for i, wantTime := range want {
		ev, err := h.ExtractMin()
		if err != nil {
			t.Fatalf("ExtractMin %d: unexpected error %v", i, err)
		}
		if ev.Timestamp() != wantTime {
			t.Errorf("Event %d timestamp = %v, want %v", i, ev.Timestamp(), wantTime)
		}
	}

	if h.Len() != 0 {
		t.Errorf("Heap should be empty, len = %d", h.Len())
	}
}

// TestEventHeap_EventIDTieBreak tests same-timestamp events extract in event id order
func TestEventHeap_EventIDTieBreak(t *testing.T) {
	h := NewEventHeap()

	// Insert in non-increasing id order; all share t=100
	h.Schedule(&Event{id: 3, kind: EventResume, time: 100})
	h.Schedule(&Event{id: 1, kind: EventBreakdown, time: 100})
	h.Schedule(&Event{id: 2, kind: EventCompletion, time: 100})

	for _, wantID := range []uint64{1, 2, 3} {
		ev, err := h.ExtractMin()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev.EventID() != wantID {
			t.Errorf("Event id = %d, want %d", ev.EventID(), wantID)
		}
	}
}

// TestEventHeap_DeterministicOrdering tests ordering is independent of insertion order
func TestEventHeap_DeterministicOrdering(t *testing.T) {
	build := func(order []int) []uint64 {
		events := []*Event{
			{id: 1, kind: EventArrival, time: 10},
			{id: 2, kind: EventCompletion, time: 10},
			{id: 3, kind: EventBreakdown, time: 5},
			{id: 4, kind: EventResume, time: 20},
		}
		h := NewEventHeap()
		for _, idx := range order {
			h.Schedule(events[idx])
		}
		got := []uint64{}
		for h.Len() > 0 {
			ev, _ := h.ExtractMin()
			got = append(got, ev.EventID())
		}
		return got
	}

	order1 := build([]int{0, 1, 2, 3})
	order2 := build([]int{3, 2, 1, 0})

	if len(order1) != len(order2) {
		t.Fatalf("Order lengths differ: %d vs %d", len(order1), len(order2))
	}
	for i := range order1 {
		if order1[i] != order2[i] {
			t.Errorf("Order differs at position %d: %d vs %d", i, order1[i], order2[i])
		}
	}

	want := []uint64{3, 1, 2, 4}
	for i := range want {
		if order1[i] != want[i] {
			t.Errorf("Position %d: got id %d, want %d", i, order1[i], want[i])
		}
	}
}

// TestEventHeap_ExtractMinEmpty tests ExtractMin on an empty heap
func TestEventHeap_ExtractMinEmpty(t *testing.T) {
	h := NewEventHeap()

	ev, err := h.ExtractMin()
	if ev != nil {
		t.Errorf("ExtractMin on empty heap returned event %v", ev)
	}
	var emptyErr *EmptyQueueError
	if !errors.As(err, &emptyErr) {
		t.Errorf("ExtractMin error = %v, want EmptyQueueError", err)
	}
}

// TestEventHeap_Peek tests Peek without removing
func TestEventHeap_Peek(t *testing.T) {
	h := NewEventHeap()

	if h.Peek() != nil {
		t.Error("Peek on empty heap should return nil")
	}

	h.Schedule(&Event{id: 1, kind: EventArrival, time: 100})
	h.Schedule(&Event{id: 2, kind: EventArrival, time: 50})

	peeked := h.Peek()
	if peeked.Timestamp() != 50 {
		t.Errorf("Peek timestamp = %v, want 50", peeked.Timestamp())
	}
	if h.Len() != 2 {
		t.Errorf("Peek should not remove event, len = %d, want 2", h.Len())
	}
}

// TestEventHeap_ShiftMatching tests the interruption-propagation shift
func TestEventHeap_ShiftMatching(t *testing.T) {
	h := NewEventHeap()

	completion := &Event{id: 1, kind: EventCompletion, time: 12}
	arrival := &Event{id: 2, kind: EventArrival, time: 14}
	resume := &Event{id: 3, kind: EventResume, time: 15}
	h.Schedule(completion)
	h.Schedule(arrival)
	h.Schedule(resume)

	isCompletion := func(e *Event) bool { return e.Kind() == EventCompletion }
	shifted := h.ShiftMatching(isCompletion, 5)
	if shifted != 1 {
		t.Errorf("ShiftMatching shifted %d events, want 1", shifted)
	}
	if completion.Timestamp() != 17 {
		t.Errorf("Completion timestamp = %v, want 17", completion.Timestamp())
	}

	// Heap order must hold after the shift: 14, 15, 17
	want := []float64{14, 15, 17}
	for i, wantTime := range want {
		ev, err := h.ExtractMin()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev.Timestamp() != wantTime {
			t.Errorf("Event %d timestamp = %v, want %v", i, ev.Timestamp(), wantTime)
		}
	}
}

// TestEventHeap_ShiftMatchingNoMatches tests a shift that touches nothing
func TestEventHeap_ShiftMatchingNoMatches(t *testing.T) {
	h := NewEventHeap()
	h.Schedule(&Event{id: 1, kind: EventArrival, time: 10})

	shifted := h.ShiftMatching(func(e *Event) bool { return e.Kind() == EventCompletion }, 5)
	if shifted != 0 {
		t.Errorf("ShiftMatching shifted %d events, want 0", shifted)
	}
	if h.Peek().Timestamp() != 10 {
		t.Errorf("Untouched event timestamp = %v, want 10", h.Peek().Timestamp())
	}
}

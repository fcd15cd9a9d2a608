package sim

import "fmt"

// ConfigurationError reports an invalid simulation parameter detected at
// construction time, before any event is processed.
type ConfigurationError struct {
	Field string
	Value float64
	Msg   string // overrides the field/value rendering when set
}

func (e *ConfigurationError) Error() string {
	if e.Msg != "" {
		return "invalid configuration: " + e.Msg
	}
	return fmt.Sprintf("invalid configuration: %s = %v", e.Field, e.Value)
}

// DomainError signals that an event kind outside the enumerated set reached
// the dispatcher. It indicates a construction bug, not a runtime condition
// to recover from.
type DomainError struct {
	Kind EventKind
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("unrecognized event kind %q", e.Kind)
}

// EmptyQueueError is returned by EventHeap.ExtractMin when no pending events
// remain. The run loop checks Len before extracting, so any occurrence is a
// bug signal and aborts the run.
type EmptyQueueError struct{}

func (e *EmptyQueueError) Error() string {
	return "future event set is empty"
}

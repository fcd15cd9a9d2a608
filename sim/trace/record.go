// Package trace holds the raw event and job traces produced by a simulation
// run and derives summary statistics from them. It stores pure data types and
// has no dependency on the engine; the cmd layer converts engine snapshots
// into records.
package trace

// EventRecord captures the pre-transition system state of one processed
// event. Rows are appended in processing order, so the slice replays the run
// exactly.
type EventRecord struct {
	Time          float64
	EventID       uint64
	Kind          string
	PendingEvents int
	Waiting       int
	InService     int
	Server        string
}

// JobRecord captures one completed job with all six of its fields.
// InterruptionDuration is +Inf for jobs that were never interrupted,
// matching the engine's sentinel.
type JobRecord struct {
	ID                   int
	ArrivalTime          float64
	StartServiceTime     float64
	CompletionTime       float64
	Interrupted          bool
	InterruptionDuration float64
}

// Defines the Job struct that models a single lawnmower moving through the
// workshop. Tracks arrival, service start and completion timestamps plus the
// delay accumulated from workstation breakdowns.

package sim

import (
	"fmt"
	"math"
)

// Unset is the sentinel for timing fields that have not been assigned yet.
// StartServiceTime and CompletionTime hold it until the job reaches the
// corresponding lifecycle point; InterruptionDuration holds it until the
// first breakdown touches the job.
func Unset() float64 {
	return math.Inf(1)
}

// Job models one unit of work traversing the workshop
// (arrival → wait → service → completion).
//
// Ownership: the Simulator owns a Job exclusively while it is waiting or in
// service; once its completion event fires, the Job is handed to the caller's
// JobSink and the engine never touches it again.
type Job struct {
	ID int // unique, assigned in arrival order starting at 1

	ArrivalTime      float64
	StartServiceTime float64
	CompletionTime   float64

	// Interrupted is true iff at least one breakdown paused this job's
	// service. InterruptionDuration is the total delay added to this job's
	// completion by those breakdowns; multiple breakdowns compound.
	Interrupted          bool
	InterruptionDuration float64
}

func newJob(id int, arrival float64) *Job {
	return &Job{
		ID:                   id,
		ArrivalTime:          arrival,
		StartServiceTime:     Unset(),
		CompletionTime:       Unset(),
		InterruptionDuration: Unset(),
	}
}

// recordInterruption charges delay to the job's interruption accumulator.
// The first interruption replaces the sentinel with a fresh accumulator.
func (j *Job) recordInterruption(delay float64) {
	j.Interrupted = true
	if math.IsInf(j.InterruptionDuration, 1) {
		j.InterruptionDuration = 0
	}
	j.InterruptionDuration += delay
}

// Completed reports whether the job's completion event has fired.
func (j *Job) Completed() bool {
	return !math.IsInf(j.CompletionTime, 1)
}

// String returns a human-readable representation of a Job.
func (j Job) String() string {
	return fmt.Sprintf("Job: (ID: %d, ArrivalTime: %.3f, StartServiceTime: %.3f, CompletionTime: %.3f, Interrupted: %v)",
		j.ID, j.ArrivalTime, j.StartServiceTime, j.CompletionTime, j.Interrupted)
}

package sim

import "testing"

// scriptedStreams plays back pre-scripted draws per stream, falling back to a
// large constant once a script is exhausted. Tests use it to force exact
// event timings without depending on any RNG algorithm.
type scriptedStreams struct {
	interarrival   []float64
	service        []float64
	interBreakdown []float64
	repair         []float64
}

const scriptExhausted = 1e9

func nextScripted(vals *[]float64) float64 {
	if len(*vals) == 0 {
		return scriptExhausted
	}
	v := (*vals)[0]
	*vals = (*vals)[1:]
	return v
}

func (s *scriptedStreams) NextInterarrivalGap() float64   { return nextScripted(&s.interarrival) }
func (s *scriptedStreams) NextServiceDuration() float64   { return nextScripted(&s.service) }
func (s *scriptedStreams) NextInterBreakdownGap() float64 { return nextScripted(&s.interBreakdown) }
func (s *scriptedStreams) NextRepairDuration() float64    { return nextScripted(&s.repair) }

// stubParams builds valid params for stub-driven tests; the means are only
// there to pass validation, the scripted streams never read them.
func stubParams(horizon, initialBreakdownAt float64) Params {
	return Params{
		Seed:               1,
		Horizon:            horizon,
		InterarrivalMean:   1,
		ServiceMean:        1,
		InterBreakdownMean: 1,
		RepairMean:         1,
		InitialBreakdownAt: initialBreakdownAt,
	}
}

// runCollect executes a simulator and returns the observed snapshots and
// completed jobs (copied by value) in processing order.
func runCollect(t *testing.T, s *Simulator) ([]Snapshot, []Job) {
	t.Helper()
	var snaps []Snapshot
	var jobs []Job
	err := s.Run(
		func(snap Snapshot) { snaps = append(snaps, snap) },
		func(j *Job) { jobs = append(jobs, *j) },
	)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return snaps, jobs
}

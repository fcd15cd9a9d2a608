package cmd

import (
	"github.com/repairshop-sim/repairshop-sim/sim"
	"github.com/repairshop-sim/repairshop-sim/sim/trace"
)

// eventRecord converts an engine snapshot into a trace row.
func eventRecord(snap sim.Snapshot) trace.EventRecord {
	return trace.EventRecord{
		Time:          snap.Time,
		EventID:       snap.EventID,
		Kind:          string(snap.Kind),
		PendingEvents: snap.PendingEvents,
		Waiting:       snap.Waiting,
		InService:     snap.InService,
		Server:        string(snap.Server),
	}
}

// jobRecord converts a completed job into a trace row.
func jobRecord(j *sim.Job) trace.JobRecord {
	return trace.JobRecord{
		ID:                   j.ID,
		ArrivalTime:          j.ArrivalTime,
		StartServiceTime:     j.StartServiceTime,
		CompletionTime:       j.CompletionTime,
		Interrupted:          j.Interrupted,
		InterruptionDuration: j.InterruptionDuration,
	}
}

// collect runs sim with a fresh collector attached to both callbacks.
func collect(s *sim.Simulator) (*trace.Collector, error) {
	collector := trace.NewCollector()
	err := s.Run(
		func(snap sim.Snapshot) { collector.RecordEvent(eventRecord(snap)) },
		func(j *sim.Job) { collector.RecordJob(jobRecord(j)) },
	)
	return collector, err
}

// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// ServerStatus is the workstation's state.
type ServerStatus string

const (
	ServerWorking ServerStatus = "working"
	ServerDown    ServerStatus = "down"
)

// Snapshot is the pre-transition view of the system reported for every
// processed event: the clock has advanced to the event's time but the
// handler has not run yet. PendingEvents counts the heap after the event
// under processing was extracted.
type Snapshot struct {
	Time          float64
	EventID       uint64
	Kind          EventKind
	PendingEvents int
	Waiting       int
	InService     int
	Server        ServerStatus
}

// EventObserver receives a Snapshot for every event, in processing order.
type EventObserver func(Snapshot)

// JobSink receives every completed job the moment its completion event fires.
// The job leaves the simulator's ownership at that point.
type JobSink func(*Job)

// Simulator is the core object holding simulation time, system state and the
// event loop. It is strictly single-threaded: event order determines
// causality, so handlers run one at a time and nothing else mutates state.
type Simulator struct {
	Clock   float64
	Horizon float64
	// Events holds every scheduled-but-unfired event, including the
	// recurring arrival and breakdown chains that keep it non-empty
	// until the horizon is reached.
	Events *EventHeap
	// WaitQ holds arrived jobs not yet in service, strictly FIFO.
	WaitQ *WaitQueue
	// Server is the workstation status. While down, no job enters service.
	Server ServerStatus

	streams Streams
	params  Params

	// inService is the single service slot: nil or exactly one job.
	inService *Job

	jobCount   int    // jobs ever created
	eventCount uint64 // events ever minted, independent of how many fired
	stepsRun   int64  // events processed by the run loop
}

// NewSimulator validates params, seeds a StreamSet and builds a ready-to-run
// simulator with one arrival pre-scheduled at t=0 and one breakdown at
// params.InitialBreakdownAt.
func NewSimulator(params Params) (*Simulator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	streams, err := NewStreamSet(params.Seed, params.InterarrivalMean, params.ServiceMean,
		params.InterBreakdownMean, params.RepairMean)
	if err != nil {
		return nil, err
	}
	return NewSimulatorWithStreams(params, streams)
}

// NewSimulatorWithStreams is NewSimulator with a caller-supplied Streams
// implementation. Tests use it to inject deterministic draws.
func NewSimulatorWithStreams(params Params, streams Streams) (*Simulator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if streams == nil {
		return nil, &ConfigurationError{Msg: "streams must not be nil"}
	}
	s := &Simulator{
		Horizon: params.Horizon,
		Events:  NewEventHeap(),
		WaitQ:   &WaitQueue{},
		Server:  ServerWorking,
		streams: streams,
		params:  params,
	}
	s.schedule(EventArrival, 0, nil)
	s.schedule(EventBreakdown, params.InitialBreakdownAt, nil)
	return s, nil
}

// newEventID mints the next unique event id.
func (s *Simulator) newEventID() uint64 {
	s.eventCount++
	return s.eventCount
}

func (s *Simulator) schedule(kind EventKind, at float64, job *Job) *Event {
	e := &Event{id: s.newEventID(), kind: kind, time: at, job: job}
	s.Events.Schedule(e)
	return e
}

// InService returns the job occupying the service slot, or nil.
func (s *Simulator) InService() *Job {
	return s.inService
}

// JobsCreated returns the number of jobs that have arrived so far.
func (s *Simulator) JobsCreated() int {
	return s.jobCount
}

func (s *Simulator) inServiceCount() int {
	if s.inService == nil {
		return 0
	}
	return 1
}

// Run executes the event loop until the next event would fire past the
// horizon, the optional step limit is hit, or the event set empties. Every
// processed event is reported to observe and every completed job to
// completed, in processing order; either callback may be nil.
func (s *Simulator) Run(observe EventObserver, completed JobSink) error {
	for s.Events.Len() > 0 {
		ev, err := s.Events.ExtractMin()
		if err != nil {
			// unreachable given the Len check above
			return err
		}
		if ev.time > s.Horizon {
			logrus.Infof("[t=%09.3f] horizon %.3f reached, discarding %d pending event(s)",
				s.Clock, s.Horizon, s.Events.Len()+1)
			break
		}
		if ev.time < s.Clock {
			panic(fmt.Sprintf("clock went backwards: %f < %f", ev.time, s.Clock))
		}
		s.Clock = ev.time

		if observe != nil {
			observe(Snapshot{
				Time:          s.Clock,
				EventID:       ev.id,
				Kind:          ev.kind,
				PendingEvents: s.Events.Len(),
				Waiting:       s.WaitQ.Len(),
				InService:     s.inServiceCount(),
				Server:        s.Server,
			})
		}

		done, err := s.dispatch(ev)
		if err != nil {
			return err
		}
		if done != nil && completed != nil {
			completed(done)
		}

		s.stepsRun++
		if s.params.MaxSteps > 0 && s.stepsRun >= s.params.MaxSteps {
			logrus.Infof("[t=%09.3f] step limit %d reached", s.Clock, s.params.MaxSteps)
			break
		}
	}
	logrus.Infof("[t=%09.3f] simulation ended: %d jobs arrived, %d events processed",
		s.Clock, s.jobCount, s.stepsRun)
	return nil
}

// dispatch routes an event to its handler. A completion is the only event
// that yields a finished job.
func (s *Simulator) dispatch(ev *Event) (*Job, error) {
	switch ev.kind {
	case EventArrival:
		s.handleArrival(ev)
		return nil, nil
	case EventCompletion:
		return s.handleCompletion(ev), nil
	case EventBreakdown:
		s.handleBreakdown(ev)
		return nil, nil
	case EventResume:
		s.handleResume(ev)
		return nil, nil
	default:
		return nil, &DomainError{Kind: ev.kind}
	}
}

// handleArrival creates the arriving job, keeps the arrival chain alive and
// starts service if the workstation is free.
func (s *Simulator) handleArrival(ev *Event) {
	s.jobCount++
	job := newJob(s.jobCount, ev.time)
	logrus.Infof("<< Arrival: job %d at t=%.3f", job.ID, ev.time)

	s.WaitQ.Enqueue(job)
	s.schedule(EventArrival, ev.time+s.streams.NextInterarrivalGap(), nil)

	if s.Server == ServerWorking && s.inService == nil {
		s.startService(ev.time)
	}
}

// startService moves the head of the wait queue into the service slot and
// schedules its completion.
func (s *Simulator) startService(now float64) {
	job := s.WaitQ.Dequeue()
	if job == nil {
		return
	}
	job.StartServiceTime = now
	s.inService = job
	s.schedule(EventCompletion, now+s.streams.NextServiceDuration(), job)
	logrus.Infof("   Service start: job %d at t=%.3f", job.ID, now)
}

// handleCompletion empties the service slot, refills it from the wait queue
// head before the finished job is reported (non-preemptive single-server
// discipline) and returns the finished job.
func (s *Simulator) handleCompletion(ev *Event) *Job {
	job := s.inService
	if job == nil {
		panic(fmt.Sprintf("completion event %d fired with empty service slot at t=%f", ev.id, ev.time))
	}
	s.inService = nil
	if s.WaitQ.Len() > 0 {
		s.startService(ev.time)
	}
	job.CompletionTime = ev.time
	logrus.Infof(">> Completion: job %d at t=%.3f", job.ID, ev.time)
	return job
}

// handleBreakdown takes the workstation down and schedules its repair. If a
// job is mid-service its pending completion is pushed later by the repair
// duration; an idle breakdown touches no job.
func (s *Simulator) handleBreakdown(ev *Event) {
	s.Server = ServerDown
	repair := s.streams.NextRepairDuration()
	s.schedule(EventResume, ev.time+repair, nil)

	if s.inService == nil {
		logrus.Infof("!! Breakdown at t=%.3f: workstation idle, repair %.3f", ev.time, repair)
		return
	}

	s.inService.recordInterruption(repair)
	shifted := s.Events.ShiftMatching(func(e *Event) bool {
		return e.kind == EventCompletion
	}, repair)
	logrus.Infof("!! Breakdown at t=%.3f: job %d delayed by %.3f (%d completion shifted)",
		ev.time, s.inService.ID, repair, shifted)
}

// handleResume brings the workstation back up, keeps the breakdown chain
// alive and, if the slot is free, starts service for the next waiting job.
func (s *Simulator) handleResume(ev *Event) {
	s.Server = ServerWorking
	s.schedule(EventBreakdown, ev.time+s.streams.NextInterBreakdownGap(), nil)
	logrus.Infof("** Resume at t=%.3f", ev.time)

	if s.inService == nil && s.WaitQ.Len() > 0 {
		s.startService(ev.time)
	}
}

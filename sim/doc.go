// Package sim provides the core discrete-event simulation engine for the
// repair workshop model: a single-server FIFO queue with stochastic arrivals,
// deterministic service, and stochastic workstation breakdowns that delay the
// job currently being serviced.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - job.go: Job lifecycle (waiting → in service → completed) and the
//     interruption accounting attached to each job
//   - event.go: the four event kinds that drive the simulation (Arrival,
//     Completion, Breakdown, Resume)
//   - simulator.go: the event loop, the four handlers, and the interruption
//     propagation that shifts pending completion events when the workstation
//     breaks down mid-service
//
// # Architecture
//
// The engine is single-threaded: event order determines causality, so state
// is only ever mutated by the handler of the event currently being processed.
// Supporting packages:
//   - sim/trace: raw event/job trace rows, CSV output, and summary statistics
//   - sim/scenario: YAML scenario specs for the sweep harness
//
// # Key Interfaces
//
//   - Streams: the four stochastic draws consumed by the handlers. The
//     production implementation (StreamSet) wraps one seeded source;
//     tests inject deterministic stubs to force exact event timings.
//   - EventObserver / JobSink: per-event and per-completion callbacks the
//     run loop reports to, in processing order, so the caller can rebuild
//     or persist the exact trace.
package sim

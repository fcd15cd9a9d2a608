package trace

// Collector accumulates event and job records during a simulation run.
// Record order mirrors event processing order: that is what makes the
// collected trace replayable.
type Collector struct {
	Events []EventRecord
	Jobs   []JobRecord
}

// NewCollector creates a Collector ready for recording.
func NewCollector() *Collector {
	return &Collector{
		Events: make([]EventRecord, 0),
		Jobs:   make([]JobRecord, 0),
	}
}

// RecordEvent appends an event row.
func (c *Collector) RecordEvent(rec EventRecord) {
	c.Events = append(c.Events, rec)
}

// RecordJob appends a completed-job row.
func (c *Collector) RecordJob(rec JobRecord) {
	c.Jobs = append(c.Jobs, rec)
}

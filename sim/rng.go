package sim

import "math/rand"

// Streams supplies the four stochastic draws consumed by the event handlers.
// Draws are consumed in call order; reordering calls changes the resulting
// trace. Tests inject deterministic implementations to force exact timings.
type Streams interface {
	// NextInterarrivalGap returns the gap until the next job arrival.
	NextInterarrivalGap() float64
	// NextServiceDuration returns the nominal service time for one job.
	NextServiceDuration() float64
	// NextInterBreakdownGap returns the working time until the next breakdown.
	NextInterBreakdownGap() float64
	// NextRepairDuration returns the time needed to repair the workstation.
	NextRepairDuration() float64
}

// StreamSet realizes Streams from one seeded source. Two StreamSets built
// from the same seed and means produce identical draw sequences for identical
// call orders, which is what makes whole runs reproducible.
//
// Interarrival gaps, inter-breakdown gaps and repair durations are
// exponentially distributed around their configured means. Service time is
// deterministic: every job takes exactly the configured service mean. It
// lives alongside the random draws so that the handlers stay agnostic about
// which streams are actually stochastic.
type StreamSet struct {
	rng *rand.Rand

	interarrivalMean   float64
	serviceMean        float64
	interBreakdownMean float64
	repairMean         float64
}

// NewStreamSet creates a StreamSet from a seed and the four distribution
// means. Returns ConfigurationError if any mean is not strictly positive.
func NewStreamSet(seed int64, interarrivalMean, serviceMean, interBreakdownMean, repairMean float64) (*StreamSet, error) {
	means := []struct {
		field string
		value float64
	}{
		{"interarrival mean", interarrivalMean},
		{"service mean", serviceMean},
		{"inter-breakdown mean", interBreakdownMean},
		{"repair mean", repairMean},
	}
	for _, m := range means {
		if m.value <= 0 {
			return nil, &ConfigurationError{Field: m.field, Value: m.value}
		}
	}

	return &StreamSet{
		rng:                rand.New(rand.NewSource(seed)),
		interarrivalMean:   interarrivalMean,
		serviceMean:        serviceMean,
		interBreakdownMean: interBreakdownMean,
		repairMean:         repairMean,
	}, nil
}

func (s *StreamSet) NextInterarrivalGap() float64 {
	return s.rng.ExpFloat64() * s.interarrivalMean
}

func (s *StreamSet) NextServiceDuration() float64 {
	return s.serviceMean
}

func (s *StreamSet) NextInterBreakdownGap() float64 {
	return s.rng.ExpFloat64() * s.interBreakdownMean
}

func (s *StreamSet) NextRepairDuration() float64 {
	return s.rng.ExpFloat64() * s.repairMean
}

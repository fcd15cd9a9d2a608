package sim

// DefaultInitialBreakdownAt is the simulation time of the first scheduled
// breakdown when a scenario does not override it.
const DefaultInitialBreakdownAt = 150.0

// Params holds the configuration of one simulation run.
type Params struct {
	Seed    int64   // seed for the stream set
	Horizon float64 // maximum simulation time; events beyond it never fire

	InterarrivalMean   float64 // mean gap between job arrivals
	ServiceMean        float64 // deterministic per-job service time
	InterBreakdownMean float64 // mean working time between breakdowns
	RepairMean         float64 // mean repair duration

	InitialBreakdownAt float64 // time of the first breakdown
	MaxSteps           int64   // stop after this many processed events; 0 = no limit
}

// DefaultParams returns a runnable baseline configuration.
func DefaultParams() Params {
	return Params{
		Seed:               42,
		Horizon:            1000,
		InterarrivalMean:   30,
		ServiceMean:        20,
		InterBreakdownMean: 300,
		RepairMean:         50,
		InitialBreakdownAt: DefaultInitialBreakdownAt,
	}
}

// Validate checks that every parameter is usable. All failures are
// ConfigurationError: they surface before any simulation step runs.
func (p Params) Validate() error {
	if p.Horizon <= 0 {
		return &ConfigurationError{Field: "horizon", Value: p.Horizon}
	}
	if p.InterarrivalMean <= 0 {
		return &ConfigurationError{Field: "interarrival mean", Value: p.InterarrivalMean}
	}
	if p.ServiceMean <= 0 {
		return &ConfigurationError{Field: "service mean", Value: p.ServiceMean}
	}
	if p.InterBreakdownMean <= 0 {
		return &ConfigurationError{Field: "inter-breakdown mean", Value: p.InterBreakdownMean}
	}
	if p.RepairMean <= 0 {
		return &ConfigurationError{Field: "repair mean", Value: p.RepairMean}
	}
	if p.InitialBreakdownAt < 0 {
		return &ConfigurationError{Field: "initial breakdown time", Value: p.InitialBreakdownAt}
	}
	if p.MaxSteps < 0 {
		return &ConfigurationError{Field: "max steps", Value: float64(p.MaxSteps)}
	}
	return nil
}

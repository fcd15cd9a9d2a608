// Package scenario loads YAML scenario specifications for the sweep harness.
// A scenario names a set of parameter rows, each repeated across a list of
// seeds; every (row, seed) combination becomes one independent simulation.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/repairshop-sim/repairshop-sim/sim"
)

// Spec is the top-level scenario configuration, loaded from YAML via Load.
type Spec struct {
	Runs []RunSpec `yaml:"runs"`
}

// RunSpec is one parameter row of a scenario.
type RunSpec struct {
	Name    string  `yaml:"name"`
	Seeds   []int64 `yaml:"seeds"`
	Horizon float64 `yaml:"horizon"`

	InterarrivalMean   float64 `yaml:"interarrival_mean"`
	ServiceMean        float64 `yaml:"service_mean"`
	InterBreakdownMean float64 `yaml:"inter_breakdown_mean"`
	RepairMean         float64 `yaml:"repair_mean"`

	// InitialBreakdownAt overrides the engine default when set.
	InitialBreakdownAt *float64 `yaml:"initial_breakdown_at,omitempty"`
	MaxSteps           int64    `yaml:"max_steps,omitempty"`
}

// Params builds the engine parameters for one seed of this row.
func (r RunSpec) Params(seed int64) sim.Params {
	initialBreakdown := sim.DefaultInitialBreakdownAt
	if r.InitialBreakdownAt != nil {
		initialBreakdown = *r.InitialBreakdownAt
	}
	return sim.Params{
		Seed:               seed,
		Horizon:            r.Horizon,
		InterarrivalMean:   r.InterarrivalMean,
		ServiceMean:        r.ServiceMean,
		InterBreakdownMean: r.InterBreakdownMean,
		RepairMean:         r.RepairMean,
		InitialBreakdownAt: initialBreakdown,
		MaxSteps:           r.MaxSteps,
	}
}

// Validate checks the scenario for structural problems and delegates
// per-row parameter checks to sim.Params.Validate.
func (s *Spec) Validate() error {
	if len(s.Runs) == 0 {
		return fmt.Errorf("scenario has no runs")
	}
	seen := make(map[string]bool, len(s.Runs))
	for i, r := range s.Runs {
		if r.Name == "" {
			return fmt.Errorf("run %d has no name", i)
		}
		if seen[r.Name] {
			return fmt.Errorf("duplicate run name %q", r.Name)
		}
		seen[r.Name] = true
		if len(r.Seeds) == 0 {
			return fmt.Errorf("run %q has no seeds", r.Name)
		}
		if err := r.Params(r.Seeds[0]).Validate(); err != nil {
			return fmt.Errorf("run %q: %w", r.Name, err)
		}
	}
	return nil
}

// Load reads and validates a scenario spec from a YAML file.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &spec, nil
}

package cmd

import (
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/repairshop-sim/repairshop-sim/sim"
	"github.com/repairshop-sim/repairshop-sim/sim/trace"
)

var (
	seed               int64   // Seed for the random streams
	horizon            float64 // Total simulation horizon (simulation time)
	interarrivalMean   float64 // Mean gap between arrivals
	serviceMean        float64 // Deterministic per-job service time
	interBreakdownMean float64 // Mean working time between breakdowns
	repairMean         float64 // Mean repair duration
	initialBreakdownAt float64 // Time of the first breakdown
	maxSteps           int64   // Optional processed-event limit
	outputDir          string  // Directory for trace CSVs ("" = no files)
)

// runCmd executes a single simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one workshop simulation",
	Run: func(cmd *cobra.Command, args []string) {
		params := sim.Params{
			Seed:               seed,
			Horizon:            horizon,
			InterarrivalMean:   interarrivalMean,
			ServiceMean:        serviceMean,
			InterBreakdownMean: interBreakdownMean,
			RepairMean:         repairMean,
			InitialBreakdownAt: initialBreakdownAt,
			MaxSteps:           maxSteps,
		}

		s, err := sim.NewSimulator(params)
		if err != nil {
			logrus.Fatalf("setup failed: %v", err)
		}

		logrus.Infof("Starting simulation: seed=%d horizon=%.1f interarrival=%.1f service=%.1f",
			seed, horizon, interarrivalMean, serviceMean)
		startTime := time.Now()

		collector, err := collect(s)
		if err != nil {
			logrus.Fatalf("simulation failed: %v", err)
		}

		if outputDir != "" {
			if err := writeTraces(outputDir, "run", seed, collector); err != nil {
				logrus.Fatalf("writing traces: %v", err)
			}
		}

		trace.Summarize(collector.Events, collector.Jobs).Render(os.Stdout)
		logrus.Infof("Simulation complete in %s.", time.Since(startTime))
	},
}

// writeTraces writes the event and job CSVs for one (name, seed) combination.
func writeTraces(dir, name string, seed int64, c *trace.Collector) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	base := filepath.Join(dir, runFileBase(name, seed))
	if err := trace.WriteEventsCSV(base+"-events.csv", c.Events); err != nil {
		return err
	}
	return trace.WriteJobsCSV(base+"-jobs.csv", c.Jobs)
}

func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for the random streams")
	runCmd.Flags().Float64Var(&horizon, "horizon", 1000, "Total simulation horizon (simulation time)")
	runCmd.Flags().Float64Var(&interarrivalMean, "interarrival-mean", 30, "Mean gap between job arrivals")
	runCmd.Flags().Float64Var(&serviceMean, "service-mean", 20, "Per-job service time (deterministic)")
	runCmd.Flags().Float64Var(&interBreakdownMean, "inter-breakdown-mean", 300, "Mean working time between breakdowns")
	runCmd.Flags().Float64Var(&repairMean, "repair-mean", 50, "Mean repair duration")
	runCmd.Flags().Float64Var(&initialBreakdownAt, "initial-breakdown", sim.DefaultInitialBreakdownAt, "Simulation time of the first breakdown")
	runCmd.Flags().Int64Var(&maxSteps, "max-steps", 0, "Stop after this many processed events (0 = no limit)")
	runCmd.Flags().StringVar(&outputDir, "output", "", "Directory for trace CSV files (empty = stdout summary only)")

	rootCmd.AddCommand(runCmd)
}

package trace

import (
	"fmt"
	"io"
	"math"

	"github.com/olekukonko/tablewriter"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates statistics from a collected trace. The engine itself
// only emits the raw trace; everything here is derived after the fact.
type Summary struct {
	EventsProcessed int
	JobsCompleted   int
	JobsInterrupted int

	MeanWait              float64 // service start - arrival
	MeanTimeInShop        float64 // completion - arrival
	MaxTimeInShop         float64
	MeanInterruptionDelay float64 // over interrupted jobs only
}

// Summarize computes aggregate statistics from a collected trace.
// Safe for empty traces (returns zero-value fields).
func Summarize(events []EventRecord, jobs []JobRecord) *Summary {
	s := &Summary{
		EventsProcessed: len(events),
		JobsCompleted:   len(jobs),
	}
	if len(jobs) == 0 {
		return s
	}

	waits := make([]float64, 0, len(jobs))
	inShop := make([]float64, 0, len(jobs))
	delays := make([]float64, 0)
	for _, j := range jobs {
		waits = append(waits, j.StartServiceTime-j.ArrivalTime)
		total := j.CompletionTime - j.ArrivalTime
		inShop = append(inShop, total)
		if total > s.MaxTimeInShop {
			s.MaxTimeInShop = total
		}
		if j.Interrupted {
			s.JobsInterrupted++
			delays = append(delays, j.InterruptionDuration)
		}
	}

	s.MeanWait = stat.Mean(waits, nil)
	s.MeanTimeInShop = stat.Mean(inShop, nil)
	if len(delays) > 0 {
		s.MeanInterruptionDelay = stat.Mean(delays, nil)
	}
	return s
}

// Render prints the summary as a table.
func (s *Summary) Render(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.Header("Metric", "Value")
	table.Append([]string{"Events processed", fmt.Sprintf("%d", s.EventsProcessed)})
	table.Append([]string{"Jobs completed", fmt.Sprintf("%d", s.JobsCompleted)})
	table.Append([]string{"Jobs interrupted", fmt.Sprintf("%d", s.JobsInterrupted)})
	table.Append([]string{"Mean wait", formatStat(s.MeanWait)})
	table.Append([]string{"Mean time in shop", formatStat(s.MeanTimeInShop)})
	table.Append([]string{"Max time in shop", formatStat(s.MaxTimeInShop)})
	table.Append([]string{"Mean interruption delay", formatStat(s.MeanInterruptionDelay)})
	table.Render()
}

func formatStat(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "n/a"
	}
	return fmt.Sprintf("%.3f", v)
}

package trace

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

var eventHeader = []string{"time", "event_id", "kind", "pending_events", "waiting", "in_service", "server"}

var jobHeader = []string{"id", "arrival_time", "start_service_time", "completion_time", "interrupted", "interruption_duration"}

// WriteEventsCSV writes the event trace to path, one row per processed event.
func WriteEventsCSV(path string, events []EventRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create event trace: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(eventHeader); err != nil {
		return fmt.Errorf("write event trace header: %w", err)
	}
	for _, e := range events {
		row := []string{
			formatTime(e.Time),
			strconv.FormatUint(e.EventID, 10),
			e.Kind,
			strconv.Itoa(e.PendingEvents),
			strconv.Itoa(e.Waiting),
			strconv.Itoa(e.InService),
			e.Server,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write event trace row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// WriteJobsCSV writes the completed-job trace to path, one row per job in
// completion order.
func WriteJobsCSV(path string, jobs []JobRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create job trace: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(jobHeader); err != nil {
		return fmt.Errorf("write job trace header: %w", err)
	}
	for _, j := range jobs {
		row := []string{
			strconv.Itoa(j.ID),
			formatTime(j.ArrivalTime),
			formatTime(j.StartServiceTime),
			formatTime(j.CompletionTime),
			strconv.FormatBool(j.Interrupted),
			formatTime(j.InterruptionDuration),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write job trace row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// formatTime renders simulation times at full precision. Sentinel values
// come out as "+Inf", which round-trips through strconv.ParseFloat.
func formatTime(t float64) string {
	return strconv.FormatFloat(t, 'g', -1, 64)
}

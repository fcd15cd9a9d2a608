package trace

import (
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteEventsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.csv")
	events := []EventRecord{
		{Time: 0, EventID: 1, Kind: "Arrival", PendingEvents: 2, Waiting: 0, InService: 0, Server: "working"},
		{Time: 12.5, EventID: 4, Kind: "Completion", PendingEvents: 1, Waiting: 3, InService: 1, Server: "working"},
	}

	require.NoError(t, WriteEventsCSV(path, events))

	rows := readCSV(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"time", "event_id", "kind", "pending_events", "waiting", "in_service", "server"}, rows[0])
	assert.Equal(t, []string{"12.5", "4", "Completion", "1", "3", "1", "working"}, rows[2])
}

func TestWriteJobsCSV_SentinelRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.csv")
	jobs := []JobRecord{
		{ID: 1, ArrivalTime: 0, StartServiceTime: 0, CompletionTime: 17, Interrupted: true, InterruptionDuration: 5},
		{ID: 2, ArrivalTime: 3, StartServiceTime: 17, CompletionTime: 20, Interrupted: false, InterruptionDuration: math.Inf(1)},
	}

	require.NoError(t, WriteJobsCSV(path, jobs))

	rows := readCSV(t, path)
	require.Len(t, rows, 3)

	// The +Inf sentinel must survive a parse round trip.
	parsed, err := strconv.ParseFloat(rows[2][5], 64)
	require.NoError(t, err)
	assert.True(t, math.IsInf(parsed, 1))

	assert.Equal(t, "true", rows[1][4])
	assert.Equal(t, "17", rows[1][3])
}

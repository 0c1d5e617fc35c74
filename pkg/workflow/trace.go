package workflow

import "time"

// TraceEntry records one node execution for observability. The trace is
// append-only, produced fresh per run and never consulted for control flow.
type TraceEntry struct {
	NodeID     string        `json:"node_id"`
	Type       string        `json:"type"`
	Duration   time.Duration `json:"duration"`
	InputSize  int           `json:"input_size"`
	OutputSize int           `json:"output_size"`
}

// Trace is the ordered log of completed node executions in a single run.
type Trace []TraceEntry

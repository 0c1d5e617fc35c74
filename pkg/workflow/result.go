package workflow

import (
	"github.com/google/uuid"

	"github.com/ledgerflow/ledgerflow/pkg/models"
)

// Status reports how a run ended.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Result is the outcome of one executor invocation. On failure Output is
// nil, FailedNodeID names the failing node (or step), ErrorDetail carries
// the message and Trace holds the nodes that completed before the failure;
// NodeOutputs retains their outputs for diagnostics.
type Result struct {
	ExecutionID  string                      `json:"execution_id"`
	Status       Status                      `json:"status"`
	Output       *models.Envelope            `json:"output,omitempty"`
	NodeOutputs  map[string]*models.Envelope `json:"node_outputs,omitempty"`
	Trace        Trace                       `json:"trace"`
	FailedNodeID string                      `json:"failed_node_id,omitempty"`
	ErrorDetail  string                      `json:"error_detail,omitempty"`
}

// generateExecutionID generates a unique execution ID.
func generateExecutionID() string {
	return "exec-" + uuid.New().String()[:8]
}

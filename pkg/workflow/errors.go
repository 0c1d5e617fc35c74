package workflow

import "fmt"

// StructuralError reports a workflow definition rejected before any node
// executed: an edge referencing an unknown node, a duplicate id, or a cycle.
type StructuralError struct {
	Reason string
}

func (e *StructuralError) Error() string {
	return "structural error: " + e.Reason
}

// CyclicWorkflowError reports a graph rejected because its edges form a
// cycle. Nodes lists the ids that could not be ordered.
type CyclicWorkflowError struct {
	Nodes []string
}

func (e *CyclicWorkflowError) Error() string {
	return fmt.Sprintf("workflow contains a cycle involving nodes %v", e.Nodes)
}

// NodeExecutionError reports a node whose Run failed; it aborts the run
// immediately.
type NodeExecutionError struct {
	NodeID   string
	NodeType string
	Err      error
}

func (e *NodeExecutionError) Error() string {
	return fmt.Sprintf("node '%s' (type '%s') failed: %v", e.NodeID, e.NodeType, e.Err)
}

func (e *NodeExecutionError) Unwrap() error {
	return e.Err
}

// TimeoutError reports a run stopped by the caller's deadline. Nodes already
// completed remain in the returned trace.
type TimeoutError struct {
	NodeID string
	Err    error
}

func (e *TimeoutError) Error() string {
	if e.NodeID == "" {
		return fmt.Sprintf("workflow deadline exceeded: %v", e.Err)
	}

	return fmt.Sprintf("workflow deadline exceeded before node '%s': %v", e.NodeID, e.Err)
}

func (e *TimeoutError) Unwrap() error {
	return e.Err
}

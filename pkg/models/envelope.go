package models

import "errors"

// ErrFanInInput is returned by NodeInput.Single when a node that consumes a
// single envelope receives a fan-in input map.
var ErrFanInInput = errors.New("node received multiple upstream inputs; route through a merge node or read Upstream explicitly")

// Envelope is the canonical payload exchanged between nodes. Every node
// accepts and emits an envelope, so downstream nodes never special-case the
// shape of a particular predecessor.
type Envelope struct {
	Records    []*Record        `json:"records,omitempty"`
	Groups     []*Group         `json:"groups,omitempty"`
	Summary    *Summary         `json:"summary,omitempty"`
	Totals     *Totals          `json:"totals,omitempty"`
	Duplicates *DuplicateReport `json:"duplicates,omitempty"`
}

// Size reports how many top-level items the envelope carries; used for the
// execution trace.
func (e *Envelope) Size() int {
	if e == nil {
		return 0
	}

	switch {
	case len(e.Records) > 0:
		return len(e.Records)
	case len(e.Groups) > 0:
		return len(e.Groups)
	case e.Duplicates != nil:
		return len(e.Duplicates.Exact) + len(e.Duplicates.Fuzzy)
	case e.Summary != nil || e.Totals != nil:
		return 1
	default:
		return 0
	}
}

// NodeInput is the routed input for one node execution. Exactly one form is
// populated: Envelope for nodes with zero or one predecessor (zero meaning
// the workflow's initial payload), Upstream keyed by predecessor id for
// fan-in nodes.
type NodeInput struct {
	Envelope *Envelope
	Upstream map[string]*Envelope
}

// Single returns the single input envelope. Fan-in inputs are rejected so a
// node never silently collapses multiple predecessors.
func (in NodeInput) Single() (*Envelope, error) {
	if in.Upstream != nil {
		return nil, ErrFanInInput
	}

	if in.Envelope == nil {
		return &Envelope{}, nil
	}

	return in.Envelope, nil
}

// Size reports the total item count across all populated inputs.
func (in NodeInput) Size() int {
	if in.Upstream != nil {
		total := 0
		for _, env := range in.Upstream {
			total += env.Size()
		}

		return total
	}

	return in.Envelope.Size()
}

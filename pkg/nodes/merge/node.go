// Package merge provides the fan-in merge node for joining multiple
// execution paths.
package merge

import (
	"context"
	"sort"

	"github.com/ledgerflow/ledgerflow/pkg/models"
)

// MergeNode combines the envelopes of all upstream paths. Upstream outputs
// are folded in predecessor-id order so the merged result is deterministic
// regardless of execution timing.
type MergeNode struct {
	id string
}

// NewMergeNode creates a new merge node.
func NewMergeNode(id string, _ map[string]any) (*MergeNode, error) {
	return &MergeNode{id: id}, nil
}

// ID returns the node ID.
func (n *MergeNode) ID() string {
	return n.id
}

// Type returns the node type.
func (n *MergeNode) Type() string {
	return "merge"
}

// Run merges fan-in inputs; a single input passes through unchanged.
func (n *MergeNode) Run(_ context.Context, input models.NodeInput) (*models.Envelope, error) {
	if input.Upstream == nil {
		return input.Single()
	}

	sources := make([]string, 0, len(input.Upstream))
	for id := range input.Upstream {
		sources = append(sources, id)
	}

	sort.Strings(sources)

	merged := &models.Envelope{}

	for _, source := range sources {
		env := input.Upstream[source]
		merged.Records = append(merged.Records, env.Records...)
		merged.Groups = append(merged.Groups, env.Groups...)

		// Report sections are carried through; on collision the first
		// predecessor in id order wins.
		if merged.Summary == nil {
			merged.Summary = env.Summary
		}

		if merged.Totals == nil {
			merged.Totals = env.Totals
		}

		if merged.Duplicates == nil {
			merged.Duplicates = env.Duplicates
		}
	}

	return merged, nil
}

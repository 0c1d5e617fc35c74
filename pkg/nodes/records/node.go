// Package records provides the static records source node. It is the
// in-core stand-in for external data-fetch nodes: the record set is supplied
// in the node's parameters rather than fetched from storage.
package records

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ledgerflow/ledgerflow/pkg/models"
)

// RecordsNode emits a fixed record set, ignoring its input.
type RecordsNode struct {
	id      string
	records []*models.Record
}

// NewRecordsNode creates a new static records source. The records parameter
// holds an array of open key/value documents decoded through the canonical
// Record alias rules.
func NewRecordsNode(id string, params map[string]any) (*RecordsNode, error) {
	raw, ok := params["records"]
	if !ok {
		return nil, fmt.Errorf("missing required field 'records'")
	}

	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("encode 'records': %w", err)
	}

	var recs []*models.Record
	if err := json.Unmarshal(encoded, &recs); err != nil {
		return nil, fmt.Errorf("field 'records' must be an array of record objects: %w", err)
	}

	return &RecordsNode{id: id, records: recs}, nil
}

// ID returns the node ID.
func (n *RecordsNode) ID() string {
	return n.id
}

// Type returns the node type.
func (n *RecordsNode) Type() string {
	return "records"
}

// Run emits a fresh copy of the configured record set so downstream
// mutations never leak back into the node.
func (n *RecordsNode) Run(_ context.Context, _ models.NodeInput) (*models.Envelope, error) {
	return &models.Envelope{Records: models.CloneRecords(n.records)}, nil
}

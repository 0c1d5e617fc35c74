// Package sortrecords provides the multi-key record sorting node.
package sortrecords

import (
	"context"
	"fmt"
	"sort"

	"github.com/ledgerflow/ledgerflow/pkg/models"
)

// SortKey is one sort criterion.
type SortKey struct {
	Field string
	Order string // "asc" or "desc"
}

// SortNode applies a stable multi-key sort. Keys are applied in reverse
// declared order so the first declared key dominates; records with fully
// equal keys keep input order.
type SortNode struct {
	id   string
	keys []SortKey
}

// NewSortNode creates a new sort node from a sort_by list of {field, order}
// objects.
func NewSortNode(id string, params map[string]any) (*SortNode, error) {
	raw, ok := params["sort_by"]
	if !ok {
		return nil, fmt.Errorf("missing required field 'sort_by'")
	}

	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("field 'sort_by' must be an array")
	}

	keys := make([]SortKey, 0, len(items))

	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("sort key %d must be an object", i)
		}

		field, _ := obj["field"].(string)
		if field == "" {
			return nil, fmt.Errorf("sort key %d missing 'field'", i)
		}

		order := "asc"
		if o, ok := obj["order"].(string); ok {
			if o != "asc" && o != "desc" {
				return nil, fmt.Errorf("sort key %d has invalid order %q", i, o)
			}

			order = o
		}

		keys = append(keys, SortKey{Field: field, Order: order})
	}

	return &SortNode{id: id, keys: keys}, nil
}

// ID returns the node ID.
func (n *SortNode) ID() string {
	return n.id
}

// Type returns the node type.
func (n *SortNode) Type() string {
	return "sort"
}

// Run sorts a copy of the record slice; the records themselves are shared,
// not cloned, since ordering does not mutate them.
func (n *SortNode) Run(_ context.Context, input models.NodeInput) (*models.Envelope, error) {
	env, err := input.Single()
	if err != nil {
		return nil, err
	}

	sorted := make([]*models.Record, len(env.Records))
	copy(sorted, env.Records)

	for i := len(n.keys) - 1; i >= 0; i-- {
		key := n.keys[i]

		sort.SliceStable(sorted, func(a, b int) bool {
			less := lessByField(sorted[a], sorted[b], key.Field)
			if key.Order == "desc" {
				return lessByField(sorted[b], sorted[a], key.Field)
			}

			return less
		})
	}

	return &models.Envelope{Records: sorted}, nil
}

// lessByField compares two records on one field: numerically when both
// values are numbers, by string rendering otherwise. Missing values sort
// before present ones.
func lessByField(a, b *models.Record, field string) bool {
	av, aok := a.Field(field)
	bv, bok := b.Field(field)

	if !aok || !bok {
		return !aok && bok
	}

	if fa, ok := toFloat(av); ok {
		if fb, ok := toFloat(bv); ok {
			return fa < fb
		}
	}

	return fmt.Sprintf("%v", av) < fmt.Sprintf("%v", bv)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

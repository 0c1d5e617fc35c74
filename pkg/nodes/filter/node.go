// Package filter provides the record filtering node.
package filter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ledgerflow/ledgerflow/pkg/models"
)

// Condition is one filter clause. Conditions on a node are implicitly ANDed.
type Condition struct {
	Field    string
	Operator string
	Value    any
}

// FilterNode keeps the records matching every configured condition. A record
// missing a referenced field fails that condition.
type FilterNode struct {
	id         string
	conditions []Condition
}

// NewFilterNode creates a new filter node from a conditions list of
// {field, operator, value} objects.
func NewFilterNode(id string, params map[string]any) (*FilterNode, error) {
	raw, ok := params["conditions"]
	if !ok {
		return &FilterNode{id: id}, nil
	}

	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("field 'conditions' must be an array")
	}

	conditions := make([]Condition, 0, len(items))

	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("condition %d must be an object", i)
		}

		field, _ := obj["field"].(string)
		if field == "" {
			return nil, fmt.Errorf("condition %d missing 'field'", i)
		}

		operator, _ := obj["operator"].(string)
		if !validOperator(operator) {
			return nil, fmt.Errorf("condition %d has unsupported operator %q", i, operator)
		}

		conditions = append(conditions, Condition{
			Field:    field,
			Operator: operator,
			Value:    obj["value"],
		})
	}

	return &FilterNode{id: id, conditions: conditions}, nil
}

// ID returns the node ID.
func (n *FilterNode) ID() string {
	return n.id
}

// Type returns the node type.
func (n *FilterNode) Type() string {
	return "filter"
}

// Run applies the conditions to every record.
func (n *FilterNode) Run(_ context.Context, input models.NodeInput) (*models.Envelope, error) {
	env, err := input.Single()
	if err != nil {
		return nil, err
	}

	if len(n.conditions) == 0 {
		return &models.Envelope{Records: env.Records}, nil
	}

	kept := make([]*models.Record, 0, len(env.Records))

	for _, record := range env.Records {
		if n.matches(record) {
			kept = append(kept, record)
		}
	}

	return &models.Envelope{Records: kept}, nil
}

func (n *FilterNode) matches(record *models.Record) bool {
	for _, cond := range n.conditions {
		value, ok := record.Field(cond.Field)
		if !ok {
			return false
		}

		if !evaluate(value, cond.Operator, cond.Value) {
			return false
		}
	}

	return true
}

func validOperator(op string) bool {
	switch op {
	case "=", "==", "!=", ">", "<", ">=", "<=", "in":
		return true
	}

	return false
}

func evaluate(recordValue any, operator string, condValue any) bool {
	switch operator {
	case "=", "==":
		return looseEqual(recordValue, condValue)
	case "!=":
		return !looseEqual(recordValue, condValue)
	case "in":
		options, ok := condValue.([]any)
		if !ok {
			return false
		}

		for _, option := range options {
			if looseEqual(recordValue, option) {
				return true
			}
		}

		return false
	}

	cmp, ok := compare(recordValue, condValue)
	if !ok {
		return false
	}

	switch operator {
	case ">":
		return cmp > 0
	case "<":
		return cmp < 0
	case ">=":
		return cmp >= 0
	case "<=":
		return cmp <= 0
	}

	return false
}

// looseEqual compares numerically when both sides are numbers and by string
// rendering otherwise, since JSON-sourced values blur int/float/string.
func looseEqual(a, b any) bool {
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			return fa == fb
		}
	}

	return fmt.Sprintf("%v", a) == fmt.Sprintf("%v", b)
}

func compare(a, b any) (int, bool) {
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			switch {
			case fa < fb:
				return -1, true
			case fa > fb:
				return 1, true
			default:
				return 0, true
			}
		}
	}

	sa, aok := a.(string)
	sb, bok := b.(string)

	if !aok || !bok {
		return 0, false
	}

	switch {
	case sa < sb:
		return -1, true
	case sa > sb:
		return 1, true
	default:
		return 0, true
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := strconv.ParseFloat(n.String(), 64)

		return f, err == nil
	default:
		return 0, false
	}
}

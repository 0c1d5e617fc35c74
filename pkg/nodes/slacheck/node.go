// Package slacheck provides the SLA breach checker node.
package slacheck

import (
	"context"
	"fmt"
	"time"

	"github.com/ledgerflow/ledgerflow/pkg/models"
)

// SLA breach severities by ascending breach_days thresholds.
const (
	SeverityNone     = "None"
	SeverityLow      = "Low"
	SeverityMedium   = "Medium"
	SeverityHigh     = "High"
	SeverityCritical = "Critical"

	defaultSLADays = 30
)

// SLACheckNode annotates each record with SLA breach status, breach days and
// severity relative to due_date + sla_days.
type SLACheckNode struct {
	id      string
	slaDays int
	asOf    time.Time
}

// NewSLACheckNode creates a new SLA checker. sla_days defaults to 30 and
// as_of_date to the current day.
func NewSLACheckNode(id string, params map[string]any) (*SLACheckNode, error) {
	node := &SLACheckNode{
		id:      id,
		slaDays: defaultSLADays,
		asOf:    models.Midnight(time.Now()),
	}

	if raw, ok := params["sla_days"]; ok {
		days, ok := asInt(raw)
		if !ok {
			return nil, fmt.Errorf("field 'sla_days' must be a number")
		}

		node.slaDays = days
	}

	if raw, ok := params["as_of_date"]; ok {
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("field 'as_of_date' must be a string")
		}

		parsed, err := models.ParseDate(s)
		if err != nil {
			return nil, fmt.Errorf("invalid 'as_of_date': %w", err)
		}

		node.asOf = parsed
	}

	return node, nil
}

// ID returns the node ID.
func (n *SLACheckNode) ID() string {
	return n.id
}

// Type returns the node type.
func (n *SLACheckNode) Type() string {
	return "sla_check"
}

// Run checks every record against its SLA deadline. Records without a
// parseable due date are marked unbreached with severity None instead of
// failing the batch.
func (n *SLACheckNode) Run(_ context.Context, input models.NodeInput) (*models.Envelope, error) {
	env, err := input.Single()
	if err != nil {
		return nil, err
	}

	out := models.CloneRecords(env.Records)

	for _, record := range out {
		dueDate, err := models.ParseDate(record.DueDate)
		if err != nil {
			record.SLABreach = false
			record.SLASeverity = SeverityNone
			record.BreachDays = 0

			continue
		}

		deadline := dueDate.AddDate(0, 0, n.slaDays)

		if !n.asOf.After(deadline) {
			record.SLABreach = false
			record.SLASeverity = SeverityNone
			record.BreachDays = 0

			continue
		}

		record.SLABreach = true
		record.BreachDays = models.DaysBetween(deadline, n.asOf)
		record.SLASeverity = severityFor(record.BreachDays)
	}

	return &models.Envelope{Records: out}, nil
}

func severityFor(breachDays int) string {
	switch {
	case breachDays <= 7:
		return SeverityLow
	case breachDays <= 14:
		return SeverityMedium
	case breachDays <= 30:
		return SeverityHigh
	default:
		return SeverityCritical
	}
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

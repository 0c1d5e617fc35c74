package slacheck

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerflow/ledgerflow/pkg/models"
)

func runSLACheck(t *testing.T, params map[string]any, recs []*models.Record) []*models.Record {
	t.Helper()

	node, err := NewSLACheckNode("sla-1", params)
	require.NoError(t, err)

	out, err := node.Run(context.Background(), models.NodeInput{
		Envelope: &models.Envelope{Records: recs},
	})
	require.NoError(t, err)

	return out.Records
}

func TestSLACheckNode_Severity(t *testing.T) {
	// sla_days 30, as_of 2025-03-01: deadline = due_date + 30 days.
	tests := []struct {
		name         string
		dueDate      string
		wantBreach   bool
		wantDays     int
		wantSeverity string
	}{
		{"within sla", "2025-02-15", false, 0, SeverityNone},
		{"deadline today", "2025-01-30", false, 0, SeverityNone},
		{"one day over", "2025-01-29", true, 1, SeverityLow},
		{"seven days over", "2025-01-23", true, 7, SeverityLow},
		{"eight days over", "2025-01-22", true, 8, SeverityMedium},
		{"fourteen days over", "2025-01-16", true, 14, SeverityMedium},
		{"fifteen days over", "2025-01-15", true, 15, SeverityHigh},
		{"thirty days over", "2024-12-31", true, 30, SeverityHigh},
		{"thirty one days over", "2024-12-30", true, 31, SeverityCritical},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			records := runSLACheck(t,
				map[string]any{"sla_days": 30, "as_of_date": "2025-03-01"},
				[]*models.Record{{DueDate: tc.dueDate}},
			)

			require.Len(t, records, 1)
			rec := records[0]
			assert.Equal(t, tc.wantBreach, rec.SLABreach)
			assert.Equal(t, tc.wantDays, rec.BreachDays)
			assert.Equal(t, tc.wantSeverity, rec.SLASeverity)
		})
	}
}

func TestSLACheckNode_MissingDueDate(t *testing.T) {
	records := runSLACheck(t,
		map[string]any{"as_of_date": "2025-03-01"},
		[]*models.Record{{DueDate: ""}, {DueDate: "invalid"}},
	)

	for _, rec := range records {
		assert.False(t, rec.SLABreach)
		assert.Equal(t, SeverityNone, rec.SLASeverity)
		assert.Equal(t, 0, rec.BreachDays)
	}
}

func TestSLACheckNode_CustomSLADays(t *testing.T) {
	records := runSLACheck(t,
		map[string]any{"sla_days": float64(7), "as_of_date": "2025-01-20"},
		[]*models.Record{{DueDate: "2025-01-01"}},
	)

	rec := records[0]
	assert.True(t, rec.SLABreach)
	assert.Equal(t, 12, rec.BreachDays)
	assert.Equal(t, SeverityMedium, rec.SLASeverity)
}

func TestNewSLACheckNode_InvalidParams(t *testing.T) {
	_, err := NewSLACheckNode("sla-1", map[string]any{"sla_days": "thirty"})
	assert.Error(t, err)

	_, err = NewSLACheckNode("sla-1", map[string]any{"as_of_date": "bad"})
	assert.Error(t, err)
}

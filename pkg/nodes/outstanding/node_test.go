package outstanding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerflow/ledgerflow/pkg/models"
)

func runOutstanding(t *testing.T, recs []*models.Record) []*models.Record {
	t.Helper()

	node, err := NewOutstandingNode("out-1", nil)
	require.NoError(t, err)

	out, err := node.Run(context.Background(), models.NodeInput{
		Envelope: &models.Envelope{Records: recs},
	})
	require.NoError(t, err)

	return out.Records
}

func TestOutstandingNode_Calculation(t *testing.T) {
	records := runOutstanding(t, []*models.Record{
		{TotalAmount: 1000, PaidAmount: 250, TaxAmount: 100},
	})

	require.Len(t, records, 1)
	rec := records[0]
	assert.InDelta(t, 750.0, rec.Outstanding, 0.0001)
	assert.InDelta(t, 750.0, rec.OutstandingAmount, 0.0001)
	assert.InDelta(t, 900.0, rec.GrossAmount, 0.0001)
	assert.Equal(t, StatusPartiallyPaid, rec.Status)
}

func TestOutstandingNode_Status(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		paid  float64
		want  string
	}{
		{"fully paid", 1000, 1000, StatusPaid},
		{"overpaid", 1000, 1100, StatusPaid},
		{"unpaid", 1000, 0, StatusUnpaid},
		{"negative paid", 1000, -50, StatusUnpaid},
		{"partial", 1000, 500, StatusPartiallyPaid},
		{"zero total zero paid", 0, 0, StatusPaid},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			records := runOutstanding(t, []*models.Record{
				{TotalAmount: tc.total, PaidAmount: tc.paid},
			})
			assert.Equal(t, tc.want, records[0].Status)
		})
	}
}

func TestOutstandingNode_Rounding(t *testing.T) {
	records := runOutstanding(t, []*models.Record{
		{TotalAmount: 100.005, PaidAmount: 0},
	})

	assert.InDelta(t, 100.01, records[0].Outstanding, 0.0001)
}

func TestOutstandingNode_Idempotent(t *testing.T) {
	first := runOutstanding(t, []*models.Record{
		{TotalAmount: 1000, PaidAmount: 250, TaxAmount: 100},
	})
	second := runOutstanding(t, first)

	assert.InDelta(t, first[0].Outstanding, second[0].Outstanding, 0.0001)
	assert.InDelta(t, first[0].GrossAmount, second[0].GrossAmount, 0.0001)
	assert.Equal(t, first[0].Status, second[0].Status)
}

func TestOutstandingNode_DoesNotMutateInput(t *testing.T) {
	input := []*models.Record{{TotalAmount: 1000, PaidAmount: 250}}

	runOutstanding(t, input)

	assert.Zero(t, input[0].Outstanding)
	assert.Empty(t, input[0].Status)
}

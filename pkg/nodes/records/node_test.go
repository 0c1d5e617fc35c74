package records

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerflow/ledgerflow/pkg/models"
)

func TestRecordsNode_EmitsConfiguredRecords(t *testing.T) {
	node, err := NewRecordsNode("src-1", map[string]any{
		"records": []any{
			map[string]any{"invoice_number": "INV-1", "total_amount": float64(1000)},
			map[string]any{"vendor_name": "Acme", "inr_amount": float64(500)},
		},
	})
	require.NoError(t, err)

	out, err := node.Run(context.Background(), models.NodeInput{})
	require.NoError(t, err)
	require.Len(t, out.Records, 2)

	assert.Equal(t, "INV-1", out.Records[0].InvoiceNumber)
	assert.InDelta(t, 1000.0, out.Records[0].TotalAmount, 0.0001)

	// Legacy aliases resolve during decoding.
	assert.Equal(t, "Acme", out.Records[1].Counterparty)
	assert.InDelta(t, 500.0, out.Records[1].TotalAmount, 0.0001)
}

func TestRecordsNode_IgnoresInput(t *testing.T) {
	node, err := NewRecordsNode("src-1", map[string]any{"records": []any{}})
	require.NoError(t, err)

	out, err := node.Run(context.Background(), models.NodeInput{
		Envelope: &models.Envelope{Records: []*models.Record{{InvoiceNumber: "ignored"}}},
	})
	require.NoError(t, err)
	assert.Empty(t, out.Records)
}

func TestRecordsNode_FreshCopyPerRun(t *testing.T) {
	node, err := NewRecordsNode("src-1", map[string]any{
		"records": []any{map[string]any{"invoice_number": "INV-1"}},
	})
	require.NoError(t, err)

	first, err := node.Run(context.Background(), models.NodeInput{})
	require.NoError(t, err)
	first.Records[0].InvoiceNumber = "mutated"

	second, err := node.Run(context.Background(), models.NodeInput{})
	require.NoError(t, err)
	assert.Equal(t, "INV-1", second.Records[0].InvoiceNumber)
}

func TestNewRecordsNode_InvalidParams(t *testing.T) {
	_, err := NewRecordsNode("src-1", map[string]any{})
	assert.Error(t, err)

	_, err = NewRecordsNode("src-1", map[string]any{"records": "not-an-array"})
	assert.Error(t, err)
}

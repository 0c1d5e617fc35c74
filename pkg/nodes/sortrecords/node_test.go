package sortrecords

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerflow/ledgerflow/pkg/models"
)

func runSort(t *testing.T, sortBy []any, recs []*models.Record) []*models.Record {
	t.Helper()

	node, err := NewSortNode("srt-1", map[string]any{"sort_by": sortBy})
	require.NoError(t, err)

	out, err := node.Run(context.Background(), models.NodeInput{
		Envelope: &models.Envelope{Records: recs},
	})
	require.NoError(t, err)

	return out.Records
}

func invoiceNumbers(recs []*models.Record) []string {
	out := make([]string, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.InvoiceNumber)
	}

	return out
}

func TestSortNode_SingleKeyAscDesc(t *testing.T) {
	records := []*models.Record{
		{InvoiceNumber: "b", TotalAmount: 200},
		{InvoiceNumber: "a", TotalAmount: 100},
		{InvoiceNumber: "c", TotalAmount: 300},
	}

	asc := runSort(t, []any{map[string]any{"field": "total_amount", "order": "asc"}}, records)
	assert.Equal(t, []string{"a", "b", "c"}, invoiceNumbers(asc))

	desc := runSort(t, []any{map[string]any{"field": "total_amount", "order": "desc"}}, records)
	assert.Equal(t, []string{"c", "b", "a"}, invoiceNumbers(desc))
}

func TestSortNode_FirstKeyDominates(t *testing.T) {
	records := []*models.Record{
		{InvoiceNumber: "a", Counterparty: "Zephyr", TotalAmount: 100},
		{InvoiceNumber: "b", Counterparty: "Acme", TotalAmount: 300},
		{InvoiceNumber: "c", Counterparty: "Acme", TotalAmount: 100},
		{InvoiceNumber: "d", Counterparty: "Zephyr", TotalAmount: 50},
	}

	sorted := runSort(t, []any{
		map[string]any{"field": "counterparty", "order": "asc"},
		map[string]any{"field": "total_amount", "order": "desc"},
	}, records)

	assert.Equal(t, []string{"b", "c", "a", "d"}, invoiceNumbers(sorted))
}

func TestSortNode_StableOnEqualKeys(t *testing.T) {
	records := []*models.Record{
		{InvoiceNumber: "first", TotalAmount: 100},
		{InvoiceNumber: "second", TotalAmount: 100},
		{InvoiceNumber: "third", TotalAmount: 100},
	}

	sorted := runSort(t, []any{map[string]any{"field": "total_amount"}}, records)

	assert.Equal(t, []string{"first", "second", "third"}, invoiceNumbers(sorted))
}

func TestSortNode_MissingValuesSortFirst(t *testing.T) {
	records := []*models.Record{
		{InvoiceNumber: "present", Extra: map[string]any{"priority": float64(5)}},
		{InvoiceNumber: "absent"},
	}

	sorted := runSort(t, []any{map[string]any{"field": "priority", "order": "asc"}}, records)

	assert.Equal(t, []string{"absent", "present"}, invoiceNumbers(sorted))
}

func TestSortNode_DoesNotReorderInputSlice(t *testing.T) {
	records := []*models.Record{
		{InvoiceNumber: "b", TotalAmount: 200},
		{InvoiceNumber: "a", TotalAmount: 100},
	}

	runSort(t, []any{map[string]any{"field": "total_amount"}}, records)

	assert.Equal(t, []string{"b", "a"}, invoiceNumbers(records))
}

func TestNewSortNode_InvalidParams(t *testing.T) {
	_, err := NewSortNode("srt-1", map[string]any{})
	assert.Error(t, err)

	_, err = NewSortNode("srt-1", map[string]any{"sort_by": "total_amount"})
	assert.Error(t, err)

	_, err = NewSortNode("srt-1", map[string]any{
		"sort_by": []any{map[string]any{"field": "total_amount", "order": "sideways"}},
	})
	assert.Error(t, err)
}

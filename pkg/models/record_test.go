package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordUnmarshal_CanonicalFields(t *testing.T) {
	data := []byte(`{
		"id": "inv-1",
		"counterparty": "Acme Ltd",
		"invoice_number": "INV-001",
		"invoice_date": "2025-01-01",
		"due_date": "2025-01-31",
		"total_amount": 1000,
		"paid_amount": 250,
		"tax_amount": 100
	}`)

	var rec Record
	require.NoError(t, json.Unmarshal(data, &rec))

	assert.Equal(t, "inv-1", rec.ID)
	assert.Equal(t, "Acme Ltd", rec.Counterparty)
	assert.Equal(t, "INV-001", rec.InvoiceNumber)
	assert.Equal(t, "2025-01-01", rec.InvoiceDate)
	assert.Equal(t, "2025-01-31", rec.DueDate)
	assert.InDelta(t, 1000.0, rec.TotalAmount, 0.0001)
	assert.InDelta(t, 250.0, rec.PaidAmount, 0.0001)
	assert.InDelta(t, 100.0, rec.TaxAmount, 0.0001)
	assert.Nil(t, rec.Extra)
}

func TestRecordUnmarshal_LegacyAliases(t *testing.T) {
	data := []byte(`{
		"vendor_name": "Acme Ltd",
		"document_number": "INV-001",
		"document_date": "2025-01-01",
		"inr_amount": 1180,
		"received_amount": 180,
		"tax_total": 180
	}`)

	var rec Record
	require.NoError(t, json.Unmarshal(data, &rec))

	assert.Equal(t, "Acme Ltd", rec.Counterparty)
	assert.Equal(t, "INV-001", rec.InvoiceNumber)
	assert.Equal(t, "2025-01-01", rec.InvoiceDate)
	assert.InDelta(t, 1180.0, rec.TotalAmount, 0.0001)
	assert.InDelta(t, 180.0, rec.PaidAmount, 0.0001)
	assert.InDelta(t, 180.0, rec.TaxAmount, 0.0001)
}

func TestRecordUnmarshal_CanonicalWinsOverAlias(t *testing.T) {
	data := []byte(`{"total_amount": 500, "grand_total": 900}`)

	var rec Record
	require.NoError(t, json.Unmarshal(data, &rec))

	assert.InDelta(t, 500.0, rec.TotalAmount, 0.0001)
}

func TestRecordUnmarshal_ExtraFieldsPreserved(t *testing.T) {
	data := []byte(`{"invoice_number": "INV-1", "cost_center": "CC-42", "approver": "jane"}`)

	var rec Record
	require.NoError(t, json.Unmarshal(data, &rec))

	assert.Equal(t, "CC-42", rec.Extra["cost_center"])
	assert.Equal(t, "jane", rec.Extra["approver"])

	out, err := json.Marshal(&rec)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))
	assert.Equal(t, "CC-42", doc["cost_center"])
	assert.Equal(t, "INV-1", doc["invoice_number"])
}

func TestRecordField_AliasLookup(t *testing.T) {
	rec := &Record{
		Counterparty:  "Acme",
		InvoiceNumber: "INV-9",
		TotalAmount:   42.5,
		AgingBucket:   "0-30",
		Extra:         map[string]any{"cost_center": "CC-1"},
	}

	tests := []struct {
		field string
		want  any
	}{
		{"counterparty", "Acme"},
		{"vendor_name", "Acme"},
		{"invoice_number", "INV-9"},
		{"document_number", "INV-9"},
		{"total_amount", 42.5},
		{"inr_amount", 42.5},
		{"aging_bucket", "0-30"},
		{"cost_center", "CC-1"},
	}

	for _, tc := range tests {
		got, ok := rec.Field(tc.field)
		require.True(t, ok, "field %s", tc.field)
		assert.Equal(t, tc.want, got, "field %s", tc.field)
	}

	_, ok := rec.Field("no_such_field")
	assert.False(t, ok)
}

func TestRecordClone_Independent(t *testing.T) {
	original := &Record{
		InvoiceNumber: "INV-1",
		TotalAmount:   100,
		Extra:         map[string]any{"k": "v"},
	}

	clone := original.Clone()
	clone.TotalAmount = 999
	clone.Extra["k"] = "changed"

	assert.InDelta(t, 100.0, original.TotalAmount, 0.0001)
	assert.Equal(t, "v", original.Extra["k"])
}

// Package models defines the core domain models for financial workflow execution.
package models

import (
	"encoding/json"
	"fmt"
)

// Record is the unit of financial data flowing between nodes. Well-known
// fields are typed; anything else a source ships with is preserved in Extra.
type Record struct {
	ID            string `json:"id,omitempty"`
	Counterparty  string `json:"counterparty,omitempty"`
	InvoiceNumber string `json:"invoice_number,omitempty"`
	InvoiceDate   string `json:"invoice_date,omitempty"`
	DueDate       string `json:"due_date,omitempty"`
	Description   string `json:"description,omitempty"`

	TotalAmount float64 `json:"total_amount"`
	PaidAmount  float64 `json:"paid_amount"`
	TaxAmount   float64 `json:"tax_amount"`

	// Set by the outstanding calculator. Both outstanding fields carry the
	// same value; legacy report templates read either name.
	Outstanding       float64 `json:"outstanding"`
	OutstandingAmount float64 `json:"outstanding_amount"`
	GrossAmount       float64 `json:"gross_amount"`
	Status            string  `json:"status,omitempty"`

	// Set by the aging calculator.
	AgingDays   int    `json:"aging_days"`
	AgingBucket string `json:"aging_bucket,omitempty"`
	OverdueDays int    `json:"overdue_days"`

	// Set by the SLA checker.
	SLABreach   bool   `json:"sla_breach"`
	SLASeverity string `json:"sla_severity,omitempty"`
	BreachDays  int    `json:"breach_days"`

	// Extra holds source-specific fields that have no canonical slot.
	Extra map[string]any `json:"-"`
}

// Legacy field names accepted on input, mapped to their canonical slot.
// Aliases are tried in order; the first present non-empty value wins, and the
// canonical name always takes precedence over any alias.
var recordAliases = map[string][]string{
	"counterparty":   {"vendor_name", "customer_name", "vendor_id", "customer_id"},
	"invoice_number": {"document_number", "invoice_no"},
	"invoice_date":   {"document_date", "date"},
	"total_amount":   {"inr_amount", "grand_total"},
	"paid_amount":    {"received_amount"},
	"tax_amount":     {"tax_total"},
	"outstanding":    {"outstanding_amount"},
}

type recordAlias Record

// UnmarshalJSON decodes a record from an open key/value document: canonical
// keys and their legacy aliases fill the typed fields, everything else lands
// in Extra.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	for canonical, aliases := range recordAliases {
		if _, ok := raw[canonical]; ok {
			continue
		}

		for _, alias := range aliases {
			if v, ok := raw[alias]; ok {
				raw[canonical] = v
				delete(raw, alias)

				break
			}
		}
	}

	normalized, err := json.Marshal(raw)
	if err != nil {
		return err
	}

	var rec recordAlias
	if err := json.Unmarshal(normalized, &rec); err != nil {
		return err
	}

	*r = Record(rec)

	for _, name := range canonicalFieldNames {
		delete(raw, name)
	}

	if len(raw) > 0 {
		r.Extra = make(map[string]any, len(raw))

		for k, v := range raw {
			var value any
			if err := json.Unmarshal(v, &value); err != nil {
				return fmt.Errorf("decode extra field %q: %w", k, err)
			}

			r.Extra[k] = value
		}
	}

	return nil
}

// MarshalJSON emits the typed fields plus any Extra entries. Canonical names
// win on collision so annotations are never shadowed by stale source fields.
func (r *Record) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal(recordAlias(*r))
	if err != nil {
		return nil, err
	}

	if len(r.Extra) == 0 {
		return base, nil
	}

	var doc map[string]any
	if err := json.Unmarshal(base, &doc); err != nil {
		return nil, err
	}

	for k, v := range r.Extra {
		if _, taken := doc[k]; !taken {
			doc[k] = v
		}
	}

	return json.Marshal(doc)
}

var canonicalFieldNames = []string{
	"id", "counterparty", "invoice_number", "invoice_date", "due_date",
	"description", "total_amount", "paid_amount", "tax_amount",
	"outstanding", "outstanding_amount", "gross_amount", "status",
	"aging_days", "aging_bucket", "overdue_days",
	"sla_breach", "sla_severity", "breach_days",
}

// Field resolves a field by its canonical name, a legacy alias, or an Extra
// key. The second return reports whether the field carried a value.
func (r *Record) Field(name string) (any, bool) {
	switch name {
	case "id":
		return r.ID, r.ID != ""
	case "counterparty", "vendor_name", "customer_name":
		return r.Counterparty, r.Counterparty != ""
	case "invoice_number", "document_number", "invoice_no":
		return r.InvoiceNumber, r.InvoiceNumber != ""
	case "invoice_date", "document_date", "date":
		return r.InvoiceDate, r.InvoiceDate != ""
	case "due_date":
		return r.DueDate, r.DueDate != ""
	case "description":
		return r.Description, r.Description != ""
	case "total_amount", "inr_amount", "grand_total":
		return r.TotalAmount, true
	case "paid_amount", "received_amount":
		return r.PaidAmount, true
	case "tax_amount", "tax_total":
		return r.TaxAmount, true
	case "outstanding", "outstanding_amount":
		return r.Outstanding, true
	case "gross_amount":
		return r.GrossAmount, true
	case "status":
		return r.Status, r.Status != ""
	case "aging_days":
		return r.AgingDays, true
	case "aging_bucket":
		return r.AgingBucket, r.AgingBucket != ""
	case "overdue_days":
		return r.OverdueDays, true
	case "sla_breach":
		return r.SLABreach, true
	case "sla_severity":
		return r.SLASeverity, r.SLASeverity != ""
	case "breach_days":
		return r.BreachDays, true
	}

	v, ok := r.Extra[name]

	return v, ok
}

// Clone returns a deep copy. Nodes annotate clones so that upstream outputs
// are never mutated across node boundaries.
func (r *Record) Clone() *Record {
	c := *r

	if r.Extra != nil {
		c.Extra = make(map[string]any, len(r.Extra))
		for k, v := range r.Extra {
			c.Extra[k] = v
		}
	}

	return &c
}

// CloneRecords deep-copies a record set.
func CloneRecords(records []*Record) []*Record {
	out := make([]*Record, len(records))
	for i, r := range records {
		out[i] = r.Clone()
	}

	return out
}

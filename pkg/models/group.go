package models

// Group is one partition produced by the grouping node, carrying its records
// and precomputed subtotals.
type Group struct {
	GroupName        string    `json:"group_name"`
	Records          []*Record `json:"records"`
	Count            int       `json:"count"`
	TotalAmount      float64   `json:"total_amount"`
	TotalOutstanding float64   `json:"total_outstanding"`
}

// Summary holds the statistics computed by the summary node.
type Summary struct {
	TotalRecords       int     `json:"total_records"`
	TotalAmount        float64 `json:"total_amount"`
	TotalOutstanding   float64 `json:"total_outstanding"`
	AverageAmount      float64 `json:"average_amount"`
	AverageOutstanding float64 `json:"average_outstanding,omitempty"`
	MinAmount          float64 `json:"min_amount,omitempty"`
	MaxAmount          float64 `json:"max_amount,omitempty"`
	TotalGroups        int     `json:"total_groups,omitempty"`
}

// Totals is the report-level fold produced by the totals calculator. Field
// naming follows the report templates: invoice_amt is the net (pre-tax)
// subtotal and net_amt the grand total.
type Totals struct {
	InvoiceAmount float64 `json:"invoice_amt"`
	TaxAmount     float64 `json:"tax_amt"`
	NetAmount     float64 `json:"net_amt"`
	PaidAmount    float64 `json:"paid_amt"`
	Outstanding   float64 `json:"outstanding"`
}

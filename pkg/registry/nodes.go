package registry

import (
	"github.com/ledgerflow/ledgerflow/pkg/nodes/aging"
	"github.com/ledgerflow/ledgerflow/pkg/nodes/duplicates"
	"github.com/ledgerflow/ledgerflow/pkg/nodes/filter"
	"github.com/ledgerflow/ledgerflow/pkg/nodes/format"
	"github.com/ledgerflow/ledgerflow/pkg/nodes/grouping"
	"github.com/ledgerflow/ledgerflow/pkg/nodes/merge"
	"github.com/ledgerflow/ledgerflow/pkg/nodes/outstanding"
	"github.com/ledgerflow/ledgerflow/pkg/nodes/records"
	"github.com/ledgerflow/ledgerflow/pkg/nodes/slacheck"
	"github.com/ledgerflow/ledgerflow/pkg/nodes/sortrecords"
	"github.com/ledgerflow/ledgerflow/pkg/nodes/summary"
	"github.com/ledgerflow/ledgerflow/pkg/nodes/totals"
	"github.com/ledgerflow/ledgerflow/pkg/protocol"
)

// RegisterDefaultNodes registers the built-in node library. Registration
// happens once at process start; a duplicate id is a start-up fatal error
// surfaced to the caller.
func (r *Registry) RegisterDefaultNodes() error {
	factories := []protocol.NodeFactory{
		records.NewRecordsNodeFactory(),
		format.NewFormatNodeFactory(),

		outstanding.NewOutstandingNodeFactory(),
		aging.NewAgingNodeFactory(),
		slacheck.NewSLACheckNodeFactory(),
		duplicates.NewDuplicatesNodeFactory(),
		totals.NewTotalsNodeFactory(),

		grouping.NewGroupingNodeFactory(),
		filter.NewFilterNodeFactory(),
		sortrecords.NewSortNodeFactory(),
		summary.NewSummaryNodeFactory(),
		merge.NewMergeNodeFactory(),
	}

	for _, factory := range factories {
		if err := r.RegisterNode(factory); err != nil {
			return err
		}
	}

	return nil
}

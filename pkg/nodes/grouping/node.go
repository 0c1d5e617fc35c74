// Package grouping provides the record grouping node.
package grouping

import (
	"context"
	"fmt"
	"sort"

	"github.com/ledgerflow/ledgerflow/pkg/models"
)

const (
	defaultGroupBy = "aging_bucket"
	unknownGroup   = "Unknown"
)

// Aging buckets carry a fixed display order; every other group-by field
// sorts lexically by group name.
var bucketRank = map[string]int{
	"0-30":    1,
	"31-60":   2,
	"61-90":   3,
	"90+":     4,
	"Unknown": 5,
}

// GroupingNode partitions a record set by a field value and computes
// per-group subtotals.
type GroupingNode struct {
	id      string
	groupBy string
}

// NewGroupingNode creates a new grouping node. group_by defaults to the
// aging bucket.
func NewGroupingNode(id string, params map[string]any) (*GroupingNode, error) {
	groupBy := defaultGroupBy

	if raw, ok := params["group_by"]; ok {
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("field 'group_by' must be a string")
		}

		groupBy = s
	}

	return &GroupingNode{id: id, groupBy: groupBy}, nil
}

// ID returns the node ID.
func (n *GroupingNode) ID() string {
	return n.id
}

// Type returns the node type.
func (n *GroupingNode) Type() string {
	return "grouping"
}

// Run partitions the records. Records whose group-by field is absent land in
// the Unknown group; within a group records keep input order.
func (n *GroupingNode) Run(_ context.Context, input models.NodeInput) (*models.Envelope, error) {
	env, err := input.Single()
	if err != nil {
		return nil, err
	}

	groups := make(map[string]*models.Group)
	order := make([]string, 0)

	for _, record := range env.Records {
		key := unknownGroup
		if v, ok := record.Field(n.groupBy); ok {
			key = fmt.Sprintf("%v", v)
		}

		group, ok := groups[key]
		if !ok {
			group = &models.Group{GroupName: key, Records: []*models.Record{}}
			groups[key] = group
			order = append(order, key)
		}

		group.Records = append(group.Records, record)
		group.Count++
		group.TotalAmount += record.TotalAmount
		group.TotalOutstanding += record.Outstanding
	}

	list := make([]*models.Group, 0, len(order))
	for _, key := range order {
		group := groups[key]
		group.TotalAmount = models.Round2(group.TotalAmount)
		group.TotalOutstanding = models.Round2(group.TotalOutstanding)
		list = append(list, group)
	}

	if n.groupBy == defaultGroupBy {
		sort.SliceStable(list, func(i, j int) bool {
			return rankOf(list[i].GroupName) < rankOf(list[j].GroupName)
		})
	} else {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].GroupName < list[j].GroupName
		})
	}

	return &models.Envelope{Groups: list}, nil
}

func rankOf(bucket string) int {
	if rank, ok := bucketRank[bucket]; ok {
		return rank
	}

	return len(bucketRank) + 1
}

package merge

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerflow/ledgerflow/pkg/models"
)

func TestMergeNode_FanInDeterministicOrder(t *testing.T) {
	node, err := NewMergeNode("mrg-1", nil)
	require.NoError(t, err)

	input := models.NodeInput{
		Upstream: map[string]*models.Envelope{
			"zeta":  {Records: []*models.Record{{InvoiceNumber: "z-1"}}},
			"alpha": {Records: []*models.Record{{InvoiceNumber: "a-1"}, {InvoiceNumber: "a-2"}}},
			"mid":   {Records: []*models.Record{{InvoiceNumber: "m-1"}}},
		},
	}

	out, err := node.Run(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, out.Records, 4)

	got := make([]string, 0, 4)
	for _, rec := range out.Records {
		got = append(got, rec.InvoiceNumber)
	}

	assert.Equal(t, []string{"a-1", "a-2", "m-1", "z-1"}, got)
}

func TestMergeNode_MergesGroups(t *testing.T) {
	node, err := NewMergeNode("mrg-1", nil)
	require.NoError(t, err)

	out, err := node.Run(context.Background(), models.NodeInput{
		Upstream: map[string]*models.Envelope{
			"b": {Groups: []*models.Group{{GroupName: "90+"}}},
			"a": {Groups: []*models.Group{{GroupName: "0-30"}}},
		},
	})
	require.NoError(t, err)
	require.Len(t, out.Groups, 2)
	assert.Equal(t, "0-30", out.Groups[0].GroupName)
	assert.Equal(t, "90+", out.Groups[1].GroupName)
}

func TestMergeNode_CarriesReportSections(t *testing.T) {
	node, err := NewMergeNode("mrg-1", nil)
	require.NoError(t, err)

	out, err := node.Run(context.Background(), models.NodeInput{
		Upstream: map[string]*models.Envelope{
			"sla": {Records: []*models.Record{{InvoiceNumber: "INV-1"}}},
			"dupes": {Duplicates: &models.DuplicateReport{
				Exact: []models.DuplicateCandidate{},
				Fuzzy: []models.DuplicateCandidate{},
			}},
		},
	})
	require.NoError(t, err)
	assert.Len(t, out.Records, 1)
	assert.NotNil(t, out.Duplicates)
}

func TestMergeNode_SingleInputPassesThrough(t *testing.T) {
	node, err := NewMergeNode("mrg-1", nil)
	require.NoError(t, err)

	env := &models.Envelope{Records: []*models.Record{{InvoiceNumber: "INV-1"}}}
	out, err := node.Run(context.Background(), models.NodeInput{Envelope: env})
	require.NoError(t, err)
	assert.Equal(t, env.Records, out.Records)
}

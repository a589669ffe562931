package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qwicdev/backorder-analyzer/internal/model"
	"github.com/qwicdev/backorder-analyzer/internal/testutil"
)

var exemptPrefixes = []string{"VP", "VO"}

func TestGroupByOrder_SplitsShippableAndBackorder(t *testing.T) {
	rows := []model.Row{
		testutil.Row("SO-1", "A", "5"),
		testutil.Row("SO-1", "B", "0"),
	}

	groups := GroupByOrder(rows, exemptPrefixes)
	require.Len(t, groups, 1)

	g := groups[0]
	assert.Equal(t, model.KindStandard, g.Kind)
	require.Len(t, g.Shippable, 1)
	assert.Equal(t, "A", g.Shippable[0].ItemNo)
	require.Len(t, g.Backorder, 1)
	assert.Equal(t, "B", g.Backorder[0].ItemNo)
}

func TestGroupByOrder_EveryRowLandsExactlyOnce(t *testing.T) {
	rows := []model.Row{
		testutil.Row("SO-1", "A", "5"),
		testutil.Row("SO-1", "B", "0"),
		testutil.Row("SO-2", "C", "-2"),
		testutil.Row("SO-2", "D", ""), // absent counts as backorder
		testutil.Row("SO-3", "E", "1"),
	}

	groups := GroupByOrder(rows, exemptPrefixes)
	require.Len(t, groups, 3)

	total := 0
	for _, g := range groups {
		total += len(g.Shippable) + len(g.Backorder) + len(g.Unadjusted)
	}
	assert.Equal(t, len(rows), total)

	assert.Len(t, groups[1].Backorder, 2)
	assert.Empty(t, groups[1].Shippable)
}

func TestGroupByOrder_PreservesOrderOfAppearance(t *testing.T) {
	rows := []model.Row{
		testutil.Row("SO-9", "A", "0"),
		testutil.Row("SO-2", "B", "0"),
		testutil.Row("SO-9", "C", "0"),
		testutil.Row("SO-5", "D", "0"),
	}

	groups := GroupByOrder(rows, exemptPrefixes)
	require.Len(t, groups, 3)
	assert.Equal(t, "SO-9", groups[0].No)
	assert.Equal(t, "SO-2", groups[1].No)
	assert.Equal(t, "SO-5", groups[2].No)

	// Relative order of rows within a partition is preserved.
	require.Len(t, groups[0].Backorder, 2)
	assert.Equal(t, "A", groups[0].Backorder[0].ItemNo)
	assert.Equal(t, "C", groups[0].Backorder[1].ItemNo)
}

func TestGroupByOrder_ForcesMalformedOrderToBackorder(t *testing.T) {
	rows := []model.Row{
		testutil.Row("SO-1", "A", "n/a"),
		testutil.Row("SO-1", "B", "#VALUE!"),
	}

	groups := GroupByOrder(rows, exemptPrefixes)
	require.Len(t, groups, 1)

	g := groups[0]
	assert.Equal(t, model.KindStandard, g.Kind)
	assert.Empty(t, g.Shippable)
	assert.Len(t, g.Backorder, 2)
}

func TestGroupByOrder_MalformedRowInMixedOrderGoesToBackorder(t *testing.T) {
	rows := []model.Row{
		testutil.Row("SO-1", "A", "3"),
		testutil.Row("SO-1", "B", "broken"),
	}

	groups := GroupByOrder(rows, exemptPrefixes)
	require.Len(t, groups, 1)

	g := groups[0]
	require.Len(t, g.Shippable, 1)
	require.Len(t, g.Backorder, 1)
	assert.Equal(t, "B", g.Backorder[0].ItemNo)
}

func TestGroupByOrder_ExemptPrefixOrderIsNoAdjustment(t *testing.T) {
	rows := []model.Row{
		testutil.Row("SO-1", "VP-1001", "x"),
		testutil.Row("SO-1", "VO-2002", "x"),
	}

	groups := GroupByOrder(rows, exemptPrefixes)
	require.Len(t, groups, 1)

	g := groups[0]
	assert.Equal(t, model.KindNoAdjustment, g.Kind)
	assert.Empty(t, g.Shippable)
	assert.Empty(t, g.Backorder)
	assert.Len(t, g.Unadjusted, 2)
}

func TestGroupByOrder_MixedExemptOrderStaysStandard(t *testing.T) {
	// One non-exempt item means the order is not carved out.
	rows := []model.Row{
		testutil.Row("SO-1", "VP-1001", "bad"),
		testutil.Row("SO-1", "10701", "bad"),
	}

	groups := GroupByOrder(rows, exemptPrefixes)
	require.Len(t, groups, 1)

	g := groups[0]
	assert.Equal(t, model.KindStandard, g.Kind)
	assert.Len(t, g.Backorder, 2)
}

func TestGroupByOrder_ExemptItemsWithRealQuantitiesSplitNormally(t *testing.T) {
	rows := []model.Row{
		testutil.Row("SO-1", "VP-1001", "4"),
		testutil.Row("SO-1", "VP-1002", "0"),
	}

	groups := GroupByOrder(rows, exemptPrefixes)
	require.Len(t, groups, 1)

	g := groups[0]
	assert.Equal(t, model.KindStandard, g.Kind)
	assert.Len(t, g.Shippable, 1)
	assert.Len(t, g.Backorder, 1)
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBreakdownRoundTrip(t *testing.T) {
	items := []LineItem{
		{ID: "1", Description: "Domain", Price: 150000},
		{ID: "2", Description: "Hosting", Price: 350000},
	}

	parsed, err := ParseBreakdown(EncodeBreakdown(items))
	require.NoError(t, err)
	require.Equal(t, items, parsed)
}

func TestParseBreakdownFallsBackToDefault(t *testing.T) {
	for _, raw := range []string{"", "   ", "[]", "not json", `{"id":"1"}`, "42"} {
		parsed, _ := ParseBreakdown(raw)
		require.Equal(t, DefaultBreakdown(), parsed, "input %q", raw)
	}
}

func TestParseBreakdownReportsMalformedInput(t *testing.T) {
	_, err := ParseBreakdown("not json")
	require.Error(t, err)

	_, err = ParseBreakdown("")
	require.NoError(t, err)

	_, err = ParseBreakdown("[]")
	require.NoError(t, err)
}

func TestParseBreakdownMissingPriceIsZero(t *testing.T) {
	parsed, err := ParseBreakdown(`[{"id":"1","description":"Setup"}]`)
	require.NoError(t, err)
	require.Equal(t, 0.0, parsed[0].Price)
}

func TestComputeTotal(t *testing.T) {
	items := []LineItem{
		{ID: "1", Price: 1000},
		{ID: "2", Price: 2500},
		{ID: "3", Price: 0},
	}
	require.Equal(t, 3500.0, ComputeTotal(items))
	require.Equal(t, 0.0, ComputeTotal(nil))
}

func TestMutateItem(t *testing.T) {
	items := []LineItem{
		{ID: "1", Description: "Domain", Price: 150000},
		{ID: "2", Description: "Hosting", Price: 350000},
	}

	updated := MutateItem(items, "2", "price", "400000")
	require.Equal(t, 400000.0, updated[1].Price)
	require.Equal(t, 350000.0, items[1].Price, "input slice must not be mutated")

	updated = MutateItem(items, "1", "description", "Domain .com")
	require.Equal(t, "Domain .com", updated[0].Description)
	require.Equal(t, 150000.0, updated[0].Price)

	updated = MutateItem(items, "1", "price", "")
	require.Equal(t, 0.0, updated[0].Price)

	require.Equal(t, items, MutateItem(items, "99", "price", "123"))
}

func TestAddItemGeneratesUniqueIDs(t *testing.T) {
	items := DefaultBreakdown()
	items = AddItem(items)
	items = AddItem(items)
	require.Len(t, items, 3)
	require.Equal(t, "2", items[1].ID)
	require.Equal(t, "3", items[2].ID)

	// Removing the middle row must not let the next add reuse id "3".
	items = RemoveItem(items, "2")
	items = AddItem(items)
	require.Len(t, items, 3)

	seen := map[string]bool{}
	for _, item := range items {
		require.False(t, seen[item.ID], "duplicate id %q", item.ID)
		seen[item.ID] = true
	}
	require.Equal(t, "4", items[2].ID)
}

func TestRemoveItemNeverLeavesBreakdownEmpty(t *testing.T) {
	items := []LineItem{{ID: "1", Description: "Domain", Price: 150000}}
	require.Equal(t, DefaultBreakdown(), RemoveItem(items, "1"))

	two := []LineItem{
		{ID: "1", Description: "Domain", Price: 150000},
		{ID: "2", Description: "Hosting", Price: 350000},
	}
	remaining := RemoveItem(two, "1")
	require.Len(t, remaining, 1)
	require.Equal(t, "2", remaining[0].ID)
	require.Equal(t, 350000.0, ComputeTotal(remaining))
}

func TestBreakdownAmountStaysInSync(t *testing.T) {
	items := []LineItem{
		{ID: "1", Description: "Domain", Price: 150000},
		{ID: "2", Description: "Hosting", Price: 350000},
	}
	require.Equal(t, 500000.0, ComputeTotal(items))

	items = RemoveItem(items, "1")
	require.Equal(t, 350000.0, ComputeTotal(items))
	require.Len(t, items, 1)
}

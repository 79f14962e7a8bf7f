package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// LineItem is one row of an invoice's itemized breakdown (rincian). IDs are
// strings unique within the invoice; prices are rupiah amounts.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// DefaultBreakdown is the safe single-row breakdown the edit form falls back
// to. The breakdown is never empty so the form always has an editable row.
func DefaultBreakdown() []LineItem {
	return []LineItem{{ID: "1", Description: "", Price: 0}}
}

// ParseBreakdown decodes the persisted JSON form of a breakdown. Empty input,
// malformed JSON, a non-array document, and an empty array all yield
// DefaultBreakdown. The returned error marks a malformed document for the
// caller to log as a warning; the returned items are always usable either way.
func ParseBreakdown(raw string) ([]LineItem, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultBreakdown(), nil
	}

	var items []LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return DefaultBreakdown(), err
	}
	if len(items) == 0 {
		return DefaultBreakdown(), nil
	}
	return items, nil
}

// EncodeBreakdown serializes items for the persistence boundary. Internal
// logic operates on []LineItem only; the string form exists solely in the
// database column and API payloads.
func EncodeBreakdown(items []LineItem) string {
	if len(items) == 0 {
		items = DefaultBreakdown()
	}
	encoded, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(encoded)
}

// ComputeTotal sums the item prices. The result is the invoice's
// authoritative amount and must be re-applied after every breakdown mutation.
func ComputeTotal(items []LineItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price
	}
	return total
}

// MutateItem returns a copy of items with the matching row's field updated.
// The price field is coerced from its string form, falling back to 0 when it
// does not parse (an emptied number input). Unknown ids and fields leave the
// rows untouched.
func MutateItem(items []LineItem, id, field, value string) []LineItem {
	updated := make([]LineItem, len(items))
	copy(updated, items)
	for i := range updated {
		if updated[i].ID != id {
			continue
		}
		switch field {
		case "description":
			updated[i].Description = value
		case "price":
			price, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			if err != nil {
				price = 0
			}
			updated[i].Price = price
		}
	}
	return updated
}

// AddItem appends a fresh empty row. The new id is one past the highest
// numeric id ever used, not the row count: removals leave gaps, and reusing a
// lower id would collide with a surviving row.
func AddItem(items []LineItem) []LineItem {
	maxID := 0
	for _, item := range items {
		if n, err := strconv.Atoi(item.ID); err == nil && n > maxID {
			maxID = n
		}
	}
	updated := make([]LineItem, len(items), len(items)+1)
	copy(updated, items)
	return append(updated, LineItem{ID: strconv.Itoa(maxID + 1)})
}

// RemoveItem drops the matching row. Removing the last row collapses to
// DefaultBreakdown instead of an empty list.
func RemoveItem(items []LineItem, id string) []LineItem {
	updated := make([]LineItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			updated = append(updated, item)
		}
	}
	if len(updated) == 0 {
		return DefaultBreakdown()
	}
	return updated
}

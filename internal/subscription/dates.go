package subscription

import (
	"strings"
	"time"
)

// inputDateLayout is the zero-padded format the dashboard's date inputs
// exchange with the API.
const inputDateLayout = "2006-01-02"

// ParseDate converts a YYYY-MM-DD string to a date. Empty or malformed input
// returns nil, which the window functions treat as "no package assigned";
// a bad date must degrade to StatusUnknown, never surface as an error.
func ParseDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	t, err := time.Parse(inputDateLayout, raw)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}

// FormatDateForInput renders a date back into the YYYY-MM-DD input format.
// Nil dates render as the empty string.
func FormatDateForInput(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(inputDateLayout)
}

// DurationOption is one entry of the package-duration dropdown.
type DurationOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// DurationOptions lists the selectable package durations, in months.
var DurationOptions = []DurationOption{
	{Value: 1, Label: "1 Bulan"},
	{Value: 2, Label: "2 Bulan"},
	{Value: 3, Label: "3 Bulan"},
	{Value: 4, Label: "4 Bulan"},
	{Value: 5, Label: "5 Bulan"},
	{Value: 6, Label: "6 Bulan"},
	{Value: 7, Label: "7 Bulan"},
	{Value: 8, Label: "8 Bulan"},
	{Value: 9, Label: "9 Bulan"},
	{Value: 10, Label: "10 Bulan"},
	{Value: 11, Label: "11 Bulan"},
	{Value: 12, Label: "1 Tahun"},
}

// Package subscription derives a client's hosting-package state from its
// start date and paid duration. Status rendering in the client table, the
// detail view, and the form preview all go through these functions so the
// three call sites cannot disagree on what "active" means.
package subscription

import (
	"math"
	"time"
)

// Status of a client's package window.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	// StatusUnknown means the window cannot be computed because the client
	// has no package assigned (missing start date or duration).
	StatusUnknown Status = "unknown"
)

const millisPerDay = 24 * 60 * 60 * 1000

// PackageInfo bundles the derived window fields. All pointer fields are nil
// when Status is StatusUnknown.
type PackageInfo struct {
	Status        Status     `json:"status"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	RemainingDays *int       `json:"remaining_days,omitempty"`
	IsExpired     *bool      `json:"is_expired,omitempty"`
}

// ComputeStatus reports whether the package window covering startDate plus
// durationMonths calendar months is still open at now. Missing inputs yield
// StatusUnknown; a non-positive duration is treated as missing. The boundary
// instant is inclusive: the package stays active through the entire final day.
//
// Month arithmetic uses time.Time.AddDate, so day overflow rolls into the
// next month (Jan 31 + 1 month = Mar 2 or Mar 3) rather than clamping to the
// last day of the month.
func ComputeStatus(startDate *time.Time, durationMonths *int, now time.Time) Status {
	if startDate == nil || durationMonths == nil || *durationMonths <= 0 {
		return StatusUnknown
	}
	endDate := startDate.AddDate(0, *durationMonths, 0)
	if now.After(endDate) {
		return StatusInactive
	}
	return StatusActive
}

// ComputePackageInfo returns the full derived window. RemainingDays is the
// ceiling of the millisecond distance to the end date in whole days and goes
// negative once expired. The result is a pure function of its arguments;
// callers must recompute per read because it varies with now.
func ComputePackageInfo(startDate *time.Time, durationMonths *int, now time.Time) PackageInfo {
	if startDate == nil || durationMonths == nil || *durationMonths <= 0 {
		return PackageInfo{Status: StatusUnknown}
	}

	endDate := startDate.AddDate(0, *durationMonths, 0)
	remaining := int(math.Ceil(float64(endDate.Sub(now).Milliseconds()) / millisPerDay))
	expired := now.After(endDate)

	status := StatusActive
	if expired {
		status = StatusInactive
	}

	return PackageInfo{
		Status:        status,
		EndDate:       &endDate,
		RemainingDays: &remaining,
		IsExpired:     &expired,
	}
}

package subscription_test

import (
	"testing"
	"time"

	"github.com/nexcubelabs/nexcube/internal/subscription"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func TestComputeStatusBoundaryDayStaysActive(t *testing.T) {
	start := date("2024-01-15")
	end := date("2024-07-15")

	require.Equal(t, subscription.StatusActive, subscription.ComputeStatus(&start, intPtr(6), end))
	require.Equal(t, subscription.StatusInactive, subscription.ComputeStatus(&start, intPtr(6), end.AddDate(0, 0, 1)))
}

func TestComputeStatusUnknownOnMissingInput(t *testing.T) {
	start := date("2024-01-15")
	now := date("2024-03-01")

	require.Equal(t, subscription.StatusUnknown, subscription.ComputeStatus(nil, intPtr(6), now))
	require.Equal(t, subscription.StatusUnknown, subscription.ComputeStatus(&start, nil, now))
	require.Equal(t, subscription.StatusUnknown, subscription.ComputeStatus(&start, intPtr(0), now))
	require.Equal(t, subscription.StatusUnknown, subscription.ComputeStatus(&start, intPtr(-3), now))
}

func TestComputePackageInfoSixMonthWindow(t *testing.T) {
	start := date("2024-01-15")

	info := subscription.ComputePackageInfo(&start, intPtr(6), date("2024-07-14"))
	require.Equal(t, subscription.StatusActive, info.Status)
	require.Equal(t, date("2024-07-15"), *info.EndDate)
	require.Equal(t, 1, *info.RemainingDays)
	require.False(t, *info.IsExpired)

	info = subscription.ComputePackageInfo(&start, intPtr(6), date("2024-07-16"))
	require.Equal(t, subscription.StatusInactive, info.Status)
	require.Equal(t, -1, *info.RemainingDays)
	require.True(t, *info.IsExpired)
}

func TestComputePackageInfoExactEndInstant(t *testing.T) {
	start := date("2024-01-15")

	info := subscription.ComputePackageInfo(&start, intPtr(6), date("2024-07-15"))
	require.Equal(t, subscription.StatusActive, info.Status)
	require.Equal(t, 0, *info.RemainingDays)
	require.False(t, *info.IsExpired)
}

func TestComputePackageInfoUnknownHasNilDerivedFields(t *testing.T) {
	info := subscription.ComputePackageInfo(nil, nil, date("2024-07-15"))
	require.Equal(t, subscription.StatusUnknown, info.Status)
	require.Nil(t, info.EndDate)
	require.Nil(t, info.RemainingDays)
	require.Nil(t, info.IsExpired)
}

func TestComputePackageInfoMonthOverflowRollsForward(t *testing.T) {
	// Jan 31 + 1 month normalizes past February instead of clamping.
	start := date("2024-01-31")

	info := subscription.ComputePackageInfo(&start, intPtr(1), date("2024-02-15"))
	require.Equal(t, date("2024-03-02"), *info.EndDate)
	require.Equal(t, subscription.StatusActive, info.Status)
}

func TestComputePackageInfoPartialDayRoundsUp(t *testing.T) {
	start := date("2024-01-15")
	now := date("2024-07-14").Add(6 * time.Hour)

	info := subscription.ComputePackageInfo(&start, intPtr(6), now)
	require.Equal(t, 1, *info.RemainingDays)
}

func TestParseDate(t *testing.T) {
	parsed := subscription.ParseDate("2024-01-15")
	require.NotNil(t, parsed)
	require.Equal(t, date("2024-01-15"), *parsed)

	require.Nil(t, subscription.ParseDate(""))
	require.Nil(t, subscription.ParseDate("  "))
	require.Nil(t, subscription.ParseDate("15/01/2024"))
	require.Nil(t, subscription.ParseDate("not a date"))
}

func TestFormatDateForInput(t *testing.T) {
	require.Equal(t, "2024-01-05", subscription.FormatDateForInput(timePtr(date("2024-01-05"))))
	require.Equal(t, "", subscription.FormatDateForInput(nil))
}

func TestComputeStatusMatchesPackageInfoStatus(t *testing.T) {
	start := date("2023-11-30")
	for _, now := range []time.Time{
		date("2023-12-01"),
		date("2024-02-29"),
		date("2024-05-30"),
		date("2024-05-31"),
		date("2024-12-25"),
	} {
		info := subscription.ComputePackageInfo(&start, intPtr(6), now)
		require.Equal(t, info.Status, subscription.ComputeStatus(&start, intPtr(6), now))
	}
}

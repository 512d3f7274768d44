/*
week.go - Monday-aligned weekly aggregation

PURPOSE:
  Groups dated daily totals into calendar weeks (Monday-Sunday). Statutory
  overtime and complementary-hour thresholds apply per week, not per month,
  so the salary engine consumes these weekly totals.

ALGORITHM:
  1. Index hours by date (a later duplicate date overwrites - callers are
     expected to pass at most one entry per date)
  2. Find the Monday on or before the earliest date
  3. Walk forward in 7-day windows until past the latest date
  4. Emit a week only when its summed hours are positive

ZERO-HOUR WEEKS:
  Weeks with no recorded work are dropped, not zero-filled. Non-contiguous
  weeks are therefore skipped silently. Downstream consumers rely on this
  for output parity with previously computed artifacts, so it must not be
  "fixed" into zero-filling.

MONTH BOUNDARIES:
  The grouping has no month concept. Whether a week straddling a month
  boundary contributes is decided purely by which dates the caller passed in.

SEE ALSO:
  - shift.go: WorkDay, the usual source of daily totals
  - salary package: consumes WeekTotal values
*/
package timesheet

import (
	"time"
)

// DayTotal is one date's worked hours, the unit of weekly grouping.
type DayTotal struct {
	Date  time.Time
	Hours float64
}

// WeekTotal is the summed hours of one Monday-aligned calendar week.
type WeekTotal struct {
	Start time.Time // the week's Monday
	Hours float64
}

// DayTotals resolves a list of work days into dated hour totals, parsing
// dates and summing shift durations. Order follows the input.
func DayTotals(days []WorkDay) ([]DayTotal, error) {
	totals := make([]DayTotal, 0, len(days))
	for _, d := range days {
		date, err := ParseDate(d.Date)
		if err != nil {
			return nil, err
		}
		hours, err := d.Hours()
		if err != nil {
			return nil, err
		}
		totals = append(totals, DayTotal{Date: date, Hours: hours})
	}
	return totals, nil
}

// GroupByWeek buckets daily totals into Monday-aligned weeks, chronologically
// ascending. Weeks whose hours sum to zero are omitted. Empty input yields
// an empty result.
func GroupByWeek(days []DayTotal) []WeekTotal {
	if len(days) == 0 {
		return nil
	}

	byDate := make(map[time.Time]float64, len(days))
	earliest, latest := days[0].Date, days[0].Date
	for _, d := range days {
		byDate[d.Date] = d.Hours // later duplicates overwrite
		if d.Date.Before(earliest) {
			earliest = d.Date
		}
		if d.Date.After(latest) {
			latest = d.Date
		}
	}

	var weeks []WeekTotal
	for monday := MondayOf(earliest); !monday.After(latest); monday = monday.AddDate(0, 0, 7) {
		hours := 0.0
		for i := 0; i < 7; i++ {
			hours += byDate[monday.AddDate(0, 0, i)]
		}
		if hours > 0 {
			weeks = append(weeks, WeekTotal{Start: monday, Hours: hours})
		}
	}
	return weeks
}

// MondayOf returns the Monday on or before the given date.
func MondayOf(date time.Time) time.Time {
	// time.Weekday counts from Sunday; shift so Monday is offset 0.
	offset := (int(date.Weekday()) + 6) % 7
	return date.AddDate(0, 0, -offset)
}

/*
Package timesheet provides the time-capture side of the payroll engine.

PURPOSE:
  Converts raw work records (dated shifts with wall-clock start/end times)
  into the hour totals the salary engine consumes: per-shift durations,
  per-day totals, and Monday-aligned weekly totals.

KEY CONCEPTS IN THIS FILE (shift.go):
  - Shift: A start/end wall-clock pair on one calendar date
  - WorkDay: A date plus its shifts, with a derived hour total

DESIGN PRINCIPLES:
  1. Purity: every function is deterministic, no I/O or shared state
  2. Input trust: overlapping shifts are summed, not rejected - range
     validation belongs to the callers that capture the data
  3. Strict formats: dates are "2006-01-02", times are zero-padded "15:04";
     anything else fails with a *FormatError

MIDNIGHT RULE:
  A shift whose end is strictly before its start is read as crossing
  midnight (23:00-02:00 is 3 hours). An end equal to the start is an empty
  shift and counts as 0 hours.

USAGE:
  day := timesheet.WorkDay{
      Date:   "2025-03-10",
      Shifts: []timesheet.Shift{{Start: "09:00", End: "17:30"}},
  }
  hours, err := day.Hours() // 8.5

SEE ALSO:
  - week.go: Weekly grouping of daily totals
  - errors.go: FormatError and sentinel errors
*/
package timesheet

import (
	"time"
)

// Layouts for the wire formats used by collaborators.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// =============================================================================
// SHIFT - Single start/end pair on one date
// =============================================================================

// Shift is a worked interval captured as wall-clock times. Field names on
// the wire follow the timesheet JSON contract.
type Shift struct {
	Start string `json:"heure_debut"`
	End   string `json:"heure_fin"`
}

// Hours returns the elapsed hours of the shift anchored on the given date.
// An end at or before the start of the next day is handled by the midnight
// rule; the result is never negative.
func (s Shift) Hours(date string) (float64, error) {
	start, err := ParseAt(date, s.Start)
	if err != nil {
		return 0, err
	}
	end, err := ParseAt(date, s.End)
	if err != nil {
		return 0, err
	}

	// Midnight rule: an end strictly before the start belongs to the next
	// day. Equal instants are an empty shift, not a 24h one.
	if end.Before(start) {
		end = end.Add(24 * time.Hour)
	}

	hours := end.Sub(start).Hours()
	if hours < 0 {
		return 0, nil
	}
	return hours, nil
}

// =============================================================================
// WORK DAY - Date plus its shifts
// =============================================================================

// WorkDay is one calendar date with its recorded shifts. Shift order is
// irrelevant for totals.
type WorkDay struct {
	Date   string  `json:"date"`
	Shifts []Shift `json:"creneaux"`
}

// Hours sums the day's shift durations. An empty day is 0 hours.
// Overlapping shifts are summed as-is (input-trust behavior).
func (d WorkDay) Hours() (float64, error) {
	total := 0.0
	for _, s := range d.Shifts {
		h, err := s.Hours(d.Date)
		if err != nil {
			return 0, err
		}
		total += h
	}
	return total, nil
}

// =============================================================================
// PARSING
// =============================================================================

// ParseDate parses a strict "YYYY-MM-DD" date in UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, &FormatError{Kind: "date", Value: s, Layout: DateLayout}
	}
	return t, nil
}

// ParseAt combines a date with a zero-padded "HH:MM" clock time.
func ParseAt(date, clock string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout+" "+ClockLayout, date+" "+clock, time.UTC)
	if err != nil {
		// Tell the caller which half of the pair is malformed.
		if _, dateErr := time.ParseInLocation(DateLayout, date, time.UTC); dateErr != nil {
			return time.Time{}, &FormatError{Kind: "date", Value: date, Layout: DateLayout}
		}
		return time.Time{}, &FormatError{Kind: "time", Value: clock, Layout: ClockLayout}
	}
	return t, nil
}

package timesheet_test

import (
	"testing"
	"time"

	"github.com/warp/payroll-engine/timesheet"
)

func day(date string, hours float64) timesheet.DayTotal {
	d, err := timesheet.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return timesheet.DayTotal{Date: d, Hours: hours}
}

func TestGroupByWeek_TwoWeeks(t *testing.T) {
	// GIVEN: Days spanning two calendar weeks (Fri 2025-01-03, Mon 2025-01-06)
	// WHEN: Grouping by week
	// THEN: Exactly two Monday-aligned buckets

	weeks := timesheet.GroupByWeek([]timesheet.DayTotal{
		day("2025-01-03", 5),
		day("2025-01-06", 3),
	})

	if len(weeks) != 2 {
		t.Fatalf("expected 2 weeks, got %d", len(weeks))
	}

	firstMonday := time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC)
	if !weeks[0].Start.Equal(firstMonday) {
		t.Errorf("expected first week to start %v, got %v", firstMonday, weeks[0].Start)
	}
	if weeks[0].Hours != 5 {
		t.Errorf("expected 5 hours in first week, got %v", weeks[0].Hours)
	}

	secondMonday := time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)
	if !weeks[1].Start.Equal(secondMonday) {
		t.Errorf("expected second week to start %v, got %v", secondMonday, weeks[1].Start)
	}
	if weeks[1].Hours != 3 {
		t.Errorf("expected 3 hours in second week, got %v", weeks[1].Hours)
	}
}

func TestGroupByWeek_ZeroHourWeeksDropped(t *testing.T) {
	// GIVEN: Work in the weeks of Mar 10 and Mar 24, nothing in between
	// WHEN: Grouping by week
	// THEN: The empty middle week is omitted, not zero-filled

	weeks := timesheet.GroupByWeek([]timesheet.DayTotal{
		day("2025-03-10", 7),
		day("2025-03-26", 4),
	})

	if len(weeks) != 2 {
		t.Fatalf("expected 2 weeks (empty week dropped), got %d", len(weeks))
	}
	for _, w := range weeks {
		if w.Hours == 0 {
			t.Errorf("zero-hour week %v should have been dropped", w.Start)
		}
	}
}

func TestGroupByWeek_SumsWithinWeek(t *testing.T) {
	// Monday through Sunday of one week land in a single bucket.
	weeks := timesheet.GroupByWeek([]timesheet.DayTotal{
		day("2025-03-10", 8), // Monday
		day("2025-03-12", 6),
		day("2025-03-16", 4), // Sunday
	})
	if len(weeks) != 1 {
		t.Fatalf("expected 1 week, got %d", len(weeks))
	}
	if weeks[0].Hours != 18 {
		t.Errorf("expected 18 hours, got %v", weeks[0].Hours)
	}
}

func TestGroupByWeek_DuplicateDateOverwrites(t *testing.T) {
	// A later entry for the same date overwrites the earlier one.
	weeks := timesheet.GroupByWeek([]timesheet.DayTotal{
		day("2025-03-10", 8),
		day("2025-03-10", 5),
	})
	if len(weeks) != 1 {
		t.Fatalf("expected 1 week, got %d", len(weeks))
	}
	if weeks[0].Hours != 5 {
		t.Errorf("expected overwrite to 5 hours, got %v", weeks[0].Hours)
	}
}

func TestGroupByWeek_Empty(t *testing.T) {
	if weeks := timesheet.GroupByWeek(nil); len(weeks) != 0 {
		t.Errorf("expected empty output for empty input, got %d weeks", len(weeks))
	}
}

func TestMondayOf(t *testing.T) {
	cases := []struct {
		date, want string
	}{
		{"2025-03-10", "2025-03-10"}, // Monday maps to itself
		{"2025-03-13", "2025-03-10"},
		{"2025-03-16", "2025-03-10"}, // Sunday belongs to the preceding Monday
		{"2025-01-01", "2024-12-30"},
	}
	for _, tc := range cases {
		d, _ := timesheet.ParseDate(tc.date)
		want, _ := timesheet.ParseDate(tc.want)
		if got := timesheet.MondayOf(d); !got.Equal(want) {
			t.Errorf("MondayOf(%s): expected %s, got %v", tc.date, tc.want, got)
		}
	}
}

func TestDayTotals(t *testing.T) {
	// GIVEN: Work days with shifts
	// WHEN: Resolving day totals
	// THEN: Each day carries its parsed date and summed hours

	days := []timesheet.WorkDay{
		{Date: "2025-03-10", Shifts: []timesheet.Shift{{Start: "09:00", End: "17:00"}}},
		{Date: "2025-03-11", Shifts: []timesheet.Shift{
			{Start: "09:00", End: "12:00"},
			{Start: "14:00", End: "18:00"},
		}},
	}

	totals, err := timesheet.DayTotals(days)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(totals) != 2 {
		t.Fatalf("expected 2 totals, got %d", len(totals))
	}
	if totals[0].Hours != 8 {
		t.Errorf("expected 8 hours on day 1, got %v", totals[0].Hours)
	}
	if totals[1].Hours != 7 {
		t.Errorf("expected 7 hours on day 2, got %v", totals[1].Hours)
	}
}

func TestDayTotals_MalformedDate(t *testing.T) {
	_, err := timesheet.DayTotals([]timesheet.WorkDay{{Date: "not-a-date"}})
	if !timesheet.IsFormatError(err) {
		t.Fatalf("expected format error, got %v", err)
	}
}

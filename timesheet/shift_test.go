package timesheet_test

import (
	"errors"
	"testing"

	"github.com/warp/payroll-engine/timesheet"
)

func TestShiftHours_SameDay(t *testing.T) {
	// GIVEN: Same-day shifts with start < end
	// WHEN: Computing their duration
	// THEN: Duration is exactly (end - start) in hours

	cases := []struct {
		start, end string
		want       float64
	}{
		{"09:00", "12:00", 3.0},
		{"09:30", "12:15", 2.75},
		{"08:00", "17:00", 9.0},
		{"06:00", "18:00", 12.0},
	}

	for _, tc := range cases {
		s := timesheet.Shift{Start: tc.start, End: tc.end}
		got, err := s.Hours("2025-03-10")
		if err != nil {
			t.Fatalf("%s-%s: unexpected error: %v", tc.start, tc.end, err)
		}
		if got != tc.want {
			t.Errorf("%s-%s: expected %v hours, got %v", tc.start, tc.end, tc.want, got)
		}
	}
}

func TestShiftHours_Overnight(t *testing.T) {
	// GIVEN: A shift ending before it starts
	// WHEN: Computing its duration
	// THEN: The end is read as next-day (23:00-02:00 is 3 hours)

	s := timesheet.Shift{Start: "23:00", End: "02:00"}
	got, err := s.Hours("2025-03-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 3.0 {
		t.Errorf("expected 3.0 hours, got %v", got)
	}
}

func TestShiftHours_EmptyShift(t *testing.T) {
	// GIVEN: A shift with identical start and end
	// WHEN: Computing its duration
	// THEN: It counts as 0 hours, not 24

	s := timesheet.Shift{Start: "00:00", End: "00:00"}
	got, err := s.Hours("2025-03-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Errorf("expected 0 hours, got %v", got)
	}
}

func TestShiftHours_NeverNegative(t *testing.T) {
	// Duration is non-negative for any valid clock pair.
	pairs := [][2]string{
		{"00:00", "00:00"}, {"12:00", "12:00"}, {"18:00", "06:00"},
		{"23:59", "00:00"}, {"00:01", "23:59"},
	}
	for _, p := range pairs {
		s := timesheet.Shift{Start: p[0], End: p[1]}
		got, err := s.Hours("2025-03-10")
		if err != nil {
			t.Fatalf("%s-%s: unexpected error: %v", p[0], p[1], err)
		}
		if got < 0 {
			t.Errorf("%s-%s: negative duration %v", p[0], p[1], got)
		}
	}
}

func TestShiftHours_MalformedTime(t *testing.T) {
	// GIVEN: A time that is not zero-padded HH:MM
	// WHEN: Computing the duration
	// THEN: A FormatError is returned

	s := timesheet.Shift{Start: "9h00", End: "12:00"}
	_, err := s.Hours("2025-03-10")
	if err == nil {
		t.Fatal("expected error for malformed time")
	}

	var fe *timesheet.FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FormatError, got %T", err)
	}
	if fe.Kind != "time" {
		t.Errorf("expected kind %q, got %q", "time", fe.Kind)
	}
	if !timesheet.IsFormatError(err) {
		t.Error("IsFormatError should report true")
	}
}

func TestShiftHours_MalformedDate(t *testing.T) {
	s := timesheet.Shift{Start: "09:00", End: "12:00"}
	_, err := s.Hours("10/03/2025")
	if err == nil {
		t.Fatal("expected error for malformed date")
	}
	var fe *timesheet.FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FormatError, got %T", err)
	}
	if fe.Kind != "date" {
		t.Errorf("expected kind %q, got %q", "date", fe.Kind)
	}
}

func TestWorkDayHours(t *testing.T) {
	// GIVEN: A day with a split shift (morning + evening)
	// WHEN: Summing the day
	// THEN: Total is the plain sum of shift durations

	day := timesheet.WorkDay{
		Date: "2025-03-10",
		Shifts: []timesheet.Shift{
			{Start: "09:00", End: "12:00"},
			{Start: "18:00", End: "22:30"},
		},
	}
	got, err := day.Hours()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 7.5 {
		t.Errorf("expected 7.5 hours, got %v", got)
	}
}

func TestWorkDayHours_Empty(t *testing.T) {
	day := timesheet.WorkDay{Date: "2025-03-10"}
	got, err := day.Hours()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Errorf("expected 0 hours for empty day, got %v", got)
	}
}

func TestWorkDayHours_OverlappingShiftsAreSummed(t *testing.T) {
	// Overlap is input-trust behavior: the engine sums, it does not dedup.
	day := timesheet.WorkDay{
		Date: "2025-03-10",
		Shifts: []timesheet.Shift{
			{Start: "09:00", End: "13:00"},
			{Start: "12:00", End: "14:00"},
		},
	}
	got, err := day.Hours()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 6.0 {
		t.Errorf("expected 6.0 hours (overlap summed), got %v", got)
	}
}

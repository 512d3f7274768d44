/*
Package sqlite provides SQLite-backed persistence for timesheets.

PURPOSE:
  Stores the raw inputs of the payroll engine - monthly timesheets with
  their work days and shifts - so salary computations can be replayed on
  demand. Computed results are never persisted; they are projections,
  recomputed from these inputs every time.

KEY TABLES:
  timesheets: One row per stored month: rate, contractual hours
  work_days:  Dated day rows belonging to a timesheet
  shifts:     Start/end wall-clock pairs belonging to a work day

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  multiple readers don't block and crash recovery is cleaner. Foreign keys
  are enabled so deleting a timesheet cascades to its days and shifts.

CONCURRENCY:
  A sync.RWMutex serializes writers. With a server-grade database the
  same patterns apply and the database handles concurrency instead.

USAGE:
  store, err := sqlite.New("./data/payroll.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  Use ":memory:" for tests.

SEE ALSO:
  - timesheet package: the WorkDay/Shift shapes stored here
  - api package: handlers reading and writing through this store
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/warp/payroll-engine/timesheet"
)

// ErrNotFound is returned when a referenced timesheet doesn't exist.
var ErrNotFound = errors.New("timesheet not found")

// Timesheet is one stored month of work records plus the contract scalars
// the salary engine needs.
type Timesheet struct {
	ID            string              `json:"id"`
	Month         int                 `json:"mois"`
	Year          int                 `json:"annee"`
	HourlyRate    float64             `json:"taux_horaire"`
	ContractHours float64             `json:"heures_contractuelles"`
	Days          []timesheet.WorkDay `json:"jours_travailles"`
	CreatedAt     time.Time           `json:"created_at"`
}

// Store persists timesheets in SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a store on the given database path. Use ":memory:" for an
// in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS timesheets (
		id TEXT PRIMARY KEY,
		month INTEGER NOT NULL,
		year INTEGER NOT NULL,
		hourly_rate REAL NOT NULL,
		contract_hours REAL NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS work_days (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timesheet_id TEXT NOT NULL REFERENCES timesheets(id) ON DELETE CASCADE,
		date TEXT NOT NULL,
		position INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS shifts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		work_day_id INTEGER NOT NULL REFERENCES work_days(id) ON DELETE CASCADE,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		position INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_work_days_timesheet ON work_days(timesheet_id);
	CREATE INDEX IF NOT EXISTS idx_shifts_work_day ON shifts(work_day_id);
	CREATE INDEX IF NOT EXISTS idx_timesheets_period ON timesheets(year, month);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveTimesheet inserts or replaces a timesheet with its days and shifts
// in one transaction. On update the previous days are dropped and the new
// set written, mirroring how collaborators submit full months.
func (s *Store) SaveTimesheet(ctx context.Context, ts Timesheet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO timesheets (id, month, year, hourly_rate, contract_hours, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			month = excluded.month,
			year = excluded.year,
			hourly_rate = excluded.hourly_rate,
			contract_hours = excluded.contract_hours`,
		ts.ID, ts.Month, ts.Year, ts.HourlyRate, ts.ContractHours,
		ts.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save timesheet: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM work_days WHERE timesheet_id = ?`, ts.ID); err != nil {
		return fmt.Errorf("failed to clear work days: %w", err)
	}

	for i, day := range ts.Days {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO work_days (timesheet_id, date, position) VALUES (?, ?, ?)`,
			ts.ID, day.Date, i)
		if err != nil {
			return fmt.Errorf("failed to save work day: %w", err)
		}
		dayID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get work day id: %w", err)
		}
		for j, sh := range day.Shifts {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO shifts (work_day_id, start_time, end_time, position) VALUES (?, ?, ?, ?)`,
				dayID, sh.Start, sh.End, j); err != nil {
				return fmt.Errorf("failed to save shift: %w", err)
			}
		}
	}

	return tx.Commit()
}

// GetTimesheet loads one timesheet with its full day/shift detail.
func (s *Store) GetTimesheet(ctx context.Context, id string) (Timesheet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ts Timesheet
	var createdAt string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, month, year, hourly_rate, contract_hours, created_at
		FROM timesheets WHERE id = ?`, id).
		Scan(&ts.ID, &ts.Month, &ts.Year, &ts.HourlyRate, &ts.ContractHours, &createdAt)
	if err == sql.ErrNoRows {
		return Timesheet{}, ErrNotFound
	}
	if err != nil {
		return Timesheet{}, fmt.Errorf("failed to load timesheet: %w", err)
	}
	ts.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

	if ts.Days, err = s.loadDays(ctx, id); err != nil {
		return Timesheet{}, err
	}
	return ts, nil
}

// ListTimesheets returns all timesheets with their detail, newest period
// first.
func (s *Store) ListTimesheets(ctx context.Context) ([]Timesheet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, month, year, hourly_rate, contract_hours, created_at
		FROM timesheets ORDER BY year DESC, month DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheets: %w", err)
	}
	defer rows.Close()

	var sheets []Timesheet
	for rows.Next() {
		var ts Timesheet
		var createdAt string
		if err := rows.Scan(&ts.ID, &ts.Month, &ts.Year, &ts.HourlyRate,
			&ts.ContractHours, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan timesheet: %w", err)
		}
		ts.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		sheets = append(sheets, ts)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range sheets {
		if sheets[i].Days, err = s.loadDays(ctx, sheets[i].ID); err != nil {
			return nil, err
		}
	}
	return sheets, nil
}

// DeleteTimesheet removes a timesheet; days and shifts cascade.
func (s *Store) DeleteTimesheet(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM timesheets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete timesheet: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) loadDays(ctx context.Context, timesheetID string) ([]timesheet.WorkDay, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, date FROM work_days
		WHERE timesheet_id = ? ORDER BY position`, timesheetID)
	if err != nil {
		return nil, fmt.Errorf("failed to load work days: %w", err)
	}
	defer rows.Close()

	var days []timesheet.WorkDay
	var dayIDs []int64
	for rows.Next() {
		var id int64
		var day timesheet.WorkDay
		if err := rows.Scan(&id, &day.Date); err != nil {
			return nil, fmt.Errorf("failed to scan work day: %w", err)
		}
		days = append(days, day)
		dayIDs = append(dayIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, dayID := range dayIDs {
		shifts, err := s.loadShifts(ctx, dayID)
		if err != nil {
			return nil, err
		}
		days[i].Shifts = shifts
	}
	return days, nil
}

func (s *Store) loadShifts(ctx context.Context, dayID int64) ([]timesheet.Shift, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT start_time, end_time FROM shifts
		WHERE work_day_id = ? ORDER BY position`, dayID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shifts: %w", err)
	}
	defer rows.Close()

	var shifts []timesheet.Shift
	for rows.Next() {
		var sh timesheet.Shift
		if err := rows.Scan(&sh.Start, &sh.End); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, sh)
	}
	return shifts, rows.Err()
}

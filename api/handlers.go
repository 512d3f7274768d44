/*
handlers.go - HTTP API handlers for the payroll engine

PURPOSE:
  Exposes the salary computation engine via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to domain logic.

ENDPOINTS:
  Salary:
    POST   /api/salary/weekly          Weekly gross breakdown from raw hours
    POST   /api/salary/monthly         Monthly gross from work days (per-week)
    POST   /api/salary/monthly/legacy  Monthly gross treating the month as one block
    POST   /api/salary/net             Net estimate from monthly gross

  Contracts:
    GET    /api/contracts              Available contract configurations

  Timesheets:
    GET    /api/timesheets             List stored timesheets
    POST   /api/timesheets             Record a monthly timesheet
    GET    /api/timesheets/{id}        Get one timesheet
    DELETE /api/timesheets/{id}        Delete a timesheet
    GET    /api/timesheets/{id}/salary  Monthly gross for the stored month
    GET    /api/timesheets/{id}/net     Net estimate for the stored month
    GET    /api/timesheets/{id}/payslip Rounded payslip projection

ARCHITECTURE:
  Handler struct holds all dependencies:
  - Store: timesheet persistence
  - Calc:  contract lookup + gross computations
  - Net:   net salary estimator

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, malformed dates/times
  - 404: Timesheet not found
  - 500: Internal errors

SECURITY NOTE:
  No authentication middleware. All endpoints are public.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/warp/payroll-engine/salary"
	"github.com/warp/payroll-engine/store/sqlite"
	"github.com/warp/payroll-engine/timesheet"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store *sqlite.Store
	Calc  salary.Calculator
	Net   salary.NetEstimator
}

// NewHandler creates a new handler with the given store and the built-in
// contract catalog.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{
		Store: store,
		Calc:  salary.NewCalculator(),
		Net:   salary.NewNetEstimator(),
	}
}

// =============================================================================
// SALARY HANDLERS
// =============================================================================

// ComputeWeeklySalary computes the gross breakdown for one week of hours.
// POST /api/salary/weekly
func (h *Handler) ComputeWeeklySalary(w http.ResponseWriter, r *http.Request) {
	var req WeeklySalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := validateRates(req.ContractHours, req.HourlyRate); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if req.Hours < 0 {
		writeError(w, http.StatusBadRequest, "heures must not be negative", nil)
		return
	}

	result := h.Calc.ComputeWeekly(req.Hours, req.ContractHours, req.HourlyRate)
	writeJSON(w, http.StatusOK, result)
}

// ComputeMonthlySalary computes a month's gross from raw work days, week
// by calendar week.
// POST /api/salary/monthly
func (h *Handler) ComputeMonthlySalary(w http.ResponseWriter, r *http.Request) {
	var req MonthlySalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := validateRates(req.ContractHours, req.HourlyRate); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	result, err := h.Calc.ComputeMonthly(req.Days, req.ContractHours, req.HourlyRate)
	if err != nil {
		writeComputeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// ComputeMonthlyLegacySalary computes a month's gross treating all hours
// as one block against the monthlyized contract baseline.
// POST /api/salary/monthly/legacy
func (h *Handler) ComputeMonthlyLegacySalary(w http.ResponseWriter, r *http.Request) {
	var req MonthlySalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := validateRates(req.ContractHours, req.HourlyRate); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	result, err := h.Calc.ComputeMonthlyLegacy(req.Days, req.ContractHours, req.HourlyRate)
	if err != nil {
		writeComputeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// EstimateNetSalary estimates net pay from a monthly gross amount.
// POST /api/salary/net
func (h *Handler) EstimateNetSalary(w http.ResponseWriter, r *http.Request) {
	var req NetSalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.GrossMonthly < 0 {
		writeError(w, http.StatusBadRequest, "salaire_brut must not be negative", nil)
		return
	}

	writeJSON(w, http.StatusOK, h.Net.Estimate(req.GrossMonthly))
}

// ListContracts returns the available contract configurations.
// GET /api/contracts
func (h *Handler) ListContracts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Calc.AvailableContracts())
}

// =============================================================================
// TIMESHEET HANDLERS
// =============================================================================

// CreateTimesheet records a monthly timesheet.
// POST /api/timesheets
func (h *Handler) CreateTimesheet(w http.ResponseWriter, r *http.Request) {
	var req CreateTimesheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Month < 1 || req.Month > 12 {
		writeError(w, http.StatusBadRequest, "mois must be between 1 and 12", nil)
		return
	}
	if req.Year < 1 {
		writeError(w, http.StatusBadRequest, "annee must be positive", nil)
		return
	}
	if err := validateRates(req.ContractHours, req.HourlyRate); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	// Reject malformed dates/times up front so stored sheets always compute.
	if _, err := timesheet.DayTotals(req.Days); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid work days", err)
		return
	}

	ts := sqlite.Timesheet{
		ID:            uuid.NewString(),
		Month:         req.Month,
		Year:          req.Year,
		HourlyRate:    req.HourlyRate,
		ContractHours: req.ContractHours,
		Days:          req.Days,
		CreatedAt:     time.Now().UTC(),
	}
	if err := h.Store.SaveTimesheet(r.Context(), ts); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save timesheet", err)
		return
	}

	writeJSON(w, http.StatusCreated, toTimesheetDTO(ts))
}

// ListTimesheets returns all stored timesheets, newest period first.
// GET /api/timesheets
func (h *Handler) ListTimesheets(w http.ResponseWriter, r *http.Request) {
	sheets, err := h.Store.ListTimesheets(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list timesheets", err)
		return
	}

	dtos := make([]TimesheetDTO, len(sheets))
	for i, ts := range sheets {
		dtos[i] = toTimesheetDTO(ts)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetTimesheet returns a single timesheet.
// GET /api/timesheets/{id}
func (h *Handler) GetTimesheet(w http.ResponseWriter, r *http.Request) {
	ts, ok := h.loadTimesheet(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toTimesheetDTO(ts))
}

// DeleteTimesheet deletes a timesheet.
// DELETE /api/timesheets/{id}
func (h *Handler) DeleteTimesheet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	err := h.Store.DeleteTimesheet(r.Context(), id)
	if errors.Is(err, sqlite.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Timesheet not found", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete timesheet", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetTimesheetSalary computes the monthly gross for a stored timesheet.
// GET /api/timesheets/{id}/salary
func (h *Handler) GetTimesheetSalary(w http.ResponseWriter, r *http.Request) {
	ts, ok := h.loadTimesheet(w, r)
	if !ok {
		return
	}

	result, err := h.Calc.ComputeMonthly(ts.Days, ts.ContractHours, ts.HourlyRate)
	if err != nil {
		writeComputeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// GetTimesheetNet estimates the net pay for a stored timesheet's month.
// GET /api/timesheets/{id}/net
func (h *Handler) GetTimesheetNet(w http.ResponseWriter, r *http.Request) {
	ts, ok := h.loadTimesheet(w, r)
	if !ok {
		return
	}

	gross, err := h.Calc.ComputeMonthly(ts.Days, ts.ContractHours, ts.HourlyRate)
	if err != nil {
		writeComputeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.Net.Estimate(gross.GrossTotal))
}

// GetTimesheetPayslip returns the rounded payslip projection for a stored
// timesheet. All amounts are rounded to 2 decimals at this boundary only.
// GET /api/timesheets/{id}/payslip
func (h *Handler) GetTimesheetPayslip(w http.ResponseWriter, r *http.Request) {
	ts, ok := h.loadTimesheet(w, r)
	if !ok {
		return
	}

	gross, err := h.Calc.ComputeMonthly(ts.Days, ts.ContractHours, ts.HourlyRate)
	if err != nil {
		writeComputeError(w, err)
		return
	}
	net := h.Net.Estimate(gross.GrossTotal)

	writeJSON(w, http.StatusOK, buildPayslip(ts, gross, net, h.Net.Disclaimer()))
}

// =============================================================================
// PAYSLIP PROJECTION
// =============================================================================

func buildPayslip(ts sqlite.Timesheet, gross salary.MonthlyResult, net salary.NetResult, disclaimer string) PayslipDTO {
	rate := decimal.NewFromFloat(ts.HourlyRate)

	lines := []PayslipLineDTO{{
		Label:  "Heures normales",
		Hours:  money(gross.NormalHours),
		Rate:   rate.StringFixed(2),
		Amount: money(gross.NormalPay),
	}}
	if gross.ComplementaryHours > 0 {
		lines = append(lines, PayslipLineDTO{
			Label:  "Heures complementaires",
			Hours:  money(gross.ComplementaryHours),
			Amount: money(gross.ComplementaryPay),
		})
	}
	if gross.ComplementaryMajoredHours > 0 {
		lines = append(lines, PayslipLineDTO{
			Label:  "Heures complementaires majorees",
			Hours:  money(gross.ComplementaryMajoredHours),
			Amount: money(gross.ComplementaryMajoredPay),
		})
	}
	for _, slice := range gross.OvertimeSlices {
		lines = append(lines, PayslipLineDTO{
			Label:  fmt.Sprintf("Heures supplementaires +%g%%", slice.SurchargePct),
			Hours:  money(slice.Hours),
			Rate:   money(slice.MajoredRate),
			Amount: money(slice.Pay),
		})
	}

	return PayslipDTO{
		Period:        fmt.Sprintf("%02d/%d", ts.Month, ts.Year),
		ContractHours: ts.ContractHours,
		Lines:         lines,
		Gross:         money(net.Gross),
		Contributions: money(net.Contributions),
		NetBeforeTax:  money(net.NetBeforeTax),
		MonthlyTax:    money(net.MonthlyTax),
		Net:           money(net.NetFinal),
		Disclaimer:    disclaimer,
	}
}

// money renders a float amount rounded half-up to 2 decimals.
func money(v float64) string {
	return decimal.NewFromFloat(v).Round(2).StringFixed(2)
}

// =============================================================================
// HELPERS
// =============================================================================

func (h *Handler) loadTimesheet(w http.ResponseWriter, r *http.Request) (sqlite.Timesheet, bool) {
	id := chi.URLParam(r, "id")
	ts, err := h.Store.GetTimesheet(r.Context(), id)
	if errors.Is(err, sqlite.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Timesheet not found", nil)
		return sqlite.Timesheet{}, false
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get timesheet", err)
		return sqlite.Timesheet{}, false
	}
	return ts, true
}

func validateRates(contractHours, hourlyRate float64) error {
	if contractHours <= 0 {
		return errors.New("heures_contractuelles must be positive")
	}
	if hourlyRate <= 0 {
		return errors.New("taux_horaire must be positive")
	}
	return nil
}

func toTimesheetDTO(ts sqlite.Timesheet) TimesheetDTO {
	days := ts.Days
	if days == nil {
		days = []timesheet.WorkDay{}
	}
	return TimesheetDTO{
		ID:            ts.ID,
		Month:         ts.Month,
		Year:          ts.Year,
		HourlyRate:    ts.HourlyRate,
		ContractHours: ts.ContractHours,
		Days:          days,
		CreatedAt:     ts.CreatedAt.Format(time.RFC3339),
	}
}

// writeComputeError maps engine errors to HTTP statuses. Malformed dates
// or clock values in work days are client errors.
func writeComputeError(w http.ResponseWriter, err error) {
	if timesheet.IsFormatError(err) {
		writeError(w, http.StatusBadRequest, "Invalid work days", err)
		return
	}
	writeError(w, http.StatusInternalServerError, "Computation failed", err)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. The salary engine
  already serializes with the French field names the payroll contract
  requires, so responses for computations reuse the engine types directly;
  the DTOs here cover requests and the few surfaces that need their own
  shape (timesheets, payslips).

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

TYPES:
  Salary:
    WeeklySalaryRequest, MonthlySalaryRequest, NetSalaryRequest

  Timesheets:
    TimesheetDTO, CreateTimesheetRequest

  Payslip:
    PayslipDTO, PayslipLineDTO

MONEY FORMATTING:
  Engine results carry raw float64 amounts. The payslip projection is the
  one place amounts are rounded, using shopspring/decimal with 2 fractional
  digits, so clients get stable money strings.

SEE ALSO:
  - handlers.go: Uses these types
  - salary/weekly.go, salary/net.go: Engine result shapes returned as-is
*/
package api

import (
	"github.com/warp/payroll-engine/timesheet"
)

// =============================================================================
// SALARY REQUESTS
// =============================================================================

// WeeklySalaryRequest asks for a single-week gross salary breakdown.
type WeeklySalaryRequest struct {
	Hours         float64 `json:"heures"`
	ContractHours float64 `json:"heures_contractuelles"`
	HourlyRate    float64 `json:"taux_horaire"`
}

// MonthlySalaryRequest asks for a month computed from raw work days.
type MonthlySalaryRequest struct {
	Days          []timesheet.WorkDay `json:"jours_travailles"`
	ContractHours float64             `json:"heures_contractuelles"`
	HourlyRate    float64             `json:"taux_horaire"`
}

// NetSalaryRequest asks for a net estimate from a monthly gross amount.
type NetSalaryRequest struct {
	GrossMonthly float64 `json:"salaire_brut"`
}

// =============================================================================
// TIMESHEET TYPES
// =============================================================================

// CreateTimesheetRequest is the request to record a monthly timesheet.
type CreateTimesheetRequest struct {
	Month         int                 `json:"mois"`
	Year          int                 `json:"annee"`
	HourlyRate    float64             `json:"taux_horaire"`
	ContractHours float64             `json:"heures_contractuelles"`
	Days          []timesheet.WorkDay `json:"jours_travailles"`
}

// TimesheetDTO represents a stored timesheet in API responses.
type TimesheetDTO struct {
	ID            string              `json:"id"`
	Month         int                 `json:"mois"`
	Year          int                 `json:"annee"`
	HourlyRate    float64             `json:"taux_horaire"`
	ContractHours float64             `json:"heures_contractuelles"`
	Days          []timesheet.WorkDay `json:"jours_travailles"`
	CreatedAt     string              `json:"created_at,omitempty"`
}

// =============================================================================
// PAYSLIP TYPES
// =============================================================================

// PayslipLineDTO is one labelled line of a payslip, amounts rounded
// to 2 decimals and rendered as strings.
type PayslipLineDTO struct {
	Label  string `json:"libelle"`
	Hours  string `json:"heures,omitempty"`
	Rate   string `json:"taux,omitempty"`
	Amount string `json:"montant"`
}

// PayslipDTO is the rounded display projection of a timesheet's month:
// gross breakdown lines followed by the net estimate.
type PayslipDTO struct {
	Period        string           `json:"periode"`
	ContractHours float64          `json:"heures_contractuelles"`
	Lines         []PayslipLineDTO `json:"lignes"`
	Gross         string           `json:"salaire_brut"`
	Contributions string           `json:"cotisations_sociales"`
	NetBeforeTax  string           `json:"salaire_net_avant_impot"`
	MonthlyTax    string           `json:"impot_mensuel"`
	Net           string           `json:"salaire_net_final"`
	Disclaimer    string           `json:"avertissement"`
}

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

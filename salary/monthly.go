/*
monthly.go - Monthly aggregation of weekly tier results

PURPOSE:
  Runs the weekly tiered computation once per Monday-aligned week of a
  month's work days and sums the tier results into a monthly gross
  breakdown, keeping a per-week detail trail.

TWO MONTHLY COMPUTATIONS:
  ComputeMonthly      - weekly-grouped tiering; the default. Statutory
                        thresholds apply per week, so this is the correct
                        reading of the rate tables.
  ComputeMonthlyLegacy - the direct monthly-threshold computation kept for
                        backward compatibility with older computed
                        artifacts: the whole month's hours against one
                        monthly-normal baseline (weekly hours x 52/12),
                        ignoring weekly grouping. Not used by default.

  Both stay callable; they are intentionally not merged.

SEE ALSO:
  - weekly.go: The per-week computation
  - timesheet package: day totals and weekly grouping
*/
package salary

import (
	"github.com/warp/payroll-engine/timesheet"
)

// =============================================================================
// RESULT TYPES
// =============================================================================

// WeekDetail is one week's contribution to a monthly result.
type WeekDetail struct {
	Week  int     `json:"semaine"`
	Hours float64 `json:"heures"`
	Gross float64 `json:"salaire"`
}

// MonthlyResult is the sum of every contributing week's tier breakdown,
// plus the per-week trail. Field names follow the payroll JSON contract.
type MonthlyResult struct {
	Contract                  string          `json:"contrat"`
	ContractHours             float64         `json:"heures_contractuelles"`
	TotalHours                float64         `json:"total_heures"`
	HourlyRate                float64         `json:"taux_horaire"`
	NormalHours               float64         `json:"heures_normales"`
	ComplementaryHours        float64         `json:"heures_complementaires"`
	ComplementaryMajoredHours float64         `json:"heures_complementaires_majorees"`
	OvertimeSlices            []OvertimeSlice `json:"heures_supplementaires"`
	NormalPay                 float64         `json:"salaire_normal"`
	ComplementaryPay          float64         `json:"salaire_complementaire"`
	ComplementaryMajoredPay   float64         `json:"salaire_complementaire_majore"`
	OvertimePay               float64         `json:"salaire_supplementaire"`
	GrossTotal                float64         `json:"salaire_brut_total"`
	TotalOvertimeHours        float64         `json:"total_heures_supplementaires"`
	WeekCount                 int             `json:"nb_semaines_calculees"`
	WeekDetails               []WeekDetail    `json:"detail_semaines"`
}

// OvertimeSummary is the legacy hours-only view of a month: how many hours
// were normal vs. overtime, with no pay amounts.
type OvertimeSummary struct {
	NormalHours   float64 `json:"heures_normales"`
	OvertimeHours float64 `json:"heures_supplementaires"`
	TotalHours    float64 `json:"total_heures"`
}

// =============================================================================
// MONTHLY COMPUTATIONS
// =============================================================================

// ComputeMonthly groups the work days into calendar weeks, runs the weekly
// tiered computation for each week with recorded hours, and sums the
// results. Weeks without recorded work contribute nothing and are not
// counted. The only error source is malformed date/time input.
func (c Calculator) ComputeMonthly(days []timesheet.WorkDay, contractualHours, hourlyRate float64) (MonthlyResult, error) {
	totals, err := timesheet.DayTotals(days)
	if err != nil {
		return MonthlyResult{}, err
	}

	totalHours := 0.0
	for _, d := range totals {
		totalHours += d.Hours
	}
	weeks := timesheet.GroupByWeek(totals)

	res := MonthlyResult{
		Contract:       contractLabel(contractualHours),
		ContractHours:  contractualHours,
		TotalHours:     totalHours,
		HourlyRate:     hourlyRate,
		OvertimeSlices: []OvertimeSlice{},
		WeekCount:      len(weeks),
		WeekDetails:    []WeekDetail{},
	}

	for i, week := range weeks {
		wr := c.ComputeWeekly(week.Hours, contractualHours, hourlyRate)

		res.NormalHours += wr.NormalHours
		res.ComplementaryHours += wr.ComplementaryHours
		res.ComplementaryMajoredHours += wr.ComplementaryMajoredHours
		res.NormalPay += wr.NormalPay
		res.ComplementaryPay += wr.ComplementaryPay
		res.ComplementaryMajoredPay += wr.ComplementaryMajoredPay
		res.OvertimePay += wr.OvertimePay
		res.GrossTotal += wr.GrossTotal
		res.OvertimeSlices = append(res.OvertimeSlices, wr.OvertimeSlices...)

		res.WeekDetails = append(res.WeekDetails, WeekDetail{
			Week:  i + 1,
			Hours: week.Hours,
			Gross: wr.GrossTotal,
		})
	}

	for _, slice := range res.OvertimeSlices {
		res.TotalOvertimeHours += slice.Hours
	}
	return res, nil
}

// ComputeMonthlyLegacy is the pre-weekly-grouping computation: the month's
// total hours against a single monthly-normal baseline of contractual
// hours x 52/12. Kept callable for parity with older computed artifacts;
// ComputeMonthly is the default.
func (c Calculator) ComputeMonthlyLegacy(days []timesheet.WorkDay, contractualHours, hourlyRate float64) (WeeklyResult, error) {
	totals, err := timesheet.DayTotals(days)
	if err != nil {
		return WeeklyResult{}, err
	}
	totalHours := 0.0
	for _, d := range totals {
		totalHours += d.Hours
	}
	return c.ComputeWeekly(totalHours, MonthlyNormalHours(contractualHours), hourlyRate), nil
}

// OvertimeHoursSummary reports the month's normal vs. overtime hours using
// the weekly rate table against the whole month's total (legacy view).
func (c Calculator) OvertimeHoursSummary(days []timesheet.WorkDay, contractualHours, hourlyRate float64) (OvertimeSummary, error) {
	totals, err := timesheet.DayTotals(days)
	if err != nil {
		return OvertimeSummary{}, err
	}
	totalHours := 0.0
	for _, d := range totals {
		totalHours += d.Hours
	}
	wr := c.ComputeWeekly(totalHours, contractualHours, hourlyRate)
	return OvertimeSummary{
		NormalHours:   wr.NormalHours,
		OvertimeHours: wr.TotalOvertimeHours,
		TotalHours:    totalHours,
	}, nil
}

// MonthlyNormalHours converts weekly contractual hours to the monthly
// baseline used by the legacy computation (52 weeks over 12 months).
func MonthlyNormalHours(weeklyHours float64) float64 {
	return weeklyHours * 52 / 12
}

/*
weekly.go - Tiered salary computation for one week

PURPOSE:
  Partitions a week's worked hours into normal / complementary /
  complementary-majoree / overtime tiers per the contract's bracket table
  and prices each tier at the base rate plus its surcharge.

ALGORITHM:
  1. Normal hours = min(worked, contractual) at base rate; if nothing is
     left the other tiers stay at zero
  2. Complementary brackets (sub-35h contracts only) consume the excess in
     order up to the 35h legal threshold
  3. Overtime brackets consume hours beyond max(35h, contractual), each
     consumed slice recorded individually for traceability
  4. Gross = normal + complementary + complementary-majoree + overtime pay

  Both walks share one bracket-consumption helper so the range arithmetic
  exists exactly once.

FALLBACK POLICY:
  A contractual-hours value absent from the table is not an error. The
  whole excess above contractual hours is priced as flat +25% overtime
  with no tier structure. This is a distinct code path, kept explicit.

NUMERIC SEMANTICS:
  Plain float64 throughout; no internal rounding. Money presentation
  (2-decimal formatting) is the display layer's concern.

SEE ALSO:
  - contract.go: Bracket tables and lookup
  - monthly.go: Runs this once per week of a month
*/
package salary

import (
	"math"
)

// overtimeFloor is the legal full-time threshold. Overtime starts above
// max(overtimeFloor, contractual hours) even when complementary brackets
// end lower.
const overtimeFloor = 35.0

// =============================================================================
// RESULT TYPES
// =============================================================================

// OvertimeSlice records one consumed overtime bracket slice. Field names
// follow the payroll JSON contract.
type OvertimeSlice struct {
	From         float64  `json:"de"`
	To           *float64 `json:"a"`
	Hours        float64  `json:"heures"`
	SurchargePct float64  `json:"majoration"`
	MajoredRate  float64  `json:"taux_majore"`
	Pay          float64  `json:"salaire"`
}

// WeeklyResult is the tiered breakdown of one computation period.
type WeeklyResult struct {
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
}

// =============================================================================
// BRACKET CONSUMPTION
// =============================================================================

// consume returns the hours of worked that fall within [b.From, b.To) once
// the lower bound is raised to floor, capped at remaining. Used identically
// for complementary and overtime walks.
func consume(worked float64, b Bracket, floor, remaining float64) float64 {
	if worked <= b.From {
		return 0
	}
	upper := worked
	if b.To != nil && *b.To < upper {
		upper = *b.To
	}
	lower := b.From
	if floor > lower {
		lower = floor
	}
	hours := upper - lower
	if hours > remaining {
		hours = remaining
	}
	if hours <= 0 {
		return 0
	}
	return hours
}

// =============================================================================
// WEEKLY COMPUTATION
// =============================================================================

// ComputeWeekly partitions hoursWorked against the contract's bracket table
// and prices each tier. Unknown contractual-hours values use the default
// flat +25% overtime policy.
func (c Calculator) ComputeWeekly(hoursWorked, contractualHours, hourlyRate float64) WeeklyResult {
	cfg, ok := c.Lookup(contractualHours)
	if !ok {
		return defaultWeekly(hoursWorked, contractualHours, hourlyRate)
	}

	res := WeeklyResult{
		Contract:       cfg.Label,
		ContractHours:  contractualHours,
		TotalHours:     hoursWorked,
		HourlyRate:     hourlyRate,
		OvertimeSlices: []OvertimeSlice{},
	}

	normal := math.Min(hoursWorked, contractualHours)
	res.NormalHours = normal
	res.NormalPay = normal * hourlyRate

	remaining := hoursWorked - normal
	if remaining <= 0 {
		res.GrossTotal = res.NormalPay
		return res
	}

	for _, b := range cfg.Complementary {
		if remaining <= 0 {
			break
		}
		hours := consume(hoursWorked, b, contractualHours, remaining)
		if hours <= 0 {
			continue
		}
		pay := hours * hourlyRate * (1 + b.SurchargePct/100)
		if b.Kind == KindComplementaryMajored {
			res.ComplementaryMajoredHours += hours
			res.ComplementaryMajoredPay += pay
		} else {
			res.ComplementaryHours += hours
			res.ComplementaryPay += pay
		}
		remaining -= hours
	}

	threshold := math.Max(overtimeFloor, contractualHours)
	if remaining > 0 && hoursWorked > threshold {
		overtimeLeft := hoursWorked - threshold
		for _, b := range cfg.Overtime {
			if overtimeLeft <= 0 {
				break
			}
			hours := consume(hoursWorked, b, threshold, overtimeLeft)
			if hours <= 0 {
				continue
			}
			rate := hourlyRate * (1 + b.SurchargePct/100)
			res.OvertimeSlices = append(res.OvertimeSlices, OvertimeSlice{
				From:         b.From,
				To:           b.To,
				Hours:        hours,
				SurchargePct: b.SurchargePct,
				MajoredRate:  rate,
				Pay:          hours * rate,
			})
			res.OvertimePay += hours * rate
			overtimeLeft -= hours
		}
	}

	res.GrossTotal = res.NormalPay + res.ComplementaryPay +
		res.ComplementaryMajoredPay + res.OvertimePay
	for _, slice := range res.OvertimeSlices {
		res.TotalOvertimeHours += slice.Hours
	}
	return res
}

// defaultWeekly is the fallback for contract types missing from the table:
// normal hours at base rate, the whole excess as flat +25% overtime.
func defaultWeekly(hoursWorked, contractualHours, hourlyRate float64) WeeklyResult {
	const defaultSurchargePct = 25.0

	res := WeeklyResult{
		Contract:       contractLabel(contractualHours),
		ContractHours:  contractualHours,
		TotalHours:     hoursWorked,
		HourlyRate:     hourlyRate,
		OvertimeSlices: []OvertimeSlice{},
	}

	normal := math.Min(hoursWorked, contractualHours)
	res.NormalHours = normal
	res.NormalPay = normal * hourlyRate

	excess := math.Max(0, hoursWorked-contractualHours)
	if excess > 0 {
		rate := hourlyRate * (1 + defaultSurchargePct/100)
		res.OvertimeSlices = append(res.OvertimeSlices, OvertimeSlice{
			From:         contractualHours,
			To:           nil,
			Hours:        excess,
			SurchargePct: defaultSurchargePct,
			MajoredRate:  rate,
			Pay:          excess * rate,
		})
		res.OvertimePay = excess * rate
		res.TotalOvertimeHours = excess
	}

	res.GrossTotal = res.NormalPay + res.OvertimePay
	return res
}

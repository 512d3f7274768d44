/*
Package salary implements the tiered gross and net payroll computations.

PURPOSE:
  Turns hour totals into money: weekly tiered gross pay (normal /
  complementary / complementary-majoree / overtime brackets per contract
  type), monthly aggregation of the weekly results, and an approximate net
  figure after statutory deductions.

KEY CONCEPTS IN THIS FILE (contract.go):
  - Bracket: A contiguous hour range with a surcharge percentage
  - ContractConfig: The ordered bracket table for one contract type,
    keyed by its weekly contractual hours (20/25/30/35/39)

BRACKET STRUCTURE:
  Sub-35h contracts carry complementary brackets between their contractual
  hours and the 35h legal threshold. Every contract carries overtime
  brackets above max(35h, contractual hours), commonly +10% / +20% / +50%,
  the last one open-ended.

DESIGN PRINCIPLES:
  1. Static data: the built-in table is immutable configuration; Contracts()
     returns a fresh copy so callers cannot mutate the shared table
  2. Exact-match lookup: an unknown contractual-hours value is never an
     error - the weekly computation falls back to a flat +25% policy
  3. Custom tables: the factory package parses JSON into []ContractConfig
     for deployments with bespoke bargaining agreements

USAGE:
  calc := salary.NewCalculator()
  res := calc.ComputeWeekly(43, 35, 15.0)
  // res.GrossTotal == 663.0

SEE ALSO:
  - weekly.go: The bracket-consumption algorithm
  - monthly.go: Weekly-grouped and legacy monthly aggregation
  - net.go: Net salary estimation
  - factory/contract.go: JSON contract table loading
*/
package salary

import (
	"fmt"
)

// =============================================================================
// BRACKETS
// =============================================================================

// BracketKind distinguishes how consumed hours are attributed in results.
type BracketKind string

const (
	// KindComplementary: first surcharge band above contractual hours,
	// part-time contracts only.
	KindComplementary BracketKind = "complementaires"
	// KindComplementaryMajored: second, higher-surcharge band, still below
	// the 35h legal threshold.
	KindComplementaryMajored BracketKind = "complementaires majorees"
	// KindOvertime: hours beyond max(35h, contractual hours).
	KindOvertime BracketKind = "supplementaires"
)

// Bracket is one hour range with its surcharge. To is nil for the final,
// open-ended bracket. Bounds are absolute weekly hour marks, not offsets.
type Bracket struct {
	From         float64     `json:"de"`
	To           *float64    `json:"a"`
	Kind         BracketKind `json:"type,omitempty"`
	SurchargePct float64     `json:"majoration"`
}

// ContractConfig is the bracket table for one contract type.
type ContractConfig struct {
	Label         string    `json:"contrat"`
	Hours         float64   `json:"heures_contractuelles"`
	Complementary []Bracket `json:"heures_complementaires"`
	Overtime      []Bracket `json:"heures_supplementaires"`
}

// ContractOption is a catalog entry for UI population.
type ContractOption struct {
	Label string  `json:"contrat"`
	Hours float64 `json:"heures_contractuelles"`
}

func ptr(v float64) *float64 { return &v }

// builtinContracts is the statutory surcharge configuration per contract
// type. Bounds are weekly hour marks; the last overtime bracket is open.
var builtinContracts = []ContractConfig{
	{
		Label: "20h",
		Hours: 20,
		Complementary: []Bracket{
			{From: 20, To: ptr(22), Kind: KindComplementary, SurchargePct: 10},
			{From: 22, To: ptr(35), Kind: KindComplementaryMajored, SurchargePct: 25},
		},
		Overtime: []Bracket{
			{From: 35, To: ptr(39), Kind: KindOvertime, SurchargePct: 10},
			{From: 39, To: ptr(43), Kind: KindOvertime, SurchargePct: 20},
			{From: 43, To: nil, Kind: KindOvertime, SurchargePct: 50},
		},
	},
	{
		Label: "25h",
		Hours: 25,
		Complementary: []Bracket{
			{From: 25, To: ptr(27.5), Kind: KindComplementary, SurchargePct: 10},
			{From: 27.5, To: ptr(35), Kind: KindComplementaryMajored, SurchargePct: 25},
		},
		Overtime: []Bracket{
			{From: 35, To: ptr(39), Kind: KindOvertime, SurchargePct: 10},
			{From: 39, To: ptr(43), Kind: KindOvertime, SurchargePct: 20},
			{From: 43, To: nil, Kind: KindOvertime, SurchargePct: 50},
		},
	},
	{
		Label: "30h",
		Hours: 30,
		Complementary: []Bracket{
			{From: 30, To: ptr(33), Kind: KindComplementary, SurchargePct: 10},
			{From: 33, To: ptr(35), Kind: KindComplementaryMajored, SurchargePct: 25},
		},
		Overtime: []Bracket{
			{From: 35, To: ptr(39), Kind: KindOvertime, SurchargePct: 10},
			{From: 39, To: ptr(43), Kind: KindOvertime, SurchargePct: 20},
			{From: 43, To: nil, Kind: KindOvertime, SurchargePct: 50},
		},
	},
	{
		Label: "35h",
		Hours: 35,
		Overtime: []Bracket{
			{From: 35, To: ptr(39), Kind: KindOvertime, SurchargePct: 10},
			{From: 39, To: ptr(43), Kind: KindOvertime, SurchargePct: 20},
			{From: 43, To: nil, Kind: KindOvertime, SurchargePct: 50},
		},
	},
	{
		Label: "39h",
		Hours: 39,
		Overtime: []Bracket{
			{From: 39, To: ptr(43), Kind: KindOvertime, SurchargePct: 20},
			{From: 43, To: nil, Kind: KindOvertime, SurchargePct: 50},
		},
	},
}

// =============================================================================
// CALCULATOR
// =============================================================================

// Calculator computes tiered salaries against an immutable contract table.
// The zero value is not usable; construct with NewCalculator or
// NewCalculatorWithContracts. A Calculator is safe for concurrent use.
type Calculator struct {
	contracts []ContractConfig
}

// NewCalculator returns a calculator backed by the built-in contract table.
func NewCalculator() Calculator {
	return Calculator{contracts: builtinContracts}
}

// NewCalculatorWithContracts returns a calculator backed by a custom table,
// typically parsed from JSON by the factory package.
func NewCalculatorWithContracts(contracts []ContractConfig) Calculator {
	return Calculator{contracts: contracts}
}

// Lookup finds the contract table entry matching the contractual hours
// exactly. The second result is false when no entry matches; the weekly
// computation then uses the default fallback policy.
func (c Calculator) Lookup(contractualHours float64) (ContractConfig, bool) {
	for _, cfg := range c.contracts {
		if cfg.Hours == contractualHours {
			return cfg, true
		}
	}
	return ContractConfig{}, false
}

// AvailableContracts returns the catalog of configured contract types.
func (c Calculator) AvailableContracts() []ContractOption {
	options := make([]ContractOption, 0, len(c.contracts))
	for _, cfg := range c.contracts {
		options = append(options, ContractOption{Label: cfg.Label, Hours: cfg.Hours})
	}
	return options
}

// contractLabel names a contract, configured or not, e.g. "28h".
func contractLabel(contractualHours float64) string {
	return fmt.Sprintf("%gh", contractualHours)
}

/*
Package factory provides JSON to Go contract-table conversion.

PURPOSE:
  Converts JSON contract definitions into salary.ContractConfig tables.
  This enables bracket configuration without code changes - a deployment
  with a bespoke bargaining agreement can define its surcharge bands in
  JSON, and the factory creates the proper Go structs.

JSON SCHEMA:
  [
    {
      "contrat": "20h",
      "heures_contractuelles": 20,
      "heures_complementaires": [
        {"de": 20, "a": 22, "type": "complementaires", "majoration": 10},
        {"de": 22, "a": 35, "type": "complementaires majorees", "majoration": 25}
      ],
      "heures_supplementaires": [
        {"de": 35, "a": 39, "majoration": 10},
        {"de": 39, "a": 43, "majoration": 20},
        {"de": 43, "a": null, "majoration": 50}
      ]
    }
  ]

  "a": null marks the open-ended final bracket. The accented spellings
  ("complémentaires", "complémentaires majorées") are accepted for parity
  with previously exported configuration.

KEY FEATURES:
  - Validates bracket ordering and bounds
  - Defaults a missing label to "<hours>h"
  - Rejects duplicate contractual-hours keys

USAGE:
  contracts, err := factory.ParseContracts(jsonBytes)
  if err != nil { ... }
  calc := salary.NewCalculatorWithContracts(contracts)

SEE ALSO:
  - salary/contract.go: ContractConfig and the built-in table
*/
package factory

import (
	"encoding/json"
	"fmt"

	"github.com/warp/payroll-engine/salary"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// ContractJSON is the JSON representation of one contract type.
type ContractJSON struct {
	Label         string        `json:"contrat,omitempty"`
	Hours         float64       `json:"heures_contractuelles"`
	Complementary []BracketJSON `json:"heures_complementaires,omitempty"`
	Overtime      []BracketJSON `json:"heures_supplementaires,omitempty"`
}

// BracketJSON is one hour-range bracket. A is nil for the open final bracket.
type BracketJSON struct {
	From         float64  `json:"de"`
	To           *float64 `json:"a"`
	Kind         string   `json:"type,omitempty"`
	SurchargePct float64  `json:"majoration"`
}

// =============================================================================
// PARSING
// =============================================================================

// ParseContracts parses a JSON contract table into salary configs.
func ParseContracts(data []byte) ([]salary.ContractConfig, error) {
	var raw []ContractJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse contract JSON: %w", err)
	}
	return FromJSON(raw)
}

// FromJSON converts the JSON representation into validated configs.
func FromJSON(raw []ContractJSON) ([]salary.ContractConfig, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("contract table is empty")
	}

	seen := make(map[float64]bool, len(raw))
	contracts := make([]salary.ContractConfig, 0, len(raw))

	for i, cj := range raw {
		if cj.Hours <= 0 {
			return nil, fmt.Errorf("contract %d: contractual hours must be positive, got %v", i, cj.Hours)
		}
		if seen[cj.Hours] {
			return nil, fmt.Errorf("contract %d: duplicate contractual hours %v", i, cj.Hours)
		}
		seen[cj.Hours] = true

		label := cj.Label
		if label == "" {
			label = fmt.Sprintf("%gh", cj.Hours)
		}

		comp, err := parseBrackets(cj.Complementary, true)
		if err != nil {
			return nil, fmt.Errorf("contract %q complementary brackets: %w", label, err)
		}
		overtime, err := parseBrackets(cj.Overtime, false)
		if err != nil {
			return nil, fmt.Errorf("contract %q overtime brackets: %w", label, err)
		}

		contracts = append(contracts, salary.ContractConfig{
			Label:         label,
			Hours:         cj.Hours,
			Complementary: comp,
			Overtime:      overtime,
		})
	}
	return contracts, nil
}

func parseBrackets(raw []BracketJSON, complementary bool) ([]salary.Bracket, error) {
	var brackets []salary.Bracket
	previous := -1.0

	for i, bj := range raw {
		if bj.To != nil && *bj.To <= bj.From {
			return nil, fmt.Errorf("bracket %d: upper bound %v not above lower bound %v", i, *bj.To, bj.From)
		}
		if bj.To == nil && i != len(raw)-1 {
			return nil, fmt.Errorf("bracket %d: only the last bracket may be open-ended", i)
		}
		if bj.From < previous {
			return nil, fmt.Errorf("bracket %d: lower bound %v out of order", i, bj.From)
		}
		if bj.SurchargePct < 0 {
			return nil, fmt.Errorf("bracket %d: negative surcharge %v", i, bj.SurchargePct)
		}
		previous = bj.From

		kind := salary.KindOvertime
		if complementary {
			var err error
			if kind, err = parseKind(bj.Kind); err != nil {
				return nil, fmt.Errorf("bracket %d: %w", i, err)
			}
		}

		brackets = append(brackets, salary.Bracket{
			From:         bj.From,
			To:           bj.To,
			Kind:         kind,
			SurchargePct: bj.SurchargePct,
		})
	}
	return brackets, nil
}

func parseKind(s string) (salary.BracketKind, error) {
	switch s {
	case "", "complementaires", "complémentaires":
		return salary.KindComplementary, nil
	case "complementaires majorees", "complementaires_majorees", "complémentaires majorées":
		return salary.KindComplementaryMajored, nil
	default:
		return "", fmt.Errorf("unknown bracket type %q", s)
	}
}

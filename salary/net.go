/*
net.go - Approximate net salary estimation

PURPOSE:
  Projects a monthly gross figure to an approximate net: flat employee
  social-contribution rates, then a simplified progressive income-tax
  estimate (2024 scale, single filer, no dependents).

PIPELINE:
  gross -> contributions (flat rates) -> net before tax
        -> annualize x12 -> 10% standard deduction clamped to [448, 12829]
        -> marginal bracket accumulation -> annual tax / 12
        -> net final

  Effective rates are returned as percentages for display; a zero gross
  reports a zero effective tax rate instead of dividing by zero.

ESTIMATE ONLY:
  Real contributions vary with employer, status and pension scheme. The
  Disclaimer text accompanies every rendered estimate.

SEE ALSO:
  - monthly.go: Produces the gross this consumes
*/
package salary

import (
	"math"
)

// =============================================================================
// STATUTORY CONSTANTS (2024)
// =============================================================================

// ContributionRate is one named employee social-contribution line.
type ContributionRate struct {
	Name string  `json:"nom"`
	Rate float64 `json:"taux"`
}

// TaxBracket is one marginal income-tax bracket; UpTo is +Inf for the last.
type TaxBracket struct {
	UpTo float64
	Rate float64
}

// Standard deduction for professional expenses.
const (
	deductionRate = 0.10
	deductionMin  = 448
	deductionMax  = 12829
)

var employeeContributions = []ContributionRate{
	{Name: "securite_sociale", Rate: 0.023},           // CSG deductible
	{Name: "csg_crds", Rate: 0.0925},                  // CSG/CRDS
	{Name: "assurance_chomage", Rate: 0.024},          // unemployment insurance
	{Name: "retraite_complementaire", Rate: 0.0387},   // AGIRC-ARRCO
	{Name: "retraite_securite_sociale", Rate: 0.1105}, // base pension
}

var incomeTaxBrackets = []TaxBracket{
	{UpTo: 10777, Rate: 0},
	{UpTo: 27478, Rate: 0.11},
	{UpTo: 78570, Rate: 0.30},
	{UpTo: 168994, Rate: 0.41},
	{UpTo: math.Inf(1), Rate: 0.45},
}

// =============================================================================
// RESULT TYPE
// =============================================================================

// NetResult is the net projection of one monthly gross figure. Purely
// derived; recomputed on demand, never persisted.
type NetResult struct {
	Gross             float64 `json:"salaire_brut"`
	Contributions     float64 `json:"cotisations_sociales"`
	NetBeforeTax      float64 `json:"salaire_net_avant_impot"`
	MonthlyTax        float64 `json:"impot_mensuel"`
	NetFinal          float64 `json:"salaire_net_final"`
	ContributionsRate float64 `json:"taux_cotisations"`
	EffectiveTaxRate  float64 `json:"taux_impot_effectif"`
}

// =============================================================================
// ESTIMATOR
// =============================================================================

// NetEstimator derives approximate net pay from monthly gross. Immutable
// after construction and safe for concurrent use.
type NetEstimator struct {
	contributions []ContributionRate
	brackets      []TaxBracket
	totalRate     float64
}

// NewNetEstimator returns an estimator on the 2024 employee rates.
func NewNetEstimator() NetEstimator {
	total := 0.0
	for _, c := range employeeContributions {
		total += c.Rate
	}
	return NetEstimator{
		contributions: employeeContributions,
		brackets:      incomeTaxBrackets,
		totalRate:     total,
	}
}

// ContributionRates returns the named contribution lines, for display.
func (e NetEstimator) ContributionRates() []ContributionRate {
	out := make([]ContributionRate, len(e.contributions))
	copy(out, e.contributions)
	return out
}

// Estimate computes the net projection of a monthly gross figure.
func (e NetEstimator) Estimate(grossMonthly float64) NetResult {
	contributions := grossMonthly * e.totalRate
	netBeforeTax := grossMonthly - contributions

	annualTax := e.annualTax(netBeforeTax * 12)
	monthlyTax := annualTax / 12

	res := NetResult{
		Gross:             grossMonthly,
		Contributions:     contributions,
		NetBeforeTax:      netBeforeTax,
		MonthlyTax:        monthlyTax,
		NetFinal:          netBeforeTax - monthlyTax,
		ContributionsRate: e.totalRate * 100,
	}
	if grossMonthly > 0 {
		res.EffectiveTaxRate = monthlyTax / grossMonthly * 100
	}
	return res
}

// annualTax applies the standard deduction and the marginal bracket scale
// to an annual net-before-tax income.
func (e NetEstimator) annualTax(annualNet float64) float64 {
	if annualNet <= 0 {
		return 0
	}

	deduction := math.Min(math.Max(annualNet*deductionRate, deductionMin), deductionMax)
	taxable := math.Max(0, annualNet-deduction)

	tax := 0.0
	remaining := taxable
	previous := 0.0
	for _, b := range e.brackets {
		if remaining <= 0 {
			break
		}
		span := math.Min(remaining, b.UpTo-previous)
		tax += span * b.Rate
		remaining -= span
		previous = b.UpTo
	}
	return math.Max(0, tax)
}

// Disclaimer returns the warning text that accompanies rendered estimates.
func (e NetEstimator) Disclaimer() string {
	return "Estimation approximative basée sur les taux 2024 pour un salarié " +
		"célibataire sans enfant. Les cotisations réelles peuvent varier selon " +
		"votre situation personnelle, votre entreprise et votre régime de " +
		"retraite complémentaire. Cette estimation ne remplace pas un calcul officiel."
}

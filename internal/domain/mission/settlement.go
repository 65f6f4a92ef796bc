package mission

import (
	"strings"

	"github.com/shopspring/decimal"
)

// GuaranteeType is the policy guarantee covering the claim. Only the two
// franchise-bearing guarantees allow a deductible.
type GuaranteeType string

const (
	GuaranteeCollisionDamage         GuaranteeType = "collision damage"
	GuaranteeThirdPartyComprehensive GuaranteeType = "third-party-comprehensive"
	GuaranteeThirdParty              GuaranteeType = "third-party"
)

// BearsFranchise reports whether the guarantee type allows a deductible.
// The match is case-insensitive; any other guarantee forces the franchise to
// zero regardless of stored rate or amount.
func (g GuaranteeType) BearsFranchise() bool {
	switch GuaranteeType(strings.ToLower(strings.TrimSpace(string(g)))) {
	case GuaranteeCollisionDamage, GuaranteeThirdPartyComprehensive:
		return true
	}
	return false
}

// WriteOffType classifies a total-loss decision.
type WriteOffType string

const (
	WriteOffEconomic  WriteOffType = "economic"
	WriteOffTechnical WriteOffType = "technical"
)

// Settlement holds the guarantee and valuation attributes of a mission that
// feed the financial summary.
type Settlement struct {
	GuaranteeType    GuaranteeType
	FranchiseRate    decimal.Decimal // percentage of the evaluation base
	FranchiseFixed   decimal.Decimal // floor amount
	Liability        string
	WriteOff         WriteOffType
	InsuredValue     decimal.Decimal
	MarketValue      decimal.Decimal
	SalvageValue     decimal.Decimal
	Synthesis        string
	// ManualIndemnification, when set, shadows the computed figure.
	ManualIndemnification *decimal.Decimal
}

// FranchiseAmount returns the deductible for the given tax-inclusive
// evaluation base: the larger of rate% x base and the fixed floor, never
// their sum. Non-franchise-bearing guarantees always yield zero.
func (s Settlement) FranchiseAmount(evaluationBaseTTC decimal.Decimal) decimal.Decimal {
	if !s.GuaranteeType.BearsFranchise() {
		return decimal.Zero
	}
	percent := s.FranchiseRate.Div(hundred).Mul(evaluationBaseTTC)
	if percent.GreaterThan(s.FranchiseFixed) {
		return percent
	}
	return s.FranchiseFixed
}

// IndemnificationSource tags where the final figure came from.
type IndemnificationSource string

const (
	IndemnificationComputed       IndemnificationSource = "computed"
	IndemnificationManualOverride IndemnificationSource = "manual_override"
)

// FinancialSummary is the settlement figure set rendered by the report.
type FinancialSummary struct {
	EvaluationBaseTTC     decimal.Decimal       `json:"evaluation_base_ttc"`
	DepreciationLossTTC   decimal.Decimal       `json:"depreciation_loss_ttc"`
	FranchiseAmount       decimal.Decimal       `json:"franchise_amount"`
	FinalIndemnification  decimal.Decimal       `json:"final_indemnification"`
	IndemnificationSource IndemnificationSource `json:"indemnification_source"`
}

// ComputeFinancialSummary combines the labor grand total (evaluation base),
// the damage depreciation loss and the franchise into one clamped
// subtraction:
//
//	max(0, baseTTC - depreciationLossTTC - franchise)
//
// A manual override, when present, takes precedence over the computed figure
// and is clamped to >= 0.
func ComputeFinancialSummary(settlement Settlement, damage DamageTotals, labor LaborTotals) FinancialSummary {
	base := labor.GrandTotalTTC
	loss := damage.DepreciationLossTTC()
	franchise := settlement.FranchiseAmount(base)

	summary := FinancialSummary{
		EvaluationBaseTTC:     base,
		DepreciationLossTTC:   loss,
		FranchiseAmount:       franchise,
		IndemnificationSource: IndemnificationComputed,
	}

	if settlement.ManualIndemnification != nil {
		override := *settlement.ManualIndemnification
		if override.IsNegative() {
			override = decimal.Zero
		}
		summary.FinalIndemnification = override
		summary.IndemnificationSource = IndemnificationManualOverride
		return summary
	}

	computed := base.Sub(loss).Sub(franchise)
	if computed.IsNegative() {
		computed = decimal.Zero
	}
	summary.FinalIndemnification = computed
	return summary
}

package mission

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuaranteeBearsFranchise(t *testing.T) {
	tests := []struct {
		guarantee string
		want      bool
	}{
		{"collision damage", true},
		{"Collision Damage", true},
		{"third-party-comprehensive", true},
		{"THIRD-PARTY-COMPREHENSIVE", true},
		{"third-party", false},
		{"", false},
		{"fire", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GuaranteeType(tt.guarantee).BearsFranchise(), "guarantee %q", tt.guarantee)
	}
}

func TestFranchiseAmountIsMaxOfRateAndFloor(t *testing.T) {
	settlement := Settlement{
		GuaranteeType:  GuaranteeThirdPartyComprehensive,
		FranchiseRate:  decimal.NewFromInt(10),
		FranchiseFixed: decimal.NewFromInt(500),
	}

	// 10% of 4000 = 400, floor 500 wins.
	amount := settlement.FranchiseAmount(decimal.NewFromInt(4000))
	assert.True(t, amount.Equal(decimal.NewFromInt(500)), "got %s", amount)

	// 10% of 10000 = 1000, percentage wins.
	amount = settlement.FranchiseAmount(decimal.NewFromInt(10000))
	assert.True(t, amount.Equal(decimal.NewFromInt(1000)), "got %s", amount)
}

func TestFranchiseForcedToZeroOutsideBearingGuarantees(t *testing.T) {
	settlement := Settlement{
		GuaranteeType:  GuaranteeThirdParty,
		FranchiseRate:  decimal.NewFromInt(10),
		FranchiseFixed: decimal.NewFromInt(500),
	}
	assert.True(t, settlement.FranchiseAmount(decimal.NewFromInt(4000)).IsZero())
}

// buildLaborTotals returns totals for one body entry of htAmount pre-tax,
// so GrandTotalTTC = htAmount x 1.2.
func buildLaborTotals(t *testing.T, htAmount int64) LaborTotals {
	t.Helper()
	entry, err := NewLaborEntry(1, LaborBody, decimal.NewFromInt(1), decimal.NewFromInt(htAmount))
	require.NoError(t, err)
	return ComputeLaborTotals(BuildLaborBreakdown([]LaborEntry{*entry}), decimal.Zero)
}

func TestComputeFinancialSummary(t *testing.T) {
	settlement := Settlement{
		GuaranteeType:  GuaranteeCollisionDamage,
		FranchiseRate:  decimal.NewFromInt(10),
		FranchiseFixed: decimal.NewFromInt(500),
	}
	// Evaluation base: 5000 HT -> 6000 TTC.
	labor := buildLaborTotals(t, 5000)

	bumper, err := NewDamageLine(1, "Bumper", decimal.NewFromInt(1000), decimal.NewFromInt(20), "original", true)
	require.NoError(t, err)
	damage := ComputeDamageTotals([]DamageLine{*bumper})

	summary := ComputeFinancialSummary(settlement, damage, labor)

	assert.True(t, summary.EvaluationBaseTTC.Equal(decimal.NewFromInt(6000)), "base %s", summary.EvaluationBaseTTC)
	assert.True(t, summary.DepreciationLossTTC.Equal(decimal.NewFromInt(240)))
	// max(10% x 6000, 500) = 600
	assert.True(t, summary.FranchiseAmount.Equal(decimal.NewFromInt(600)))
	// 6000 - 240 - 600
	assert.True(t, summary.FinalIndemnification.Equal(decimal.NewFromInt(5160)), "got %s", summary.FinalIndemnification)
	assert.Equal(t, IndemnificationComputed, summary.IndemnificationSource)
}

func TestComputeFinancialSummaryClampedAtZero(t *testing.T) {
	settlement := Settlement{
		GuaranteeType:  GuaranteeCollisionDamage,
		FranchiseFixed: decimal.NewFromInt(100000),
	}
	labor := buildLaborTotals(t, 1000)
	summary := ComputeFinancialSummary(settlement, DamageTotals{
		TotalHT: decimal.Zero, TotalTTC: decimal.Zero,
		TotalAfter: decimal.Zero, TotalAfterTTC: decimal.Zero,
	}, labor)

	assert.True(t, summary.FinalIndemnification.IsZero())
}

func TestComputeFinancialSummaryManualOverride(t *testing.T) {
	override := decimal.NewFromInt(1500)
	settlement := Settlement{
		GuaranteeType:         GuaranteeCollisionDamage,
		FranchiseFixed:        decimal.NewFromInt(500),
		ManualIndemnification: &override,
	}
	labor := buildLaborTotals(t, 5000)
	summary := ComputeFinancialSummary(settlement, DamageTotals{
		TotalHT: decimal.Zero, TotalTTC: decimal.Zero,
		TotalAfter: decimal.Zero, TotalAfterTTC: decimal.Zero,
	}, labor)

	assert.True(t, summary.FinalIndemnification.Equal(override))
	assert.Equal(t, IndemnificationManualOverride, summary.IndemnificationSource)
}

func TestComputeFinancialSummaryNegativeOverrideClamped(t *testing.T) {
	override := decimal.NewFromInt(-200)
	settlement := Settlement{ManualIndemnification: &override}
	summary := ComputeFinancialSummary(settlement, DamageTotals{
		TotalHT: decimal.Zero, TotalTTC: decimal.Zero,
		TotalAfter: decimal.Zero, TotalAfterTTC: decimal.Zero,
	}, ComputeLaborTotals(BuildLaborBreakdown(nil), decimal.Zero))

	assert.True(t, summary.FinalIndemnification.IsZero())
	assert.Equal(t, IndemnificationManualOverride, summary.IndemnificationSource)
}

package mission

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLaborEntryValidation(t *testing.T) {
	_, err := NewLaborEntry(1, LaborCategory("welding"), decimal.NewFromInt(1), decimal.NewFromInt(50))
	assert.Error(t, err)

	_, err = NewLaborEntry(1, LaborBody, decimal.NewFromInt(-1), decimal.NewFromInt(50))
	assert.Error(t, err)

	_, err = NewLaborEntry(1, LaborBody, decimal.NewFromInt(1), decimal.NewFromInt(-50))
	assert.Error(t, err)
}

func TestLaborEntryAmounts(t *testing.T) {
	entry, err := NewLaborEntry(1, LaborPaint, decimal.NewFromInt(3), decimal.NewFromInt(200))
	require.NoError(t, err)

	assert.True(t, entry.AmountHT().Equal(decimal.NewFromInt(600)))
	assert.True(t, entry.AmountVAT().Equal(decimal.NewFromInt(120)))
	assert.True(t, entry.AmountTTC().Equal(decimal.NewFromInt(720)))
}

func TestBuildLaborBreakdownSynthesizesZeroEntries(t *testing.T) {
	body, err := NewLaborEntry(1, LaborBody, decimal.NewFromInt(2), decimal.NewFromInt(100))
	require.NoError(t, err)

	breakdown := BuildLaborBreakdown([]LaborEntry{*body})
	require.Len(t, breakdown, len(LaborCategories()))

	byCategory := make(map[LaborCategory]LaborBreakdownEntry)
	for _, entry := range breakdown {
		byCategory[entry.Category] = entry
	}

	assert.True(t, byCategory[LaborBody].HT.Equal(decimal.NewFromInt(200)))
	for _, category := range []LaborCategory{LaborPaint, LaborMechanical, LaborElectrical} {
		assert.True(t, byCategory[category].Hours.IsZero(), "category %s", category)
		assert.True(t, byCategory[category].TTC.IsZero(), "category %s", category)
	}
}

func TestComputeLaborTotals(t *testing.T) {
	body, err := NewLaborEntry(1, LaborBody, decimal.NewFromInt(2), decimal.NewFromInt(100))
	require.NoError(t, err)
	paint, err := NewLaborEntry(1, LaborPaint, decimal.NewFromInt(1), decimal.NewFromInt(300))
	require.NoError(t, err)

	breakdown := BuildLaborBreakdown([]LaborEntry{*body, *paint})
	totals := ComputeLaborTotals(breakdown, decimal.NewFromInt(100))

	assert.True(t, totals.TotalHours.Equal(decimal.NewFromInt(3)))
	assert.True(t, totals.TotalHT.Equal(decimal.NewFromInt(500)))
	assert.True(t, totals.TotalVAT.Equal(decimal.NewFromInt(100)))
	assert.True(t, totals.TotalTTC.Equal(decimal.NewFromInt(600)))
	assert.True(t, totals.SuppliesHT.Equal(decimal.NewFromInt(100)))
	assert.True(t, totals.SuppliesVAT.Equal(decimal.NewFromInt(20)))
	assert.True(t, totals.SuppliesTTC.Equal(decimal.NewFromInt(120)))
	assert.True(t, totals.GrandTotalHT.Equal(decimal.NewFromInt(600)))
	assert.True(t, totals.GrandTotalVAT.Equal(decimal.NewFromInt(120)))
	assert.True(t, totals.GrandTotalTTC.Equal(decimal.NewFromInt(720)))
}

func TestComputeLaborTotalsNegativeSuppliesClamped(t *testing.T) {
	totals := ComputeLaborTotals(BuildLaborBreakdown(nil), decimal.NewFromInt(-50))
	assert.True(t, totals.SuppliesHT.IsZero())
	assert.True(t, totals.GrandTotalTTC.IsZero())
}

func TestParseLaborCategory(t *testing.T) {
	c, err := ParseLaborCategory(" Mechanical ")
	require.NoError(t, err)
	assert.Equal(t, LaborMechanical, c)

	_, err = ParseLaborCategory("upholstery")
	assert.Error(t, err)
}

package mission

import (
	"strings"

	"github.com/autoexpert/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PartType classifies the origin of a replaced part.
type PartType string

const (
	PartTypeOriginal   PartType = "original"
	PartTypeRepair     PartType = "repair"
	PartTypeSalvage    PartType = "salvage"
	PartTypeAdaptation PartType = "adaptation"
	PartTypePaint      PartType = "paint_product"
)

// NormalizePartType coerces a raw value to the closed part-type set. Unknown
// or empty values fall back to "original"; this is documented behavior, not
// an error.
func NormalizePartType(value string) PartType {
	normalized := PartType(strings.ToLower(strings.TrimSpace(value)))
	switch normalized {
	case PartTypeOriginal, PartTypeRepair, PartTypeSalvage, PartTypeAdaptation, PartTypePaint:
		return normalized
	}
	return PartTypeOriginal
}

var (
	hundred   = decimal.NewFromInt(100)
	vatFactor = decimal.NewFromFloat(1.2)
	// VATRate is the single fixed tax rate of the regime (20%).
	VATRate = decimal.NewFromFloat(0.2)
)

// DamageLine is one itemized repair part on a mission. Monetary values are
// stored pre-tax; every derived figure is recomputed on read, never stored.
type DamageLine struct {
	shared.BaseEntity
	MissionID     uint
	Piece         string
	PriceHT       decimal.Decimal
	Depreciation  decimal.Decimal // percentage, 0..100
	PartType      PartType
	VATApplicable bool
}

// NewDamageLine creates a validated damage line for a mission
func NewDamageLine(missionID uint, piece string, priceHT, depreciation decimal.Decimal, partType string, vatApplicable bool) (*DamageLine, error) {
	line := &DamageLine{
		BaseEntity: shared.NewBaseEntity(),
		MissionID:  missionID,
	}
	if err := line.apply(piece, priceHT, depreciation, partType, vatApplicable); err != nil {
		return nil, err
	}
	return line, nil
}

// Update revalidates and replaces the line's attributes
func (l *DamageLine) Update(piece string, priceHT, depreciation decimal.Decimal, partType string, vatApplicable bool) error {
	if err := l.apply(piece, priceHT, depreciation, partType, vatApplicable); err != nil {
		return err
	}
	l.Touch()
	return nil
}

func (l *DamageLine) apply(piece string, priceHT, depreciation decimal.Decimal, partType string, vatApplicable bool) error {
	piece = strings.TrimSpace(piece)
	if piece == "" {
		return shared.NewValidationError("Piece label is required")
	}
	if priceHT.IsNegative() {
		return shared.NewValidationError("Pre-tax price cannot be negative")
	}
	if depreciation.IsNegative() || depreciation.GreaterThan(hundred) {
		return shared.NewValidationError("Depreciation must be between 0 and 100")
	}
	l.Piece = piece
	l.PriceHT = priceHT
	l.Depreciation = depreciation
	l.PartType = NormalizePartType(partType)
	l.VATApplicable = vatApplicable
	return nil
}

// taxFactor returns 1.2 when the line is VAT-applicable, 1 otherwise
func (l *DamageLine) taxFactor() decimal.Decimal {
	if l.VATApplicable {
		return vatFactor
	}
	return decimal.NewFromInt(1)
}

// PriceAfterDepreciation returns the pre-tax price after wear reduction:
// priceHT x (1 - depreciation/100)
func (l *DamageLine) PriceAfterDepreciation() decimal.Decimal {
	keep := decimal.NewFromInt(1).Sub(l.Depreciation.Div(hundred))
	return l.PriceHT.Mul(keep)
}

// PriceTTC returns the tax-inclusive price before depreciation
func (l *DamageLine) PriceTTC() decimal.Decimal {
	return l.PriceHT.Mul(l.taxFactor())
}

// PriceAfterDepreciationTTC returns the tax-inclusive price after depreciation
func (l *DamageLine) PriceAfterDepreciationTTC() decimal.Decimal {
	return l.PriceAfterDepreciation().Mul(l.taxFactor())
}

// DamageTotals aggregates the derived quantities across a mission's lines.
type DamageTotals struct {
	TotalHT       decimal.Decimal `json:"total_ht"`
	TotalTTC      decimal.Decimal `json:"total_ttc"`
	TotalAfter    decimal.Decimal `json:"total_after"`
	TotalAfterTTC decimal.Decimal `json:"total_after_ttc"`
}

// ComputeDamageTotals sums the derived values across lines. Totals are always
// recomputed from current line data; nothing is cached.
func ComputeDamageTotals(lines []DamageLine) DamageTotals {
	totals := DamageTotals{
		TotalHT:       decimal.Zero,
		TotalTTC:      decimal.Zero,
		TotalAfter:    decimal.Zero,
		TotalAfterTTC: decimal.Zero,
	}
	for i := range lines {
		line := &lines[i]
		totals.TotalHT = totals.TotalHT.Add(line.PriceHT)
		totals.TotalTTC = totals.TotalTTC.Add(line.PriceTTC())
		totals.TotalAfter = totals.TotalAfter.Add(line.PriceAfterDepreciation())
		totals.TotalAfterTTC = totals.TotalAfterTTC.Add(line.PriceAfterDepreciationTTC())
	}
	return totals
}

// DepreciationLossTTC returns the tax-inclusive value lost to wear across the
// mission's damage lines, clamped at zero.
func (t DamageTotals) DepreciationLossTTC() decimal.Decimal {
	loss := t.TotalTTC.Sub(t.TotalAfterTTC)
	if loss.IsNegative() {
		return decimal.Zero
	}
	return loss
}

package mission

import (
	"strings"

	"github.com/autoexpert/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// LaborCategory is one of the fixed labor positions on the evaluation sheet.
// The set is process-wide configuration, not user data.
type LaborCategory string

const (
	LaborBody       LaborCategory = "body"
	LaborPaint      LaborCategory = "paint"
	LaborMechanical LaborCategory = "mechanical"
	LaborElectrical LaborCategory = "electrical"
)

// laborCategories fixes the order entries are rendered in.
var laborCategories = []LaborCategory{LaborBody, LaborPaint, LaborMechanical, LaborElectrical}

// LaborCategories returns the fixed category set in display order
func LaborCategories() []LaborCategory {
	out := make([]LaborCategory, len(laborCategories))
	copy(out, laborCategories)
	return out
}

// IsValid checks if the category belongs to the fixed set
func (c LaborCategory) IsValid() bool {
	for _, known := range laborCategories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseLaborCategory converts a string to a LaborCategory
func ParseLaborCategory(value string) (LaborCategory, error) {
	c := LaborCategory(strings.ToLower(strings.TrimSpace(value)))
	if !c.IsValid() {
		return "", shared.NewValidationError("Unknown labor category")
	}
	return c, nil
}

// LaborEntry is the hours x rate record for one category of a mission. It is
// keyed by (mission, category); at most one row per pair exists.
type LaborEntry struct {
	shared.BaseEntity
	MissionID uint
	Category  LaborCategory
	Hours     decimal.Decimal
	Rate      decimal.Decimal
}

// NewLaborEntry creates a validated labor entry
func NewLaborEntry(missionID uint, category LaborCategory, hours, rate decimal.Decimal) (*LaborEntry, error) {
	if !category.IsValid() {
		return nil, shared.NewValidationError("Unknown labor category")
	}
	if hours.IsNegative() {
		return nil, shared.NewValidationError("Hours cannot be negative")
	}
	if rate.IsNegative() {
		return nil, shared.NewValidationError("Hourly rate cannot be negative")
	}
	return &LaborEntry{
		BaseEntity: shared.NewBaseEntity(),
		MissionID:  missionID,
		Category:   category,
		Hours:      hours,
		Rate:       rate,
	}, nil
}

// AmountHT returns hours x rate
func (e *LaborEntry) AmountHT() decimal.Decimal {
	return e.Hours.Mul(e.Rate)
}

// AmountVAT returns the tax part of the entry amount
func (e *LaborEntry) AmountVAT() decimal.Decimal {
	return e.AmountHT().Mul(VATRate)
}

// AmountTTC returns the tax-inclusive entry amount
func (e *LaborEntry) AmountTTC() decimal.Decimal {
	return e.AmountHT().Mul(vatFactor)
}

// LaborBreakdownEntry is the read model for one category, including derived
// amounts. Categories without a stored row appear as zero entries.
type LaborBreakdownEntry struct {
	Category LaborCategory   `json:"category"`
	Hours    decimal.Decimal `json:"hours"`
	Rate     decimal.Decimal `json:"rate"`
	HT       decimal.Decimal `json:"ht"`
	VAT      decimal.Decimal `json:"vat"`
	TTC      decimal.Decimal `json:"ttc"`
}

// LaborTotals aggregates the breakdown plus the mission's supplies amount.
// Supplies are stored pre-tax; the TTC figure is always derived at the fixed
// rate, never entered independently.
type LaborTotals struct {
	TotalHours    decimal.Decimal `json:"total_hours"`
	TotalHT       decimal.Decimal `json:"total_ht"`
	TotalVAT      decimal.Decimal `json:"total_vat"`
	TotalTTC      decimal.Decimal `json:"total_ttc"`
	SuppliesHT    decimal.Decimal `json:"supplies_ht"`
	SuppliesVAT   decimal.Decimal `json:"supplies_vat"`
	SuppliesTTC   decimal.Decimal `json:"supplies_ttc"`
	GrandTotalHT  decimal.Decimal `json:"grand_total_ht"`
	GrandTotalVAT decimal.Decimal `json:"grand_total_vat"`
	GrandTotalTTC decimal.Decimal `json:"grand_total_ttc"`
}

// BuildLaborBreakdown expands stored entries to one read-model entry per
// category of the fixed set, synthesizing zero entries for absent categories.
func BuildLaborBreakdown(entries []LaborEntry) []LaborBreakdownEntry {
	byCategory := make(map[LaborCategory]*LaborEntry, len(entries))
	for i := range entries {
		byCategory[entries[i].Category] = &entries[i]
	}
	breakdown := make([]LaborBreakdownEntry, 0, len(laborCategories))
	for _, category := range laborCategories {
		hours, rate := decimal.Zero, decimal.Zero
		if entry, ok := byCategory[category]; ok {
			hours, rate = entry.Hours, entry.Rate
		}
		ht := hours.Mul(rate)
		breakdown = append(breakdown, LaborBreakdownEntry{
			Category: category,
			Hours:    hours,
			Rate:     rate,
			HT:       ht,
			VAT:      ht.Mul(VATRate),
			TTC:      ht.Mul(vatFactor),
		})
	}
	return breakdown
}

// ComputeLaborTotals sums the breakdown and folds in the supplies amount
func ComputeLaborTotals(breakdown []LaborBreakdownEntry, suppliesHT decimal.Decimal) LaborTotals {
	totals := LaborTotals{
		TotalHours: decimal.Zero,
		TotalHT:    decimal.Zero,
		TotalVAT:   decimal.Zero,
		TotalTTC:   decimal.Zero,
	}
	for _, entry := range breakdown {
		totals.TotalHours = totals.TotalHours.Add(entry.Hours)
		totals.TotalHT = totals.TotalHT.Add(entry.HT)
		totals.TotalVAT = totals.TotalVAT.Add(entry.VAT)
		totals.TotalTTC = totals.TotalTTC.Add(entry.TTC)
	}
	if suppliesHT.IsNegative() {
		suppliesHT = decimal.Zero
	}
	totals.SuppliesHT = suppliesHT
	totals.SuppliesVAT = suppliesHT.Mul(VATRate)
	totals.SuppliesTTC = suppliesHT.Mul(vatFactor)
	totals.GrandTotalHT = totals.TotalHT.Add(totals.SuppliesHT)
	totals.GrandTotalVAT = totals.TotalVAT.Add(totals.SuppliesVAT)
	totals.GrandTotalTTC = totals.TotalTTC.Add(totals.SuppliesTTC)
	return totals
}

package mission

import (
	"context"

	"github.com/autoexpert/backend/internal/domain/identity"
	"github.com/autoexpert/backend/internal/domain/mission"
	"github.com/autoexpert/backend/internal/domain/shared"
)

// FinancialSummaryResponse is the settlement figure set plus the aggregates
// it was derived from, so callers can render the full calculation.
type FinancialSummaryResponse struct {
	Summary mission.FinancialSummary `json:"summary"`
	Damage  mission.DamageTotals     `json:"damage_totals"`
	Labor   mission.LaborTotals      `json:"labor_totals"`
}

// SummaryService computes the mission's financial summary on demand. It has
// no write path: the summary is a pure function of the mission's settlement
// attributes, damage ledger and labor sheet.
type SummaryService struct {
	missions mission.MissionRepository
	lines    mission.DamageLineRepository
	labor    mission.LaborEntryRepository
}

// NewSummaryService creates a financial summary service
func NewSummaryService(missions mission.MissionRepository, lines mission.DamageLineRepository, labor mission.LaborEntryRepository) *SummaryService {
	return &SummaryService{missions: missions, lines: lines, labor: labor}
}

// Get recomputes the financial summary from current data
func (s *SummaryService) Get(ctx context.Context, missionID uint, actor Actor) (*FinancialSummaryResponse, error) {
	m, err := s.missions.FindByID(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if !identity.Role(actor.Role).IsPrivileged() && !m.IsAssignedTo(actor.UserID) {
		return nil, shared.ErrForbidden
	}

	lines, err := s.lines.FindByMission(ctx, missionID)
	if err != nil {
		return nil, err
	}
	entries, err := s.labor.FindByMission(ctx, missionID)
	if err != nil {
		return nil, err
	}

	damage := mission.ComputeDamageTotals(lines)
	labor := mission.ComputeLaborTotals(mission.BuildLaborBreakdown(entries), m.LaborSuppliesHT)
	return &FinancialSummaryResponse{
		Summary: mission.ComputeFinancialSummary(m.Settlement, damage, labor),
		Damage:  damage,
		Labor:   labor,
	}, nil
}

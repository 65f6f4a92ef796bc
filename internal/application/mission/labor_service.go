package mission

import (
	"context"

	"github.com/autoexpert/backend/internal/domain/identity"
	"github.com/autoexpert/backend/internal/domain/mission"
	"github.com/autoexpert/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// LaborService manages the per-category labor ledger. Saving is a full
// replace over the fixed category set: categories omitted from the payload
// are persisted as zero, so the same payload can be replayed without drift.
type LaborService struct {
	missions mission.MissionRepository
	labor    mission.LaborEntryRepository
	tx       shared.Transactor
	logger   *zap.Logger
}

// NewLaborService creates a labor ledger service
func NewLaborService(missions mission.MissionRepository, labor mission.LaborEntryRepository, tx shared.Transactor, logger *zap.Logger) *LaborService {
	return &LaborService{missions: missions, labor: labor, tx: tx, logger: logger}
}

// Get returns the full breakdown, one entry per category with zero rows
// synthesized for categories never saved, plus the totals.
func (s *LaborService) Get(ctx context.Context, missionID uint, actor Actor) (*LaborBreakdownResponse, error) {
	m, err := s.loadMission(ctx, missionID, actor)
	if err != nil {
		return nil, err
	}
	entries, err := s.labor.FindByMission(ctx, missionID)
	if err != nil {
		return nil, err
	}
	breakdown := mission.BuildLaborBreakdown(entries)
	return &LaborBreakdownResponse{
		Entries: breakdown,
		Totals:  mission.ComputeLaborTotals(breakdown, m.LaborSuppliesHT),
	}, nil
}

// Save replaces the mission's labor sheet. Every category of the fixed set
// ends up with exactly one row; duplicates in the payload are rejected. The
// ledger replace and the supplies update commit in one transaction.
func (s *LaborService) Save(ctx context.Context, missionID uint, req SaveLaborRequest, actor Actor) (*LaborBreakdownResponse, error) {
	m, err := s.loadMission(ctx, missionID, actor)
	if err != nil {
		return nil, err
	}
	if req.SuppliesHT.IsNegative() {
		return nil, shared.NewValidationError("Supplies amount cannot be negative")
	}

	provided := make(map[mission.LaborCategory]LaborEntryRequest, len(req.Entries))
	for _, entry := range req.Entries {
		category, err := mission.ParseLaborCategory(entry.Category)
		if err != nil {
			return nil, err
		}
		if _, dup := provided[category]; dup {
			return nil, shared.NewValidationError("Duplicate labor category: " + string(category))
		}
		provided[category] = entry
	}

	entries := make([]mission.LaborEntry, 0, len(mission.LaborCategories()))
	for _, category := range mission.LaborCategories() {
		hours, rate := decimal.Zero, decimal.Zero
		if in, ok := provided[category]; ok {
			hours, rate = in.Hours, in.Rate
		}
		entry, err := mission.NewLaborEntry(missionID, category, hours, rate)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.labor.ReplaceForMission(ctx, missionID, entries); err != nil {
			return err
		}
		m.LaborSuppliesHT = req.SuppliesHT
		m.Touch()
		return s.missions.Save(ctx, m)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("labor sheet saved",
		zap.Uint("mission_id", missionID),
		zap.Int("categories_provided", len(provided)))

	breakdown := mission.BuildLaborBreakdown(entries)
	return &LaborBreakdownResponse{
		Entries: breakdown,
		Totals:  mission.ComputeLaborTotals(breakdown, m.LaborSuppliesHT),
	}, nil
}

func (s *LaborService) loadMission(ctx context.Context, missionID uint, actor Actor) (*mission.Mission, error) {
	m, err := s.missions.FindByID(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if !identity.Role(actor.Role).IsPrivileged() && !m.IsAssignedTo(actor.UserID) {
		return nil, shared.ErrForbidden
	}
	return m, nil
}

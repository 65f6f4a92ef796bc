package mission

import (
	"context"

	"github.com/autoexpert/backend/internal/domain/identity"
	"github.com/autoexpert/backend/internal/domain/mission"
	"github.com/autoexpert/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// DamageService manages the itemized damage ledger of a mission. Derived
// prices and totals are always recomputed from stored lines, never persisted.
type DamageService struct {
	missions mission.MissionRepository
	lines    mission.DamageLineRepository
	logger   *zap.Logger
}

// NewDamageService creates a damage ledger service
func NewDamageService(missions mission.MissionRepository, lines mission.DamageLineRepository, logger *zap.Logger) *DamageService {
	return &DamageService{missions: missions, lines: lines, logger: logger}
}

// List returns the mission's damage lines with their derived values and the
// ledger totals.
func (s *DamageService) List(ctx context.Context, missionID uint, actor Actor) (*DamageLedgerResponse, error) {
	if _, err := s.loadMission(ctx, missionID, actor); err != nil {
		return nil, err
	}
	lines, err := s.lines.FindByMission(ctx, missionID)
	if err != nil {
		return nil, err
	}
	items := make([]DamageLineResponse, 0, len(lines))
	for i := range lines {
		items = append(items, ToDamageLineResponse(&lines[i]))
	}
	return &DamageLedgerResponse{
		Items:  items,
		Totals: mission.ComputeDamageTotals(lines),
	}, nil
}

// Add appends a validated line to the mission's ledger. An omitted VAT flag
// defaults to applicable; unknown part types fall back to "original".
func (s *DamageService) Add(ctx context.Context, missionID uint, req DamageLineRequest, actor Actor) (*DamageLineResponse, error) {
	if _, err := s.loadMission(ctx, missionID, actor); err != nil {
		return nil, err
	}
	line, err := mission.NewDamageLine(missionID, req.Piece, req.PriceHT, req.Depreciation, req.PartType, vatOrDefault(req.VATApplicable))
	if err != nil {
		return nil, err
	}
	if err := s.lines.Save(ctx, line); err != nil {
		return nil, err
	}
	s.logger.Info("damage line added",
		zap.Uint("mission_id", missionID),
		zap.Uint("line_id", line.ID),
		zap.String("piece", line.Piece))
	resp := ToDamageLineResponse(line)
	return &resp, nil
}

// Update replaces the attributes of one line
func (s *DamageService) Update(ctx context.Context, missionID, lineID uint, req DamageLineRequest, actor Actor) (*DamageLineResponse, error) {
	if _, err := s.loadMission(ctx, missionID, actor); err != nil {
		return nil, err
	}
	line, err := s.findLine(ctx, missionID, lineID)
	if err != nil {
		return nil, err
	}
	if err := line.Update(req.Piece, req.PriceHT, req.Depreciation, req.PartType, vatOrDefault(req.VATApplicable)); err != nil {
		return nil, err
	}
	if err := s.lines.Save(ctx, line); err != nil {
		return nil, err
	}
	resp := ToDamageLineResponse(line)
	return &resp, nil
}

// Delete removes one line from the ledger
func (s *DamageService) Delete(ctx context.Context, missionID, lineID uint, actor Actor) error {
	if _, err := s.loadMission(ctx, missionID, actor); err != nil {
		return err
	}
	if _, err := s.findLine(ctx, missionID, lineID); err != nil {
		return err
	}
	if err := s.lines.Delete(ctx, lineID); err != nil {
		return err
	}
	s.logger.Info("damage line deleted", zap.Uint("mission_id", missionID), zap.Uint("line_id", lineID))
	return nil
}

// findLine loads a line and checks it belongs to the mission in the route; a
// line reached through the wrong mission reads as not found.
func (s *DamageService) findLine(ctx context.Context, missionID, lineID uint) (*mission.DamageLine, error) {
	line, err := s.lines.FindByID(ctx, lineID)
	if err != nil {
		return nil, err
	}
	if line.MissionID != missionID {
		return nil, shared.NewNotFoundError("Damage line not found")
	}
	return line, nil
}

func (s *DamageService) loadMission(ctx context.Context, missionID uint, actor Actor) (*mission.Mission, error) {
	m, err := s.missions.FindByID(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if !identity.Role(actor.Role).IsPrivileged() && !m.IsAssignedTo(actor.UserID) {
		return nil, shared.ErrForbidden
	}
	return m, nil
}

func vatOrDefault(flag *bool) bool {
	if flag == nil {
		return true
	}
	return *flag
}

// Package report assembles the expertise report read model: the mission
// snapshot joined with its damage ledger, labor sheet and financial summary.
// Layout and rendering of the final document happen outside this core.
package report

import (
	"context"
	"time"

	appmission "github.com/autoexpert/backend/internal/application/mission"
	"github.com/autoexpert/backend/internal/domain/identity"
	"github.com/autoexpert/backend/internal/domain/mission"
	"github.com/autoexpert/backend/internal/domain/shared"
)

// ReportData is everything a report renderer needs, assembled in one pass.
// Reference display data comes from the mission's snapshots, never from
// re-reading the catalogs.
type ReportData struct {
	Mission     *appmission.MissionResponse       `json:"mission"`
	Damage      appmission.DamageLedgerResponse   `json:"damage"`
	Labor       appmission.LaborBreakdownResponse `json:"labor"`
	Summary     mission.FinancialSummary          `json:"summary"`
	Photos      []appmission.AttachmentResponse   `json:"photos"`
	Documents   []appmission.AttachmentResponse   `json:"documents"`
	GeneratedAt time.Time                         `json:"generated_at"`
}

// Service assembles report data.
type Service struct {
	missions    mission.MissionRepository
	lines       mission.DamageLineRepository
	labor       mission.LaborEntryRepository
	attachments mission.AttachmentRepository
}

// NewService creates a report data service
func NewService(
	missions mission.MissionRepository,
	lines mission.DamageLineRepository,
	labor mission.LaborEntryRepository,
	attachments mission.AttachmentRepository,
) *Service {
	return &Service{missions: missions, lines: lines, labor: labor, attachments: attachments}
}

// Assemble builds the full report read model for one mission
func (s *Service) Assemble(ctx context.Context, missionID uint, actor appmission.Actor) (*ReportData, error) {
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
	photos, err := s.attachments.FindByMission(ctx, missionID, mission.AttachmentPhoto)
	if err != nil {
		return nil, err
	}
	documents, err := s.attachments.FindByMission(ctx, missionID, mission.AttachmentDocument)
	if err != nil {
		return nil, err
	}

	damageItems := make([]appmission.DamageLineResponse, 0, len(lines))
	for i := range lines {
		damageItems = append(damageItems, appmission.ToDamageLineResponse(&lines[i]))
	}
	damageTotals := mission.ComputeDamageTotals(lines)

	breakdown := mission.BuildLaborBreakdown(entries)
	laborTotals := mission.ComputeLaborTotals(breakdown, m.LaborSuppliesHT)

	photoItems := make([]appmission.AttachmentResponse, 0, len(photos))
	for i := range photos {
		photoItems = append(photoItems, appmission.ToAttachmentResponse(&photos[i]))
	}
	documentItems := make([]appmission.AttachmentResponse, 0, len(documents))
	for i := range documents {
		documentItems = append(documentItems, appmission.ToAttachmentResponse(&documents[i]))
	}

	return &ReportData{
		Mission:     appmission.ToMissionResponse(m),
		Damage:      appmission.DamageLedgerResponse{Items: damageItems, Totals: damageTotals},
		Labor:       appmission.LaborBreakdownResponse{Entries: breakdown, Totals: laborTotals},
		Summary:     mission.ComputeFinancialSummary(m.Settlement, damageTotals, laborTotals),
		Photos:      photoItems,
		Documents:   documentItems,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

package mission

import (
	"context"
	"time"

	"github.com/autoexpert/backend/internal/domain/shared"
)

// ListFilter narrows mission listings. Zero values mean "no constraint".
type ListFilter struct {
	Status          Status
	AssignedAgentID uint
	FromLossDate    *time.Time
	ToLossDate      *time.Time
	Keyword         string
	Page            int
	PageSize        int
}

// MissionRepository provides access to mission aggregates. Deleting a
// mission cascades to its damage lines, labor entries and attachments.
type MissionRepository interface {
	FindByID(ctx context.Context, id uint) (*Mission, error)
	List(ctx context.Context, filter ListFilter) (shared.Paginated[Mission], error)
	Save(ctx context.Context, m *Mission) error
	Delete(ctx context.Context, id uint) error
}

// DamageLineRepository provides access to a mission's damage ledger
type DamageLineRepository interface {
	FindByID(ctx context.Context, id uint) (*DamageLine, error)
	FindByMission(ctx context.Context, missionID uint) ([]DamageLine, error)
	Save(ctx context.Context, line *DamageLine) error
	Delete(ctx context.Context, id uint) error
}

// LaborEntryRepository provides access to a mission's labor ledger.
// ReplaceForMission persists the full category set atomically.
type LaborEntryRepository interface {
	FindByMission(ctx context.Context, missionID uint) ([]LaborEntry, error)
	ReplaceForMission(ctx context.Context, missionID uint, entries []LaborEntry) error
}

// AttachmentRepository provides access to evidence metadata
type AttachmentRepository interface {
	FindByID(ctx context.Context, id uint) (*Attachment, error)
	FindByMission(ctx context.Context, missionID uint, kind AttachmentKind) ([]Attachment, error)
	Save(ctx context.Context, attachment *Attachment) error
	Delete(ctx context.Context, id uint) error
}

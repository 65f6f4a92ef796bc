package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/autoexpert/backend/internal/domain/mission"
	"github.com/autoexpert/backend/internal/domain/registry"
	"github.com/autoexpert/backend/internal/domain/shared"
	"github.com/autoexpert/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormMissionRepository implements MissionRepository using GORM
type GormMissionRepository struct {
	db *gorm.DB
}

// NewGormMissionRepository creates a new GormMissionRepository
func NewGormMissionRepository(db *gorm.DB) *GormMissionRepository {
	return &GormMissionRepository{db: db}
}

// FindByID finds a mission by its ID
func (r *GormMissionRepository) FindByID(ctx context.Context, id uint) (*mission.Mission, error) {
	var model models.MissionModel
	if err := conn(ctx, r.db).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List finds missions matching the filter, newest first
func (r *GormMissionRepository) List(ctx context.Context, filter mission.ListFilter) (shared.Paginated[mission.Mission], error) {
	var missionModels []models.MissionModel

	var total int64
	countQuery := r.applyFilter(conn(ctx, r.db).Model(&models.MissionModel{}), filter)
	if err := countQuery.Count(&total).Error; err != nil {
		return shared.Paginated[mission.Mission]{}, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	query := r.applyFilter(conn(ctx, r.db).Model(&models.MissionModel{}), filter)
	if err := query.
		Order("created_at DESC, id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&missionModels).Error; err != nil {
		return shared.Paginated[mission.Mission]{}, err
	}

	missions := make([]mission.Mission, len(missionModels))
	for i, model := range missionModels {
		missions[i] = *model.ToDomain()
	}
	return shared.NewPaginated(missions, total, page, pageSize), nil
}

// Save creates or updates a mission
func (r *GormMissionRepository) Save(ctx context.Context, m *mission.Mission) error {
	var model models.MissionModel
	model.FromDomain(m)
	if err := conn(ctx, r.db).Save(&model).Error; err != nil {
		return err
	}
	m.ID = model.ID
	return nil
}

// Delete deletes a mission together with its damage lines, labor entries and
// attachments
func (r *GormMissionRepository) Delete(ctx context.Context, id uint) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.MissionModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		if err := tx.Delete(&models.DamageLineModel{}, "mission_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.LaborEntryModel{}, "mission_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.AttachmentModel{}, "mission_id = ?", id).Error
	})
}

// applyFilter applies the list filter without pagination or ordering
func (r *GormMissionRepository) applyFilter(query *gorm.DB, filter mission.ListFilter) *gorm.DB {
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.AssignedAgentID != 0 {
		query = query.Where("assigned_agent_id = ?", filter.AssignedAgentID)
	}
	if filter.FromLossDate != nil {
		query = query.Where("loss_date >= ?", *filter.FromLossDate)
	}
	if filter.ToLossDate != nil {
		query = query.Where("loss_date <= ?", *filter.ToLossDate)
	}
	if filter.Keyword != "" {
		// LOWER + LIKE keeps the search case-insensitive on both drivers.
		pattern := "%" + strings.ToLower(filter.Keyword) + "%"
		query = query.Where(
			"LOWER(insured_name) LIKE ? OR LOWER(vehicle_plate) LIKE ? OR LOWER(policy_number) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	return query
}

// CountReferences implements registry.UsageCounter over the missions table
func (r *GormMissionRepository) CountReferences(ctx context.Context, kind registry.ReferenceKind, id uint) (int64, error) {
	var column string
	switch kind {
	case registry.ReferenceInsurer:
		column = "insurer_id"
	case registry.ReferenceAgency:
		column = "agency_id"
	case registry.ReferenceBrand:
		column = "brand_id"
	case registry.ReferenceGarage:
		column = "garage_id"
	case registry.ReferenceAdverseInsurer:
		column = "adverse_insurer_id"
	default:
		return 0, shared.NewValidationError("Unknown reference kind")
	}

	var count int64
	if err := conn(ctx, r.db).
		Model(&models.MissionModel{}).
		Where(column+" = ?", id).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormMissionRepository implements both repository contracts
var (
	_ mission.MissionRepository = (*GormMissionRepository)(nil)
	_ registry.UsageCounter     = (*GormMissionRepository)(nil)
)

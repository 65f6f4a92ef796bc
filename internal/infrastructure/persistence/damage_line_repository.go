package persistence

import (
	"context"
	"errors"

	"github.com/autoexpert/backend/internal/domain/mission"
	"github.com/autoexpert/backend/internal/domain/shared"
	"github.com/autoexpert/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormDamageLineRepository implements DamageLineRepository using GORM
type GormDamageLineRepository struct {
	db *gorm.DB
}

// NewGormDamageLineRepository creates a new GormDamageLineRepository
func NewGormDamageLineRepository(db *gorm.DB) *GormDamageLineRepository {
	return &GormDamageLineRepository{db: db}
}

// FindByID finds a damage line by its ID
func (r *GormDamageLineRepository) FindByID(ctx context.Context, id uint) (*mission.DamageLine, error) {
	var model models.DamageLineModel
	if err := conn(ctx, r.db).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByMission finds all damage lines of a mission in insertion order
func (r *GormDamageLineRepository) FindByMission(ctx context.Context, missionID uint) ([]mission.DamageLine, error) {
	var lineModels []models.DamageLineModel
	if err := conn(ctx, r.db).
		Where("mission_id = ?", missionID).
		Order("id ASC").
		Find(&lineModels).Error; err != nil {
		return nil, err
	}

	lines := make([]mission.DamageLine, len(lineModels))
	for i, model := range lineModels {
		lines[i] = *model.ToDomain()
	}
	return lines, nil
}

// Save creates or updates a damage line
func (r *GormDamageLineRepository) Save(ctx context.Context, line *mission.DamageLine) error {
	var model models.DamageLineModel
	model.FromDomain(line)
	if err := conn(ctx, r.db).Save(&model).Error; err != nil {
		return err
	}
	line.ID = model.ID
	return nil
}

// Delete deletes a damage line
func (r *GormDamageLineRepository) Delete(ctx context.Context, id uint) error {
	result := conn(ctx, r.db).Delete(&models.DamageLineModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormDamageLineRepository implements DamageLineRepository
var _ mission.DamageLineRepository = (*GormDamageLineRepository)(nil)

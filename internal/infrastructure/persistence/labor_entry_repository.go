package persistence

import (
	"context"

	"github.com/autoexpert/backend/internal/domain/mission"
	"github.com/autoexpert/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormLaborEntryRepository implements LaborEntryRepository using GORM
type GormLaborEntryRepository struct {
	db *gorm.DB
}

// NewGormLaborEntryRepository creates a new GormLaborEntryRepository
func NewGormLaborEntryRepository(db *gorm.DB) *GormLaborEntryRepository {
	return &GormLaborEntryRepository{db: db}
}

// FindByMission finds all labor entries of a mission
func (r *GormLaborEntryRepository) FindByMission(ctx context.Context, missionID uint) ([]mission.LaborEntry, error) {
	var entryModels []models.LaborEntryModel
	if err := conn(ctx, r.db).
		Where("mission_id = ?", missionID).
		Order("id ASC").
		Find(&entryModels).Error; err != nil {
		return nil, err
	}

	entries := make([]mission.LaborEntry, len(entryModels))
	for i, model := range entryModels {
		entries[i] = *model.ToDomain()
	}
	return entries, nil
}

// ReplaceForMission atomically replaces the mission's labor ledger with the
// given category set. Replays of the same set are idempotent.
func (r *GormLaborEntryRepository) ReplaceForMission(ctx context.Context, missionID uint, entries []mission.LaborEntry) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.LaborEntryModel{}, "mission_id = ?", missionID).Error; err != nil {
			return err
		}
		for i := range entries {
			var model models.LaborEntryModel
			model.FromDomain(&entries[i])
			model.ID = 0
			if err := tx.Create(&model).Error; err != nil {
				return err
			}
			entries[i].ID = model.ID
		}
		return nil
	})
}

// Ensure GormLaborEntryRepository implements LaborEntryRepository
var _ mission.LaborEntryRepository = (*GormLaborEntryRepository)(nil)

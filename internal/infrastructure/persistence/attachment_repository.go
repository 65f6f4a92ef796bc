package persistence

import (
	"context"
	"errors"

	"github.com/autoexpert/backend/internal/domain/mission"
	"github.com/autoexpert/backend/internal/domain/shared"
	"github.com/autoexpert/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormAttachmentRepository implements AttachmentRepository using GORM
type GormAttachmentRepository struct {
	db *gorm.DB
}

// NewGormAttachmentRepository creates a new GormAttachmentRepository
func NewGormAttachmentRepository(db *gorm.DB) *GormAttachmentRepository {
	return &GormAttachmentRepository{db: db}
}

// FindByID finds an attachment by its ID
func (r *GormAttachmentRepository) FindByID(ctx context.Context, id uint) (*mission.Attachment, error) {
	var model models.AttachmentModel
	if err := conn(ctx, r.db).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByMission finds a mission's attachments, optionally narrowed to one
// kind. An empty kind returns everything.
func (r *GormAttachmentRepository) FindByMission(ctx context.Context, missionID uint, kind mission.AttachmentKind) ([]mission.Attachment, error) {
	query := conn(ctx, r.db).Where("mission_id = ?", missionID)
	if kind != "" {
		query = query.Where("kind = ?", string(kind))
	}

	var attachmentModels []models.AttachmentModel
	if err := query.Order("id ASC").Find(&attachmentModels).Error; err != nil {
		return nil, err
	}

	attachments := make([]mission.Attachment, len(attachmentModels))
	for i, model := range attachmentModels {
		attachments[i] = *model.ToDomain()
	}
	return attachments, nil
}

// Save creates or updates an attachment
func (r *GormAttachmentRepository) Save(ctx context.Context, attachment *mission.Attachment) error {
	var model models.AttachmentModel
	model.FromDomain(attachment)
	if err := conn(ctx, r.db).Save(&model).Error; err != nil {
		return err
	}
	attachment.ID = model.ID
	return nil
}

// Delete deletes an attachment
func (r *GormAttachmentRepository) Delete(ctx context.Context, id uint) error {
	result := conn(ctx, r.db).Delete(&models.AttachmentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormAttachmentRepository implements AttachmentRepository
var _ mission.AttachmentRepository = (*GormAttachmentRepository)(nil)

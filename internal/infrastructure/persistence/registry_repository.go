package persistence

import (
	"context"
	"errors"

	"github.com/autoexpert/backend/internal/domain/registry"
	"github.com/autoexpert/backend/internal/domain/shared"
	"github.com/autoexpert/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormInsurerRepository implements InsurerRepository using GORM
type GormInsurerRepository struct {
	db *gorm.DB
}

// NewGormInsurerRepository creates a new GormInsurerRepository
func NewGormInsurerRepository(db *gorm.DB) *GormInsurerRepository {
	return &GormInsurerRepository{db: db}
}

// FindByID finds an insurer by its ID
func (r *GormInsurerRepository) FindByID(ctx context.Context, id uint) (*registry.Insurer, error) {
	var model models.InsurerModel
	if err := conn(ctx, r.db).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all insurers ordered by name
func (r *GormInsurerRepository) FindAll(ctx context.Context) ([]registry.Insurer, error) {
	var insurerModels []models.InsurerModel
	if err := conn(ctx, r.db).Order("name ASC").Find(&insurerModels).Error; err != nil {
		return nil, err
	}

	insurers := make([]registry.Insurer, len(insurerModels))
	for i, model := range insurerModels {
		insurers[i] = *model.ToDomain()
	}
	return insurers, nil
}

// Save creates or updates an insurer
func (r *GormInsurerRepository) Save(ctx context.Context, insurer *registry.Insurer) error {
	var model models.InsurerModel
	model.FromDomain(insurer)
	if err := conn(ctx, r.db).Save(&model).Error; err != nil {
		return err
	}
	insurer.ID = model.ID
	return nil
}

// Delete deletes an insurer
func (r *GormInsurerRepository) Delete(ctx context.Context, id uint) error {
	result := conn(ctx, r.db).Delete(&models.InsurerModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormAgencyRepository implements AgencyRepository using GORM
type GormAgencyRepository struct {
	db *gorm.DB
}

// NewGormAgencyRepository creates a new GormAgencyRepository
func NewGormAgencyRepository(db *gorm.DB) *GormAgencyRepository {
	return &GormAgencyRepository{db: db}
}

// FindByID finds an agency by its ID
func (r *GormAgencyRepository) FindByID(ctx context.Context, id uint) (*registry.Agency, error) {
	var model models.AgencyModel
	if err := conn(ctx, r.db).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds agencies ordered by name. A non-zero insurerID narrows the
// listing to that insurer's agencies.
func (r *GormAgencyRepository) FindAll(ctx context.Context, insurerID uint) ([]registry.Agency, error) {
	query := conn(ctx, r.db).Model(&models.AgencyModel{})
	if insurerID != 0 {
		query = query.Where("insurer_id = ?", insurerID)
	}

	var agencyModels []models.AgencyModel
	if err := query.Order("name ASC").Find(&agencyModels).Error; err != nil {
		return nil, err
	}

	agencies := make([]registry.Agency, len(agencyModels))
	for i, model := range agencyModels {
		agencies[i] = *model.ToDomain()
	}
	return agencies, nil
}

// Save creates or updates an agency
func (r *GormAgencyRepository) Save(ctx context.Context, agency *registry.Agency) error {
	var model models.AgencyModel
	model.FromDomain(agency)
	if err := conn(ctx, r.db).Save(&model).Error; err != nil {
		return err
	}
	agency.ID = model.ID
	return nil
}

// Delete deletes an agency
func (r *GormAgencyRepository) Delete(ctx context.Context, id uint) error {
	result := conn(ctx, r.db).Delete(&models.AgencyModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormBrandRepository implements BrandRepository using GORM
type GormBrandRepository struct {
	db *gorm.DB
}

// NewGormBrandRepository creates a new GormBrandRepository
func NewGormBrandRepository(db *gorm.DB) *GormBrandRepository {
	return &GormBrandRepository{db: db}
}

// FindByID finds a brand by its ID
func (r *GormBrandRepository) FindByID(ctx context.Context, id uint) (*registry.Brand, error) {
	var model models.BrandModel
	if err := conn(ctx, r.db).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all brands ordered by name
func (r *GormBrandRepository) FindAll(ctx context.Context) ([]registry.Brand, error) {
	var brandModels []models.BrandModel
	if err := conn(ctx, r.db).Order("name ASC").Find(&brandModels).Error; err != nil {
		return nil, err
	}

	brands := make([]registry.Brand, len(brandModels))
	for i, model := range brandModels {
		brands[i] = *model.ToDomain()
	}
	return brands, nil
}

// Save creates or updates a brand
func (r *GormBrandRepository) Save(ctx context.Context, brand *registry.Brand) error {
	var model models.BrandModel
	model.FromDomain(brand)
	if err := conn(ctx, r.db).Save(&model).Error; err != nil {
		return err
	}
	brand.ID = model.ID
	return nil
}

// Delete deletes a brand
func (r *GormBrandRepository) Delete(ctx context.Context, id uint) error {
	result := conn(ctx, r.db).Delete(&models.BrandModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormGarageRepository implements GarageRepository using GORM
type GormGarageRepository struct {
	db *gorm.DB
}

// NewGormGarageRepository creates a new GormGarageRepository
func NewGormGarageRepository(db *gorm.DB) *GormGarageRepository {
	return &GormGarageRepository{db: db}
}

// FindByID finds a garage by its ID
func (r *GormGarageRepository) FindByID(ctx context.Context, id uint) (*registry.Garage, error) {
	var model models.GarageModel
	if err := conn(ctx, r.db).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all garages ordered by name
func (r *GormGarageRepository) FindAll(ctx context.Context) ([]registry.Garage, error) {
	var garageModels []models.GarageModel
	if err := conn(ctx, r.db).Order("name ASC").Find(&garageModels).Error; err != nil {
		return nil, err
	}

	garages := make([]registry.Garage, len(garageModels))
	for i, model := range garageModels {
		garages[i] = *model.ToDomain()
	}
	return garages, nil
}

// Save creates or updates a garage
func (r *GormGarageRepository) Save(ctx context.Context, garage *registry.Garage) error {
	var model models.GarageModel
	model.FromDomain(garage)
	if err := conn(ctx, r.db).Save(&model).Error; err != nil {
		return err
	}
	garage.ID = model.ID
	return nil
}

// Delete deletes a garage
func (r *GormGarageRepository) Delete(ctx context.Context, id uint) error {
	result := conn(ctx, r.db).Delete(&models.GarageModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure the registry repositories implement their contracts
var (
	_ registry.InsurerRepository = (*GormInsurerRepository)(nil)
	_ registry.AgencyRepository  = (*GormAgencyRepository)(nil)
	_ registry.BrandRepository   = (*GormBrandRepository)(nil)
	_ registry.GarageRepository  = (*GormGarageRepository)(nil)
)

package registry

import (
	"context"

	"github.com/autoexpert/backend/internal/domain/registry"
	"github.com/autoexpert/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Service manages the reference catalogs missions draw from: insurers with
// their agencies, vehicle brands and garages. Deleting an entity still
// referenced by a mission is refused; missions keep their snapshots either
// way.
type Service struct {
	insurers registry.InsurerRepository
	agencies registry.AgencyRepository
	brands   registry.BrandRepository
	garages  registry.GarageRepository
	usage    registry.UsageCounter
	logger   *zap.Logger
}

// NewService creates a reference catalog service
func NewService(
	insurers registry.InsurerRepository,
	agencies registry.AgencyRepository,
	brands registry.BrandRepository,
	garages registry.GarageRepository,
	usage registry.UsageCounter,
	logger *zap.Logger,
) *Service {
	return &Service{
		insurers: insurers,
		agencies: agencies,
		brands:   brands,
		garages:  garages,
		usage:    usage,
		logger:   logger,
	}
}

// CreateInsurer adds an insurer to the catalog
func (s *Service) CreateInsurer(ctx context.Context, req InsurerRequest) (*InsurerResponse, error) {
	insurer, err := registry.NewInsurer(req.Name, req.Contact)
	if err != nil {
		return nil, err
	}
	if err := s.insurers.Save(ctx, insurer); err != nil {
		return nil, err
	}
	s.logger.Info("insurer created", zap.Uint("insurer_id", insurer.ID), zap.String("name", insurer.Name))
	return toInsurerResponse(insurer), nil
}

// UpdateInsurer renames an insurer or changes its contact. Existing mission
// snapshots are not rewritten.
func (s *Service) UpdateInsurer(ctx context.Context, id uint, req InsurerRequest) (*InsurerResponse, error) {
	insurer, err := s.insurers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := insurer.Rename(req.Name); err != nil {
		return nil, err
	}
	insurer.SetContact(req.Contact)
	if err := s.insurers.Save(ctx, insurer); err != nil {
		return nil, err
	}
	return toInsurerResponse(insurer), nil
}

// ListInsurers returns the full insurer catalog
func (s *Service) ListInsurers(ctx context.Context) ([]InsurerResponse, error) {
	insurers, err := s.insurers.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]InsurerResponse, 0, len(insurers))
	for i := range insurers {
		out = append(out, *toInsurerResponse(&insurers[i]))
	}
	return out, nil
}

// DeleteInsurer removes an insurer unless a mission still references it as
// primary or adverse insurer, or one of its agencies still exists.
func (s *Service) DeleteInsurer(ctx context.Context, id uint) error {
	if _, err := s.insurers.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.guardUnused(ctx, registry.ReferenceInsurer, id, "Insurer is referenced by existing missions"); err != nil {
		return err
	}
	if err := s.guardUnused(ctx, registry.ReferenceAdverseInsurer, id, "Insurer is referenced by existing missions"); err != nil {
		return err
	}
	agencies, err := s.agencies.FindAll(ctx, id)
	if err != nil {
		return err
	}
	if len(agencies) > 0 {
		return shared.NewConflictError("Insurer still has agencies")
	}
	if err := s.insurers.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("insurer deleted", zap.Uint("insurer_id", id))
	return nil
}

// CreateAgency adds an agency under its parent insurer
func (s *Service) CreateAgency(ctx context.Context, req AgencyRequest) (*AgencyResponse, error) {
	if _, err := s.insurers.FindByID(ctx, req.InsurerID); err != nil {
		return nil, referenceError(err, "Parent insurer")
	}
	agency, err := registry.NewAgency(req.InsurerID, req.Name, req.Address, req.Contact)
	if err != nil {
		return nil, err
	}
	if err := s.agencies.Save(ctx, agency); err != nil {
		return nil, err
	}
	s.logger.Info("agency created", zap.Uint("agency_id", agency.ID), zap.Uint("insurer_id", agency.InsurerID))
	return toAgencyResponse(agency), nil
}

// UpdateAgency changes an agency's display attributes and, when the insurer
// id differs, moves it under another insurer. Reattaching is refused while
// missions reference the agency, since their insurer invariant would break.
func (s *Service) UpdateAgency(ctx context.Context, id uint, req AgencyRequest) (*AgencyResponse, error) {
	agency, err := s.agencies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.InsurerID != agency.InsurerID {
		if _, err := s.insurers.FindByID(ctx, req.InsurerID); err != nil {
			return nil, referenceError(err, "Parent insurer")
		}
		if err := s.guardUnused(ctx, registry.ReferenceAgency, id, "Agency is referenced by existing missions"); err != nil {
			return nil, err
		}
		if err := agency.Reattach(req.InsurerID); err != nil {
			return nil, err
		}
	}
	if err := agency.Update(req.Name, req.Address, req.Contact); err != nil {
		return nil, err
	}
	if err := s.agencies.Save(ctx, agency); err != nil {
		return nil, err
	}
	return toAgencyResponse(agency), nil
}

// ListAgencies returns agencies, optionally narrowed to one insurer
// (insurerID zero means all).
func (s *Service) ListAgencies(ctx context.Context, insurerID uint) ([]AgencyResponse, error) {
	agencies, err := s.agencies.FindAll(ctx, insurerID)
	if err != nil {
		return nil, err
	}
	out := make([]AgencyResponse, 0, len(agencies))
	for i := range agencies {
		out = append(out, *toAgencyResponse(&agencies[i]))
	}
	return out, nil
}

// DeleteAgency removes an agency unless a mission still references it
func (s *Service) DeleteAgency(ctx context.Context, id uint) error {
	if _, err := s.agencies.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.guardUnused(ctx, registry.ReferenceAgency, id, "Agency is referenced by existing missions"); err != nil {
		return err
	}
	if err := s.agencies.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("agency deleted", zap.Uint("agency_id", id))
	return nil
}

// CreateBrand adds a vehicle brand
func (s *Service) CreateBrand(ctx context.Context, req BrandRequest) (*BrandResponse, error) {
	brand, err := registry.NewBrand(req.Name)
	if err != nil {
		return nil, err
	}
	if err := s.brands.Save(ctx, brand); err != nil {
		return nil, err
	}
	s.logger.Info("brand created", zap.Uint("brand_id", brand.ID), zap.String("name", brand.Name))
	return toBrandResponse(brand), nil
}

// UpdateBrand renames a vehicle brand
func (s *Service) UpdateBrand(ctx context.Context, id uint, req BrandRequest) (*BrandResponse, error) {
	brand, err := s.brands.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := brand.Rename(req.Name); err != nil {
		return nil, err
	}
	if err := s.brands.Save(ctx, brand); err != nil {
		return nil, err
	}
	return toBrandResponse(brand), nil
}

// ListBrands returns the full brand catalog
func (s *Service) ListBrands(ctx context.Context) ([]BrandResponse, error) {
	brands, err := s.brands.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]BrandResponse, 0, len(brands))
	for i := range brands {
		out = append(out, *toBrandResponse(&brands[i]))
	}
	return out, nil
}

// DeleteBrand removes a brand unless a mission still references it
func (s *Service) DeleteBrand(ctx context.Context, id uint) error {
	if _, err := s.brands.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.guardUnused(ctx, registry.ReferenceBrand, id, "Brand is referenced by existing missions"); err != nil {
		return err
	}
	if err := s.brands.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("brand deleted", zap.Uint("brand_id", id))
	return nil
}

// CreateGarage adds a garage
func (s *Service) CreateGarage(ctx context.Context, req GarageRequest) (*GarageResponse, error) {
	garage, err := registry.NewGarage(req.Name, req.Address, req.Contact)
	if err != nil {
		return nil, err
	}
	if err := s.garages.Save(ctx, garage); err != nil {
		return nil, err
	}
	s.logger.Info("garage created", zap.Uint("garage_id", garage.ID), zap.String("name", garage.Name))
	return toGarageResponse(garage), nil
}

// UpdateGarage changes a garage's display attributes
func (s *Service) UpdateGarage(ctx context.Context, id uint, req GarageRequest) (*GarageResponse, error) {
	garage, err := s.garages.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := garage.Update(req.Name, req.Address, req.Contact); err != nil {
		return nil, err
	}
	if err := s.garages.Save(ctx, garage); err != nil {
		return nil, err
	}
	return toGarageResponse(garage), nil
}

// ListGarages returns the full garage catalog
func (s *Service) ListGarages(ctx context.Context) ([]GarageResponse, error) {
	garages, err := s.garages.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]GarageResponse, 0, len(garages))
	for i := range garages {
		out = append(out, *toGarageResponse(&garages[i]))
	}
	return out, nil
}

// DeleteGarage removes a garage unless a mission still references it
func (s *Service) DeleteGarage(ctx context.Context, id uint) error {
	if _, err := s.garages.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.guardUnused(ctx, registry.ReferenceGarage, id, "Garage is referenced by existing missions"); err != nil {
		return err
	}
	if err := s.garages.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("garage deleted", zap.Uint("garage_id", id))
	return nil
}

// guardUnused refuses deletion or reattachment while missions still point at
// the entity.
func (s *Service) guardUnused(ctx context.Context, kind registry.ReferenceKind, id uint, message string) error {
	count, err := s.usage.CountReferences(ctx, kind, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.NewConflictError(message)
	}
	return nil
}

func referenceError(err error, label string) error {
	if shared.IsCode(err, shared.CodeNotFound) {
		return shared.NewValidationError(label + " does not exist")
	}
	return err
}

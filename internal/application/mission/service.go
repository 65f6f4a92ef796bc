package mission

import (
	"context"
	"strings"

	"github.com/autoexpert/backend/internal/domain/identity"
	"github.com/autoexpert/backend/internal/domain/mission"
	"github.com/autoexpert/backend/internal/domain/registry"
	"github.com/autoexpert/backend/internal/domain/shared"
	"go.uber.org/zap"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	// Keywords shorter than this are ignored rather than rejected.
	minKeywordLength = 3
)

// Service orchestrates the mission lifecycle: creation with reference
// snapshotting, typed patches, guarded status transitions and scoped listing.
type Service struct {
	missions mission.MissionRepository
	insurers registry.InsurerRepository
	agencies registry.AgencyRepository
	brands   registry.BrandRepository
	garages  registry.GarageRepository
	users    identity.UserRepository
	logger   *zap.Logger
}

// NewService creates a mission service
func NewService(
	missions mission.MissionRepository,
	insurers registry.InsurerRepository,
	agencies registry.AgencyRepository,
	brands registry.BrandRepository,
	garages registry.GarageRepository,
	users identity.UserRepository,
	logger *zap.Logger,
) *Service {
	return &Service{
		missions: missions,
		insurers: insurers,
		agencies: agencies,
		brands:   brands,
		garages:  garages,
		users:    users,
		logger:   logger,
	}
}

// Create opens a new mission. All references are resolved and validated
// before anything is persisted; a failing request leaves no trace.
func (s *Service) Create(ctx context.Context, req CreateMissionRequest, actor Actor) (*MissionResponse, error) {
	if !identity.Role(actor.Role).IsPrivileged() {
		return nil, shared.ErrForbidden
	}

	m := mission.NewMission(actor.UserID)

	insurer, err := s.insurers.FindByID(ctx, req.InsurerID)
	if err != nil {
		return nil, referenceError(err, "Insurer")
	}
	m.AttachInsurer(insurer)

	if req.AgencyID != nil && *req.AgencyID != 0 {
		agency, err := s.agencies.FindByID(ctx, *req.AgencyID)
		if err != nil {
			return nil, referenceError(err, "Agency")
		}
		if err := m.AttachAgency(agency); err != nil {
			return nil, err
		}
	}

	brand, err := s.brands.FindByID(ctx, req.BrandID)
	if err != nil {
		return nil, referenceError(err, "Vehicle brand")
	}
	m.AttachBrand(brand)

	if req.GarageID != nil && *req.GarageID != 0 {
		garage, err := s.garages.FindByID(ctx, *req.GarageID)
		if err != nil {
			return nil, referenceError(err, "Garage")
		}
		m.AttachGarage(garage)
	}

	if req.AdverseInsurerID != nil && *req.AdverseInsurerID != 0 {
		adverse, err := s.insurers.FindByID(ctx, *req.AdverseInsurerID)
		if err != nil {
			return nil, referenceError(err, "Adverse insurer")
		}
		m.AttachAdverseInsurer(adverse)
	}

	applyCreateAttributes(m, req)

	if req.AssignedAgentID != nil && *req.AssignedAgentID != 0 {
		agent, err := s.users.FindByID(ctx, *req.AssignedAgentID)
		if err != nil {
			return nil, referenceError(err, "Assigned agent")
		}
		if err := m.Assign(agent); err != nil {
			return nil, err
		}
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	if err := s.missions.Save(ctx, m); err != nil {
		return nil, err
	}

	s.logger.Info("mission created",
		zap.Uint("mission_id", m.ID),
		zap.Uint("insurer_id", m.InsurerID),
		zap.Uint("created_by", actor.UserID))
	return ToMissionResponse(m), nil
}

// Update applies a typed patch to a mission. Only non-nil fields change; a
// zero id on an optional association clears it. Patching to a different
// insurer without supplying an agency clears the agency, since the old agency
// cannot belong to the new insurer; re-sending the current insurer leaves the
// agency untouched.
func (s *Service) Update(ctx context.Context, id uint, patch UpdateMissionRequest, actor Actor) (*MissionResponse, error) {
	role := identity.Role(actor.Role)
	if !role.IsPrivileged() {
		return nil, shared.ErrForbidden
	}

	m, err := s.missions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.InsurerID != nil {
		if *patch.InsurerID == 0 {
			return nil, shared.NewValidationError("Insurer cannot be cleared")
		}
		insurerChanged := *patch.InsurerID != m.InsurerID
		insurer, err := s.insurers.FindByID(ctx, *patch.InsurerID)
		if err != nil {
			return nil, referenceError(err, "Insurer")
		}
		m.AttachInsurer(insurer)
		if insurerChanged && patch.AgencyID == nil {
			m.ClearAgency()
		}
	}

	if patch.AgencyID != nil {
		if *patch.AgencyID == 0 {
			m.ClearAgency()
		} else {
			agency, err := s.agencies.FindByID(ctx, *patch.AgencyID)
			if err != nil {
				return nil, referenceError(err, "Agency")
			}
			if err := m.AttachAgency(agency); err != nil {
				return nil, err
			}
		}
	}

	if patch.BrandID != nil {
		if *patch.BrandID == 0 {
			return nil, shared.NewValidationError("Vehicle brand cannot be cleared")
		}
		brand, err := s.brands.FindByID(ctx, *patch.BrandID)
		if err != nil {
			return nil, referenceError(err, "Vehicle brand")
		}
		m.AttachBrand(brand)
	}

	if patch.GarageID != nil {
		if *patch.GarageID == 0 {
			m.ClearGarage()
		} else {
			garage, err := s.garages.FindByID(ctx, *patch.GarageID)
			if err != nil {
				return nil, referenceError(err, "Garage")
			}
			m.AttachGarage(garage)
		}
	}

	if patch.AdverseInsurerID != nil {
		if *patch.AdverseInsurerID == 0 {
			m.ClearAdverseInsurer()
		} else {
			adverse, err := s.insurers.FindByID(ctx, *patch.AdverseInsurerID)
			if err != nil {
				return nil, referenceError(err, "Adverse insurer")
			}
			m.AttachAdverseInsurer(adverse)
		}
	}

	if patch.AssignedAgentID != nil {
		if *patch.AssignedAgentID == 0 {
			m.ClearAgent()
		} else {
			agent, err := s.users.FindByID(ctx, *patch.AssignedAgentID)
			if err != nil {
				return nil, referenceError(err, "Assigned agent")
			}
			if err := m.Assign(agent); err != nil {
				return nil, err
			}
		}
	}

	applyPatchAttributes(m, patch)

	if patch.Status != nil {
		target, err := mission.ParseStatus(*patch.Status)
		if err != nil {
			return nil, err
		}
		if err := m.TransitionTo(target, role.IsPrivileged()); err != nil {
			return nil, err
		}
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	if err := s.missions.Save(ctx, m); err != nil {
		return nil, err
	}

	s.logger.Info("mission updated", zap.Uint("mission_id", m.ID))
	return ToMissionResponse(m), nil
}

// SetStatus applies an explicit status-change request. Agents may only move
// missions assigned to them; closing is reserved to the manager role.
func (s *Service) SetStatus(ctx context.Context, id uint, status string, actor Actor) (*MissionResponse, error) {
	m, err := s.loadForActor(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	target, err := mission.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	previous := m.Status
	if err := m.TransitionTo(target, identity.Role(actor.Role).IsPrivileged()); err != nil {
		return nil, err
	}
	if err := s.missions.Save(ctx, m); err != nil {
		return nil, err
	}

	s.logger.Info("mission status changed",
		zap.Uint("mission_id", m.ID),
		zap.String("from", previous.String()),
		zap.String("to", m.Status.String()),
		zap.Uint("actor_id", actor.UserID))
	return ToMissionResponse(m), nil
}

// Get returns one mission. Agents only see missions assigned to them.
func (s *Service) Get(ctx context.Context, id uint, actor Actor) (*MissionResponse, error) {
	m, err := s.loadForActor(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	return ToMissionResponse(m), nil
}

// List returns a filtered page of missions. Agents are always scoped to
// their own missions regardless of the requested agent filter.
func (s *Service) List(ctx context.Context, query ListMissionsQuery, actor Actor) (shared.Paginated[MissionResponse], error) {
	var empty shared.Paginated[MissionResponse]

	filter := mission.ListFilter{
		AssignedAgentID: query.AssignedAgentID,
		FromLossDate:    query.FromLossDate,
		ToLossDate:      query.ToLossDate,
		Page:            query.Page,
		PageSize:        query.PageSize,
	}
	if query.Status != "" {
		status, err := mission.ParseStatus(query.Status)
		if err != nil {
			return empty, err
		}
		filter.Status = status
	}
	if keyword := strings.TrimSpace(query.Keyword); len(keyword) >= minKeywordLength {
		filter.Keyword = keyword
	}
	if !identity.Role(actor.Role).IsPrivileged() {
		filter.AssignedAgentID = actor.UserID
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = defaultPageSize
	}
	if filter.PageSize > maxPageSize {
		filter.PageSize = maxPageSize
	}

	page, err := s.missions.List(ctx, filter)
	if err != nil {
		return empty, err
	}

	items := make([]MissionResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, *ToMissionResponse(&page.Items[i]))
	}
	return shared.NewPaginated(items, page.Total, page.Page, page.PageSize), nil
}

// Delete removes a mission and, through the repository, its damage lines,
// labor entries and attachments.
func (s *Service) Delete(ctx context.Context, id uint, actor Actor) error {
	if !identity.Role(actor.Role).IsPrivileged() {
		return shared.ErrForbidden
	}
	if _, err := s.missions.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.missions.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("mission deleted", zap.Uint("mission_id", id), zap.Uint("actor_id", actor.UserID))
	return nil
}

// loadForActor fetches a mission and applies agent scoping: non-privileged
// actors only reach missions assigned to them.
func (s *Service) loadForActor(ctx context.Context, id uint, actor Actor) (*mission.Mission, error) {
	m, err := s.missions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !identity.Role(actor.Role).IsPrivileged() && !m.IsAssignedTo(actor.UserID) {
		return nil, shared.ErrForbidden
	}
	return m, nil
}

// referenceError maps a repository not-found onto a validation error naming
// the reference, so a bad id in a payload reads as caller input, not as a
// missing route target.
func referenceError(err error, label string) error {
	if shared.IsCode(err, shared.CodeNotFound) {
		return shared.NewValidationError(label + " does not exist")
	}
	return err
}

func applyCreateAttributes(m *mission.Mission, req CreateMissionRequest) {
	m.InsuredName = strings.TrimSpace(req.InsuredName)
	m.InsuredPhone = strings.TrimSpace(req.InsuredPhone)
	m.InsuredEmail = strings.TrimSpace(req.InsuredEmail)

	m.VehicleModel = strings.TrimSpace(req.VehicleModel)
	m.VehiclePlate = strings.TrimSpace(req.VehiclePlate)
	m.VehicleVIN = strings.TrimSpace(req.VehicleVIN)
	m.VehicleMileage = req.VehicleMileage
	m.VehicleFiscalPower = req.VehicleFiscalPower
	m.VehicleEnergy = mission.EnergyType(strings.TrimSpace(req.VehicleEnergy))
	m.FirstRegistration = req.FirstRegistration

	m.LossType = strings.TrimSpace(req.LossType)
	m.LossDate = req.LossDate
	m.Circumstances = req.Circumstances
	m.PolicyNumber = strings.TrimSpace(req.PolicyNumber)
	m.AdversePolicyNumber = strings.TrimSpace(req.AdversePolicyNumber)
	m.AdverseName = strings.TrimSpace(req.AdverseName)
	m.AdversePlate = strings.TrimSpace(req.AdversePlate)

	m.Settlement.GuaranteeType = mission.GuaranteeType(strings.TrimSpace(req.GuaranteeType))
	if req.FranchiseRate != nil {
		m.Settlement.FranchiseRate = *req.FranchiseRate
	}
	if req.FranchiseFixed != nil {
		m.Settlement.FranchiseFixed = *req.FranchiseFixed
	}
	m.Settlement.Liability = strings.TrimSpace(req.Liability)
	m.Settlement.WriteOff = mission.WriteOffType(strings.TrimSpace(req.WriteOff))
	if req.InsuredValue != nil {
		m.Settlement.InsuredValue = *req.InsuredValue
	}
	if req.MarketValue != nil {
		m.Settlement.MarketValue = *req.MarketValue
	}
	if req.SalvageValue != nil {
		m.Settlement.SalvageValue = *req.SalvageValue
	}
	m.Settlement.Synthesis = req.Synthesis
	m.Settlement.ManualIndemnification = req.ManualIndemnification
}

func applyPatchAttributes(m *mission.Mission, patch UpdateMissionRequest) {
	if patch.InsuredName != nil {
		m.InsuredName = strings.TrimSpace(*patch.InsuredName)
	}
	if patch.InsuredPhone != nil {
		m.InsuredPhone = strings.TrimSpace(*patch.InsuredPhone)
	}
	if patch.InsuredEmail != nil {
		m.InsuredEmail = strings.TrimSpace(*patch.InsuredEmail)
	}
	if patch.VehicleModel != nil {
		m.VehicleModel = strings.TrimSpace(*patch.VehicleModel)
	}
	if patch.VehiclePlate != nil {
		m.VehiclePlate = strings.TrimSpace(*patch.VehiclePlate)
	}
	if patch.VehicleVIN != nil {
		m.VehicleVIN = strings.TrimSpace(*patch.VehicleVIN)
	}
	if patch.VehicleMileage != nil {
		m.VehicleMileage = patch.VehicleMileage
	}
	if patch.VehicleFiscalPower != nil {
		m.VehicleFiscalPower = patch.VehicleFiscalPower
	}
	if patch.VehicleEnergy != nil {
		m.VehicleEnergy = mission.EnergyType(strings.TrimSpace(*patch.VehicleEnergy))
	}
	if patch.FirstRegistration != nil {
		m.FirstRegistration = patch.FirstRegistration
	}
	if patch.LossType != nil {
		m.LossType = strings.TrimSpace(*patch.LossType)
	}
	if patch.LossDate != nil {
		m.LossDate = patch.LossDate
	}
	if patch.Circumstances != nil {
		m.Circumstances = *patch.Circumstances
	}
	if patch.PolicyNumber != nil {
		m.PolicyNumber = strings.TrimSpace(*patch.PolicyNumber)
	}
	if patch.AdversePolicyNumber != nil {
		m.AdversePolicyNumber = strings.TrimSpace(*patch.AdversePolicyNumber)
	}
	if patch.AdverseName != nil {
		m.AdverseName = strings.TrimSpace(*patch.AdverseName)
	}
	if patch.AdversePlate != nil {
		m.AdversePlate = strings.TrimSpace(*patch.AdversePlate)
	}
	if patch.GuaranteeType != nil {
		m.Settlement.GuaranteeType = mission.GuaranteeType(strings.TrimSpace(*patch.GuaranteeType))
	}
	if patch.FranchiseRate != nil {
		m.Settlement.FranchiseRate = *patch.FranchiseRate
	}
	if patch.FranchiseFixed != nil {
		m.Settlement.FranchiseFixed = *patch.FranchiseFixed
	}
	if patch.Liability != nil {
		m.Settlement.Liability = strings.TrimSpace(*patch.Liability)
	}
	if patch.WriteOff != nil {
		m.Settlement.WriteOff = mission.WriteOffType(strings.TrimSpace(*patch.WriteOff))
	}
	if patch.InsuredValue != nil {
		m.Settlement.InsuredValue = *patch.InsuredValue
	}
	if patch.MarketValue != nil {
		m.Settlement.MarketValue = *patch.MarketValue
	}
	if patch.SalvageValue != nil {
		m.Settlement.SalvageValue = *patch.SalvageValue
	}
	if patch.Synthesis != nil {
		m.Settlement.Synthesis = *patch.Synthesis
	}
	if patch.ManualIndemnification != nil {
		m.Settlement.ManualIndemnification = patch.ManualIndemnification
	}
	if patch.ClearManualOverride {
		m.Settlement.ManualIndemnification = nil
	}
	m.Touch()
}

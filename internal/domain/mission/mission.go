package mission

import (
	"time"

	"github.com/autoexpert/backend/internal/domain/identity"
	"github.com/autoexpert/backend/internal/domain/registry"
	"github.com/autoexpert/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// EnergyType is the vehicle fuel type. Unknown values are kept as-is for
// display; the set below only drives labels.
type EnergyType string

const (
	EnergyDiesel   EnergyType = "diesel"
	EnergyPetrol   EnergyType = "petrol"
	EnergyElectric EnergyType = "electric"
	EnergyHybrid   EnergyType = "hybrid"
)

// Mission is the central aggregate: one insurance-claim expertise assignment
// tracked from creation through field investigation to closure.
//
// Reference display attributes (insurer, agency, brand, garage, adverse
// insurer) are snapshotted onto the mission at association time. The
// snapshots are the system of record for reports; later edits to the
// referenced entities never rewrite them.
type Mission struct {
	shared.BaseEntity

	// Foreign keys.
	InsurerID        uint
	AgencyID         *uint
	BrandID          uint
	GarageID         *uint
	AdverseInsurerID *uint
	AssignedAgentID  *uint
	CreatedBy        uint

	// Snapshot fields, copied at association time.
	InsurerName        string
	InsurerContact     string
	AgencyName         string
	AgencyAddress      string
	AgencyContact      string
	BrandName          string
	GarageName         string
	GarageAddress      string
	GarageContact      string
	AdverseInsurerName string

	// Insured party.
	InsuredName  string
	InsuredPhone string
	InsuredEmail string

	// Vehicle.
	VehicleModel       string
	VehiclePlate       string
	VehicleVIN         string
	VehicleMileage     *int64
	VehicleFiscalPower *int
	VehicleEnergy      EnergyType
	FirstRegistration  *time.Time

	// Loss.
	LossType            string
	LossDate            *time.Time
	Circumstances       string
	PolicyNumber        string
	AdversePolicyNumber string
	AdverseName         string
	AdversePlate        string

	// Settlement configuration and figures.
	Settlement      Settlement
	LaborSuppliesHT decimal.Decimal

	Status Status
}

// NewMission creates a mission in the initial status. Insurer and brand are
// attached separately and are mandatory before first save.
func NewMission(createdBy uint) *Mission {
	return &Mission{
		BaseEntity:      shared.NewBaseEntity(),
		CreatedBy:       createdBy,
		Status:          StatusCreated,
		LaborSuppliesHT: decimal.Zero,
	}
}

// Validate checks the aggregate's mandatory associations and invariants.
// It is called before any persistence, so a failing request leaves no trace.
func (m *Mission) Validate() error {
	if m.InsurerID == 0 {
		return shared.NewValidationError("Insurer is required")
	}
	if m.BrandID == 0 {
		return shared.NewValidationError("Vehicle brand is required")
	}
	if m.InsuredName == "" {
		return shared.NewValidationError("Insured party name is required")
	}
	if !m.Status.IsValid() {
		return shared.NewValidationError("Unknown mission status")
	}
	if !m.Settlement.GuaranteeType.BearsFranchise() {
		if !m.Settlement.FranchiseRate.IsZero() || !m.Settlement.FranchiseFixed.IsZero() {
			return shared.NewValidationError("Franchise only applies to collision damage or third-party-comprehensive guarantees")
		}
	}
	return nil
}

// AttachInsurer snapshots the insurer onto the mission. The insurer is
// mandatory and cannot be cleared.
func (m *Mission) AttachInsurer(insurer *registry.Insurer) {
	m.InsurerID = insurer.ID
	m.InsurerName = insurer.Name
	m.InsurerContact = insurer.Contact
	m.Touch()
}

// AttachAgency snapshots the agency onto the mission. The agency must belong
// to the mission's current insurer.
func (m *Mission) AttachAgency(agency *registry.Agency) error {
	if !agency.BelongsTo(m.InsurerID) {
		return shared.NewValidationError("Agency does not belong to the mission's insurer")
	}
	id := agency.ID
	m.AgencyID = &id
	m.AgencyName = agency.Name
	m.AgencyAddress = agency.Address
	m.AgencyContact = agency.Contact
	m.Touch()
	return nil
}

// ClearAgency removes the agency association and its snapshot
func (m *Mission) ClearAgency() {
	m.AgencyID = nil
	m.AgencyName = ""
	m.AgencyAddress = ""
	m.AgencyContact = ""
	m.Touch()
}

// AttachBrand snapshots the vehicle brand onto the mission. The brand is
// mandatory and cannot be cleared.
func (m *Mission) AttachBrand(brand *registry.Brand) {
	m.BrandID = brand.ID
	m.BrandName = brand.Name
	m.Touch()
}

// AttachGarage snapshots the garage onto the mission
func (m *Mission) AttachGarage(garage *registry.Garage) {
	id := garage.ID
	m.GarageID = &id
	m.GarageName = garage.Name
	m.GarageAddress = garage.Address
	m.GarageContact = garage.Contact
	m.Touch()
}

// ClearGarage removes the garage association and its snapshot
func (m *Mission) ClearGarage() {
	m.GarageID = nil
	m.GarageName = ""
	m.GarageAddress = ""
	m.GarageContact = ""
	m.Touch()
}

// AttachAdverseInsurer snapshots the adverse party's insurer
func (m *Mission) AttachAdverseInsurer(insurer *registry.Insurer) {
	id := insurer.ID
	m.AdverseInsurerID = &id
	m.AdverseInsurerName = insurer.Name
	m.Touch()
}

// ClearAdverseInsurer removes the adverse insurer association
func (m *Mission) ClearAdverseInsurer() {
	m.AdverseInsurerID = nil
	m.AdverseInsurerName = ""
	m.Touch()
}

// Assign sets the assigned agent. Only assignable roles are accepted. When
// the mission is still below "assigned", assignment promotes it; an already
// advanced mission keeps its status (promotions never regress).
func (m *Mission) Assign(agent *identity.User) error {
	if !agent.Role.IsAssignable() {
		return shared.NewValidationError("Assignee must have an agent or manager role")
	}
	id := agent.ID
	m.AssignedAgentID = &id
	if m.Status.Ordinal() < StatusAssigned.Ordinal() {
		m.Status = StatusAssigned
	}
	m.Touch()
	return nil
}

// ClearAgent removes the assignment without touching the status
func (m *Mission) ClearAgent() {
	m.AssignedAgentID = nil
	m.Touch()
}

// TransitionTo applies an explicit status-change request. A target with a
// strictly lower ordinal is rejected even for privileged callers; closing is
// reserved to the privileged role.
func (m *Mission) TransitionTo(target Status, privileged bool) error {
	if !target.IsValid() {
		return shared.NewValidationError("Unknown mission status")
	}
	if target == StatusClosed && !privileged {
		return shared.NewAuthorizationError("Only the case manager can close a mission")
	}
	if !m.Status.CanTransitionTo(target) {
		return shared.NewInvalidTransitionError("Invalid status transition")
	}
	if target != m.Status {
		m.Status = target
		m.Touch()
	}
	return nil
}

// RegisterEvidenceActivity records that a non-privileged actor attached a
// photo or document. Missions still at created or assigned advance to
// in_progress; in_progress and closed missions are left unchanged.
func (m *Mission) RegisterEvidenceActivity(actorRole identity.Role) {
	if actorRole.IsPrivileged() {
		return
	}
	if m.Status.Ordinal() < StatusInProgress.Ordinal() {
		m.Status = StatusInProgress
		m.Touch()
	}
}

// IsAssignedTo reports whether the given user is the mission's assigned agent
func (m *Mission) IsAssignedTo(userID uint) bool {
	return m.AssignedAgentID != nil && *m.AssignedAgentID == userID
}

package mission

import (
	"time"

	"github.com/autoexpert/backend/internal/domain/mission"
	"github.com/shopspring/decimal"
)

// Actor identifies the authenticated caller of an operation.
type Actor struct {
	UserID uint
	Role   string
}

// CreateMissionRequest is the payload for opening a new mission. Insurer,
// brand and insured name are mandatory; every other association is optional.
type CreateMissionRequest struct {
	InsurerID        uint  `json:"insurer_id" binding:"required"`
	AgencyID         *uint `json:"agency_id"`
	BrandID          uint  `json:"brand_id" binding:"required"`
	GarageID         *uint `json:"garage_id"`
	AdverseInsurerID *uint `json:"adverse_insurer_id"`
	AssignedAgentID  *uint `json:"assigned_agent_id"`

	InsuredName  string `json:"insured_name" binding:"required"`
	InsuredPhone string `json:"insured_phone"`
	InsuredEmail string `json:"insured_email" binding:"omitempty,email"`

	VehicleModel       string     `json:"vehicle_model"`
	VehiclePlate       string     `json:"vehicle_plate"`
	VehicleVIN         string     `json:"vehicle_vin"`
	VehicleMileage     *int64     `json:"vehicle_mileage"`
	VehicleFiscalPower *int       `json:"vehicle_fiscal_power"`
	VehicleEnergy      string     `json:"vehicle_energy"`
	FirstRegistration  *time.Time `json:"first_registration"`

	LossType            string     `json:"loss_type"`
	LossDate            *time.Time `json:"loss_date"`
	Circumstances       string     `json:"circumstances"`
	PolicyNumber        string     `json:"policy_number"`
	AdversePolicyNumber string     `json:"adverse_policy_number"`
	AdverseName         string     `json:"adverse_name"`
	AdversePlate        string     `json:"adverse_plate"`

	GuaranteeType         string           `json:"guarantee_type"`
	FranchiseRate         *decimal.Decimal `json:"franchise_rate"`
	FranchiseFixed        *decimal.Decimal `json:"franchise_fixed"`
	Liability             string           `json:"liability"`
	WriteOff              string           `json:"write_off"`
	InsuredValue          *decimal.Decimal `json:"insured_value"`
	MarketValue           *decimal.Decimal `json:"market_value"`
	SalvageValue          *decimal.Decimal `json:"salvage_value"`
	Synthesis             string           `json:"synthesis"`
	ManualIndemnification *decimal.Decimal `json:"manual_indemnification"`
}

// UpdateMissionRequest is a typed patch: only non-nil fields are applied.
// For the optional associations (agency, garage, adverse insurer, assigned
// agent) a present zero id clears the association; insurer and brand cannot
// be cleared.
type UpdateMissionRequest struct {
	InsurerID        *uint `json:"insurer_id"`
	AgencyID         *uint `json:"agency_id"`
	BrandID          *uint `json:"brand_id"`
	GarageID         *uint `json:"garage_id"`
	AdverseInsurerID *uint `json:"adverse_insurer_id"`
	AssignedAgentID  *uint `json:"assigned_agent_id"`

	InsuredName  *string `json:"insured_name"`
	InsuredPhone *string `json:"insured_phone"`
	InsuredEmail *string `json:"insured_email" binding:"omitempty"`

	VehicleModel       *string    `json:"vehicle_model"`
	VehiclePlate       *string    `json:"vehicle_plate"`
	VehicleVIN         *string    `json:"vehicle_vin"`
	VehicleMileage     *int64     `json:"vehicle_mileage"`
	VehicleFiscalPower *int       `json:"vehicle_fiscal_power"`
	VehicleEnergy      *string    `json:"vehicle_energy"`
	FirstRegistration  *time.Time `json:"first_registration"`

	LossType            *string    `json:"loss_type"`
	LossDate            *time.Time `json:"loss_date"`
	Circumstances       *string    `json:"circumstances"`
	PolicyNumber        *string    `json:"policy_number"`
	AdversePolicyNumber *string    `json:"adverse_policy_number"`
	AdverseName         *string    `json:"adverse_name"`
	AdversePlate        *string    `json:"adverse_plate"`

	GuaranteeType         *string          `json:"guarantee_type"`
	FranchiseRate         *decimal.Decimal `json:"franchise_rate"`
	FranchiseFixed        *decimal.Decimal `json:"franchise_fixed"`
	Liability             *string          `json:"liability"`
	WriteOff              *string          `json:"write_off"`
	InsuredValue          *decimal.Decimal `json:"insured_value"`
	MarketValue           *decimal.Decimal `json:"market_value"`
	SalvageValue          *decimal.Decimal `json:"salvage_value"`
	Synthesis             *string          `json:"synthesis"`
	ManualIndemnification *decimal.Decimal `json:"manual_indemnification"`
	ClearManualOverride   bool             `json:"clear_manual_override"`

	Status *string `json:"status"`
}

// ListMissionsQuery narrows and paginates mission listings.
type ListMissionsQuery struct {
	Status          string     `form:"status"`
	AssignedAgentID uint       `form:"agent_id"`
	FromLossDate    *time.Time `form:"from_date" time_format:"2006-01-02"`
	ToLossDate      *time.Time `form:"to_date" time_format:"2006-01-02"`
	Keyword         string     `form:"keyword"`
	Page            int        `form:"page"`
	PageSize        int        `form:"page_size"`
}

// MissionResponse is the full mission aggregate as exposed to callers.
type MissionResponse struct {
	ID uint `json:"id"`

	InsurerID        uint  `json:"insurer_id"`
	AgencyID         *uint `json:"agency_id"`
	BrandID          uint  `json:"brand_id"`
	GarageID         *uint `json:"garage_id"`
	AdverseInsurerID *uint `json:"adverse_insurer_id"`
	AssignedAgentID  *uint `json:"assigned_agent_id"`
	CreatedBy        uint  `json:"created_by"`

	InsurerName        string `json:"insurer_name"`
	InsurerContact     string `json:"insurer_contact"`
	AgencyName         string `json:"agency_name"`
	AgencyAddress      string `json:"agency_address"`
	AgencyContact      string `json:"agency_contact"`
	BrandName          string `json:"brand_name"`
	GarageName         string `json:"garage_name"`
	GarageAddress      string `json:"garage_address"`
	GarageContact      string `json:"garage_contact"`
	AdverseInsurerName string `json:"adverse_insurer_name"`

	InsuredName  string `json:"insured_name"`
	InsuredPhone string `json:"insured_phone"`
	InsuredEmail string `json:"insured_email"`

	VehicleModel       string     `json:"vehicle_model"`
	VehiclePlate       string     `json:"vehicle_plate"`
	VehicleVIN         string     `json:"vehicle_vin"`
	VehicleMileage     *int64     `json:"vehicle_mileage"`
	VehicleFiscalPower *int       `json:"vehicle_fiscal_power"`
	VehicleEnergy      string     `json:"vehicle_energy"`
	FirstRegistration  *time.Time `json:"first_registration"`

	LossType            string     `json:"loss_type"`
	LossDate            *time.Time `json:"loss_date"`
	Circumstances       string     `json:"circumstances"`
	PolicyNumber        string     `json:"policy_number"`
	AdversePolicyNumber string     `json:"adverse_policy_number"`
	AdverseName         string     `json:"adverse_name"`
	AdversePlate        string     `json:"adverse_plate"`

	GuaranteeType         string           `json:"guarantee_type"`
	FranchiseRate         decimal.Decimal  `json:"franchise_rate"`
	FranchiseFixed        decimal.Decimal  `json:"franchise_fixed"`
	Liability             string           `json:"liability"`
	WriteOff              string           `json:"write_off"`
	InsuredValue          decimal.Decimal  `json:"insured_value"`
	MarketValue           decimal.Decimal  `json:"market_value"`
	SalvageValue          decimal.Decimal  `json:"salvage_value"`
	Synthesis             string           `json:"synthesis"`
	ManualIndemnification *decimal.Decimal `json:"manual_indemnification"`
	LaborSuppliesHT       decimal.Decimal  `json:"labor_supplies_ht"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToMissionResponse maps the aggregate to its response shape
func ToMissionResponse(m *mission.Mission) *MissionResponse {
	return &MissionResponse{
		ID:                    m.ID,
		InsurerID:             m.InsurerID,
		AgencyID:              m.AgencyID,
		BrandID:               m.BrandID,
		GarageID:              m.GarageID,
		AdverseInsurerID:      m.AdverseInsurerID,
		AssignedAgentID:       m.AssignedAgentID,
		CreatedBy:             m.CreatedBy,
		InsurerName:           m.InsurerName,
		InsurerContact:        m.InsurerContact,
		AgencyName:            m.AgencyName,
		AgencyAddress:         m.AgencyAddress,
		AgencyContact:         m.AgencyContact,
		BrandName:             m.BrandName,
		GarageName:            m.GarageName,
		GarageAddress:         m.GarageAddress,
		GarageContact:         m.GarageContact,
		AdverseInsurerName:    m.AdverseInsurerName,
		InsuredName:           m.InsuredName,
		InsuredPhone:          m.InsuredPhone,
		InsuredEmail:          m.InsuredEmail,
		VehicleModel:          m.VehicleModel,
		VehiclePlate:          m.VehiclePlate,
		VehicleVIN:            m.VehicleVIN,
		VehicleMileage:        m.VehicleMileage,
		VehicleFiscalPower:    m.VehicleFiscalPower,
		VehicleEnergy:         string(m.VehicleEnergy),
		FirstRegistration:     m.FirstRegistration,
		LossType:              m.LossType,
		LossDate:              m.LossDate,
		Circumstances:         m.Circumstances,
		PolicyNumber:          m.PolicyNumber,
		AdversePolicyNumber:   m.AdversePolicyNumber,
		AdverseName:           m.AdverseName,
		AdversePlate:          m.AdversePlate,
		GuaranteeType:         string(m.Settlement.GuaranteeType),
		FranchiseRate:         m.Settlement.FranchiseRate,
		FranchiseFixed:        m.Settlement.FranchiseFixed,
		Liability:             m.Settlement.Liability,
		WriteOff:              string(m.Settlement.WriteOff),
		InsuredValue:          m.Settlement.InsuredValue,
		MarketValue:           m.Settlement.MarketValue,
		SalvageValue:          m.Settlement.SalvageValue,
		Synthesis:             m.Settlement.Synthesis,
		ManualIndemnification: m.Settlement.ManualIndemnification,
		LaborSuppliesHT:       m.LaborSuppliesHT,
		Status:                m.Status.String(),
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

// DamageLineRequest is the payload for adding or updating a damage line.
type DamageLineRequest struct {
	Piece         string          `json:"piece" binding:"required"`
	PriceHT       decimal.Decimal `json:"price_ht"`
	Depreciation  decimal.Decimal `json:"depreciation"`
	PartType      string          `json:"part_type"`
	VATApplicable *bool           `json:"vat_applicable"`
}

// DamageLineResponse is one line with its derived values.
type DamageLineResponse struct {
	ID            uint            `json:"id"`
	MissionID     uint            `json:"mission_id"`
	Piece         string          `json:"piece"`
	PriceHT       decimal.Decimal `json:"price_ht"`
	Depreciation  decimal.Decimal `json:"depreciation"`
	PartType      string          `json:"part_type"`
	VATApplicable bool            `json:"vat_applicable"`
	PriceAfter    decimal.Decimal `json:"price_after"`
	PriceTTC      decimal.Decimal `json:"price_ttc"`
	PriceAfterTTC decimal.Decimal `json:"price_after_ttc"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToDamageLineResponse maps a line with freshly recomputed derived values
func ToDamageLineResponse(l *mission.DamageLine) DamageLineResponse {
	return DamageLineResponse{
		ID:            l.ID,
		MissionID:     l.MissionID,
		Piece:         l.Piece,
		PriceHT:       l.PriceHT,
		Depreciation:  l.Depreciation,
		PartType:      string(l.PartType),
		VATApplicable: l.VATApplicable,
		PriceAfter:    l.PriceAfterDepreciation(),
		PriceTTC:      l.PriceTTC(),
		PriceAfterTTC: l.PriceAfterDepreciationTTC(),
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}

// DamageLedgerResponse is the list-with-totals read model.
type DamageLedgerResponse struct {
	Items  []DamageLineResponse `json:"items"`
	Totals mission.DamageTotals `json:"totals"`
}

// LaborEntryRequest carries one category's hours and rate.
type LaborEntryRequest struct {
	Category string          `json:"category" binding:"required"`
	Hours    decimal.Decimal `json:"hours"`
	Rate     decimal.Decimal `json:"rate"`
}

// SaveLaborRequest replaces the full labor breakdown of a mission.
// Categories absent from the payload are persisted as zero.
type SaveLaborRequest struct {
	Entries    []LaborEntryRequest `json:"entries"`
	SuppliesHT decimal.Decimal     `json:"supplies_ht"`
}

// LaborBreakdownResponse is the get-with-totals read model.
type LaborBreakdownResponse struct {
	Entries []mission.LaborBreakdownEntry `json:"entries"`
	Totals  mission.LaborTotals           `json:"totals"`
}

// AttachmentRequest carries the metadata of one stored evidence file.
// The byte storage itself is handled outside this core.
type AttachmentRequest struct {
	FilePath string `json:"file_path" binding:"required"`
	FileName string `json:"file_name"`
	Label    string `json:"label"`
	Phase    string `json:"phase"`
}

// AttachmentResponse is one evidence metadata row.
type AttachmentResponse struct {
	ID         uint      `json:"id"`
	MissionID  uint      `json:"mission_id"`
	Kind       string    `json:"kind"`
	FilePath   string    `json:"file_path"`
	FileName   string    `json:"file_name"`
	Label      string    `json:"label,omitempty"`
	Phase      string    `json:"phase,omitempty"`
	UploadedBy uint      `json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToAttachmentResponse maps an attachment metadata row
func ToAttachmentResponse(a *mission.Attachment) AttachmentResponse {
	return AttachmentResponse{
		ID:         a.ID,
		MissionID:  a.MissionID,
		Kind:       string(a.Kind),
		FilePath:   a.FilePath,
		FileName:   a.FileName,
		Label:      a.Label,
		Phase:      string(a.Phase),
		UploadedBy: a.UploadedBy,
		CreatedAt:  a.CreatedAt,
	}
}

package models

import (
	"time"

	"github.com/autoexpert/backend/internal/domain/mission"
	"github.com/shopspring/decimal"
)

// MissionModel is the persistence model for the Mission aggregate. Snapshot
// columns hold the reference display data copied at association time; they
// are never joined back to the catalog tables.
type MissionModel struct {
	BaseModel
	InsurerID        uint  `gorm:"not null;index"`
	AgencyID         *uint `gorm:"index"`
	BrandID          uint  `gorm:"not null;index"`
	GarageID         *uint `gorm:"index"`
	AdverseInsurerID *uint `gorm:"index"`
	AssignedAgentID  *uint `gorm:"index"`
	CreatedBy        uint  `gorm:"not null"`

	InsurerName        string `gorm:"type:varchar(200);not null"`
	InsurerContact     string `gorm:"type:varchar(200)"`
	AgencyName         string `gorm:"type:varchar(200)"`
	AgencyAddress      string `gorm:"type:text"`
	AgencyContact      string `gorm:"type:varchar(200)"`
	BrandName          string `gorm:"type:varchar(100);not null"`
	GarageName         string `gorm:"type:varchar(200)"`
	GarageAddress      string `gorm:"type:text"`
	GarageContact      string `gorm:"type:varchar(200)"`
	AdverseInsurerName string `gorm:"type:varchar(200)"`

	InsuredName  string `gorm:"type:varchar(200);not null;index"`
	InsuredPhone string `gorm:"type:varchar(50)"`
	InsuredEmail string `gorm:"type:varchar(200)"`

	VehicleModel       string     `gorm:"type:varchar(100)"`
	VehiclePlate       string     `gorm:"type:varchar(30);index"`
	VehicleVIN         string     `gorm:"type:varchar(30)"`
	VehicleMileage     *int64
	VehicleFiscalPower *int
	VehicleEnergy      string     `gorm:"type:varchar(20)"`
	FirstRegistration  *time.Time `gorm:""`

	LossType            string     `gorm:"type:varchar(50)"`
	LossDate            *time.Time `gorm:"index"`
	Circumstances       string     `gorm:"type:text"`
	PolicyNumber        string     `gorm:"type:varchar(50)"`
	AdversePolicyNumber string     `gorm:"type:varchar(50)"`
	AdverseName         string     `gorm:"type:varchar(200)"`
	AdversePlate        string     `gorm:"type:varchar(30)"`

	GuaranteeType         string           `gorm:"type:varchar(50)"`
	FranchiseRate         decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	FranchiseFixed        decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	Liability             string           `gorm:"type:varchar(50)"`
	WriteOff              string           `gorm:"type:varchar(20)"`
	InsuredValue          decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	MarketValue           decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	SalvageValue          decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	Synthesis             string           `gorm:"type:text"`
	ManualIndemnification *decimal.Decimal `gorm:"type:decimal(18,4)"`
	LaborSuppliesHT       decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`

	Status string `gorm:"type:varchar(20);not null;index"`
}

// TableName returns the table name for GORM
func (MissionModel) TableName() string {
	return "missions"
}

// ToDomain converts the persistence model to a domain Mission aggregate
func (m *MissionModel) ToDomain() *mission.Mission {
	return &mission.Mission{
		BaseEntity:          m.BaseModel.ToDomain(),
		InsurerID:           m.InsurerID,
		AgencyID:            m.AgencyID,
		BrandID:             m.BrandID,
		GarageID:            m.GarageID,
		AdverseInsurerID:    m.AdverseInsurerID,
		AssignedAgentID:     m.AssignedAgentID,
		CreatedBy:           m.CreatedBy,
		InsurerName:         m.InsurerName,
		InsurerContact:      m.InsurerContact,
		AgencyName:          m.AgencyName,
		AgencyAddress:       m.AgencyAddress,
		AgencyContact:       m.AgencyContact,
		BrandName:           m.BrandName,
		GarageName:          m.GarageName,
		GarageAddress:       m.GarageAddress,
		GarageContact:       m.GarageContact,
		AdverseInsurerName:  m.AdverseInsurerName,
		InsuredName:         m.InsuredName,
		InsuredPhone:        m.InsuredPhone,
		InsuredEmail:        m.InsuredEmail,
		VehicleModel:        m.VehicleModel,
		VehiclePlate:        m.VehiclePlate,
		VehicleVIN:          m.VehicleVIN,
		VehicleMileage:      m.VehicleMileage,
		VehicleFiscalPower:  m.VehicleFiscalPower,
		VehicleEnergy:       mission.EnergyType(m.VehicleEnergy),
		FirstRegistration:   m.FirstRegistration,
		LossType:            m.LossType,
		LossDate:            m.LossDate,
		Circumstances:       m.Circumstances,
		PolicyNumber:        m.PolicyNumber,
		AdversePolicyNumber: m.AdversePolicyNumber,
		AdverseName:         m.AdverseName,
		AdversePlate:        m.AdversePlate,
		Settlement: mission.Settlement{
			GuaranteeType:         mission.GuaranteeType(m.GuaranteeType),
			FranchiseRate:         m.FranchiseRate,
			FranchiseFixed:        m.FranchiseFixed,
			Liability:             m.Liability,
			WriteOff:              mission.WriteOffType(m.WriteOff),
			InsuredValue:          m.InsuredValue,
			MarketValue:           m.MarketValue,
			SalvageValue:          m.SalvageValue,
			Synthesis:             m.Synthesis,
			ManualIndemnification: m.ManualIndemnification,
		},
		LaborSuppliesHT: m.LaborSuppliesHT,
		Status:          mission.Status(m.Status),
	}
}

// FromDomain populates the persistence model from a domain Mission aggregate
func (m *MissionModel) FromDomain(e *mission.Mission) {
	m.BaseModel.FromDomain(e.BaseEntity)
	m.InsurerID = e.InsurerID
	m.AgencyID = e.AgencyID
	m.BrandID = e.BrandID
	m.GarageID = e.GarageID
	m.AdverseInsurerID = e.AdverseInsurerID
	m.AssignedAgentID = e.AssignedAgentID
	m.CreatedBy = e.CreatedBy
	m.InsurerName = e.InsurerName
	m.InsurerContact = e.InsurerContact
	m.AgencyName = e.AgencyName
	m.AgencyAddress = e.AgencyAddress
	m.AgencyContact = e.AgencyContact
	m.BrandName = e.BrandName
	m.GarageName = e.GarageName
	m.GarageAddress = e.GarageAddress
	m.GarageContact = e.GarageContact
	m.AdverseInsurerName = e.AdverseInsurerName
	m.InsuredName = e.InsuredName
	m.InsuredPhone = e.InsuredPhone
	m.InsuredEmail = e.InsuredEmail
	m.VehicleModel = e.VehicleModel
	m.VehiclePlate = e.VehiclePlate
	m.VehicleVIN = e.VehicleVIN
	m.VehicleMileage = e.VehicleMileage
	m.VehicleFiscalPower = e.VehicleFiscalPower
	m.VehicleEnergy = string(e.VehicleEnergy)
	m.FirstRegistration = e.FirstRegistration
	m.LossType = e.LossType
	m.LossDate = e.LossDate
	m.Circumstances = e.Circumstances
	m.PolicyNumber = e.PolicyNumber
	m.AdversePolicyNumber = e.AdversePolicyNumber
	m.AdverseName = e.AdverseName
	m.AdversePlate = e.AdversePlate
	m.GuaranteeType = string(e.Settlement.GuaranteeType)
	m.FranchiseRate = e.Settlement.FranchiseRate
	m.FranchiseFixed = e.Settlement.FranchiseFixed
	m.Liability = e.Settlement.Liability
	m.WriteOff = string(e.Settlement.WriteOff)
	m.InsuredValue = e.Settlement.InsuredValue
	m.MarketValue = e.Settlement.MarketValue
	m.SalvageValue = e.Settlement.SalvageValue
	m.Synthesis = e.Settlement.Synthesis
	m.ManualIndemnification = e.Settlement.ManualIndemnification
	m.LaborSuppliesHT = e.LaborSuppliesHT
	m.Status = e.Status.String()
}

// DamageLineModel is the persistence model for one damage ledger line.
// Only raw inputs are stored; derived prices are recomputed on read.
type DamageLineModel struct {
	BaseModel
	MissionID     uint            `gorm:"not null;index"`
	Piece         string          `gorm:"type:varchar(200);not null"`
	PriceHT       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Depreciation  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	PartType      string          `gorm:"type:varchar(20);not null;default:'original'"`
	VATApplicable bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (DamageLineModel) TableName() string {
	return "damage_lines"
}

// ToDomain converts the persistence model to a domain DamageLine
func (m *DamageLineModel) ToDomain() *mission.DamageLine {
	return &mission.DamageLine{
		BaseEntity:    m.BaseModel.ToDomain(),
		MissionID:     m.MissionID,
		Piece:         m.Piece,
		PriceHT:       m.PriceHT,
		Depreciation:  m.Depreciation,
		PartType:      mission.PartType(m.PartType),
		VATApplicable: m.VATApplicable,
	}
}

// FromDomain populates the persistence model from a domain DamageLine
func (m *DamageLineModel) FromDomain(l *mission.DamageLine) {
	m.BaseModel.FromDomain(l.BaseEntity)
	m.MissionID = l.MissionID
	m.Piece = l.Piece
	m.PriceHT = l.PriceHT
	m.Depreciation = l.Depreciation
	m.PartType = string(l.PartType)
	m.VATApplicable = l.VATApplicable
}

// LaborEntryModel is the persistence model for one labor category row.
// At most one row exists per (mission, category).
type LaborEntryModel struct {
	BaseModel
	MissionID uint            `gorm:"not null;uniqueIndex:idx_labor_mission_category,priority:1"`
	Category  string          `gorm:"type:varchar(20);not null;uniqueIndex:idx_labor_mission_category,priority:2"`
	Hours     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Rate      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (LaborEntryModel) TableName() string {
	return "labor_entries"
}

// ToDomain converts the persistence model to a domain LaborEntry
func (m *LaborEntryModel) ToDomain() *mission.LaborEntry {
	return &mission.LaborEntry{
		BaseEntity: m.BaseModel.ToDomain(),
		MissionID:  m.MissionID,
		Category:   mission.LaborCategory(m.Category),
		Hours:      m.Hours,
		Rate:       m.Rate,
	}
}

// FromDomain populates the persistence model from a domain LaborEntry
func (m *LaborEntryModel) FromDomain(e *mission.LaborEntry) {
	m.BaseModel.FromDomain(e.BaseEntity)
	m.MissionID = e.MissionID
	m.Category = string(e.Category)
	m.Hours = e.Hours
	m.Rate = e.Rate
}

// AttachmentModel is the persistence model for evidence metadata.
type AttachmentModel struct {
	BaseModel
	MissionID  uint   `gorm:"not null;index"`
	Kind       string `gorm:"type:varchar(20);not null;index"`
	FilePath   string `gorm:"type:varchar(500);not null"`
	FileName   string `gorm:"type:varchar(255)"`
	Label      string `gorm:"type:varchar(50)"`
	Phase      string `gorm:"type:varchar(10)"`
	UploadedBy uint   `gorm:"not null"`
}

// TableName returns the table name for GORM
func (AttachmentModel) TableName() string {
	return "attachments"
}

// ToDomain converts the persistence model to a domain Attachment
func (m *AttachmentModel) ToDomain() *mission.Attachment {
	return &mission.Attachment{
		BaseEntity: m.BaseModel.ToDomain(),
		MissionID:  m.MissionID,
		Kind:       mission.AttachmentKind(m.Kind),
		FilePath:   m.FilePath,
		FileName:   m.FileName,
		Label:      m.Label,
		Phase:      mission.PhotoPhase(m.Phase),
		UploadedBy: m.UploadedBy,
	}
}

// FromDomain populates the persistence model from a domain Attachment
func (m *AttachmentModel) FromDomain(a *mission.Attachment) {
	m.BaseModel.FromDomain(a.BaseEntity)
	m.MissionID = a.MissionID
	m.Kind = string(a.Kind)
	m.FilePath = a.FilePath
	m.FileName = a.FileName
	m.Label = a.Label
	m.Phase = string(a.Phase)
	m.UploadedBy = a.UploadedBy
}

package models

import "github.com/autoexpert/backend/internal/domain/registry"

// InsurerModel is the persistence model for the Insurer domain entity.
type InsurerModel struct {
	BaseModel
	Name    string `gorm:"type:varchar(200);not null"`
	Contact string `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (InsurerModel) TableName() string {
	return "insurers"
}

// ToDomain converts the persistence model to a domain Insurer entity
func (m *InsurerModel) ToDomain() *registry.Insurer {
	return &registry.Insurer{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Contact:    m.Contact,
	}
}

// FromDomain populates the persistence model from a domain Insurer entity
func (m *InsurerModel) FromDomain(i *registry.Insurer) {
	m.BaseModel.FromDomain(i.BaseEntity)
	m.Name = i.Name
	m.Contact = i.Contact
}

// AgencyModel is the persistence model for the Agency domain entity.
type AgencyModel struct {
	BaseModel
	InsurerID uint   `gorm:"not null;index"`
	Name      string `gorm:"type:varchar(200);not null"`
	Address   string `gorm:"type:text"`
	Contact   string `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (AgencyModel) TableName() string {
	return "agencies"
}

// ToDomain converts the persistence model to a domain Agency entity
func (m *AgencyModel) ToDomain() *registry.Agency {
	return &registry.Agency{
		BaseEntity: m.BaseModel.ToDomain(),
		InsurerID:  m.InsurerID,
		Name:       m.Name,
		Address:    m.Address,
		Contact:    m.Contact,
	}
}

// FromDomain populates the persistence model from a domain Agency entity
func (m *AgencyModel) FromDomain(a *registry.Agency) {
	m.BaseModel.FromDomain(a.BaseEntity)
	m.InsurerID = a.InsurerID
	m.Name = a.Name
	m.Address = a.Address
	m.Contact = a.Contact
}

// BrandModel is the persistence model for the Brand domain entity.
type BrandModel struct {
	BaseModel
	Name string `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (BrandModel) TableName() string {
	return "brands"
}

// ToDomain converts the persistence model to a domain Brand entity
func (m *BrandModel) ToDomain() *registry.Brand {
	return &registry.Brand{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
	}
}

// FromDomain populates the persistence model from a domain Brand entity
func (m *BrandModel) FromDomain(b *registry.Brand) {
	m.BaseModel.FromDomain(b.BaseEntity)
	m.Name = b.Name
}

// GarageModel is the persistence model for the Garage domain entity.
type GarageModel struct {
	BaseModel
	Name    string `gorm:"type:varchar(200);not null"`
	Address string `gorm:"type:text"`
	Contact string `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (GarageModel) TableName() string {
	return "garages"
}

// ToDomain converts the persistence model to a domain Garage entity
func (m *GarageModel) ToDomain() *registry.Garage {
	return &registry.Garage{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Address:    m.Address,
		Contact:    m.Contact,
	}
}

// FromDomain populates the persistence model from a domain Garage entity
func (m *GarageModel) FromDomain(g *registry.Garage) {
	m.BaseModel.FromDomain(g.BaseEntity)
	m.Name = g.Name
	m.Address = g.Address
	m.Contact = g.Contact
}

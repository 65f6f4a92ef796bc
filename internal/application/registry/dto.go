package registry

import (
	"time"

	"github.com/autoexpert/backend/internal/domain/registry"
)

// InsurerRequest is the payload for creating or updating an insurer.
type InsurerRequest struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact"`
}

// AgencyRequest is the payload for creating or updating an agency.
type AgencyRequest struct {
	InsurerID uint   `json:"insurer_id" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Address   string `json:"address"`
	Contact   string `json:"contact"`
}

// BrandRequest is the payload for creating or renaming a vehicle brand.
type BrandRequest struct {
	Name string `json:"name" binding:"required"`
}

// GarageRequest is the payload for creating or updating a garage.
type GarageRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Contact string `json:"contact"`
}

// InsurerResponse is one insurer row.
type InsurerResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AgencyResponse is one agency row.
type AgencyResponse struct {
	ID        uint      `json:"id"`
	InsurerID uint      `json:"insurer_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Contact   string    `json:"contact"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BrandResponse is one brand row.
type BrandResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GarageResponse is one garage row.
type GarageResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Contact   string    `json:"contact"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toInsurerResponse(i *registry.Insurer) *InsurerResponse {
	return &InsurerResponse{ID: i.ID, Name: i.Name, Contact: i.Contact, CreatedAt: i.CreatedAt, UpdatedAt: i.UpdatedAt}
}

func toAgencyResponse(a *registry.Agency) *AgencyResponse {
	return &AgencyResponse{ID: a.ID, InsurerID: a.InsurerID, Name: a.Name, Address: a.Address, Contact: a.Contact, CreatedAt: a.CreatedAt, UpdatedAt: a.UpdatedAt}
}

func toBrandResponse(b *registry.Brand) *BrandResponse {
	return &BrandResponse{ID: b.ID, Name: b.Name, CreatedAt: b.CreatedAt, UpdatedAt: b.UpdatedAt}
}

func toGarageResponse(g *registry.Garage) *GarageResponse {
	return &GarageResponse{ID: g.ID, Name: g.Name, Address: g.Address, Contact: g.Contact, CreatedAt: g.CreatedAt, UpdatedAt: g.UpdatedAt}
}

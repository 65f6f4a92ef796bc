package registry

import (
	"strings"

	"github.com/autoexpert/backend/internal/domain/shared"
)

// Garage is a repair shop where the damaged vehicle is inspected.
type Garage struct {
	shared.BaseEntity
	Name    string
	Address string
	Contact string
}

// NewGarage creates a garage with a required display name
func NewGarage(name, address, contact string) (*Garage, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("Garage name is required")
	}
	return &Garage{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Address:    strings.TrimSpace(address),
		Contact:    strings.TrimSpace(contact),
	}, nil
}

// Update applies new display attributes to the garage
func (g *Garage) Update(name, address, contact string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewValidationError("Garage name is required")
	}
	g.Name = name
	g.Address = strings.TrimSpace(address)
	g.Contact = strings.TrimSpace(contact)
	g.Touch()
	return nil
}

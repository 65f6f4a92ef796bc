package registry

import (
	"strings"

	"github.com/autoexpert/backend/internal/domain/shared"
)

// Brand is a vehicle manufacturer name.
type Brand struct {
	shared.BaseEntity
	Name string
}

// NewBrand creates a vehicle brand
func NewBrand(name string) (*Brand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("Brand name is required")
	}
	return &Brand{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
	}, nil
}

// Rename updates the brand display name
func (b *Brand) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewValidationError("Brand name is required")
	}
	b.Name = name
	b.Touch()
	return nil
}

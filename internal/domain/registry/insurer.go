package registry

import (
	"strings"

	"github.com/autoexpert/backend/internal/domain/shared"
)

// Insurer is an insurance company missions are opened for.
type Insurer struct {
	shared.BaseEntity
	Name    string
	Contact string
}

// NewInsurer creates an insurer with a required display name
func NewInsurer(name, contact string) (*Insurer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("Insurer name is required")
	}
	return &Insurer{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Contact:    strings.TrimSpace(contact),
	}, nil
}

// Rename updates the insurer display name
func (i *Insurer) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewValidationError("Insurer name is required")
	}
	i.Name = name
	i.Touch()
	return nil
}

// SetContact updates the insurer contact details
func (i *Insurer) SetContact(contact string) {
	i.Contact = strings.TrimSpace(contact)
	i.Touch()
}

package registry

import (
	"strings"

	"github.com/autoexpert/backend/internal/domain/shared"
)

// Agency is a local branch of an insurer. The parent insurer is mandatory and
// every mission referencing the agency must reference the same insurer.
type Agency struct {
	shared.BaseEntity
	InsurerID uint
	Name      string
	Address   string
	Contact   string
}

// NewAgency creates an agency attached to its parent insurer
func NewAgency(insurerID uint, name, address, contact string) (*Agency, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("Agency name is required")
	}
	if insurerID == 0 {
		return nil, shared.NewValidationError("Agency requires a parent insurer")
	}
	return &Agency{
		BaseEntity: shared.NewBaseEntity(),
		InsurerID:  insurerID,
		Name:       name,
		Address:    strings.TrimSpace(address),
		Contact:    strings.TrimSpace(contact),
	}, nil
}

// BelongsTo reports whether the agency is a branch of the given insurer
func (a *Agency) BelongsTo(insurerID uint) bool {
	return a.InsurerID == insurerID
}

// Update applies new display attributes to the agency
func (a *Agency) Update(name, address, contact string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewValidationError("Agency name is required")
	}
	a.Name = name
	a.Address = strings.TrimSpace(address)
	a.Contact = strings.TrimSpace(contact)
	a.Touch()
	return nil
}

// Reattach moves the agency under a different parent insurer
func (a *Agency) Reattach(insurerID uint) error {
	if insurerID == 0 {
		return shared.NewValidationError("Agency requires a parent insurer")
	}
	a.InsurerID = insurerID
	a.Touch()
	return nil
}

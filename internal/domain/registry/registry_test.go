package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInsurerTrimsAndValidates(t *testing.T) {
	insurer, err := NewInsurer("  Wafa Assurance  ", " 0522-000-000 ")
	require.NoError(t, err)
	assert.Equal(t, "Wafa Assurance", insurer.Name)
	assert.Equal(t, "0522-000-000", insurer.Contact)

	_, err = NewInsurer("   ", "x")
	assert.Error(t, err)
}

func TestInsurerRename(t *testing.T) {
	insurer, err := NewInsurer("Old", "")
	require.NoError(t, err)

	assert.Error(t, insurer.Rename(" "))
	require.NoError(t, insurer.Rename("New"))
	assert.Equal(t, "New", insurer.Name)
}

func TestNewAgencyRequiresParentInsurer(t *testing.T) {
	_, err := NewAgency(0, "Branch", "", "")
	assert.Error(t, err)

	_, err = NewAgency(4, "", "", "")
	assert.Error(t, err)

	agency, err := NewAgency(4, "Branch", "1 Street", "0600")
	require.NoError(t, err)
	assert.True(t, agency.BelongsTo(4))
	assert.False(t, agency.BelongsTo(5))
}

func TestAgencyReattach(t *testing.T) {
	agency, err := NewAgency(4, "Branch", "", "")
	require.NoError(t, err)

	assert.Error(t, agency.Reattach(0))
	require.NoError(t, agency.Reattach(9))
	assert.True(t, agency.BelongsTo(9))
}

func TestNewBrand(t *testing.T) {
	brand, err := NewBrand(" Peugeot ")
	require.NoError(t, err)
	assert.Equal(t, "Peugeot", brand.Name)

	_, err = NewBrand("")
	assert.Error(t, err)
}

func TestGarageUpdate(t *testing.T) {
	garage, err := NewGarage("Garage Central", "5 Avenue", "0700")
	require.NoError(t, err)

	assert.Error(t, garage.Update("", "x", "y"))
	require.NoError(t, garage.Update("Garage Nord", "9 Boulevard", "0701"))
	assert.Equal(t, "Garage Nord", garage.Name)
	assert.Equal(t, "9 Boulevard", garage.Address)
}

package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/autoexpert/backend/internal/domain/mission"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabase_WithinTransaction_CommitsAcrossRepositories(t *testing.T) {
	db := newTestDB(t)
	database := &Database{DB: db}
	missions := NewGormMissionRepository(db)
	labor := NewGormLaborEntryRepository(db)
	ctx := context.Background()

	m := newStoredMission(t, missions, "John Doe")
	entry, err := mission.NewLaborEntry(m.ID, mission.LaborBody, decimal.NewFromInt(2), decimal.NewFromInt(100))
	require.NoError(t, err)

	err = database.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := labor.ReplaceForMission(ctx, m.ID, []mission.LaborEntry{*entry}); err != nil {
			return err
		}
		m.LaborSuppliesHT = decimal.NewFromInt(50)
		return missions.Save(ctx, m)
	})
	require.NoError(t, err)

	entries, err := labor.FindByMission(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	found, err := missions.FindByID(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, found.LaborSuppliesHT.Equal(decimal.NewFromInt(50)))
}

func TestDatabase_WithinTransaction_RollsBackAllWrites(t *testing.T) {
	db := newTestDB(t)
	database := &Database{DB: db}
	missions := NewGormMissionRepository(db)
	labor := NewGormLaborEntryRepository(db)
	ctx := context.Background()

	m := newStoredMission(t, missions, "John Doe")
	entry, err := mission.NewLaborEntry(m.ID, mission.LaborBody, decimal.NewFromInt(2), decimal.NewFromInt(100))
	require.NoError(t, err)

	failed := errors.New("write failed")
	txErr := database.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := labor.ReplaceForMission(ctx, m.ID, []mission.LaborEntry{*entry}); err != nil {
			return err
		}
		m.LaborSuppliesHT = decimal.NewFromInt(50)
		if err := missions.Save(ctx, m); err != nil {
			return err
		}
		return failed
	})
	require.ErrorIs(t, txErr, failed)

	entries, err := labor.FindByMission(ctx, m.ID)
	require.NoError(t, err)
	assert.Empty(t, entries, "ledger replace was rolled back")

	found, err := missions.FindByID(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, found.LaborSuppliesHT.IsZero(), "supplies update was rolled back")
}

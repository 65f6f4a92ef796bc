package report

import (
	"context"
	"testing"

	appmission "github.com/autoexpert/backend/internal/application/mission"
	"github.com/autoexpert/backend/internal/domain/mission"
	"github.com/autoexpert/backend/internal/domain/registry"
	"github.com/autoexpert/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockMissionRepository is a mock implementation of MissionRepository
type MockMissionRepository struct {
	mock.Mock
}

func (m *MockMissionRepository) FindByID(ctx context.Context, id uint) (*mission.Mission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mission.Mission), args.Error(1)
}

func (m *MockMissionRepository) List(ctx context.Context, filter mission.ListFilter) (shared.Paginated[mission.Mission], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.Paginated[mission.Mission]), args.Error(1)
}

func (m *MockMissionRepository) Save(ctx context.Context, entity *mission.Mission) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockMissionRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDamageLineRepository is a mock implementation of DamageLineRepository
type MockDamageLineRepository struct {
	mock.Mock
}

func (m *MockDamageLineRepository) FindByID(ctx context.Context, id uint) (*mission.DamageLine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mission.DamageLine), args.Error(1)
}

func (m *MockDamageLineRepository) FindByMission(ctx context.Context, missionID uint) ([]mission.DamageLine, error) {
	args := m.Called(ctx, missionID)
	return args.Get(0).([]mission.DamageLine), args.Error(1)
}

func (m *MockDamageLineRepository) Save(ctx context.Context, line *mission.DamageLine) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}

func (m *MockDamageLineRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockLaborEntryRepository is a mock implementation of LaborEntryRepository
type MockLaborEntryRepository struct {
	mock.Mock
}

func (m *MockLaborEntryRepository) FindByMission(ctx context.Context, missionID uint) ([]mission.LaborEntry, error) {
	args := m.Called(ctx, missionID)
	return args.Get(0).([]mission.LaborEntry), args.Error(1)
}

func (m *MockLaborEntryRepository) ReplaceForMission(ctx context.Context, missionID uint, entries []mission.LaborEntry) error {
	args := m.Called(ctx, missionID, entries)
	return args.Error(0)
}

// MockAttachmentRepository is a mock implementation of AttachmentRepository
type MockAttachmentRepository struct {
	mock.Mock
}

func (m *MockAttachmentRepository) FindByID(ctx context.Context, id uint) (*mission.Attachment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mission.Attachment), args.Error(1)
}

func (m *MockAttachmentRepository) FindByMission(ctx context.Context, missionID uint, kind mission.AttachmentKind) ([]mission.Attachment, error) {
	args := m.Called(ctx, missionID, kind)
	return args.Get(0).([]mission.Attachment), args.Error(1)
}

func (m *MockAttachmentRepository) Save(ctx context.Context, attachment *mission.Attachment) error {
	args := m.Called(ctx, attachment)
	return args.Error(0)
}

func (m *MockAttachmentRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func reportMission(t *testing.T) *mission.Mission {
	t.Helper()
	m := mission.NewMission(1)
	m.ID = 10
	insurer, err := registry.NewInsurer("axa", "contact")
	require.NoError(t, err)
	insurer.ID = 7
	m.AttachInsurer(insurer)
	brand, err := registry.NewBrand("Renault")
	require.NoError(t, err)
	brand.ID = 2
	m.AttachBrand(brand)
	m.InsuredName = "John Doe"
	m.Settlement.GuaranteeType = mission.GuaranteeCollisionDamage
	m.Settlement.FranchiseFixed = decimal.NewFromInt(500)
	return m
}

func TestService_Assemble_JoinsAllSections(t *testing.T) {
	missions := new(MockMissionRepository)
	lines := new(MockDamageLineRepository)
	labor := new(MockLaborEntryRepository)
	attachments := new(MockAttachmentRepository)
	service := NewService(missions, lines, labor, attachments)
	ctx := context.Background()

	m := reportMission(t)
	bumper, err := mission.NewDamageLine(10, "Bumper", decimal.NewFromInt(1000), decimal.NewFromInt(20), "original", true)
	require.NoError(t, err)
	body, err := mission.NewLaborEntry(10, mission.LaborBody, decimal.NewFromInt(1), decimal.NewFromInt(5000))
	require.NoError(t, err)
	photo, err := mission.NewPhotoAttachment(10, "missions/10/front.jpg", "front.jpg", "front", mission.PhaseBefore, 9)
	require.NoError(t, err)

	missions.On("FindByID", ctx, uint(10)).Return(m, nil)
	lines.On("FindByMission", ctx, uint(10)).Return([]mission.DamageLine{*bumper}, nil)
	labor.On("FindByMission", ctx, uint(10)).Return([]mission.LaborEntry{*body}, nil)
	attachments.On("FindByMission", ctx, uint(10), mission.AttachmentPhoto).Return([]mission.Attachment{*photo}, nil)
	attachments.On("FindByMission", ctx, uint(10), mission.AttachmentDocument).Return([]mission.Attachment{}, nil)

	data, err := service.Assemble(ctx, 10, appmission.Actor{UserID: 1, Role: "manager"})

	require.NoError(t, err)
	assert.Equal(t, "axa", data.Mission.InsurerName, "report reads snapshots, not the catalog")
	require.Len(t, data.Damage.Items, 1)
	assert.Len(t, data.Labor.Entries, 4)
	require.Len(t, data.Photos, 1)
	assert.Empty(t, data.Documents)
	// 6000 base - 240 depreciation loss - 600 franchise
	assert.True(t, data.Summary.FinalIndemnification.Equal(decimal.NewFromInt(5160)), "got %s", data.Summary.FinalIndemnification)
	assert.False(t, data.GeneratedAt.IsZero())
	missions.AssertExpectations(t)
	attachments.AssertExpectations(t)
}

func TestService_Assemble_AgentNotAssignedForbidden(t *testing.T) {
	missions := new(MockMissionRepository)
	service := NewService(missions, new(MockDamageLineRepository), new(MockLaborEntryRepository), new(MockAttachmentRepository))
	ctx := context.Background()

	missions.On("FindByID", ctx, uint(10)).Return(reportMission(t), nil)

	data, err := service.Assemble(ctx, 10, appmission.Actor{UserID: 9, Role: "agent"})

	assert.Nil(t, data)
	assert.True(t, shared.IsCode(err, shared.CodeForbidden))
}

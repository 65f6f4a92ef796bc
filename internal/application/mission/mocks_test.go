package mission

import (
	"context"

	"github.com/autoexpert/backend/internal/domain/identity"
	"github.com/autoexpert/backend/internal/domain/mission"
	"github.com/autoexpert/backend/internal/domain/registry"
	"github.com/autoexpert/backend/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// inlineTransactor satisfies shared.Transactor by running the callback
// directly and counting how many transactions were opened
type inlineTransactor struct {
	calls int
}

func (t *inlineTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

var _ shared.Transactor = (*inlineTransactor)(nil)

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

// MockInsurerRepository is a mock implementation of InsurerRepository
type MockInsurerRepository struct {
	mock.Mock
}

func (m *MockInsurerRepository) FindByID(ctx context.Context, id uint) (*registry.Insurer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*registry.Insurer), args.Error(1)
}

func (m *MockInsurerRepository) FindAll(ctx context.Context) ([]registry.Insurer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]registry.Insurer), args.Error(1)
}

func (m *MockInsurerRepository) Save(ctx context.Context, insurer *registry.Insurer) error {
	args := m.Called(ctx, insurer)
	return args.Error(0)
}

func (m *MockInsurerRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAgencyRepository is a mock implementation of AgencyRepository
type MockAgencyRepository struct {
	mock.Mock
}

func (m *MockAgencyRepository) FindByID(ctx context.Context, id uint) (*registry.Agency, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*registry.Agency), args.Error(1)
}

func (m *MockAgencyRepository) FindAll(ctx context.Context, insurerID uint) ([]registry.Agency, error) {
	args := m.Called(ctx, insurerID)
	return args.Get(0).([]registry.Agency), args.Error(1)
}

func (m *MockAgencyRepository) Save(ctx context.Context, agency *registry.Agency) error {
	args := m.Called(ctx, agency)
	return args.Error(0)
}

func (m *MockAgencyRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBrandRepository is a mock implementation of BrandRepository
type MockBrandRepository struct {
	mock.Mock
}

func (m *MockBrandRepository) FindByID(ctx context.Context, id uint) (*registry.Brand, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*registry.Brand), args.Error(1)
}

func (m *MockBrandRepository) FindAll(ctx context.Context) ([]registry.Brand, error) {
	args := m.Called(ctx)
	return args.Get(0).([]registry.Brand), args.Error(1)
}

func (m *MockBrandRepository) Save(ctx context.Context, brand *registry.Brand) error {
	args := m.Called(ctx, brand)
	return args.Error(0)
}

func (m *MockBrandRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockGarageRepository is a mock implementation of GarageRepository
type MockGarageRepository struct {
	mock.Mock
}

func (m *MockGarageRepository) FindByID(ctx context.Context, id uint) (*registry.Garage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*registry.Garage), args.Error(1)
}

func (m *MockGarageRepository) FindAll(ctx context.Context) ([]registry.Garage, error) {
	args := m.Called(ctx)
	return args.Get(0).([]registry.Garage), args.Error(1)
}

func (m *MockGarageRepository) Save(ctx context.Context, garage *registry.Garage) error {
	args := m.Called(ctx, garage)
	return args.Error(0)
}

func (m *MockGarageRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByLogin(ctx context.Context, login string) (*identity.User, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]identity.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

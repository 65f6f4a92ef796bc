package identity

import (
	"context"
	"testing"
	"time"

	"github.com/autoexpert/backend/internal/domain/identity"
	"github.com/autoexpert/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

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

// MockTokenIssuer is a mock implementation of TokenIssuer
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(user *identity.User) (string, time.Time, error) {
	args := m.Called(user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func storedUser(t *testing.T, id uint, login, password string, role identity.Role) *identity.User {
	t.Helper()
	user, err := identity.NewUser(login, role)
	require.NoError(t, err)
	require.NoError(t, user.SetPassword(password))
	user.ID = id
	return user
}

func TestAuthService_Login_Success(t *testing.T) {
	users := new(MockUserRepository)
	tokens := new(MockTokenIssuer)
	service := NewAuthService(users, tokens, zap.NewNop())
	ctx := context.Background()

	user := storedUser(t, 1, "manager1", "long-enough-secret", identity.RoleManager)
	expiresAt := time.Now().Add(time.Hour)

	users.On("FindByLogin", ctx, "manager1").Return(user, nil)
	tokens.On("Issue", user).Return("signed-token", expiresAt, nil)

	result, err := service.Login(ctx, LoginRequest{Login: "manager1", Password: "long-enough-secret"})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", result.Token)
	assert.Equal(t, "manager", result.User.Role)
	users.AssertExpectations(t)
	tokens.AssertExpectations(t)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	tokens := new(MockTokenIssuer)
	service := NewAuthService(users, tokens, zap.NewNop())
	ctx := context.Background()

	user := storedUser(t, 1, "manager1", "long-enough-secret", identity.RoleManager)
	users.On("FindByLogin", ctx, "manager1").Return(user, nil)

	result, err := service.Login(ctx, LoginRequest{Login: "manager1", Password: "wrong-password"})

	assert.Nil(t, result)
	assert.True(t, shared.IsCode(err, shared.CodeUnauthorized))
	tokens.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestAuthService_Login_UnknownLoginSameError(t *testing.T) {
	users := new(MockUserRepository)
	tokens := new(MockTokenIssuer)
	service := NewAuthService(users, tokens, zap.NewNop())
	ctx := context.Background()

	users.On("FindByLogin", ctx, "ghost").Return(nil, shared.ErrNotFound)

	result, err := service.Login(ctx, LoginRequest{Login: "ghost", Password: "whatever-password"})

	assert.Nil(t, result)
	assert.True(t, shared.IsCode(err, shared.CodeUnauthorized), "unknown login must not be distinguishable")
}

func TestUserService_Create_Success(t *testing.T) {
	users := new(MockUserRepository)
	service := NewUserService(users, zap.NewNop())
	ctx := context.Background()

	users.On("FindByLogin", ctx, "agent1").Return(nil, shared.ErrNotFound)
	users.On("Save", ctx, mock.AnythingOfType("*identity.User")).Return(nil)

	result, err := service.Create(ctx, CreateUserRequest{
		Login:    "  Agent1 ",
		Password: "long-enough-secret",
		Role:     "agent",
	})

	require.NoError(t, err)
	assert.Equal(t, "agent1", result.Login)
	assert.Equal(t, "agent", result.Role)
	users.AssertExpectations(t)
}

func TestUserService_Create_DuplicateLogin(t *testing.T) {
	users := new(MockUserRepository)
	service := NewUserService(users, zap.NewNop())
	ctx := context.Background()

	existing := storedUser(t, 1, "agent1", "long-enough-secret", identity.RoleAgent)
	users.On("FindByLogin", ctx, "agent1").Return(existing, nil)

	result, err := service.Create(ctx, CreateUserRequest{
		Login:    "agent1",
		Password: "long-enough-secret",
		Role:     "agent",
	})

	assert.Nil(t, result)
	assert.True(t, shared.IsCode(err, shared.CodeConflict))
	users.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUserService_Create_UnknownRole(t *testing.T) {
	users := new(MockUserRepository)
	service := NewUserService(users, zap.NewNop())

	result, err := service.Create(context.Background(), CreateUserRequest{
		Login:    "someone",
		Password: "long-enough-secret",
		Role:     "admin",
	})

	assert.Nil(t, result)
	assert.True(t, shared.IsCode(err, shared.CodeValidation))
	users.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

package identity

import (
	"context"
	"time"

	"github.com/autoexpert/backend/internal/domain/identity"
	"github.com/autoexpert/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// TokenIssuer signs access tokens for authenticated users. Implemented by
// the JWT manager in the infrastructure layer.
type TokenIssuer interface {
	Issue(user *identity.User) (token string, expiresAt time.Time, err error)
}

// LoginRequest carries credentials for authentication.
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the signed token and the authenticated identity.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// CreateUserRequest is the payload for provisioning an account.
type CreateUserRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`
}

// UserResponse is one account without its credentials.
type UserResponse struct {
	ID        uint      `json:"id"`
	Login     string    `json:"login"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *identity.User) UserResponse {
	return UserResponse{ID: u.ID, Login: u.Login, Role: u.Role.String(), CreatedAt: u.CreatedAt}
}

// AuthService authenticates users and issues access tokens.
type AuthService struct {
	users  identity.UserRepository
	tokens TokenIssuer
	logger *zap.Logger
}

// NewAuthService creates an authentication service
func NewAuthService(users identity.UserRepository, tokens TokenIssuer, logger *zap.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

// Login verifies credentials and returns a signed token. Unknown logins and
// wrong passwords produce the same error, so login probing learns nothing.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.users.FindByLogin(ctx, req.Login)
	if err != nil {
		if shared.IsCode(err, shared.CodeNotFound) {
			return nil, shared.NewDomainError(shared.CodeUnauthorized, "Invalid credentials")
		}
		return nil, err
	}
	if !user.CheckPassword(req.Password) {
		s.logger.Warn("failed login attempt", zap.String("login", user.Login))
		return nil, shared.NewDomainError(shared.CodeUnauthorized, "Invalid credentials")
	}
	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	s.logger.Info("user logged in", zap.Uint("user_id", user.ID), zap.String("role", user.Role.String()))
	return &LoginResponse{Token: token, ExpiresAt: expiresAt, User: toUserResponse(user)}, nil
}

// UserService manages accounts. All operations are manager-only; the HTTP
// layer enforces that before calls reach here.
type UserService struct {
	users  identity.UserRepository
	logger *zap.Logger
}

// NewUserService creates a user management service
func NewUserService(users identity.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// Create provisions an account with a unique login
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	user, err := identity.NewUser(req.Login, identity.Role(req.Role))
	if err != nil {
		return nil, err
	}
	if existing, err := s.users.FindByLogin(ctx, user.Login); err == nil && existing != nil {
		return nil, shared.NewConflictError("Login is already taken")
	} else if err != nil && !shared.IsCode(err, shared.CodeNotFound) {
		return nil, err
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("user created", zap.Uint("user_id", user.ID), zap.String("role", user.Role.String()))
	resp := toUserResponse(user)
	return &resp, nil
}

// List returns all accounts
func (s *UserService) List(ctx context.Context) ([]UserResponse, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return out, nil
}

// Get returns one account
func (s *UserService) Get(ctx context.Context, id uint) (*UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

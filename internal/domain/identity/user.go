package identity

import (
	"strings"

	"github.com/autoexpert/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Role determines what a user may do with missions.
type Role string

const (
	// RoleManager is the privileged case-manager role: creates and updates
	// missions, manages reference data and is the only role allowed to close.
	RoleManager Role = "manager"
	// RoleAgent is the field-agent role: uploads evidence for missions
	// assigned to it.
	RoleAgent Role = "agent"
)

// IsValid checks if the role is a known Role
func (r Role) IsValid() bool {
	return r == RoleManager || r == RoleAgent
}

// String returns the string representation of Role
func (r Role) String() string {
	return string(r)
}

// IsPrivileged reports whether the role may perform case-manager operations
func (r Role) IsPrivileged() bool {
	return r == RoleManager
}

// AssignableRoles lists the roles a mission may be assigned to.
var AssignableRoles = []Role{RoleAgent, RoleManager}

// IsAssignable reports whether a user with this role can be the assigned
// agent of a mission
func (r Role) IsAssignable() bool {
	for _, role := range AssignableRoles {
		if r == role {
			return true
		}
	}
	return false
}

// User is an account able to authenticate against the service.
type User struct {
	shared.BaseEntity
	Login        string
	PasswordHash string
	Role         Role
}

// NewUser creates a user with the given login and role. The password must be
// set separately through SetPassword.
func NewUser(login string, role Role) (*User, error) {
	login = strings.TrimSpace(strings.ToLower(login))
	if login == "" {
		return nil, shared.NewValidationError("Login is required")
	}
	if !role.IsValid() {
		return nil, shared.NewValidationError("Unknown role")
	}
	return &User{
		BaseEntity: shared.NewBaseEntity(),
		Login:      login,
		Role:       role,
	}, nil
}

// SetPassword hashes and stores the given plaintext password
func (u *User) SetPassword(plain string) error {
	if len(plain) < 8 {
		return shared.NewValidationError("Password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	u.Touch()
	return nil
}

// CheckPassword verifies a plaintext password against the stored hash
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plain)) == nil
}

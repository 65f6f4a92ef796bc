package models

import "github.com/autoexpert/backend/internal/domain/identity"

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	BaseModel
	Login        string `gorm:"type:varchar(100);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(100);not null"`
	Role         string `gorm:"type:varchar(20);not null"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseEntity:   m.BaseModel.ToDomain(),
		Login:        m.Login,
		PasswordHash: m.PasswordHash,
		Role:         identity.Role(m.Role),
	}
}

// FromDomain populates the persistence model from a domain User entity
func (m *UserModel) FromDomain(u *identity.User) {
	m.BaseModel.FromDomain(u.BaseEntity)
	m.Login = u.Login
	m.PasswordHash = u.PasswordHash
	m.Role = u.Role.String()
}

package identity

import "context"

// UserRepository provides access to user accounts
type UserRepository interface {
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByLogin(ctx context.Context, login string) (*User, error)
	FindAll(ctx context.Context) ([]User, error)
	Save(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uint) error
}

package user

import "context"

// Repository - interface for the users table
type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context, search string, role *Role, page, limit int) ([]User, int64, error)
	Delete(ctx context.Context, id string) error
}

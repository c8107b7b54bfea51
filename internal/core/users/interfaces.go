package users

import "context"

// UserRepository defines the interface for user data persistence
type UserRepository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	SetVisibility(ctx context.Context, id int64, isPublic bool) (*User, error)
}

// UserService defines the interface for user business logic
type UserService interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*User, error)
	GetUser(ctx context.Context, id int64) (*User, error)

	// SetVisibility flips the public flag. Feed membership follows the flag
	// on the next read; post rows are never touched.
	SetVisibility(ctx context.Context, id int64, isPublic bool) (*User, error)
}

package domain

import "context"

// User is a registered account. Credentials are stored as provided;
// this service has no password hashing by contract.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserRepository defines the data-access contract for user operations.
// Implementations live in internal/core/repository.
// GetByUsername returns (nil, nil) when no user is found.
type UserRepository interface {
	// GetByUsername returns the user matching the given username.
	GetByUsername(ctx context.Context, username string) (*User, error)

	// Exists reports whether a user with the given username is registered.
	Exists(ctx context.Context, username string) (bool, error)

	// Create inserts a new user.
	Create(ctx context.Context, user User) error
}

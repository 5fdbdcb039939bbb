package repository

import (
	"context"

	"github.com/duynhne/bookstore-service/internal/core/domain"
)

// MemoryUserRepository implements domain.UserRepository over an in-process
// map keyed by username. Access is unsynchronized; concurrent requests on
// the same username race last-write-wins, which is the service's accepted
// single-process model.
type MemoryUserRepository struct {
	users map[string]domain.User
}

// NewUserRepository creates an empty MemoryUserRepository.
func NewUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]domain.User)}
}

// GetByUsername returns the user matching the given username.
// Returns (nil, nil) when no user is found.
func (r *MemoryUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// Exists reports whether a user with the given username is registered.
func (r *MemoryUserRepository) Exists(ctx context.Context, username string) (bool, error) {
	_, ok := r.users[username]
	return ok, nil
}

// Create inserts a new user.
func (r *MemoryUserRepository) Create(ctx context.Context, user domain.User) error {
	r.users[user.Username] = user
	return nil
}

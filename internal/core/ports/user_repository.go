package ports

import (
	"context"

	"github.com/taskhive/task-api/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	// FindByUsername retrieves a user by its unique username.
	// Returns domain.ErrUserNotFound when no user matches.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

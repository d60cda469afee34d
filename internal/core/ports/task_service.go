package ports

import (
	"context"

	"github.com/taskhive/task-api/internal/core/domain"
)

// CreateTaskInput carries all data needed to create a new task. Username is
// the caller identity resolved by the authentication middleware; the service
// re-resolves it against the user store on every call.
type CreateTaskInput struct {
	Title       string
	Description string
	Completed   bool
	Username    string
}

// UpdateTaskInput carries the mutable task fields. Ownership is not among
// them: the owner set at creation time can never be reassigned.
type UpdateTaskInput struct {
	Title       string
	Description string
	Completed   bool
	Username    string
}

// TaskService defines the owner-scoped task use cases.
type TaskService interface {
	Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	List(ctx context.Context, username string) ([]*domain.Task, error)
	Update(ctx context.Context, id string, input UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, id, username string) error
}

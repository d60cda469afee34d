package ports

import (
	"context"

	"github.com/taskhive/task-api/internal/core/domain"
)

// TaskRepository defines persistence operations for tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	// FindByID retrieves a task by id. Returns domain.ErrTaskNotFound when
	// no task matches.
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	// FindByOwner returns every task owned by the given user, in
	// store-defined order.
	FindByOwner(ctx context.Context, ownerID string) ([]*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}

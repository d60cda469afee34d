package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskhive/task-api/internal/core/domain"
	"github.com/taskhive/task-api/internal/core/ports"
)

// TaskService implements owner-scoped task CRUD. Every operation re-resolves
// the caller's user record from the store, so the ownership check always
// runs against current persisted state.
type TaskService struct {
	tasks  ports.TaskRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewTaskService(tasks ports.TaskRepository, users ports.UserRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{tasks: tasks, users: users, logger: logger}
}

// Create persists a new task bound to the caller's identity.
func (s *TaskService) Create(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domain.ErrTitleRequired
	}

	owner, err := s.resolveCaller(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	task := &domain.Task{
		Title:       input.Title,
		Description: input.Description,
		Completed:   input.Completed,
		OwnerID:     owner.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.tasks.Create(ctx, task)
	if err != nil {
		s.logger.Error().Err(err).Str("username", input.Username).Msg("failed to create task")
		return nil, err
	}

	s.logger.Info().Str("task_id", created.ID).Str("username", input.Username).Msg("task created")
	return created, nil
}

// List returns every task owned by the caller, in store-defined order.
func (s *TaskService) List(ctx context.Context, username string) ([]*domain.Task, error) {
	owner, err := s.resolveCaller(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.tasks.FindByOwner(ctx, owner.ID)
}

// Update overwrites title, description and completed on the caller's own
// task. The owner reference is never altered, whatever the payload carried.
func (s *TaskService) Update(ctx context.Context, id string, input ports.UpdateTaskInput) (*domain.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domain.ErrTitleRequired
	}

	caller, err := s.resolveCaller(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if task.OwnerID != caller.ID {
		return nil, domain.ErrNotTaskOwner
	}

	task.Title = input.Title
	task.Description = input.Description
	task.Completed = input.Completed
	task.UpdatedAt = time.Now().UTC()

	updated, err := s.tasks.Update(ctx, task)
	if err != nil {
		s.logger.Error().Err(err).Str("task_id", id).Msg("failed to update task")
		return nil, err
	}
	return updated, nil
}

// Delete permanently removes the caller's own task.
func (s *TaskService) Delete(ctx context.Context, id, username string) error {
	caller, err := s.resolveCaller(ctx, username)
	if err != nil {
		return err
	}

	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if task.OwnerID != caller.ID {
		return domain.ErrNotTaskOwner
	}

	if err := s.tasks.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("task_id", id).Msg("failed to delete task")
		return err
	}

	s.logger.Info().Str("task_id", id).Str("username", username).Msg("task deleted")
	return nil
}

// resolveCaller maps the authenticated username back to a stored user. A
// miss is reported as ErrCallerNotFound rather than ErrUserNotFound: the
// token was valid but its subject no longer exists.
func (s *TaskService) resolveCaller(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrCallerNotFound
		}
		return nil, err
	}
	return user, nil
}

package domain

import (
	"errors"
	"time"
)

var (
	ErrTitleRequired = errors.New("task title is required")
	ErrTaskNotFound  = errors.New("task not found")
	ErrNotTaskOwner  = errors.New("not the task owner")
)

// Task is the core aggregate. OwnerID is set once at creation time to the
// authenticated creator and is never reassigned by any exposed operation.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Completed   bool      `json:"completed"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

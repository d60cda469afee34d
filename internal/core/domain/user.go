package domain

import (
	"errors"
	"time"
)

var (
	ErrCredentialsRequired = errors.New("username and password are required")
	ErrUserExists          = errors.New("username already exists")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")

	// ErrCallerNotFound signals that the username carried by an otherwise
	// valid token no longer resolves to a stored user. Kept distinct from
	// ErrUserNotFound so task operations can tell an authentication gap
	// apart from a plain lookup miss.
	ErrCallerNotFound = errors.New("caller identity not found")
)

// User models an authenticated account. The password hash is never
// serialized into API responses.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

package user

import (
	"context"
	"errors"
)

var (
	ErrNotFound       = errors.New("user: not found")
	ErrDuplicateEmail = errors.New("user: email already registered")
)

// Directory is the persistent lookup/creation surface for user accounts.
// The backing store owns email uniqueness; concurrent creates for the
// same email must surface ErrDuplicateEmail from exactly one caller.
type Directory interface {
	// FindByEmail returns ErrNotFound when no account matches the email
	// exactly (matching is case-sensitive).
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Create inserts a new account and returns it with its assigned ID.
	// Returns ErrDuplicateEmail when the email is already taken.
	Create(ctx context.Context, n NewUser) (*User, error)
}

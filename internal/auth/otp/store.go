package otp

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("otp: record not found")

// Store keeps pending-verification records keyed by (email, purpose).
type Store interface {
	// Find returns ErrNotFound when no record exists for the key.
	// Expired records are still returned; expiry is the caller's call.
	Find(ctx context.Context, email, purpose string) (*Record, error)

	// Upsert writes the record, replacing any existing record for the
	// same (email, purpose) in a single atomic operation.
	Upsert(ctx context.Context, r *Record) error

	// Delete removes the record for (email, purpose). Deleting a
	// missing record is not an error.
	Delete(ctx context.Context, email, purpose string) error

	// DeleteAll removes every record for the email across all purposes
	// and reports how many were removed.
	DeleteAll(ctx context.Context, email string) (int, error)
}

package user

import (
	"time"

	"github.com/google/uuid"
)

// ProviderEmailOTP tags accounts created through the email/OTP flow.
const ProviderEmailOTP = "EMAIL_OTP"

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         string
	AuthProvider string
	CreatedAt    time.Time
}

// NewUser carries the fields needed to create an account. The ID and
// creation time are assigned by the store.
type NewUser struct {
	Email        string
	PasswordHash string
	Name         string
	AuthProvider string
}

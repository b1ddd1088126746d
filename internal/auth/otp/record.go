package otp

import "time"

// PurposeUserRegistration is the only purpose the service issues today.
// The wire value matches the original Prisma "type" column.
const PurposeUserRegistration = "UserOtp"

// Payload holds the provisional account data captured at registration
// time. The account itself is only created once the code is verified.
type Payload struct {
	PasswordHash string `json:"password"`
	Name         string `json:"name"`
}

// Record is a pending verification: one active record per (email,
// purpose). Expired records are kept until cleanup is invoked
// externally; verification never deletes them on expiry.
type Record struct {
	Email     string    `json:"email"`
	Purpose   string    `json:"purpose"`
	Code      string    `json:"otp"`
	ExpiresAt time.Time `json:"expires_at"`
	Payload   Payload   `json:"data"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *Record) Expired(now time.Time) bool {
	return r.ExpiresAt.Before(now)
}

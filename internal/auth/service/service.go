// Package service implements the auth orchestrator: the register,
// verify, login, and resend-OTP workflows that sequence the user
// directory, OTP store, mailer, and token issuer. All collaborators
// are injected; the package holds no global state.
package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/Souvik9205/KomyuLink/internal/auth/credentials"
	"github.com/Souvik9205/KomyuLink/internal/auth/mailer"
	"github.com/Souvik9205/KomyuLink/internal/auth/otp"
	"github.com/Souvik9205/KomyuLink/internal/auth/token"
	"github.com/Souvik9205/KomyuLink/internal/auth/user"
	"github.com/Souvik9205/KomyuLink/internal/logger"
)

// OTPValidity is how long a freshly issued code can be verified.
const OTPValidity = 5 * time.Minute

type Service struct {
	users  user.Directory
	otps   otp.Store
	sender mailer.Sender
	issuer *token.Issuer

	// overridable in tests
	now     func() time.Time
	newCode func() (string, error)
}

func New(users user.Directory, otps otp.Store, sender mailer.Sender, issuer *token.Issuer) *Service {
	return &Service{
		users:   users,
		otps:    otps,
		sender:  sender,
		issuer:  issuer,
		now:     time.Now,
		newCode: otp.GenerateCode,
	}
}

// Register starts the OTP-gated registration flow. It never creates a
// user: it stores the hashed password and name provisionally and mails
// a code. A second register before verification overwrites the pending
// record rather than duplicating it.
func (s *Service) Register(ctx context.Context, email, password, name string) Result {
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return conflict("User already registered")
	}
	if !errors.Is(err, user.ErrNotFound) {
		logger.Error("register: user lookup failed", map[string]any{"error": err.Error()})
		return internal("Registration failed")
	}

	hash, err := credentials.HashPassword(password)
	if err != nil {
		logger.Error("register: password hashing failed", map[string]any{"error": err.Error()})
		return internal("Registration failed")
	}

	code, err := s.newCode()
	if err != nil {
		logger.Error("register: code generation failed", map[string]any{"error": err.Error()})
		return internal("Registration failed")
	}

	now := s.now()
	rec := &otp.Record{
		Email:     email,
		Purpose:   otp.PurposeUserRegistration,
		Code:      code,
		ExpiresAt: now.Add(OTPValidity),
		Payload: otp.Payload{
			PasswordHash: hash,
			Name:         name,
		},
		CreatedAt: now,
	}

	if err := s.otps.Upsert(ctx, rec); err != nil {
		logger.Error("register: otp upsert failed", map[string]any{"error": err.Error()})
		return internal("Registration failed")
	}

	// The pending record is deliberately not rolled back on a send
	// failure: a retry overwrites it anyway.
	if err := s.sender.SendOTP(ctx, email, code); err != nil {
		logger.Error("register: otp email failed", map[string]any{
			"email": email,
			"error": err.Error(),
		})
		return internal("Failed to send OTP email")
	}

	return ok("OTP sent successfully. Please check your email.")
}

// Verify checks the submitted code and, on success, creates the user
// from the stored payload, removes the pending record, and mints a
// session token.
func (s *Service) Verify(ctx context.Context, email, code string) Result {
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return conflict("User already registered")
	}
	if !errors.Is(err, user.ErrNotFound) {
		logger.Error("verify: user lookup failed", map[string]any{"error": err.Error()})
		return internal("Internal server error")
	}

	rec, err := s.otps.Find(ctx, email, otp.PurposeUserRegistration)
	if errors.Is(err, otp.ErrNotFound) {
		return notFound("OTP not found for this email")
	}
	if err != nil {
		logger.Error("verify: otp lookup failed", map[string]any{"error": err.Error()})
		return internal("Internal server error")
	}

	// Expired records are left in place for external cleanup.
	if rec.Expired(s.now()) {
		return invalid("OTP has expired")
	}

	if subtle.ConstantTimeCompare([]byte(rec.Code), []byte(code)) != 1 {
		return invalid("Invalid OTP")
	}

	if rec.Payload.PasswordHash == "" || rec.Payload.Name == "" {
		return invalid("Invalid OTP data")
	}

	u, err := s.users.Create(ctx, user.NewUser{
		Email:        email,
		PasswordHash: rec.Payload.PasswordHash,
		Name:         rec.Payload.Name,
		AuthProvider: user.ProviderEmailOTP,
	})
	if errors.Is(err, user.ErrDuplicateEmail) {
		// Lost a race with a concurrent verify for the same email.
		return conflict("User already registered")
	}
	if err != nil {
		logger.Error("verify: user creation failed", map[string]any{"error": err.Error()})
		return internal("Internal server error")
	}

	// Best effort: an orphaned record is unusable because the
	// existing-user guard above short-circuits any further verify.
	if err := s.otps.Delete(ctx, email, otp.PurposeUserRegistration); err != nil {
		logger.Error("verify: failed to delete verified otp record", map[string]any{
			"email": email,
			"error": err.Error(),
		})
	}

	tok, err := s.issuer.Sign(u.ID.String())
	if err != nil {
		logger.Error("verify: token signing failed", map[string]any{"error": err.Error()})
		return internal("Internal server error")
	}

	return Result{Status: StatusOK, Message: "Login successful", Token: tok}
}

// Login authenticates an existing user and mints a session token.
func (s *Service) Login(ctx context.Context, email, password string) Result {
	u, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, user.ErrNotFound) {
		return notFound("User not found")
	}
	if err != nil {
		logger.Error("login: user lookup failed", map[string]any{"error": err.Error()})
		return internal("Internal server error")
	}

	if err := credentials.VerifyPassword(u.PasswordHash, password); err != nil {
		return unauthorized("Invalid password")
	}

	tok, err := s.issuer.Sign(u.ID.String())
	if err != nil {
		logger.Error("login: token signing failed", map[string]any{"error": err.Error()})
		return internal("Internal server error")
	}

	return Result{Status: StatusOK, Message: "Login successful", Token: tok}
}

// ResendOTP rotates the code and expiry of an existing pending record.
// The stored payload is untouched.
func (s *Service) ResendOTP(ctx context.Context, email string) Result {
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return conflict("User already registered")
	}
	if !errors.Is(err, user.ErrNotFound) {
		logger.Error("resend: user lookup failed", map[string]any{"error": err.Error()})
		return internal("Internal server error")
	}

	rec, err := s.otps.Find(ctx, email, otp.PurposeUserRegistration)
	if errors.Is(err, otp.ErrNotFound) {
		return notFound("No OTP found for this email")
	}
	if err != nil {
		logger.Error("resend: otp lookup failed", map[string]any{"error": err.Error()})
		return internal("Internal server error")
	}

	code, err := s.newCode()
	if err != nil {
		logger.Error("resend: code generation failed", map[string]any{"error": err.Error()})
		return internal("Internal server error")
	}

	rec.Code = code
	rec.ExpiresAt = s.now().Add(OTPValidity)

	if err := s.otps.Upsert(ctx, rec); err != nil {
		logger.Error("resend: otp upsert failed", map[string]any{"error": err.Error()})
		return internal("Internal server error")
	}

	if err := s.sender.SendOTP(ctx, email, code); err != nil {
		logger.Error("resend: otp email failed", map[string]any{
			"email": email,
			"error": err.Error(),
		})
		return internal("Failed to send OTP email")
	}

	return ok("New OTP sent successfully. Please check your email.")
}

// CleanupOTP removes every pending record for the email. Exposed for
// the external cleanup endpoint; verification itself never deletes
// expired records.
func (s *Service) CleanupOTP(ctx context.Context, email string) (int, error) {
	return s.otps.DeleteAll(ctx, email)
}

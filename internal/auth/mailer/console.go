package mailer

import (
	"context"

	"github.com/Souvik9205/KomyuLink/internal/logger"
)

// ConsoleSender logs codes instead of emailing them. Development only.
type ConsoleSender struct{}

func (ConsoleSender) SendOTP(_ context.Context, to, code string) error {
	logger.Info("otp email (console sender)", map[string]any{
		"to":  to,
		"otp": code,
	})
	return nil
}

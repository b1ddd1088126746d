package mailer

import "context"

// Sender delivers a one-time code to an email address. Delivery is
// fire-and-forget from the caller's perspective: a failed send is
// reported once and never retried here.
type Sender interface {
	SendOTP(ctx context.Context, to, code string) error
}

package mailer

import (
	"context"

	mail "github.com/wneessen/go-mail"
)

const otpSubject = "Your KomyuLink verification code"

// SMTPSender delivers OTP emails over authenticated SMTP.
type SMTPSender struct {
	client *mail.Client
	from   string
}

func NewSMTPSender(host string, port int, username, password, from string) (*SMTPSender, error) {
	client, err := mail.NewClient(host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(username),
		mail.WithPassword(password),
	)
	if err != nil {
		return nil, err
	}

	return &SMTPSender{client: client, from: from}, nil
}

func (s *SMTPSender) SendOTP(ctx context.Context, to, code string) error {
	msg := mail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(otpSubject)

	body, err := renderOTPBody(code)
	if err != nil {
		return err
	}
	msg.SetBodyString(mail.TypeTextHTML, body)

	return s.client.DialAndSendWithContext(ctx, msg)
}

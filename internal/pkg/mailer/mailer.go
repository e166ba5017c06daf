package mailer

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Mailer delivers one-time verification codes by email.
type Mailer interface {
	SendOTP(ctx context.Context, email, code string) error
}

// DevConsoleMailer logs codes instead of sending them. Local development only.
type DevConsoleMailer struct{}

func NewDevConsoleMailer() *DevConsoleMailer {
	return &DevConsoleMailer{}
}

func (m *DevConsoleMailer) SendOTP(_ context.Context, email, code string) error {
	logrus.WithFields(logrus.Fields{
		"email": email,
		"code":  code,
	}).Info("dev-email: verification code")
	return nil
}

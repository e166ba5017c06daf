package mailer

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type SendGridMailer struct {
	client   *sendgrid.Client
	fromName string
	fromAddr string
	sandbox  bool
}

func NewSendGridMailer(apiKey, fromName, fromAddr string, sandbox bool) *SendGridMailer {
	return &SendGridMailer{
		client:   sendgrid.NewSendClient(apiKey),
		fromName: fromName,
		fromAddr: fromAddr,
		sandbox:  sandbox,
	}
}

func (m *SendGridMailer) SendOTP(_ context.Context, email, code string) error {
	from := mail.NewEmail(m.fromName, m.fromAddr)
	to := mail.NewEmail("", email)
	subject := fmt.Sprintf("Your %s verification code", m.fromName)
	plain := fmt.Sprintf("Your OTP is %s. It expires in 10 minutes.", code)
	html := fmt.Sprintf("<p>Your OTP is <b>%s</b>. It expires in 10 minutes.</p>", code)
	message := mail.NewSingleEmail(from, subject, to, plain, html)

	if m.sandbox {
		ms := mail.NewMailSettings()
		ms.SetSandboxMode(mail.NewSetting(true))
		message.MailSettings = ms
	}

	resp, err := m.client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send: status %d", resp.StatusCode)
	}
	return nil
}

package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Sender sends transactional mail
type Sender interface {
	SendOTPEmail(to, code string) error
	SendWelcomeEmail(to, name string) error
}

type sender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSender creates an SMTP-backed sender
func NewSender(host string, port int, user, password, from string) Sender {
	return &sender{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   from,
	}
}

// SendOTPEmail delivers a one-time code. Any failure is returned to the
// caller; the email OTP flow has no degraded path, the user must retry.
func (s *sender) SendOTPEmail(to, code string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your verification code")

	body := fmt.Sprintf(`
		<h3>Verification code</h3>
		<p>Your one-time code is: <strong>%s</strong></p>
		<p>The code is valid for 10 minutes and can be used once.</p>
		<p>If you did not request this code, you can ignore this email.</p>
	`, code)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send otp email: %w", err)
	}
	return nil
}

// SendWelcomeEmail greets a freshly registered account
func (s *sender) SendWelcomeEmail(to, name string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Welcome to CVNest!")

	body := fmt.Sprintf(`
		<h2>Welcome, %s!</h2>
		<p>Your account has been created. Build your first CV and start matching with jobs.</p>
		<p>Best regards,<br>The CVNest Team</p>
	`, name)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	return nil
}

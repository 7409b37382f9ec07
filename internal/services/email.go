package services

import (
	"crypto/tls"
	"fmt"

	"github.com/upgradehq/upgrade-backend/internal/config"
	"gopkg.in/gomail.v2"
)

type EmailService struct {
	config *config.Config
}

func NewEmailService(config *config.Config) *EmailService {
	return &EmailService{config: config}
}

func (s *EmailService) SendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.config.FromEmail)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.config.SMTPHost, s.config.SMTPPort, s.config.SMTPUsername, s.config.SMTPPassword)
	d.TLSConfig = &tls.Config{InsecureSkipVerify: true}

	return d.DialAndSend(m)
}

// SendWelcomeEmail greets a new newsletter subscriber and carries their
// personal unsubscribe link.
func (s *EmailService) SendWelcomeEmail(email, unsubscribeToken string) error {
	unsubscribeLink := fmt.Sprintf("%s/api/subscribe?token=%s", s.config.BaseURL, unsubscribeToken)

	subject := "Welcome to the Upgrade newsletter"
	body := fmt.Sprintf(`
		<h2>Thanks for subscribing!</h2>
		<p>You'll get a weekly digest of the best new products on Upgrade.</p>
		<p>Changed your mind? <a href="%s">Unsubscribe</a> any time.</p>
		<p>— The Upgrade Team</p>
	`, unsubscribeLink)

	return s.SendEmail(email, subject, body)
}

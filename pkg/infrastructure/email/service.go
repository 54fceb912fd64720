package email

import (
	"fmt"
	"portfolio-go-backend/config"
	"portfolio-go-backend/pkg/entity/model"

	"gopkg.in/mail.v2"
)

// EmailService handles all email operations
type EmailService struct {
	dialer      *mail.Dialer
	fromAddress string
	adminEmail  string
}

// NewEmailService creates a new email service instance
func NewEmailService() *EmailService {
	cfg := config.C.Email

	dialer := mail.NewDialer(
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.Username,
		cfg.Password,
	)

	return &EmailService{
		dialer:      dialer,
		fromAddress: cfg.FromAddress,
		adminEmail:  cfg.AdminEmail,
	}
}

// SendContactNotification forwards a contact form submission to the operator.
func (s *EmailService) SendContactNotification(name, email, subject, message string) error {
	mailSubject := fmt.Sprintf("Nouveau message de %s: %s", name, subject)
	body := fmt.Sprintf("De: %s (%s)\n\nMessage:\n%s", name, email, message)

	return s.sendPlain(s.adminEmail, mailSubject, body)
}

// SendUnreadContactDigest sends a summary of the messages still waiting for
// a reply.
func (s *EmailService) SendUnreadContactDigest(contacts []*model.Contact) error {
	subject := fmt.Sprintf("📬 %d unread contact message(s)", len(contacts))

	rows := ""
	for _, c := range contacts {
		rows += fmt.Sprintf(
			"<li><strong>%s</strong> (%s) — %s<br/>received %s</li>",
			c.Name, c.Email, c.Subject, c.CreatedAt.Format("Jan 02, 2006 at 15:04"),
		)
	}

	body := fmt.Sprintf(`
<html>
<body>
<h2>Unread Contact Messages</h2>
<p>Hi Admin,</p>

<p>The following messages are still unread:</p>
<ul>
%s
</ul>

<p>Visit the admin API to mark them as read or replied.</p>

<p>Best regards,<br/>Portfolio System</p>
</body>
</html>
	`, rows)

	return s.sendHTML(s.adminEmail, subject, body)
}

// sendHTML sends an HTML email
func (s *EmailService) sendHTML(to, subject, htmlBody string) error {
	m := mail.NewMessage()
	m.SetHeader("From", s.fromAddress)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// sendPlain sends a plain text email
func (s *EmailService) sendPlain(to, subject, body string) error {
	m := mail.NewMessage()
	m.SetHeader("From", s.fromAddress)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

package email

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Sender delivers campaign and account emails. Handlers and jobs depend on
// this interface so tests can swap in a recorder.
type Sender interface {
	Send(toEmail, toName, subject, plainTextBody string) error
}

// Service sends email via SendGrid, falling back to console logging when no
// API key is configured (development mode).
type Service struct {
	fromEmail   string
	fromName    string
	sendGridKey string
	useSendGrid bool
}

// NewService creates a new email service. With an empty sendGridAPIKey,
// emails are logged instead of sent.
func NewService(fromEmail, fromName, sendGridAPIKey string) *Service {
	useSendGrid := sendGridAPIKey != ""
	if useSendGrid {
		log.Printf("✅ Email service initialized with SendGrid")
	} else {
		log.Printf("⚠️  Email service in console-only mode (set SENDGRID_API_KEY for production)")
	}

	return &Service{
		fromEmail:   fromEmail,
		fromName:    fromName,
		sendGridKey: sendGridAPIKey,
		useSendGrid: useSendGrid,
	}
}

// Send delivers a single email.
func (s *Service) Send(toEmail, toName, subject, plainTextBody string) error {
	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, plainTextBody)
	}
	return s.logEmailToConsole(toEmail, subject)
}

func (s *Service) sendViaSendGrid(toEmail, toName, subject, plainTextBody string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)

	message := mail.NewSingleEmail(from, subject, to, plainTextBody, "")

	client := sendgrid.NewSendClient(s.sendGridKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned error status: %d", response.StatusCode)
	}

	return nil
}

func (s *Service) logEmailToConsole(toEmail, subject string) error {
	log.Printf("📧 [EMAIL] To: %s | From: %s <%s> | Subject: %s", toEmail, s.fromName, s.fromEmail, subject)
	return nil
}

package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/DLT-Africa-Hub/Recruita/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService defines the interface for sending emails
type EmailService interface {
	// SendNotification mirrors an in-app notification to the user's inbox.
	SendNotification(to, subject, text string) error
	// SendOffer sends the offer email to the graduate.
	SendOffer(to, graduateName, jobTitle, companyName, offersLink string) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type notificationEmailData struct {
	Subject string
	Text    string
}

// SendNotification sends a plain notification email
func (s *emailServiceImpl) SendNotification(to, subject, text string) error {
	data := notificationEmailData{
		Subject: subject,
		Text:    text,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "notification.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, subject, body.String())
}

type offerEmailData struct {
	GraduateName string
	JobTitle     string
	CompanyName  string
	OffersLink   string
}

// SendOffer sends the offer email to the graduate
func (s *emailServiceImpl) SendOffer(to, graduateName, jobTitle, companyName, offersLink string) error {
	data := offerEmailData{
		GraduateName: graduateName,
		JobTitle:     jobTitle,
		CompanyName:  companyName,
		OffersLink:   offersLink,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "offer.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Job Offer: %s at %s", jobTitle, companyName), body.String())
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s\r\n", from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}

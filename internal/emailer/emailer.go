// Package emailer sends a finished report workbook as an email attachment
// over SMTP with implicit TLS.
package emailer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gomail "gopkg.in/gomail.v2"
)

// Settings carries the SMTP account used to send reports. Gmail requires an
// app password here, not the account password.
type Settings struct {
	Host     string
	Port     int
	Sender   string
	Password string
}

// DefaultSettings reads the SMTP account from the environment. Host and port
// default to Gmail's implicit-TLS endpoint.
func DefaultSettings() Settings {
	s := Settings{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     465,
		Sender:   os.Getenv("SMTP_SENDER"),
		Password: os.Getenv("SMTP_APP_PASSWORD"),
	}
	if s.Host == "" {
		s.Host = "smtp.gmail.com"
	}
	return s
}

// Validate reports whether the settings are complete enough to send mail.
func (s Settings) Validate() error {
	if strings.TrimSpace(s.Sender) == "" {
		return fmt.Errorf("smtp sender is not set (SMTP_SENDER)")
	}
	if s.Password == "" {
		return fmt.Errorf("smtp app password is not set (SMTP_APP_PASSWORD)")
	}
	if s.Host == "" {
		return fmt.Errorf("smtp host is not set")
	}
	if s.Port <= 0 {
		return fmt.Errorf("smtp port %d is invalid", s.Port)
	}
	return nil
}

// Emailer sends report workbooks. The zero value is not usable; construct
// with New.
type Emailer struct {
	settings Settings
	send     func(m *gomail.Message) error
}

// New returns an Emailer that dials the configured SMTP host for each send.
func New(settings Settings) *Emailer {
	d := gomail.NewDialer(settings.Host, settings.Port, settings.Sender, settings.Password)
	d.SSL = true
	return &Emailer{
		settings: settings,
		send: func(m *gomail.Message) error {
			return d.DialAndSend(m)
		},
	}
}

// SendReport mails the workbook at attachmentPath to recipient.
func (e *Emailer) SendReport(recipient, subject, body, attachmentPath string) error {
	if err := e.settings.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(recipient) == "" {
		return fmt.Errorf("recipient address is empty")
	}
	if _, err := os.Stat(attachmentPath); err != nil {
		return fmt.Errorf("report attachment %s is not readable: %w", attachmentPath, err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", e.settings.Sender)
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	m.Attach(attachmentPath, gomail.Rename(filepath.Base(attachmentPath)))

	if err := e.send(m); err != nil {
		return fmt.Errorf("failed to send report to %s: %w", recipient, err)
	}
	return nil
}

// DefaultSubject builds the subject line used for report mails.
func DefaultSubject(targetRole string) string {
	return fmt.Sprintf("Job search report: %s", targetRole)
}

// DefaultBody builds the plain-text body used for report mails.
func DefaultBody(targetRole string, finalCount int) string {
	return fmt.Sprintf(
		"Attached is the job search report for %q.\n\nIt contains %d ranked postings. See the Notes sheet for run diagnostics.\n",
		targetRole, finalCount,
	)
}

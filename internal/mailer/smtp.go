// Package mailer implements the email-dispatch strategy for contact
// messages: instead of persisting, each validated message is forwarded to
// the site owner through a configured SMTP relay.
package mailer

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"html"
	"net/smtp"
	"strings"

	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/internal/repository"
)

// noSubject is used when the visitor left the subject blank.
const noSubject = "not provided"

// Config holds the SMTP relay settings, supplied via the process
// environment.
type Config struct {
	Host     string // e.g. "smtp.gmail.com"
	Port     string // e.g. "587"
	Username string // relay account identity, also the From address
	Password string
	// To is the recipient override. When empty, messages are sent to the
	// account identity itself.
	To string
}

// SMTPMailer forwards contact messages over SMTP. It implements the same
// store capability as the persisting repositories; a deployment picks
// exactly one.
type SMTPMailer struct {
	cfg Config

	// sendMail is smtp.SendMail, replaceable in tests.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPMailer creates an SMTPMailer with the given relay configuration.
func NewSMTPMailer(cfg Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, sendMail: smtp.SendMail}
}

var _ repository.ContactRepository = (*SMTPMailer)(nil)

// Save composes and dispatches the outbound mail. The visitor's address
// becomes the Reply-To header so the owner can answer directly. A relay
// failure surfaces as an error with no partial state; ID and Timestamp are
// left empty since nothing is persisted.
func (m *SMTPMailer) Save(_ context.Context, msg *model.ContactMessage) error {
	if m.cfg.Username == "" || m.cfg.Password == "" {
		return errors.New("mailer: SMTP credentials not configured")
	}

	to := m.cfg.To
	if to == "" {
		to = m.cfg.Username
	}

	subject := "New message from your portfolio"
	if msg.Subject != "" {
		subject = "Portfolio contact: " + headerValue(msg.Subject)
	}

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	if err := m.sendMail(m.cfg.Host+":"+m.cfg.Port, auth, m.cfg.Username, []string{to}, compose(m.cfg.Username, to, subject, msg)); err != nil {
		return fmt.Errorf("mailer: send: %w", err)
	}
	return nil
}

// headerValue flattens CR/LF to spaces so visitor-supplied input cannot
// terminate a header line and inject headers of its own.
func headerValue(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}

// randomBoundary returns a fresh MIME boundary token. Random so no body
// content can collide with it and break the multipart structure.
func randomBoundary() string {
	var buf [16]byte
	_, _ = rand.Read(buf[:])
	return fmt.Sprintf("=_part_%x", buf)
}

// compose renders the full RFC 822 message: headers plus a
// multipart/alternative body carrying the plain-text and HTML renderings.
func compose(from, to, subject string, msg *model.ContactMessage) []byte {
	boundary := randomBoundary()

	displaySubject := msg.Subject
	if displaySubject == "" {
		displaySubject = noSubject
	}

	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Reply-To: " + headerValue(msg.Email) + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: multipart/alternative; boundary=" + boundary + "\r\n")
	b.WriteString("\r\n")

	b.WriteString("--" + boundary + "\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString("New contact form submission:\r\n\r\n")
	b.WriteString("Name: " + msg.Name + "\r\n")
	b.WriteString("Email: " + msg.Email + "\r\n")
	b.WriteString("Subject: " + displaySubject + "\r\n")
	b.WriteString("Message:\r\n" + msg.Message + "\r\n")
	b.WriteString("\r\n")

	// Line breaks become <br> in the HTML rendering only.
	htmlMessage := strings.ReplaceAll(html.EscapeString(msg.Message), "\n", "<br>\n")
	b.WriteString("--" + boundary + "\r\n")
	b.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	b.WriteString("<h2>New contact form submission</h2>\r\n")
	b.WriteString("<p><strong>Name:</strong> " + html.EscapeString(msg.Name) + "</p>\r\n")
	b.WriteString("<p><strong>Email:</strong> " + html.EscapeString(msg.Email) + "</p>\r\n")
	b.WriteString("<p><strong>Subject:</strong> " + html.EscapeString(displaySubject) + "</p>\r\n")
	b.WriteString("<p><strong>Message:</strong></p>\r\n")
	b.WriteString("<p>" + htmlMessage + "</p>\r\n")
	b.WriteString("\r\n--" + boundary + "--\r\n")

	return []byte(b.String())
}

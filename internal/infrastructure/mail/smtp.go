package mail

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"careerhub/internal/config"

	"github.com/google/uuid"
)

var ErrNotConfigured = errors.New("smtp not configured")

// Sender delivers transactional email. Implementations return a message id
// usable for correlating delivery logs.
type Sender interface {
	Send(ctx context.Context, to, subject, textBody, htmlBody string) (string, error)
}

type SMTPSender struct {
	cfg config.SMTPConfig
}

func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) Send(ctx context.Context, to, subject, textBody, htmlBody string) (string, error) {
	if s == nil || strings.TrimSpace(s.cfg.Host) == "" {
		return "", ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	messageID := fmt.Sprintf("<%s@%s>", uuid.NewString(), s.cfg.Host)
	msg := buildMessage(s.cfg.From, to, subject, messageID, textBody, htmlBody)

	addr := fmt.Sprintf("%s:%s", s.cfg.Host, s.cfg.Port)
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: s.cfg.Host})
	if err != nil {
		return "", fmt.Errorf("smtp connect: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return "", fmt.Errorf("smtp client: %w", err)
	}
	defer client.Close()

	if s.cfg.Username != "" {
		auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return "", fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err := client.Mail(s.cfg.From); err != nil {
		return "", fmt.Errorf("smtp mail from: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return "", fmt.Errorf("smtp rcpt to: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return "", fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return "", fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("smtp close data: %w", err)
	}

	if err := client.Quit(); err != nil {
		return "", fmt.Errorf("smtp quit: %w", err)
	}

	return messageID, nil
}

// buildMessage assembles a multipart/alternative MIME message so clients
// without HTML rendering fall back to the text part.
func buildMessage(from, to, subject, messageID, textBody, htmlBody string) []byte {
	boundary := strings.ReplaceAll(uuid.NewString(), "-", "")

	var b bytes.Buffer
	write := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\r\n", args...)
	}

	write("From: %s", from)
	write("To: %s", to)
	write("Subject: %s", subject)
	write("Message-ID: %s", messageID)
	write("Date: %s", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0")
	write("Content-Type: multipart/alternative; boundary=%q", boundary)
	write("")

	write("--%s", boundary)
	write("Content-Type: text/plain; charset=UTF-8")
	write("")
	write("%s", textBody)

	if strings.TrimSpace(htmlBody) != "" {
		write("--%s", boundary)
		write("Content-Type: text/html; charset=UTF-8")
		write("")
		write("%s", htmlBody)
	}

	write("--%s--", boundary)
	return b.Bytes()
}

package email

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/gomail.v2"

	errs "github.com/flouscash/platform/internal/domain/error"
	coreport "github.com/flouscash/platform/internal/domain/port/core"
	"github.com/flouscash/platform/internal/domain/port/notifier"
)

// Config holds SMTP transport settings
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Sender delivers transactional email over SMTP using gomail
type Sender struct {
	dialer *gomail.Dialer
	from   string
	logger coreport.Logger
}

// NewSender creates a new SMTP sender
func NewSender(cfg Config, logger coreport.Logger) *Sender {
	return &Sender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		logger: logger,
	}
}

// Send delivers a single email. gomail has no context support, so the dial
// and send run on their own goroutine and the call abandons them when the
// context expires.
func (s *Sender) Send(ctx context.Context, msg notifier.EmailMessage) error {
	if msg.To == "" {
		return errs.NewValidationError("to", "must not be empty")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	for _, att := range msg.Attachments {
		content := att.Content
		settings := []gomail.FileSetting{
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(content)
				return err
			}),
		}
		if att.ContentType != "" {
			settings = append(settings, gomail.SetHeader(map[string][]string{
				"Content-Type": {att.ContentType},
			}))
		}
		m.Attach(att.Filename, settings...)
	}

	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("sending email to %s: %w", msg.To, err)
		}
		s.logger.Debug("Email sent", map[string]any{
			"to":          msg.To,
			"subject":     msg.Subject,
			"attachments": len(msg.Attachments),
		})
		return nil
	case <-ctx.Done():
		return fmt.Errorf("sending email to %s: %w", msg.To, ctx.Err())
	}
}

// Package mailer defines the outbound verification-email collaborator.
// Actual delivery is an external concern; the registration flow only needs
// something to hand the code to.
package mailer

import (
	"bytes"
	"context"
	"text/template"
	"time"

	"github.com/henkenclub/account/internal/logging"
)

// Message carries everything the verification email needs.
type Message struct {
	Email       string
	DisplayName string
	Code        string
	ExpiredAt   time.Time
}

// Sender delivers a verification code to a pending registrant. The signup
// flow calls it after the pair is persisted; implementations must not block
// longer than the request context allows.
type Sender interface {
	SendVerificationCode(ctx context.Context, msg Message) error
}

// DefaultTemplate renders the verification email body.
const DefaultTemplate = `Hi {{.DisplayName}},

This is your verification code:

{{.Code}}

The code is valid until {{.ExpiredAt.UTC.Format "2006-01-02 15:04 MST"}}.

If you did not sign up, you can ignore this email.
`

// LogSender writes the rendered email to the structured log instead of
// delivering it. It is the development/default implementation; a real
// delivery backend plugs in behind the same interface.
type LogSender struct {
	logger logging.Logger
	tmpl   *template.Template
}

// NewLogSender builds a LogSender using DefaultTemplate.
func NewLogSender(logger logging.Logger) *LogSender {
	return &LogSender{
		logger: logger.With("module", "mailer"),
		tmpl:   template.Must(template.New("verification").Parse(DefaultTemplate)),
	}
}

// SendVerificationCode renders the message and logs it.
func (s *LogSender) SendVerificationCode(ctx context.Context, msg Message) error {
	var body bytes.Buffer
	if err := s.tmpl.Execute(&body, msg); err != nil {
		return err
	}
	s.logger.Info(ctx, "verification email", "to", msg.Email, "body", body.String())
	return nil
}

package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"fmt"
	"palmera/config"
	"palmera/infras/otel"
	"palmera/shared/constant"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

const (
	otelAttrRecipient = "mail.to"
	otelAttrSubject   = "mail.subject"
)

// Mailer sends transactional email through the configured SMTP relay.
// Delivery is at-most-once; callers decide whether a failure matters.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type smtpMailer struct {
	cfg  *config.Config
	otel otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) Mailer {
	if !cfg.SMTP.Enable {
		log.Warn().Msg("SMTP disabled, outgoing mail will be dropped")
	}

	return &smtpMailer{
		cfg:  cfg,
		otel: otl,
	}
}

func (m *smtpMailer) Send(ctx context.Context, to, subject, htmlBody string) (err error) {
	_, scope := m.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".mailer.Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		otelAttrRecipient: to,
		otelAttrSubject:   subject,
	})

	if !m.cfg.SMTP.Enable {
		log.Debug().Str("to", to).Str("subject", subject).Msg("SMTP disabled, dropping mail")

		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.SMTP.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(m.cfg.SMTP.Host, m.cfg.SMTP.Port, m.cfg.SMTP.Username, m.cfg.SMTP.Password)

	if err = dialer.DialAndSend(msg); err != nil {
		log.Error().Err(err).Str("to", to).Msg("failed to send email")

		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

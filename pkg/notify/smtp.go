package notify

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"github.com/Kxngreece/Healstep-API/pkg/config"
)

// SMTPMailer sends HTML mail through the configured gateway. A client is
// dialed per message, so one mailer is safe for every worker.
type SMTPMailer struct {
	cfg config.MailConfig
}

func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (s *SMTPMailer) clientOptions() []mail.Option {
	opts := []mail.Option{mail.WithPort(s.cfg.Port)}

	switch {
	case s.cfg.SSLTLS:
		opts = append(opts, mail.WithSSL())
	case s.cfg.StartTLS:
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	default:
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}

	if s.cfg.UseCredentials {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(s.cfg.Password),
		)
	}
	return opts
}

func (s *SMTPMailer) message(to []string, subject string, htmlBody string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(s.cfg.From); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", s.cfg.From, err)
	}
	if err := msg.To(to...); err != nil {
		return nil, fmt.Errorf("invalid recipients: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)
	return msg, nil
}

func (s *SMTPMailer) Send(ctx context.Context, to []string, subject string, htmlBody string) error {
	msg, err := s.message(to, subject, htmlBody)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(s.cfg.Server, s.clientOptions()...)
	if err != nil {
		return fmt.Errorf("mail client: %w", err)
	}

	return client.DialAndSendWithContext(ctx, msg)
}

// LogMailer stands in when no gateway is configured and only logs the
// notification.
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, to []string, subject string, _ string) error {
	logger().Info("Mail gateway not configured, notification logged only",
		zap.Strings("to", to), zap.String("subject", subject))
	return nil
}

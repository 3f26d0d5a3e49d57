package mail

import (
	"context"
	"errors"
	"log"

	appconfig "github.com/tukang-design/tukang-api/internal/config"
	"github.com/tukang-design/tukang-api/internal/usecase/interfaces"

	gomail "github.com/wneessen/go-mail"
)

var ErrMailNotConfigured = errors.New("missing SMTP configuration")

// SMTPMailer delivers email through an SMTP relay.
//
// One message, one DialAndSend; no retry. The caller owns the decision of
// whether a delivery failure is fatal.
type SMTPMailer struct {
	client *gomail.Client
	from   string
}

var _ interfaces.IMailer = (*SMTPMailer)(nil)

func NewSMTPMailer(cfg *appconfig.MailConfig) (*SMTPMailer, error) {
	if cfg == nil || !cfg.Configured() {
		log.Printf("[mail][transport] missing SMTP configuration")
		return nil, ErrMailNotConfigured
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		log.Printf("[mail][transport] failed creating smtp client err=%v", err)
		return nil, err
	}
	log.Printf("[mail][transport] smtp client initialized host=%s port=%d", cfg.Host, cfg.Port)

	return &SMTPMailer{client: client, from: cfg.From}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, msg interfaces.Email) error {
	if m == nil || m.client == nil {
		return ErrMailNotConfigured
	}

	out := gomail.NewMsg()
	if err := out.From(m.from); err != nil {
		return err
	}
	if err := out.To(msg.To); err != nil {
		return err
	}
	if msg.ReplyTo != "" {
		if err := out.ReplyTo(msg.ReplyTo); err != nil {
			return err
		}
	}
	out.Subject(msg.Subject)
	out.SetBodyString(gomail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		out.AddAlternativeString(gomail.TypeTextHTML, msg.HTML)
	}

	log.Printf("[mail][transport] send start to=%s subject=%q", msg.To, msg.Subject)
	if err := m.client.DialAndSendWithContext(ctx, out); err != nil {
		log.Printf("[mail][transport] send failed to=%s err=%v", msg.To, err)
		return err
	}
	log.Printf("[mail][transport] send success to=%s", msg.To)
	return nil
}

package mail

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/smtp"
	"net/textproto"
	"strings"
)

var (
	// ErrSMTPHostPortRequired is returned when Host/Port are missing.
	ErrSMTPHostPortRequired = errors.New("smtp host and port are required")
	// ErrSMTPNoRecipients is returned when Message.To is empty.
	ErrSMTPNoRecipients = errors.New("no recipients provided")
	// ErrSMTPNoSender is returned when Credentials.Email is empty.
	ErrSMTPNoSender = errors.New("no sender provided")
)

// SMTP is a Mail implementation backed by net/smtp.
//
// Every Validate and Send opens a fresh connection: dial, STARTTLS when the
// server offers it, AUTH with the caller's credentials, then QUIT. Nothing is
// pooled, so one batch's credentials can never leak into another's session.
type SMTP struct {
	addr string
	host string
}

// SMTPConfig configures the SMTP implementation.
type SMTPConfig struct {
	// Host is the SMTP server hostname.
	Host string
	// Port is the SMTP server port.
	Port int
}

// NewSMTP constructs an SMTP mail transport.
func NewSMTP(cfg SMTPConfig) (*SMTP, error) {
	if cfg.Host == "" || cfg.Port == 0 {
		return nil, ErrSMTPHostPortRequired
	}

	return &SMTP{
		addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		host: cfg.Host,
	}, nil
}

// Validate authenticates against the server and quits without sending.
func (s *SMTP) Validate(ctx context.Context, creds Credentials) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	client, err := s.connect(creds)
	if err != nil {
		return err
	}

	return client.Quit()
}

// Send delivers a message on a fresh authenticated connection.
func (s *SMTP) Send(ctx context.Context, creds Credentials, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(msg.To) == 0 {
		return ErrSMTPNoRecipients
	}
	if creds.Email == "" {
		return ErrSMTPNoSender
	}

	client, err := s.connect(creds)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Mail(creds.Email); err != nil {
		return classify(err)
	}

	for _, rcpt := range msg.To {
		if err := client.Rcpt(rcpt); err != nil {
			var tpErr *textproto.Error
			if errors.As(err, &tpErr) {
				return &RecipientRefusedError{Recipient: rcpt, Detail: tpErr.Msg}
			}
			return err
		}
	}

	wc, err := client.Data()
	if err != nil {
		return classify(err)
	}

	if _, err := wc.Write(buildRaw(creds.Email, msg)); err != nil {
		return classify(err)
	}
	if err := wc.Close(); err != nil {
		return classify(err)
	}

	return client.Quit()
}

// Close implements io.Closer for interface compatibility.
func (s *SMTP) Close() error {
	return nil
}

func (s *SMTP) connect(creds Credentials) (*smtp.Client, error) {
	client, err := smtp.Dial(s.addr)
	if err != nil {
		return nil, err
	}

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
			client.Close()
			return nil, classify(err)
		}
	}

	if ok, _ := client.Extension("AUTH"); ok {
		auth := smtp.PlainAuth("", creds.Email, creds.Password, s.host)
		if err := client.Auth(auth); err != nil {
			client.Close()
			var tpErr *textproto.Error
			if errors.As(err, &tpErr) {
				return nil, &AuthError{Detail: tpErr.Msg}
			}
			return nil, &AuthError{Detail: err.Error()}
		}
	}

	return client, nil
}

func classify(err error) error {
	var tpErr *textproto.Error
	if errors.As(err, &tpErr) {
		return &ProtocolError{Detail: tpErr.Msg}
	}

	return err
}

func buildRaw(from string, msg Message) []byte {
	var headers []string
	headers = append(headers, fmt.Sprintf("From: %s", from))
	headers = append(headers, fmt.Sprintf("To: %s", strings.Join(msg.To, ", ")))
	headers = append(headers, fmt.Sprintf("Subject: %s", msg.Subject))
	headers = append(headers, "MIME-Version: 1.0")
	headers = append(headers, "Content-Type: text/plain; charset=UTF-8")

	raw := strings.Join(headers, "\r\n") + "\r\n\r\n" + msg.TextBody

	return []byte(raw)
}

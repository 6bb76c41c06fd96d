package mail

import (
	"bufio"
	"context"
	"net"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSMTP(t *testing.T) {
	_, err := NewSMTP(SMTPConfig{})
	assert.ErrorIs(t, err, ErrSMTPHostPortRequired)

	s, err := NewSMTP(SMTPConfig{Host: "smtp.example.com", Port: 587})
	require.NoError(t, err)
	assert.Equal(t, "smtp.example.com:587", s.addr)
}

func TestSendInputChecks(t *testing.T) {
	s, err := NewSMTP(SMTPConfig{Host: "smtp.example.com", Port: 587})
	require.NoError(t, err)

	err = s.Send(t.Context(), Credentials{Email: "a@b.com"}, Message{})
	assert.ErrorIs(t, err, ErrSMTPNoRecipients)

	err = s.Send(t.Context(), Credentials{}, Message{To: []string{"x@y.com"}})
	assert.ErrorIs(t, err, ErrSMTPNoSender)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = s.Send(ctx, Credentials{Email: "a@b.com"}, Message{To: []string{"x@y.com"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuildRaw(t *testing.T) {
	raw := string(buildRaw("sender@example.com", Message{
		To:       []string{"a@b.com", "c@d.com"},
		Subject:  "Hello",
		TextBody: "Hi there",
	}))

	parts := strings.SplitN(raw, "\r\n\r\n", 2)
	require.Len(t, parts, 2)

	assert.Contains(t, parts[0], "From: sender@example.com")
	assert.Contains(t, parts[0], "To: a@b.com, c@d.com")
	assert.Contains(t, parts[0], "Subject: Hello")
	assert.Contains(t, parts[0], "Content-Type: text/plain; charset=UTF-8")
	assert.Equal(t, "Hi there", parts[1])
}

func TestErrorStrings(t *testing.T) {
	assert.Equal(t, "smtp authentication failed: 535 nope",
		(&AuthError{Detail: "535 nope"}).Error())
	assert.Equal(t, "smtp recipient refused: a@b.com: 550 no such user",
		(&RecipientRefusedError{Recipient: "a@b.com", Detail: "550 no such user"}).Error())
	assert.Equal(t, "smtp error: 421 busy",
		(&ProtocolError{Detail: "421 busy"}).Error())
}

// fakeSMTPServer speaks just enough of the protocol for one session.
func fakeSMTPServer(t *testing.T, rejectAuth bool) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })

	go func() {
		conn, err := l.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		r := bufio.NewReader(conn)
		write := func(s string) { conn.Write([]byte(s + "\r\n")) }

		write("220 fake ESMTP ready")
		for {
			line, err := r.ReadString('\n')
			if err != nil {
				return
			}

			cmd := strings.ToUpper(strings.TrimSpace(line))
			switch {
			case strings.HasPrefix(cmd, "EHLO"), strings.HasPrefix(cmd, "HELO"):
				write("250-fake greets you")
				write("250 AUTH PLAIN")
			case strings.HasPrefix(cmd, "AUTH"):
				if rejectAuth {
					write("535 authentication credentials invalid")
				} else {
					write("235 ok")
				}
			case strings.HasPrefix(cmd, "QUIT"):
				write("221 bye")
				return
			default:
				write("250 ok")
			}
		}
	}()

	return l.Addr().String()
}

func TestValidate(t *testing.T) {
	t.Run("Accepted", func(t *testing.T) {
		addr := fakeSMTPServer(t, false)
		host, port, err := net.SplitHostPort(addr)
		require.NoError(t, err)

		s := &SMTP{addr: net.JoinHostPort(host, port), host: host}
		err = s.Validate(t.Context(), Credentials{Email: "a@b.com", Password: "ok"})
		require.NoError(t, err)
	})

	t.Run("Rejected", func(t *testing.T) {
		addr := fakeSMTPServer(t, true)
		host, port, err := net.SplitHostPort(addr)
		require.NoError(t, err)

		s := &SMTP{addr: net.JoinHostPort(host, port), host: host}
		err = s.Validate(t.Context(), Credentials{Email: "a@b.com", Password: "bad"})

		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Contains(t, authErr.Detail, "authentication credentials invalid")
	})
}

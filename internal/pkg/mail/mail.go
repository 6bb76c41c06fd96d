package mail

import (
	"context"
	"io"
)

// Credentials is a caller-supplied SMTP login.
//
// The sender address doubles as the authentication username. Credentials are
// never persisted; they live only for the duration of a request or dispatch.
type Credentials struct {
	// Email is the sender address and authentication username.
	Email string
	// Password is the authentication secret.
	Password string
}

// Message represents an email payload.
type Message struct {
	// To lists required recipients.
	To []string
	// Subject is the email subject line.
	Subject string
	// TextBody is the plain-text body.
	TextBody string
}

// Mail abstracts an email transport authenticated per call.
type Mail interface {
	io.Closer

	// Validate checks that the credentials can authenticate against the
	// transport without sending anything.
	Validate(ctx context.Context, creds Credentials) error

	// Send dispatches the given message on a fresh connection using the
	// provided credentials.
	Send(ctx context.Context, creds Credentials, msg Message) error
}

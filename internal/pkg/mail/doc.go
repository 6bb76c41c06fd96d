// Package mail defines the contracts for sending email messages.
//
// The main purpose is to keep the rest of the application independent from a
// specific delivery mechanism. Use cases work with the Mail interface, the
// Message payload, and the caller-supplied Credentials; the concrete transport
// (SMTP) is implemented elsewhere in this package.
package mail

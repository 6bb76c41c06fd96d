package mail

import "fmt"

// AuthError indicates the server rejected the credentials.
type AuthError struct {
	// Detail is the server response text.
	Detail string
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	return "smtp authentication failed: " + e.Detail
}

// RecipientRefusedError indicates the server rejected a recipient address.
type RecipientRefusedError struct {
	// Recipient is the rejected address.
	Recipient string
	// Detail is the server response text.
	Detail string
}

// Error implements the error interface.
func (e *RecipientRefusedError) Error() string {
	return fmt.Sprintf("smtp recipient refused: %s: %s", e.Recipient, e.Detail)
}

// ProtocolError indicates an SMTP-level failure other than auth or recipient
// rejection (bad sender, data phase errors, unexpected server replies).
type ProtocolError struct {
	// Detail is the server response text.
	Detail string
}

// Error implements the error interface.
func (e *ProtocolError) Error() string {
	return "smtp error: " + e.Detail
}

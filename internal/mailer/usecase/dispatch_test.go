package usecase

import (
	"errors"
	"testing"

	"github.com/ardiansetya/goblast/internal/pkg/mail"
	"github.com/stretchr/testify/assert"
)

func TestClassifySendError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "RecipientRefused",
			err:  &mail.RecipientRefusedError{Recipient: "a@b.com", Detail: "550 no such user"},
			want: "Recipient refused: a@b.com - Email address not found or invalid",
		},
		{
			name: "AuthFailed",
			err:  &mail.AuthError{Detail: "535 5.7.8 invalid credentials"},
			want: "SMTP Authentication failed: 535 5.7.8 invalid credentials",
		},
		{
			name: "Protocol",
			err:  &mail.ProtocolError{Detail: "421 service not available"},
			want: "SMTP Error: 421 service not available",
		},
		{
			name: "Unexpected",
			err:  errors.New("dial tcp: connection refused"),
			want: "Unexpected error: dial tcp: connection refused",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, classifySendError("a@b.com", tc.err))
		})
	}
}

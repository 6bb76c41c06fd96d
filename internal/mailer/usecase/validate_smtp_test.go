package usecase

import (
	"testing"

	"github.com/ardiansetya/goblast/internal/pkg/goerror"
	"github.com/ardiansetya/goblast/internal/pkg/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSMTP(t *testing.T) {
	t.Run("InvalidInput", func(t *testing.T) {
		f := newFixture(t, "")

		_, err := f.uc.ValidateSMTP(t.Context(), ValidateSMTPInput{SMTPEmail: "not-an-email"})

		require.Error(t, err)
	})

	t.Run("LoginRejected", func(t *testing.T) {
		f := newFixture(t, "")
		f.mail.validateErr = &mail.AuthError{Detail: "535 bad credentials"}

		_, err := f.uc.ValidateSMTP(t.Context(), ValidateSMTPInput{
			SMTPEmail:    "sender@example.com",
			SMTPPassword: "nope",
		})

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, "SMTP authentication failed", gerr.Msg())
	})

	t.Run("Success", func(t *testing.T) {
		f := newFixture(t, "")

		out, err := f.uc.ValidateSMTP(t.Context(), ValidateSMTPInput{
			SMTPEmail:    "sender@example.com",
			SMTPPassword: "app-password",
		})
		require.NoError(t, err)

		assert.True(t, out.Valid)
	})
}

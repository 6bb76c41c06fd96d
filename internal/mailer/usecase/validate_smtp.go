package usecase

import (
	"context"
	"log/slog"

	"github.com/ardiansetya/goblast/internal/pkg/goerror"
	"github.com/ardiansetya/goblast/internal/pkg/mail"
)

type ValidateSMTPInput struct {
	SMTPEmail    string `validate:"required,email"`
	SMTPPassword string `validate:"required"`
}

type ValidateSMTPOutput struct {
	Valid bool
}

// ValidateSMTP checks the given credentials against the SMTP server without
// sending anything.
func (s *Usecase) ValidateSMTP(ctx context.Context, in ValidateSMTPInput) (*ValidateSMTPOutput, error) {
	ctx, span := s.startSpan(ctx, "ValidateSMTP")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	creds := mail.Credentials{Email: in.SMTPEmail, Password: in.SMTPPassword}
	if err := s.mail.Validate(ctx, creds); err != nil {
		slog.WarnContext(ctx, "smtp credential validation failed", "error", err)
		return nil, goerror.NewBusiness("SMTP authentication failed", goerror.CodeUnauthorized)
	}

	return &ValidateSMTPOutput{Valid: true}, nil
}

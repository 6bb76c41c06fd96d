package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/ardiansetya/goblast/internal/identity/entity"
	"github.com/ardiansetya/goblast/internal/pkg/goerror"
)

type RegisterInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,password"`
}

func (s *Usecase) Register(ctx context.Context, in RegisterInput) error {
	ctx, span := s.startSpan(ctx, "Register")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	_, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if err == nil {
		return goerror.NewBusiness("Email already registered", goerror.CodeConflict)
	}
	if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	hashedPassword, err := s.bcrypt.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return goerror.NewServer(err)
	}

	newUser := entity.User{
		ID:        s.uid.Generate(),
		Email:     in.Email,
		Password:  string(hashedPassword),
		CreatedAt: s.clock.Now(),
	}

	if err := s.repoDB.CreateUser(ctx, newUser); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			return goerror.NewBusiness("Email already registered", goerror.CodeConflict)
		}
		slog.ErrorContext(ctx, "failed to repo create user", "email", newUser.Email, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}

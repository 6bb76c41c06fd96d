package usecase

import (
	"context"
	"log/slog"

	"github.com/ardiansetya/goblast/internal/pkg/goerror"
)

type DeleteInput struct {
	IDs []int64 `validate:"required,min=1"`
}

type DeleteOutput struct {
	Deleted int64
}

// Delete removes the given records, skipping ids the caller does not own.
func (s *Usecase) Delete(ctx context.Context, in DeleteInput) (*DeleteOutput, error) {
	ctx, span := s.startSpan(ctx, "Delete")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	deleted, err := s.repoDB.DeleteRecords(ctx, clm.UserID, in.IDs)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete records", "user_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &DeleteOutput{Deleted: deleted}, nil
}

// Clear removes every record the caller owns.
func (s *Usecase) Clear(ctx context.Context) (*DeleteOutput, error) {
	ctx, span := s.startSpan(ctx, "Clear")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	deleted, err := s.repoDB.DeleteAllRecords(ctx, clm.UserID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete all records", "user_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &DeleteOutput{Deleted: deleted}, nil
}

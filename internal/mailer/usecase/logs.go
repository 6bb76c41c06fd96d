package usecase

import (
	"context"
	"log/slog"

	"github.com/ardiansetya/goblast/internal/mailer/entity"
	"github.com/ardiansetya/goblast/internal/pkg/goerror"
)

const logsPageSize = 20

type LogsInput struct {
	Page   int32
	Search string
}

type LogsOutput struct {
	Emails     []entity.EmailRecord
	TotalCount int64
	Page       int32
	TotalPages int32
}

// Logs returns one page of the caller's send history, newest first.
func (s *Usecase) Logs(ctx context.Context, in LogsInput) (*LogsOutput, error) {
	ctx, span := s.startSpan(ctx, "Logs")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	if in.Page < 1 {
		in.Page = 1
	}

	records, total, err := s.repoDB.ListRecords(ctx, entity.LogFilter{
		UserID: clm.UserID,
		Page:   in.Page,
		Search: in.Search,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list records", "user_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &LogsOutput{
		Emails:     records,
		TotalCount: total,
		Page:       in.Page,
		TotalPages: int32((total + logsPageSize - 1) / logsPageSize),
	}, nil
}

package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ardiansetya/goblast/internal/mailer/entity"
	"github.com/ardiansetya/goblast/internal/pkg/goerror"
)

type BatchStatusInput struct {
	BatchID int64
}

type BatchStatusOutput struct {
	BatchID int64
	Counts  entity.StatusCounts
}

// BatchStatus aggregates record outcomes for one batch. With a zero batch id
// it reports on the caller's most recent batch; owning no batches yields an
// all-zero summary rather than an error.
func (s *Usecase) BatchStatus(ctx context.Context, in BatchStatusInput) (*BatchStatusOutput, error) {
	ctx, span := s.startSpan(ctx, "BatchStatus")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	batchID := in.BatchID
	if batchID == 0 {
		batchID, err = s.repoDB.GetLatestBatchID(ctx, clm.UserID)
		if errors.Is(err, goerror.ErrNotFound) {
			return &BatchStatusOutput{}, nil
		}
		if err != nil {
			slog.ErrorContext(ctx, "failed to repo get latest batch", "user_id", clm.UserID, "error", err)
			return nil, goerror.NewServer(err)
		}
	}

	counts, err := s.repoDB.CountByStatus(ctx, clm.UserID, batchID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo count by status", "batch_id", batchID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &BatchStatusOutput{BatchID: batchID, Counts: counts}, nil
}

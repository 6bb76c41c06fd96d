package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ardiansetya/goblast/internal/mailer/entity"
	"github.com/ardiansetya/goblast/internal/pkg/mail"
)

// dispatch sends every pending record of one batch sequentially, opening a
// fresh connection per recipient. A failed recipient never aborts the loop.
func (s *Usecase) dispatch(ctx context.Context, userID, batchID int64, creds mail.Credentials) error {
	ctx, span := s.startSpan(ctx, "dispatch")
	defer span.End()

	records, err := s.repoDB.GetPendingRecords(ctx, userID, batchID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get pending records", "batch_id", batchID, "error", err)
		return err
	}

	for _, rec := range records {
		status, sendErr := s.sendOne(ctx, creds, rec)

		if err := s.repoDB.UpdateRecordStatus(ctx, rec.ID, status, sendErr); err != nil {
			slog.ErrorContext(ctx, "failed to repo update record status", "record_id", rec.ID, "error", err)
		}
	}

	counts, err := s.repoDB.CountByStatus(ctx, userID, batchID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo count by status", "batch_id", batchID, "error", err)
		return err
	}

	if err := s.repoMessaging.PublishBatchCompleted(ctx, BatchCompletedEvent{
		BatchID: batchID,
		UserID:  userID,
		Counts:  counts,
	}); err != nil {
		slog.WarnContext(ctx, "failed to publish batch completed", "batch_id", batchID, "error", err)
	}

	slog.InfoContext(ctx, "batch dispatch finished",
		"batch_id", batchID, "sent", counts.Sent, "failed", counts.Failed)

	return nil
}

func (s *Usecase) sendOne(ctx context.Context, creds mail.Credentials, rec entity.EmailRecord) (entity.Status, *string) {
	err := s.mail.Send(ctx, creds, mail.Message{
		To:       []string{rec.Recipient},
		Subject:  rec.Subject,
		TextBody: rec.Body,
	})
	if err == nil {
		return entity.StatusSent, nil
	}

	msg := classifySendError(rec.Recipient, err)
	slog.WarnContext(ctx, "email send failed", "record_id", rec.ID, "recipient", rec.Recipient, "error", err)

	return entity.StatusFailed, &msg
}

func classifySendError(recipient string, err error) string {
	var refused *mail.RecipientRefusedError
	if errors.As(err, &refused) {
		return fmt.Sprintf("Recipient refused: %s - Email address not found or invalid", recipient)
	}

	var auth *mail.AuthError
	if errors.As(err, &auth) {
		return fmt.Sprintf("SMTP Authentication failed: %s", auth.Detail)
	}

	var proto *mail.ProtocolError
	if errors.As(err, &proto) {
		return fmt.Sprintf("SMTP Error: %s", proto.Detail)
	}

	return fmt.Sprintf("Unexpected error: %s", err)
}

package db

import (
	"context"

	"github.com/ardiansetya/goblast/internal/mailer/entity"
	"github.com/jackc/pgx/v5"
)

// CreateRecords bulk-inserts a batch of records via the COPY protocol.
func (s *DB) CreateRecords(ctx context.Context, records []entity.EmailRecord) (err error) {
	ctx, span := s.startSpan(ctx, "CreateRecords")
	defer func() { s.endSpan(span, err) }()

	rows := make([][]any, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []any{
			rec.ID,
			rec.UserID,
			rec.BatchID,
			rec.Recipient,
			rec.Subject,
			rec.Body,
			int16(rec.Status),
			rec.Error,
			rec.CreatedAt,
		})
	}

	_, err = s.conn.CopyFrom(ctx,
		pgx.Identifier{"mailer_email_records"},
		[]string{"id", "user_id", "batch_id", "recipient", "subject", "body", "status", "error", "created_at"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return s.mapError(err)
	}

	return nil
}

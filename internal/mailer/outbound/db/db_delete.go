package db

import (
	"context"
)

func (s *DB) DeleteRecords(ctx context.Context, userID int64, ids []int64) (_ int64, err error) {
	ctx, span := s.startSpan(ctx, "DeleteRecords")
	defer func() { s.endSpan(span, err) }()

	const query = `
		DELETE FROM mailer_email_records
		WHERE user_id = $1 AND id = ANY($2)`

	tag, err := s.conn.Exec(ctx, query, userID, ids)
	if err != nil {
		return 0, s.mapError(err)
	}

	return tag.RowsAffected(), nil
}

func (s *DB) DeleteAllRecords(ctx context.Context, userID int64) (_ int64, err error) {
	ctx, span := s.startSpan(ctx, "DeleteAllRecords")
	defer func() { s.endSpan(span, err) }()

	const query = `
		DELETE FROM mailer_email_records
		WHERE user_id = $1`

	tag, err := s.conn.Exec(ctx, query, userID)
	if err != nil {
		return 0, s.mapError(err)
	}

	return tag.RowsAffected(), nil
}

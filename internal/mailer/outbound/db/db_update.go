package db

import (
	"context"

	"github.com/ardiansetya/goblast/internal/mailer/entity"
)

// UpdateRecordStatus records the terminal outcome of one send attempt. It is a
// no-op when the record was deleted mid-dispatch.
func (s *DB) UpdateRecordStatus(ctx context.Context, id int64, status entity.Status, errMsg *string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateRecordStatus")
	defer func() { s.endSpan(span, err) }()

	const query = `
		UPDATE mailer_email_records
		SET status = $2, error = $3
		WHERE id = $1`

	if _, err = s.conn.Exec(ctx, query, id, int16(status), errMsg); err != nil {
		return s.mapError(err)
	}

	return nil
}

package db

import (
	"context"
	"strconv"

	"github.com/ardiansetya/goblast/internal/mailer/entity"
	"github.com/jackc/pgx/v5"
)

func (s *DB) GetPendingRecords(ctx context.Context, userID, batchID int64) (_ []entity.EmailRecord, err error) {
	ctx, span := s.startSpan(ctx, "GetPendingRecords")
	defer func() { s.endSpan(span, err) }()

	const query = `
		SELECT id, user_id, batch_id, recipient, subject, body, status, error, created_at
		FROM mailer_email_records
		WHERE user_id = $1 AND batch_id = $2 AND status = $3
		ORDER BY id`

	rows, err := s.conn.Query(ctx, query, userID, batchID, int16(entity.StatusPending))
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, s.mapError(err)
	}

	return records, nil
}

func (s *DB) GetLatestBatchID(ctx context.Context, userID int64) (_ int64, err error) {
	ctx, span := s.startSpan(ctx, "GetLatestBatchID")
	defer func() { s.endSpan(span, err) }()

	const query = `
		SELECT batch_id
		FROM mailer_email_records
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1`

	var batchID int64
	if err = s.conn.QueryRow(ctx, query, userID).Scan(&batchID); err != nil {
		return 0, s.mapError(err)
	}

	return batchID, nil
}

func (s *DB) CountByStatus(ctx context.Context, userID, batchID int64) (_ entity.StatusCounts, err error) {
	ctx, span := s.startSpan(ctx, "CountByStatus")
	defer func() { s.endSpan(span, err) }()

	const query = `
		SELECT status, COUNT(*)
		FROM mailer_email_records
		WHERE user_id = $1 AND batch_id = $2
		GROUP BY status`

	rows, err := s.conn.Query(ctx, query, userID, batchID)
	if err != nil {
		return entity.StatusCounts{}, s.mapError(err)
	}
	defer rows.Close()

	var counts entity.StatusCounts
	for rows.Next() {
		var status int16
		var count int64
		if err = rows.Scan(&status, &count); err != nil {
			return entity.StatusCounts{}, s.mapError(err)
		}

		counts.Total += count
		switch entity.Status(status) {
		case entity.StatusSent:
			counts.Sent = count
		case entity.StatusFailed:
			counts.Failed = count
		case entity.StatusPending:
			counts.Pending = count
		}
	}
	if err = rows.Err(); err != nil {
		return entity.StatusCounts{}, s.mapError(err)
	}

	return counts, nil
}

const logsPageSize = 20

func (s *DB) ListRecords(ctx context.Context, filter entity.LogFilter) (_ []entity.EmailRecord, _ int64, err error) {
	ctx, span := s.startSpan(ctx, "ListRecords")
	defer func() { s.endSpan(span, err) }()

	where := ` WHERE user_id = $1`
	args := []any{filter.UserID}
	if filter.Search != "" {
		where += ` AND recipient ILIKE $2`
		args = append(args, "%"+filter.Search+"%")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM mailer_email_records` + where
	if err = s.conn.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, s.mapError(err)
	}

	offset := (int64(filter.Page) - 1) * logsPageSize
	listQuery := `
		SELECT id, user_id, batch_id, recipient, subject, body, status, error, created_at
		FROM mailer_email_records` + where + `
		ORDER BY created_at DESC, id DESC
		LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, logsPageSize, offset)

	rows, err := s.conn.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, s.mapError(err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, 0, s.mapError(err)
	}

	return records, total, nil
}

func scanRecords(rows pgx.Rows) ([]entity.EmailRecord, error) {
	records := make([]entity.EmailRecord, 0)
	for rows.Next() {
		var rec entity.EmailRecord
		var status int16
		err := rows.Scan(&rec.ID, &rec.UserID, &rec.BatchID, &rec.Recipient,
			&rec.Subject, &rec.Body, &status, &rec.Error, &rec.CreatedAt)
		if err != nil {
			return nil, err
		}

		rec.Status = entity.Status(status)
		records = append(records, rec)
	}

	return records, rows.Err()
}

package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ardiansetya/goblast/internal/mailer/entity"
	"github.com/ardiansetya/goblast/internal/pkg/goerror"
	"github.com/ardiansetya/goblast/internal/pkg/idempotency"
	"github.com/ardiansetya/goblast/internal/pkg/mail"
	"github.com/ardiansetya/goblast/internal/pkg/spreadsheet"
	"github.com/ardiansetya/goblast/internal/pkg/storage"
)

const emailColumn = "email"

var reEmail = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type UploadInput struct {
	FileName       string `validate:"required"`
	File           []byte `validate:"required"`
	SMTPEmail      string `validate:"required,email"`
	SMTPPassword   string `validate:"required"`
	Subject        string `validate:"required"`
	Body           string `validate:"required"`
	IdempotencyKey string
}

type UploadOutput struct {
	Message string
	BatchID int64
	Total   int
}

// Upload expands a workbook into one EmailRecord per row, persists every row,
// and starts dispatching the pending ones in the background.
func (s *Usecase) Upload(ctx context.Context, in UploadInput) (*UploadOutput, error) {
	ctx, span := s.startSpan(ctx, "Upload")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if strings.ToLower(filepath.Ext(in.FileName)) != ".xlsx" {
		return nil, goerror.NewInvalidFormat("Only .xlsx files are supported")
	}

	if in.IdempotencyKey == "" {
		return s.upload(ctx, clm.UserID, in)
	}

	var out *UploadOutput
	err = s.idemp.Exec(ctx, "mailer_upload:"+in.IdempotencyKey, func(ctx context.Context) error {
		var execErr error
		out, execErr = s.upload(ctx, clm.UserID, in)
		return execErr
	})
	if errors.Is(err, idempotency.ErrAlreadyInProgress) || errors.Is(err, idempotency.ErrAlreadyCompleted) {
		return nil, goerror.NewBusiness("Duplicate upload request", goerror.CodeConflict)
	}
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s *Usecase) upload(ctx context.Context, userID int64, in UploadInput) (*UploadOutput, error) {
	creds := mail.Credentials{Email: in.SMTPEmail, Password: in.SMTPPassword}
	if err := s.mail.Validate(ctx, creds); err != nil {
		slog.WarnContext(ctx, "smtp credential validation failed", "user_id", userID, "error", err)
		return nil, goerror.NewBusiness("SMTP authentication failed", goerror.CodeUnauthorized)
	}

	ds, err := s.reader.Read(in.File)
	if err != nil {
		slog.WarnContext(ctx, "unable to read workbook", "user_id", userID, "error", err)
		return nil, goerror.NewInvalidFormat("Unable to read workbook")
	}

	if ds.ColumnIndex(emailColumn) < 0 {
		return nil, goerror.NewInvalidFormat("Missing required column: email")
	}

	batchID := s.uid.Generate()
	records, issues := s.expand(userID, batchID, in.Subject, in.Body, ds)

	if err := s.repoDB.CreateRecords(ctx, records); err != nil {
		slog.ErrorContext(ctx, "failed to repo create email records", "user_id", userID, "batch_id", batchID, "error", err)
		return nil, goerror.NewServer(err)
	}

	pending := 0
	failed := 0
	for _, rec := range records {
		if rec.Status == entity.StatusPending {
			pending++
		} else {
			failed++
		}
	}

	if err := s.repoMessaging.PublishBatchCreated(ctx, BatchCreatedEvent{
		BatchID: batchID,
		UserID:  userID,
		Total:   len(records),
		Pending: pending,
		Failed:  failed,
	}); err != nil {
		slog.WarnContext(ctx, "failed to publish batch created", "batch_id", batchID, "error", err)
	}

	s.archiveWorkbook(ctx, batchID, in.File)

	if pending > 0 {
		s.goroutine.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
			return s.dispatch(ctx, userID, batchID, creds)
		})
	}

	return &UploadOutput{
		Message: uploadMessage(len(records), issues),
		BatchID: batchID,
		Total:   len(records),
	}, nil
}

// expand turns every dataset row into a record in row order. Rows with a
// missing or malformed address are kept as already-failed records with the raw
// body; valid rows get the body personalized from the remaining columns.
func (s *Usecase) expand(userID, batchID int64, subject, body string, ds spreadsheet.Dataset) ([]entity.EmailRecord, []string) {
	emailIdx := ds.ColumnIndex(emailColumn)
	now := s.clock.Now()

	records := make([]entity.EmailRecord, 0, len(ds.Rows))
	issues := make([]string, 0)

	for i, row := range ds.Rows {
		rowNum := i + 1
		recipient := strings.TrimSpace(row[emailIdx])

		rec := entity.EmailRecord{
			ID:        s.uid.Generate(),
			UserID:    userID,
			BatchID:   batchID,
			Recipient: recipient,
			Subject:   subject,
			Body:      body,
			Status:    entity.StatusPending,
			CreatedAt: now,
		}

		switch lowered := strings.ToLower(recipient); {
		case lowered == "" || lowered == "nan" || lowered == "none":
			issue := fmt.Sprintf("Row %d: Empty email", rowNum)
			rec.Status = entity.StatusFailed
			rec.Error = &issue
			issues = append(issues, issue)

		case !reEmail.MatchString(recipient):
			issue := fmt.Sprintf("Row %d: Invalid email format - %s", rowNum, recipient)
			rec.Status = entity.StatusFailed
			rec.Error = &issue
			issues = append(issues, issue)

		default:
			personalized := body
			for ci, col := range ds.Columns {
				if ci == emailIdx {
					continue
				}
				personalized = strings.ReplaceAll(personalized, "{"+col+"}", row[ci])
			}
			rec.Body = personalized
		}

		records = append(records, rec)
	}

	return records, issues
}

// archiveWorkbook keeps a copy of the uploaded bytes in object storage. It is
// best effort and never fails the upload.
func (s *Usecase) archiveWorkbook(ctx context.Context, batchID int64, data []byte) {
	bucket := s.cfg.GetString("storage.bucket")
	if bucket == "" {
		return
	}

	key := fmt.Sprintf("batches/%d.xlsx", batchID)
	s.goroutine.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
		_, err := s.storage.PutObject(ctx, bucket, key, bytes.NewReader(data), storage.PutOptions{
			Size:        int64(len(data)),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		})
		if err != nil {
			slog.WarnContext(ctx, "failed to archive workbook", "batch_id", batchID, "error", err)
		}
		return nil
	})
}

func uploadMessage(total int, issues []string) string {
	msg := fmt.Sprintf("%d emails queued for sending.", total)
	if len(issues) == 0 {
		return msg
	}

	shown := issues
	if len(shown) > 3 {
		shown = shown[:3]
	}

	msg += " " + strings.Join(shown, "; ")
	if extra := len(issues) - len(shown); extra > 0 {
		msg += fmt.Sprintf(" and %d more...", extra)
	}

	return msg
}

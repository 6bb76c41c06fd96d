package usecase

import (
	"errors"
	"testing"

	"github.com/ardiansetya/goblast/internal/mailer/entity"
	"github.com/ardiansetya/goblast/internal/pkg/goerror"
	"github.com/ardiansetya/goblast/internal/pkg/mail"
	"github.com/ardiansetya/goblast/internal/pkg/spreadsheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUploadInput() UploadInput {
	return UploadInput{
		FileName:     "recipients.xlsx",
		File:         []byte("workbook"),
		SMTPEmail:    "sender@example.com",
		SMTPPassword: "app-password",
		Subject:      "Hello",
		Body:         "Hi {name}",
	}
}

func TestUpload(t *testing.T) {
	t.Run("Unauthenticated", func(t *testing.T) {
		f := newFixture(t, "")

		_, err := f.uc.Upload(t.Context(), validUploadInput())

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, "Authentication required", gerr.Msg())
	})

	t.Run("MissingSMTPEmail", func(t *testing.T) {
		f := newFixture(t, "")

		in := validUploadInput()
		in.SMTPEmail = ""
		_, err := f.uc.Upload(authCtx(7), in)

		require.Error(t, err)
	})

	t.Run("WrongExtension", func(t *testing.T) {
		f := newFixture(t, "")

		in := validUploadInput()
		in.FileName = "recipients.csv"
		_, err := f.uc.Upload(authCtx(7), in)

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, "Only .xlsx files are supported", gerr.Msg())
	})

	t.Run("SMTPLoginRejected", func(t *testing.T) {
		f := newFixture(t, "")
		f.mail.validateErr = &mail.AuthError{Detail: "535 bad credentials"}

		_, err := f.uc.Upload(authCtx(7), validUploadInput())

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, "SMTP authentication failed", gerr.Msg())
		assert.Empty(t, f.db.created)
	})

	t.Run("UnreadableWorkbook", func(t *testing.T) {
		f := newFixture(t, "")
		f.reader.err = errors.New("zip: not a valid zip file")

		_, err := f.uc.Upload(authCtx(7), validUploadInput())

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, "Unable to read workbook", gerr.Msg())
	})

	t.Run("MissingEmailColumn", func(t *testing.T) {
		f := newFixture(t, "")
		f.reader.ds = spreadsheet.Dataset{
			Columns: []string{"name", "address"},
			Rows:    [][]string{{"Alice", "alice@example.com"}},
		}

		_, err := f.uc.Upload(authCtx(7), validUploadInput())

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, "Missing required column: email", gerr.Msg())
	})

	t.Run("MixedRows", func(t *testing.T) {
		f := newFixture(t, "")
		f.reader.ds = spreadsheet.Dataset{
			Columns: []string{"name", "email"},
			Rows: [][]string{
				{"Alice", "good@x.com"},
				{"Bob", "bad-email"},
				{"Carol", ""},
				{"Dan", "good2@x.com"},
			},
		}
		f.mail.sendErrs = map[string]error{
			"good2@x.com": &mail.RecipientRefusedError{Recipient: "good2@x.com", Detail: "550 no such user"},
		}
		f.db.counts = entity.StatusCounts{Total: 4, Sent: 1, Failed: 3}

		out, err := f.uc.Upload(authCtx(7), validUploadInput())
		require.NoError(t, err)

		assert.Equal(t, int64(1), out.BatchID)
		assert.Equal(t, 4, out.Total)
		assert.Equal(t,
			"4 emails queued for sending. Row 2: Invalid email format - bad-email; Row 3: Empty email",
			out.Message)

		require.Len(t, f.db.created, 4)

		good := f.db.created[0]
		assert.Equal(t, entity.StatusPending, good.Status)
		assert.Equal(t, "good@x.com", good.Recipient)
		assert.Equal(t, "Hi Alice", good.Body)
		assert.Equal(t, "Hello", good.Subject)
		assert.Equal(t, testNow, good.CreatedAt)

		invalid := f.db.created[1]
		assert.Equal(t, entity.StatusFailed, invalid.Status)
		require.NotNil(t, invalid.Error)
		assert.Equal(t, "Row 2: Invalid email format - bad-email", *invalid.Error)
		assert.Equal(t, "Hi {name}", invalid.Body)

		empty := f.db.created[2]
		assert.Equal(t, entity.StatusFailed, empty.Status)
		require.NotNil(t, empty.Error)
		assert.Equal(t, "Row 3: Empty email", *empty.Error)

		require.Len(t, f.mq.created, 1)
		assert.Equal(t, BatchCreatedEvent{BatchID: 1, UserID: 7, Total: 4, Pending: 2, Failed: 2}, f.mq.created[0])

		require.NoError(t, f.gm.Wait())

		updates := f.db.snapshotUpdates()
		require.Len(t, updates, 2)

		assert.Equal(t, good.ID, updates[0].id)
		assert.Equal(t, entity.StatusSent, updates[0].status)
		assert.Nil(t, updates[0].errMsg)

		assert.Equal(t, f.db.created[3].ID, updates[1].id)
		assert.Equal(t, entity.StatusFailed, updates[1].status)
		require.NotNil(t, updates[1].errMsg)
		assert.Equal(t, "Recipient refused: good2@x.com - Email address not found or invalid", *updates[1].errMsg)

		require.Len(t, f.mq.completed, 1)
		assert.Equal(t, f.db.counts, f.mq.completed[0].Counts)
	})

	t.Run("AllRowsInvalidSkipsDispatch", func(t *testing.T) {
		f := newFixture(t, "")
		f.reader.ds = spreadsheet.Dataset{
			Columns: []string{"email"},
			Rows:    [][]string{{"NaN"}, {"none"}},
		}

		out, err := f.uc.Upload(authCtx(7), validUploadInput())
		require.NoError(t, err)
		require.NoError(t, f.gm.Wait())

		assert.Equal(t, 2, out.Total)
		assert.Empty(t, f.mail.sent)
		assert.Empty(t, f.db.snapshotUpdates())
	})

	t.Run("ArchivesWorkbook", func(t *testing.T) {
		f := newFixture(t, "batches-bucket")
		f.reader.ds = spreadsheet.Dataset{
			Columns: []string{"email"},
			Rows:    [][]string{{"good@x.com"}},
		}

		_, err := f.uc.Upload(authCtx(7), validUploadInput())
		require.NoError(t, err)
		require.NoError(t, f.gm.Wait())

		require.Len(t, f.storage.puts, 1)
		assert.Equal(t, "batches-bucket", f.storage.puts[0].bucket)
		assert.Equal(t, "batches/1.xlsx", f.storage.puts[0].key)
	})

	t.Run("DuplicateIdempotencyKey", func(t *testing.T) {
		f := newFixture(t, "")
		f.reader.ds = spreadsheet.Dataset{
			Columns: []string{"email"},
			Rows:    [][]string{{"good@x.com"}},
		}

		in := validUploadInput()
		in.IdempotencyKey = "abc-123"

		_, err := f.uc.Upload(authCtx(7), in)
		require.NoError(t, err)

		_, err = f.uc.Upload(authCtx(7), in)
		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, "Duplicate upload request", gerr.Msg())
	})
}

func TestUploadMessage(t *testing.T) {
	assert.Equal(t, "3 emails queued for sending.", uploadMessage(3, nil))

	issues := []string{"Row 1: Empty email", "Row 2: Empty email"}
	assert.Equal(t,
		"2 emails queued for sending. Row 1: Empty email; Row 2: Empty email",
		uploadMessage(2, issues))

	many := []string{"a", "b", "c", "d", "e"}
	assert.Equal(t, "5 emails queued for sending. a; b; c and 2 more...", uploadMessage(5, many))
}

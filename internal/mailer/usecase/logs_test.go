package usecase

import (
	"testing"

	"github.com/ardiansetya/goblast/internal/mailer/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogs(t *testing.T) {
	t.Run("Unauthenticated", func(t *testing.T) {
		f := newFixture(t, "")

		_, err := f.uc.Logs(t.Context(), LogsInput{})

		require.Error(t, err)
	})

	t.Run("DefaultsPageToOne", func(t *testing.T) {
		f := newFixture(t, "")
		f.db.listTotal = 3

		out, err := f.uc.Logs(authCtx(7), LogsInput{Page: 0})
		require.NoError(t, err)

		assert.Equal(t, int32(1), out.Page)
		assert.Equal(t, int32(1), f.db.listFilter.Page)
		assert.Equal(t, int64(7), f.db.listFilter.UserID)
	})

	t.Run("ComputesTotalPages", func(t *testing.T) {
		f := newFixture(t, "")
		f.db.listRecords = []entity.EmailRecord{{ID: 1, Recipient: "a@b.com"}}
		f.db.listTotal = 41

		out, err := f.uc.Logs(authCtx(7), LogsInput{Page: 2, Search: "a@b"})
		require.NoError(t, err)

		assert.Equal(t, int64(41), out.TotalCount)
		assert.Equal(t, int32(3), out.TotalPages)
		assert.Equal(t, int32(2), out.Page)
		assert.Equal(t, "a@b", f.db.listFilter.Search)
		assert.Len(t, out.Emails, 1)
	})

	t.Run("ExactMultiple", func(t *testing.T) {
		f := newFixture(t, "")
		f.db.listTotal = 40

		out, err := f.uc.Logs(authCtx(7), LogsInput{Page: 1})
		require.NoError(t, err)

		assert.Equal(t, int32(2), out.TotalPages)
	})
}

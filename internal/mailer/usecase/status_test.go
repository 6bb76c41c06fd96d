package usecase

import (
	"testing"

	"github.com/ardiansetya/goblast/internal/mailer/entity"
	"github.com/ardiansetya/goblast/internal/pkg/goerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchStatus(t *testing.T) {
	t.Run("Unauthenticated", func(t *testing.T) {
		f := newFixture(t, "")

		_, err := f.uc.BatchStatus(t.Context(), BatchStatusInput{})

		require.Error(t, err)
	})

	t.Run("ExplicitBatch", func(t *testing.T) {
		f := newFixture(t, "")
		f.db.counts = entity.StatusCounts{Total: 5, Sent: 3, Failed: 1, Pending: 1}

		out, err := f.uc.BatchStatus(authCtx(7), BatchStatusInput{BatchID: 42})
		require.NoError(t, err)

		assert.Equal(t, int64(42), out.BatchID)
		assert.Equal(t, f.db.counts, out.Counts)
	})

	t.Run("DefaultsToLatestBatch", func(t *testing.T) {
		f := newFixture(t, "")
		f.db.latestBatchID = 99
		f.db.counts = entity.StatusCounts{Total: 2, Sent: 2}

		out, err := f.uc.BatchStatus(authCtx(7), BatchStatusInput{})
		require.NoError(t, err)

		assert.Equal(t, int64(99), out.BatchID)
		assert.Equal(t, f.db.counts, out.Counts)
	})

	t.Run("NoBatchesYet", func(t *testing.T) {
		f := newFixture(t, "")
		f.db.latestErr = goerror.ErrNotFound

		out, err := f.uc.BatchStatus(authCtx(7), BatchStatusInput{})
		require.NoError(t, err)

		assert.Equal(t, &BatchStatusOutput{}, out)
	})
}

package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelete(t *testing.T) {
	t.Run("Unauthenticated", func(t *testing.T) {
		f := newFixture(t, "")

		_, err := f.uc.Delete(t.Context(), DeleteInput{IDs: []int64{1}})

		require.Error(t, err)
	})

	t.Run("EmptyIDs", func(t *testing.T) {
		f := newFixture(t, "")

		_, err := f.uc.Delete(authCtx(7), DeleteInput{})

		require.Error(t, err)
	})

	t.Run("Success", func(t *testing.T) {
		f := newFixture(t, "")
		f.db.deleteN = 2

		out, err := f.uc.Delete(authCtx(7), DeleteInput{IDs: []int64{1, 2, 99}})
		require.NoError(t, err)

		assert.Equal(t, int64(2), out.Deleted)
	})
}

func TestClear(t *testing.T) {
	t.Run("Unauthenticated", func(t *testing.T) {
		f := newFixture(t, "")

		_, err := f.uc.Clear(t.Context())

		require.Error(t, err)
	})

	t.Run("Success", func(t *testing.T) {
		f := newFixture(t, "")
		f.db.deleteN = 7

		out, err := f.uc.Clear(authCtx(7))
		require.NoError(t, err)

		assert.Equal(t, int64(7), out.Deleted)
	})
}

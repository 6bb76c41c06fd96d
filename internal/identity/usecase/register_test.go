package usecase

import (
	"testing"

	"github.com/ardiansetya/goblast/internal/identity/entity"
	"github.com/ardiansetya/goblast/internal/pkg/goerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	t.Run("InvalidEmail", func(t *testing.T) {
		uc := newUsecase(t, &fakeDB{}, &fakeHash{}, &fakeJWT{})

		err := uc.Register(t.Context(), RegisterInput{Email: "nope", Password: "longenough"})

		require.Error(t, err)
	})

	t.Run("ShortPassword", func(t *testing.T) {
		uc := newUsecase(t, &fakeDB{}, &fakeHash{}, &fakeJWT{})

		err := uc.Register(t.Context(), RegisterInput{Email: "a@b.com", Password: "short"})

		require.Error(t, err)
	})

	t.Run("EmailTaken", func(t *testing.T) {
		db := &fakeDB{users: map[string]*entity.User{
			"a@b.com": {ID: 1, Email: "a@b.com"},
		}}
		uc := newUsecase(t, db, &fakeHash{}, &fakeJWT{})

		err := uc.Register(t.Context(), RegisterInput{Email: "A@B.com", Password: "longenough"})

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, "Email already registered", gerr.Msg())
	})

	t.Run("Success", func(t *testing.T) {
		db := &fakeDB{}
		uc := newUsecase(t, db, &fakeHash{}, &fakeJWT{})

		err := uc.Register(t.Context(), RegisterInput{Email: " New@Example.COM ", Password: "longenough"})
		require.NoError(t, err)

		require.Len(t, db.created, 1)
		assert.Equal(t, "new@example.com", db.created[0].Email)
		assert.Equal(t, "hashed:longenough", db.created[0].Password)
		assert.Equal(t, testNow, db.created[0].CreatedAt)
		assert.NotZero(t, db.created[0].ID)
	})

	t.Run("CreateRace", func(t *testing.T) {
		db := &fakeDB{createErr: goerror.ErrConflict}
		uc := newUsecase(t, db, &fakeHash{}, &fakeJWT{})

		err := uc.Register(t.Context(), RegisterInput{Email: "a@b.com", Password: "longenough"})

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, "Email already registered", gerr.Msg())
	})
}

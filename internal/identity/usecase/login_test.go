package usecase

import (
	"testing"

	"github.com/ardiansetya/goblast/internal/identity/entity"
	"github.com/ardiansetya/goblast/internal/pkg/goerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	knownUser := map[string]*entity.User{
		"a@b.com": {ID: 1, Email: "a@b.com", Password: "stored-hash"},
	}

	t.Run("UnknownEmail", func(t *testing.T) {
		uc := newUsecase(t, &fakeDB{}, &fakeHash{}, &fakeJWT{})

		_, err := uc.Login(t.Context(), LoginInput{Email: "ghost@b.com", Password: "whatever"})

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, "invalid email or password", gerr.Msg())
	})

	t.Run("WrongPassword", func(t *testing.T) {
		uc := newUsecase(t, &fakeDB{users: knownUser}, &fakeHash{verifyOK: false}, &fakeJWT{})

		_, err := uc.Login(t.Context(), LoginInput{Email: "a@b.com", Password: "wrong"})

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, "invalid email or password", gerr.Msg())
	})

	t.Run("Success", func(t *testing.T) {
		uc := newUsecase(t, &fakeDB{users: knownUser}, &fakeHash{verifyOK: true}, &fakeJWT{token: "signed-token"})

		out, err := uc.Login(t.Context(), LoginInput{Email: "A@B.com", Password: "correct"})
		require.NoError(t, err)

		assert.Equal(t, "signed-token", out.AccessToken)
	})
}

package goerror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	cause := errors.New("boom")
	err := NewServer(cause)

	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, TypeServer, gerr.Type())
	assert.Equal(t, http.StatusInternalServerError, gerr.StatusCode())
	assert.ErrorIs(t, err, cause)
}

func TestNewBusiness(t *testing.T) {
	err := NewBusiness("Email already registered", CodeConflict)

	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, "Email already registered", gerr.Msg())
	assert.Equal(t, http.StatusConflict, gerr.StatusCode())
}

func TestNewInvalidInput(t *testing.T) {
	t.Run("WrapsCause", func(t *testing.T) {
		cause := errors.New("validation")
		err := NewInvalidInput(cause)

		var gerr *Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, http.StatusUnprocessableEntity, gerr.StatusCode())
		assert.ErrorIs(t, err, cause)
	})

	t.Run("FieldPairs", func(t *testing.T) {
		err := NewInvalidInput(nil, "email", "must be valid")

		var gerr *Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, "must be valid", gerr.Fields()["email"])
	})
}

func TestNewInvalidFormat(t *testing.T) {
	err := NewInvalidFormat("Only .xlsx files are supported")

	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, http.StatusBadRequest, gerr.StatusCode())
	assert.Equal(t, "Only .xlsx files are supported", gerr.Msg())
}

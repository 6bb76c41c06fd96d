package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcrypt(t *testing.T) {
	h := NewBcrypt(4, "pepper")

	hashed, err := h.Hash("secret-password")
	require.NoError(t, err)

	assert.True(t, h.Verify(string(hashed), "secret-password"))
	assert.False(t, h.Verify(string(hashed), "wrong-password"))

	other := NewBcrypt(4, "different-pepper")
	assert.False(t, other.Verify(string(hashed), "secret-password"))
}

package uid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnowflake(t *testing.T) {
	_, err := NewSnowflake(1024)
	require.Error(t, err)

	s, err := NewSnowflake(1)
	require.NoError(t, err)

	a := s.Generate()
	b := s.Generate()
	assert.NotZero(t, a)
	assert.Greater(t, b, a)
}

func TestUUID(t *testing.T) {
	g := NewUUID()

	a := g.Generate()
	b := g.Generate()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

package id

import (
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenUUIDString(t *testing.T) {
	a := GenUUIDString()
	b := GenUUIDString()

	assert.NotEqual(t, a, b)
	_, err := uuid.FromString(a)
	require.Nil(t, err)
}

func TestUUIDFromString(t *testing.T) {
	a := UUIDFromString("BTC")
	b := UUIDFromString("BTC")
	c := UUIDFromString("ETH")

	// stable per input, distinct across inputs
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	parsed, err := uuid.FromString(a)
	require.Nil(t, err)
	assert.Equal(t, byte(3), parsed.Version())
}

package secret

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey() []byte {
	return bytes.Repeat([]byte{7}, 32)
}

func TestBox_RoundTrip(t *testing.T) {
	box, err := NewBox(testKey())
	require.NoError(t, err)

	sealed, err := box.Seal([]byte("upstream-token"), []byte("session-1"))
	require.NoError(t, err)
	assert.NotContains(t, string(sealed), "upstream-token")

	plain, err := box.Open(sealed, []byte("session-1"))
	require.NoError(t, err)
	assert.Equal(t, "upstream-token", string(plain))
}

func TestBox_NonceIsRandom(t *testing.T) {
	box, err := NewBox(testKey())
	require.NoError(t, err)

	a, err := box.Seal([]byte("x"), nil)
	require.NoError(t, err)
	b, err := box.Seal([]byte("x"), nil)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestBox_RejectsTampering(t *testing.T) {
	box, err := NewBox(testKey())
	require.NoError(t, err)
	sealed, err := box.Seal([]byte("token"), []byte("session-1"))
	require.NoError(t, err)

	_, err = box.Open(sealed, []byte("session-2"))
	assert.ErrorIs(t, err, ErrMalformed)

	sealed[len(sealed)-1] ^= 0xff
	_, err = box.Open(sealed, []byte("session-1"))
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = box.Open([]byte("short"), nil)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestNewBox_KeySize(t *testing.T) {
	_, err := NewBox([]byte("too short"))
	assert.Error(t, err)
}

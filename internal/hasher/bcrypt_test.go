package hasher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcrypt_HashAndVerify(t *testing.T) {
	h := NewBcrypt()

	hash, err := h.Hash("pass1234")
	require.NoError(t, err)
	assert.NotEqual(t, "pass1234", hash)

	assert.True(t, h.Verify("pass1234", hash))
	assert.False(t, h.Verify("wrongpass", hash))
}

func TestBcrypt_Hash_Salted(t *testing.T) {
	h := NewBcrypt()

	first, err := h.Hash("pass1234")
	require.NoError(t, err)
	second, err := h.Hash("pass1234")
	require.NoError(t, err)

	// Random salt makes repeated hashes differ.
	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("pass1234", first))
	assert.True(t, h.Verify("pass1234", second))
}

func TestBcrypt_Verify_MalformedHash(t *testing.T) {
	h := NewBcrypt()

	assert.False(t, h.Verify("pass1234", "not-a-bcrypt-hash"))
	assert.False(t, h.Verify("pass1234", ""))
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasherRoundTrip(t *testing.T) {
	hasher := NewPasswordHasher()

	hash, err := hasher.Hash("123456")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotContains(t, hash, "123456")

	assert.True(t, hasher.Verify("123456", hash))
	assert.False(t, hasher.Verify("1234567", hash))
	assert.False(t, hasher.Verify("", hash))
}

func TestPasswordHasherRejectsGarbageHash(t *testing.T) {
	hasher := NewPasswordHasher()

	assert.False(t, hasher.Verify("123456", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Verify("123456", ""))
}

func TestPasswordHasherDistinctSalts(t *testing.T) {
	hasher := NewPasswordHasher()

	first, err := hasher.Hash("s3cret-pw")
	require.NoError(t, err)
	second, err := hasher.Hash("s3cret-pw")
	require.NoError(t, err)

	// bcrypt salts every hash, so two hashes of the same input differ while
	// both still verify.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("s3cret-pw", first))
	assert.True(t, hasher.Verify("s3cret-pw", second))
}

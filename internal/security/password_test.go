package security_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habeshadev/habesha-dating-api/internal/security"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	hasher, err := security.NewHasher("bcrypt", 4)
	require.NoError(t, err)

	hash, err := hasher.HashPassword("s3cret-password")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-password", hash)

	ok, err := hasher.VerifyPassword("s3cret-password", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.VerifyPassword("wrong-password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_CostIsEmbedded(t *testing.T) {
	hasher, err := security.NewHasher("bcrypt", 12)
	require.NoError(t, err)

	hash, err := hasher.HashPassword("p1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2a$12$"), "hash %q should carry cost 12", hash)
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	hasher, err := security.NewHasher("bcrypt", 4)
	require.NoError(t, err)

	first, err := hasher.HashPassword("same-password")
	require.NoError(t, err)
	second, err := hasher.HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestArgon2Hasher_RoundTrip(t *testing.T) {
	hasher, err := security.NewHasher("argon2id", 0)
	require.NoError(t, err)

	hash, err := hasher.HashPassword("s3cret-password")
	require.NoError(t, err)

	ok, err := hasher.VerifyPassword("s3cret-password", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.VerifyPassword("wrong-password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewHasher_UnknownName(t *testing.T) {
	_, err := security.NewHasher("md5", 0)
	require.Error(t, err)
}

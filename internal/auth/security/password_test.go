package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher(DefaultArgon2Params())

	encoded, err := hasher.Hash("segura123")
	require.NoError(t, err)
	assert.Contains(t, encoded, "$argon2id$")
	assert.NotContains(t, encoded, "segura123")

	ok, err := hasher.Verify("segura123", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Verify("segura124", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPasswordHasher_SaltsAreUnique(t *testing.T) {
	hasher := NewPasswordHasher(DefaultArgon2Params())

	first, err := hasher.Hash("segura123")
	require.NoError(t, err)
	second, err := hasher.Hash("segura123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestPasswordHasher_MalformedHash(t *testing.T) {
	hasher := NewPasswordHasher(DefaultArgon2Params())

	_, err := hasher.Verify("segura123", "sha256:deadbeef")
	assert.ErrorIs(t, err, ErrInvalidHashFormat)
}

func TestPasswordHasher_VerifiesAcrossParamChanges(t *testing.T) {
	old := NewPasswordHasher(Argon2Params{Memory: 8 * 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32})
	encoded, err := old.Hash("segura123")
	require.NoError(t, err)

	current := NewPasswordHasher(DefaultArgon2Params())
	ok, err := current.Verify("segura123", encoded)
	require.NoError(t, err)
	assert.True(t, ok)
}

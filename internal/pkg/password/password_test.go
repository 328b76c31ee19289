package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashVerify_RoundTrip(t *testing.T) {
	digest, err := Hash("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, Verify("correct horse battery staple", digest))
	assert.False(t, Verify("wrong password", digest))
}

func TestHash_FreshSaltPerCall(t *testing.T) {
	d1, err := Hash("same input")
	require.NoError(t, err)
	d2, err := Hash("same input")
	require.NoError(t, err)

	assert.NotEqual(t, d1, d2)
	assert.True(t, Verify("same input", d1))
	assert.True(t, Verify("same input", d2))
}

func TestVerify_MalformedDigest(t *testing.T) {
	assert.False(t, Verify("anything", "not-a-bcrypt-digest"))
	assert.False(t, Verify("anything", ""))
}

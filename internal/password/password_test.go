package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasher_Roundtrip(t *testing.T) {
	h := NewHasher(bcryptTestCost)

	digest, err := h.Hash("secret123")
	require.NoError(t, err)
	require.NotEqual(t, "secret123", digest)

	assert.True(t, h.Verify("secret123", digest))
	assert.False(t, h.Verify("wrong", digest))
}

func TestHasher_DigestsAreSalted(t *testing.T) {
	h := NewHasher(bcryptTestCost)

	first, err := h.Hash("secret123")
	require.NoError(t, err)
	second, err := h.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("secret123", first))
	assert.True(t, h.Verify("secret123", second))
}

func TestHasher_DefaultCost(t *testing.T) {
	h := NewHasher(0)
	assert.Equal(t, DefaultCost, h.cost)
}

// low work factor keeps the suite fast
const bcryptTestCost = 4

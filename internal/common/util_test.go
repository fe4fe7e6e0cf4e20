package common

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeRandHexString(t *testing.T) {
	for _, size := range []int{0, 16, 32} {
		s, err := MakeRandHexString(size)
		require.NoError(t, err)
		assert.Len(t, s, size*2)

		raw, err := hex.DecodeString(s)
		require.NoError(t, err)
		assert.Len(t, raw, size)
	}
}

// Refresh tokens are built from 32 random bytes, so two draws must differ.
func TestMakeRandHexString_Unique(t *testing.T) {
	seen := map[string]bool{}
	for range 50 {
		s, err := MakeRandHexString(32)
		require.NoError(t, err)
		require.False(t, seen[s], "repeated token %s", s)
		seen[s] = true
	}
}

func TestGenerateRandByteArray(t *testing.T) {
	a := GenerateRandByteArray(16)
	b := GenerateRandByteArray(16)

	assert.Len(t, a, 16)
	assert.Len(t, b, 16)
	assert.NotEqual(t, a, b)
	assert.Empty(t, GenerateRandByteArray(0))
}

func TestWipeByteArray(t *testing.T) {
	password := []byte("pw12")
	WipeByteArray(password)
	assert.Equal(t, []byte{0, 0, 0, 0}, password)

	assert.NotPanics(t, func() { WipeByteArray(nil) })
}

package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePasswordLength(t *testing.T) {
	for _, length := range []int{1, 12, 32, 64} {
		password, err := GeneratePassword(length)
		require.NoError(t, err)
		assert.Len(t, password, length)
	}
}

func TestGeneratePasswordDefaultsOnInvalidLength(t *testing.T) {
	for _, length := range []int{0, -5} {
		password, err := GeneratePassword(length)
		require.NoError(t, err)
		assert.Len(t, password, DefaultPasswordLength)
	}
}

func TestGeneratePasswordAlphabet(t *testing.T) {
	// Repeat enough times that an out-of-alphabet character would show up.
	for i := 0; i < 50; i++ {
		password, err := GeneratePassword(12)
		require.NoError(t, err)

		for _, r := range password {
			assert.True(t, strings.ContainsRune(passwordAlphabet, r),
				"character %q outside the allowed alphabet", r)
		}
	}
}

func TestGeneratePasswordNotConstant(t *testing.T) {
	a, err := GeneratePassword(32)
	require.NoError(t, err)
	b, err := GeneratePassword(32)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

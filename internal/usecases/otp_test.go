package usecases

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateCode(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, expiresAt, err := generateCode(LoginCodeTTL)
		require.NoError(t, err)
		require.Len(t, code, 6)
		require.GreaterOrEqual(t, code[0], byte('1'))
		require.True(t, expiresAt.After(time.Now()))
	}
}

func TestGenerateCodeBounds(t *testing.T) {
	original := randomInt
	defer func() { randomInt = original }()

	randomInt = func(max *big.Int) (*big.Int, error) { return big.NewInt(0), nil }
	code, _, err := generateCode(LoginCodeTTL)
	require.NoError(t, err)
	require.Equal(t, "100000", code)

	randomInt = func(max *big.Int) (*big.Int, error) { return big.NewInt(899999), nil }
	code, _, err = generateCode(LoginCodeTTL)
	require.NoError(t, err)
	require.Equal(t, "999999", code)
}

func TestGenerateCodeRandError(t *testing.T) {
	original := randomInt
	defer func() { randomInt = original }()

	randomInt = func(max *big.Int) (*big.Int, error) { return nil, errors.New("entropy exhausted") }
	_, _, err := generateCode(LoginCodeTTL)
	require.Error(t, err)
}

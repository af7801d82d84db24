package utils_test

import (
	"strings"
	"testing"

	"github.com/SscSPs/garage_invoice_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := utils.HashPassword("pw123", 0)
	require.NoError(t, err)

	assert.NotEqual(t, "pw123", hash)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, utils.DefaultPasswordCost, cost)

	assert.True(t, utils.CheckPasswordHash("pw123", hash))
	assert.False(t, utils.CheckPasswordHash("pw124", hash))
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := utils.HashPassword("same", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := utils.HashPassword("same", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestGenerateSecureRandomString(t *testing.T) {
	s, err := utils.GenerateSecureRandomString(16)
	require.NoError(t, err)
	assert.Len(t, s, 32)
	assert.Equal(t, strings.ToLower(s), s)

	_, err = utils.GenerateSecureRandomString(0)
	assert.Error(t, err)
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPasswordConfig_Default(t *testing.T) {
	t.Setenv("BCRYPT_COST", "")

	cfg, err := NewPasswordConfig()

	require.NoError(t, err)
	assert.Equal(t, 12, cfg.BcryptCost)
}

func TestNewPasswordConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"not a number", "high"},
		{"below range", "9"},
		{"above range", "15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BCRYPT_COST", tt.value)

			_, err := NewPasswordConfig()
			assert.Error(t, err)
		})
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	hash, err := cfg.HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, cfg.VerifyPassword("s3cret-password", hash))
	assert.False(t, cfg.VerifyPassword("wrong-password", hash))
	assert.False(t, cfg.VerifyPassword("s3cret-password", "not-a-hash"))
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	a, err := cfg.HashPassword("same")
	require.NoError(t, err)
	b, err := cfg.HashPassword("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

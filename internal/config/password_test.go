package config

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewPasswordConfig_Defaults(t *testing.T) {
	defer saveEnv("BCRYPT_COST")()
	defer saveEnv("PASSWORD_PEPPER")()

	os.Unsetenv("BCRYPT_COST")
	os.Unsetenv("PASSWORD_PEPPER")

	cfg, err := NewPasswordConfig()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.BcryptCost, "should use default cost of 12")
	assert.Empty(t, cfg.Pepper)
}

func TestNewPasswordConfig_CostValidation(t *testing.T) {
	defer saveEnv("BCRYPT_COST")()

	tests := []struct {
		name    string
		cost    string
		wantErr bool
	}{
		{name: "minimum cost", cost: "10"},
		{name: "maximum cost", cost: "14"},
		{name: "below range", cost: "9", wantErr: true},
		{name: "above range", cost: "15", wantErr: true},
		{name: "non-numeric", cost: "strong", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Setenv("BCRYPT_COST", tt.cost)

			cfg, err := NewPasswordConfig()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, cfg)
		})
	}
}

func TestHashPassword_ProducesVerifiableBcryptHash(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	hash, err := cfg.HashPassword("open-sesame")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$2"), "bcrypt hashes start with a $2 prefix")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("open-sesame")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("wrong")))
}

func TestHashPassword_PepperChangesTheInput(t *testing.T) {
	plain := &PasswordConfig{BcryptCost: 10}
	peppered := &PasswordConfig{BcryptCost: 10, Pepper: "global-pepper"}

	hash, err := peppered.HashPassword("open-sesame")
	require.NoError(t, err)

	// The stored hash covers password+pepper, so the bare password fails.
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("open-sesame")))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("open-sesame"+"global-pepper")))

	plainHash, err := plain.HashPassword("open-sesame")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(plainHash), []byte("open-sesame")))
}

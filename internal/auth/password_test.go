package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword_SaltsDiffer(t *testing.T) {
	h1, err := HashPassword("secret1")
	assert.NoError(t, err)
	h2, err := HashPassword("secret1")
	assert.NoError(t, err)

	// fresh salt per call: same plaintext, different hashes
	assert.NotEqual(t, h1, h2)
	assert.True(t, CheckPassword("secret1", h1))
	assert.True(t, CheckPassword("secret1", h2))
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	assert.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{name: "matching password", password: "secret1", hash: hash, want: true},
		{name: "wrong password", password: "wrong", hash: hash, want: false},
		{name: "malformed hash reports false", password: "secret1", hash: "not-a-bcrypt-hash", want: false},
		{name: "empty hash reports false", password: "secret1", hash: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckPassword(tt.password, tt.hash))
		})
	}
}

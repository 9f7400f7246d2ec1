package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService("test-secret")
	photo := "https://example.com/a.png"

	tests := []struct {
		name string
		ttl  time.Duration
	}{
		{name: "auth token class", ttl: AuthTokenTTL},
		{name: "generic token class", ttl: GenericTokenTTL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := svc.Generate("user-1", "a@b.com", "A", "student", &photo, tt.ttl)
			assert.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := svc.ValidateToken(token)
			assert.NoError(t, err)
			assert.Equal(t, "user-1", claims.UserID)
			assert.Equal(t, "a@b.com", claims.Email)
			assert.Equal(t, "A", claims.Name)
			assert.Equal(t, "student", claims.Role)
			assert.NotNil(t, claims.PhotoURL)
			assert.Equal(t, photo, *claims.PhotoURL)

			// expiry reflects the requested TTL
			remaining := time.Until(claims.ExpiresAt.Time)
			assert.Greater(t, remaining, tt.ttl-time.Minute)
			assert.LessOrEqual(t, remaining, tt.ttl)
		})
	}
}

func TestJWTService_ValidateToken_Failures(t *testing.T) {
	svc := NewJWTService("test-secret")

	expired, err := svc.Generate("user-1", "a@b.com", "A", "student", nil, -time.Minute)
	assert.NoError(t, err)

	wrongKey := NewJWTService("other-secret")
	foreign, err := wrongKey.Generate("user-1", "a@b.com", "A", "student", nil, time.Hour)
	assert.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "expired token", token: expired},
		{name: "wrong signature", token: foreign},
		{name: "structurally malformed", token: "not-a-token"},
		{name: "empty string", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestJWTService_GenerateCustom(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.GenerateCustom(map[string]interface{}{
		"email": "a@b.com",
		"role":  "admin",
	}, GenericTokenTTL)
	assert.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)

	remaining := time.Until(claims.ExpiresAt.Time)
	assert.LessOrEqual(t, remaining, GenericTokenTTL)
}

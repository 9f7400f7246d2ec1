package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// AuthTokenTTL is the lifetime of tokens minted by the auth endpoints.
	AuthTokenTTL = 24 * time.Hour
	// GenericTokenTTL is the lifetime of tokens minted by the legacy /jwt endpoint.
	// The two lifetimes are distinct token classes, not an inconsistency.
	GenericTokenTTL = time.Hour
)

// ErrInvalidToken is returned when a token fails signature, structure or
// expiry checks. Callers collapse all verification failures into one
// unauthorized outcome.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the identity payload embedded in every issued token.
type Claims struct {
	UserID   string  `json:"id"`
	Email    string  `json:"email"`
	Name     string  `json:"name"`
	Role     string  `json:"role"`
	PhotoURL *string `json:"photoURL,omitempty"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies HS256 tokens signed with a shared secret.
type JWTService struct {
	secret []byte
}

// NewJWTService creates a new JWT service with the given secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{secret: []byte(secret)}
}

// Generate signs an identity token with the given TTL.
func (s *JWTService) Generate(userID, email, name, role string, photoURL *string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   userID,
		Email:    email,
		Name:     name,
		Role:     role,
		PhotoURL: photoURL,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// GenerateCustom signs arbitrary claim fields with the given TTL. Used by the
// legacy /jwt endpoint where the caller supplies the payload.
func (s *JWTService) GenerateCustom(fields map[string]interface{}, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{}
	for k, v := range fields {
		claims[k] = v
	}
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken verifies signature and expiry and returns the claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

package jwt

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// ErrMissingSecret is returned when no signing key is configured. Issuing or
// verifying tokens without one is a configuration error, not a user error.
var ErrMissingSecret = errors.New("jwt signing secret is not configured")

// Claims is the token payload: the user's id and email plus the registered
// claims (subject mirrors the id, expiry bounds the session).
type Claims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	gojwt.RegisteredClaims
}

// JWTService issues and verifies HMAC-signed, time-limited tokens.
type JWTService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService creates a JWT service. An empty secret is allowed here so the
// process can boot; token operations will fail with ErrMissingSecret until a
// secret is configured.
func NewJWTService(secret string, ttl time.Duration) *JWTService {
	return &JWTService{secret: []byte(secret), ttl: ttl}
}

// GenerateToken signs a token embedding the user's id and email.
func (s *JWTService) GenerateToken(userID, email string) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrMissingSecret
	}

	now := time.Now()
	claims := &Claims{
		ID:    userID,
		Email: email,
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken verifies the signature and expiry and returns the claims. A
// token with an empty subject id is rejected.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	if len(s.secret) == 0 {
		return nil, ErrMissingSecret
	}

	claims := &Claims{}
	token, err := gojwt.ParseWithClaims(tokenString, claims, func(token *gojwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*gojwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.ID == "" {
		return nil, gojwt.ErrTokenInvalidClaims
	}

	return claims, nil
}

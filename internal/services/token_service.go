package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("invalid token")
)

type Claims struct {
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 access tokens. The secret and
// lifetime come from config; a rotated secret invalidates every
// outstanding token.
type TokenService struct {
	secret   []byte
	lifetime time.Duration
}

func NewTokenService(secret string, lifetime time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), lifetime: lifetime}
}

// Issue returns a signed token whose subject is the username.
func (s *TokenService) Issue(subject string, now time.Time) (string, error) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded subject.
// Expired tokens fail with ErrTokenExpired; everything else structural
// (bad signature, wrong algorithm, garbage) fails with ErrTokenInvalid.
func (s *TokenService) Verify(tokenStr string, now time.Time) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		// accept HMAC only
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return now }))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	if !token.Valid || claims.Subject == "" {
		return "", ErrTokenInvalid
	}
	if claims.ExpiresAt == nil || now.After(claims.ExpiresAt.Time) {
		return "", ErrTokenExpired
	}
	return claims.Subject, nil
}

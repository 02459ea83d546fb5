package service

import (
	"errors"
	"fmt"
	"time"

	"hrms/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenInvalid = errors.New("token is invalid")
	ErrTokenExpired = errors.New("token has expired")
)

// TokenService issues and validates signed, time-limited bearer tokens.
// The signing secret, algorithm and TTL are injected at construction; there
// is no package-level secret.
type TokenService struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

// NewTokenService builds a token service for an HMAC algorithm
// (HS256/HS384/HS512) and a TTL in minutes.
func NewTokenService(secret string, algorithm string, expireMinutes int) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("token service requires a signing secret")
	}

	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}

	return &TokenService{
		secret: []byte(secret),
		method: method,
		ttl:    time.Duration(expireMinutes) * time.Minute,
	}, nil
}

// Issue signs a token carrying the user's identity claims, expiring after
// the configured TTL.
func (s *TokenService) Issue(user *models.User) (string, time.Time, error) {
	expirationTime := time.Now().Add(s.ttl)
	claims := &models.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(s.method, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, expirationTime, nil
}

// Validate verifies the signature and expiry of a token string and returns
// its claims. Failures come back as ErrTokenExpired or ErrTokenInvalid,
// never as a panic.
func (s *TokenService) Validate(tokenString string) (*models.Claims, error) {
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Reject tokens signed with a different method family, including "none".
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

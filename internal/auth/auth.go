// Package auth verifies admin credentials and issues signed session tokens.
package auth

import (
	"errors"
	"time"

	"github.com/gorilla/securecookie"
	"golang.org/x/crypto/bcrypt"
)

const tokenName = "movieflix_session"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
)

// Claims is the signed payload carried inside a session token.
type Claims struct {
	Email    string
	Admin    bool
	IssuedAt time.Time
}

// Service authenticates the configured admin account and signs tokens with
// the configured secret. Tokens are opaque to clients; only this service can
// mint or verify them.
type Service struct {
	email        string
	passwordHash string
	codec        *securecookie.SecureCookie
	ttl          time.Duration

	now func() time.Time
}

// NewService creates an auth service for a single admin identity.
func NewService(email, passwordHash, secret string, ttl time.Duration) *Service {
	codec := securecookie.New([]byte(secret), nil)
	// Expiry is enforced against the issued-at claim, not the codec timestamp.
	codec.MaxAge(0)

	return &Service{
		email:        email,
		passwordHash: passwordHash,
		codec:        codec,
		ttl:          ttl,
		now:          time.Now,
	}
}

// Login checks the credentials and returns a signed token. The same error is
// returned for a wrong email and a wrong password.
func (s *Service) Login(email, password string) (string, error) {
	if email != s.email {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	claims := Claims{Email: email, Admin: true, IssuedAt: s.now()}
	token, err := s.codec.Encode(tokenName, claims)
	if err != nil {
		return "", err
	}
	return token, nil
}

// Verify decodes and validates a token, returning its claims.
func (s *Service) Verify(token string) (*Claims, error) {
	var claims Claims
	if err := s.codec.Decode(tokenName, token, &claims); err != nil {
		return nil, ErrInvalidToken
	}
	if s.now().Sub(claims.IssuedAt) > s.ttl {
		return nil, ErrTokenExpired
	}
	return &claims, nil
}

// HashPassword returns a bcrypt hash suitable for the admin password setting.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

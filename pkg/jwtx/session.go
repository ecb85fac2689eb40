package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is how long an issued session token stays valid.
const DefaultSessionTTL = 24 * time.Hour

var (
	ErrInvalidToken = errors.New("jwtx: invalid token")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrIssuer       = errors.New("jwtx: unexpected issuer")
)

// Identity is the authenticated principal carried by a session token.
type Identity struct {
	UserID   string
	Username string
	Role     string
	FullName string
}

// SessionClaims are the claims embedded in a session cookie token. Additive
// changes only, so older tokens keep verifying until they expire.
type SessionClaims struct {
	jwt.RegisteredClaims

	Username string `json:"username"`
	Role     string `json:"role"`
	FullName string `json:"full_name,omitempty"`
}

// Identity extracts the principal from the claims.
func (c *SessionClaims) Identity() Identity {
	return Identity{
		UserID:   c.Subject,
		Username: c.Username,
		Role:     c.Role,
		FullName: c.FullName,
	}
}

// SessionSigner signs and verifies HS256 session tokens with a shared secret.
type SessionSigner struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
}

// Sign issues a session token for the given identity.
func (s *SessionSigner) Sign(id Identity, now time.Time) (string, error) {
	ttl := s.TTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.Issuer,
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Username: id.Username,
		Role:     id.Role,
		FullName: id.FullName,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
}

// Verify parses and validates a session token, returning its claims.
func (s *SessionSigner) Verify(raw string) (SessionClaims, error) {
	var claims SessionClaims
	tok, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.Secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return SessionClaims{}, ErrExpired
		}
		return SessionClaims{}, ErrInvalidToken
	}
	if !tok.Valid {
		return SessionClaims{}, ErrInvalidToken
	}
	if s.Issuer != "" && claims.Issuer != s.Issuer {
		return SessionClaims{}, ErrIssuer
	}
	return claims, nil
}

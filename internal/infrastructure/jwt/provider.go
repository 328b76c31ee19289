package jwtinfra

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/CcubeNetvix/medTracker/internal/config"
	"github.com/CcubeNetvix/medTracker/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued identity token stays valid. Expiry is the
// only termination: there is no revocation list.
const TokenTTL = 7 * 24 * time.Hour

// Claims is the signed identity payload embedded in every token.
type Claims struct {
	UserID string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	jwt.RegisteredClaims
}

// Provider signs and verifies HS256 identity tokens with a process-wide secret.
type Provider struct {
	secret []byte
	ttl    time.Duration
}

func NewProvider(cfg *config.Config) *Provider {
	secret := cfg.JWTSecret
	if secret == "" {
		slog.Warn("JWT_SECRET not set, falling back to insecure default; do not run this in production")
		secret = config.InsecureDefaultJWTSecret
	}
	return &Provider{secret: []byte(secret), ttl: TokenTTL}
}

// Sign issues a compact signed token for the given user, valid for TokenTTL.
func (p *Provider) Sign(u *domain.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: u.UserID,
		Name:   u.Name,
		Email:  u.Email,
		Phone:  u.Phone,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

// Verify parses and validates a token. Every failure cause, whether malformed
// input, signature mismatch, or expiry, collapses into the same
// domain.ErrUnauthorized so callers treat "no valid identity" uniformly.
func (p *Provider) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return p.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", domain.ErrUnauthorized)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims: %w", domain.ErrUnauthorized)
	}
	return claims, nil
}

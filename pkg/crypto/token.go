// Package crypto provides the signed session token implementation.
package crypto

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gateward/gateward/core"
)

// DefaultTokenTTL is used when no validity duration is configured.
const DefaultTokenTTL = 24 * time.Hour

// Claims is the JWT payload asserting a user's identity and role.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// Signer mints and verifies HS256-signed session tokens.
type Signer struct {
	secret []byte
	ttl    time.Duration
}

var _ core.TokenSigner = (*Signer)(nil)

// NewSigner creates a Signer. A non-positive ttl falls back to
// DefaultTokenTTL.
func NewSigner(secret string, ttl time.Duration) *Signer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Signer{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token validity duration.
func (s *Signer) TTL() time.Duration {
	return s.ttl
}

// Sign mints a token asserting the user's id, email, and role.
func (s *Signer) Sign(user *core.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies a token string and returns the identity it asserts.
// Expired, tampered, or foreign-keyed tokens yield core.ErrInvalidToken.
func (s *Signer) Parse(tokenString string) (*core.TokenClaims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, core.ErrInvalidToken
	}

	return &core.TokenClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}

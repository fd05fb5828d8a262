package crypto

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gateward/gateward/core"
)

const testSecret = "01234567890123456789012345678901"

func testUser() *core.User {
	return &core.User{
		ID:    42,
		Name:  "Ann",
		Email: "ann@x.com",
		Role:  core.RoleUser,
	}
}

func TestSignerRoundTrip(t *testing.T) {
	signer := NewSigner(testSecret, time.Hour)

	token, err := signer.Sign(testUser())
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}
	if token == "" {
		t.Fatal("Sign() returned empty token")
	}

	claims, err := signer.Parse(token)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Email != "ann@x.com" {
		t.Errorf("Email = %q, want %q", claims.Email, "ann@x.com")
	}
	if claims.Role != core.RoleUser {
		t.Errorf("Role = %q, want %q", claims.Role, core.RoleUser)
	}
}

func TestSignerRejectsBadTokens(t *testing.T) {
	signer := NewSigner(testSecret, time.Hour)
	token, err := signer.Sign(testUser())
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not.a.jwt"},
		{"tampered payload", tamper(t, token)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := signer.Parse(test.token)
			if !errors.Is(err, core.ErrInvalidToken) {
				t.Errorf("Parse() error = %v, want ErrInvalidToken", err)
			}
		})
	}

	t.Run("wrong secret", func(t *testing.T) {
		other := NewSigner("another-secret-another-secret-ok", time.Hour)
		if _, err := other.Parse(token); !errors.Is(err, core.ErrInvalidToken) {
			t.Errorf("Parse() with wrong secret error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		expired := NewSigner(testSecret, -time.Minute)
		// NewSigner rejects non-positive TTLs, so build one directly.
		expired.ttl = -time.Minute
		tok, err := expired.Sign(testUser())
		if err != nil {
			t.Fatalf("Sign() error = %v", err)
		}
		if _, err := signer.Parse(tok); !errors.Is(err, core.ErrInvalidToken) {
			t.Errorf("Parse() of expired token error = %v, want ErrInvalidToken", err)
		}
	})
}

func TestSignerDefaultsTTL(t *testing.T) {
	signer := NewSigner(testSecret, 0)
	if signer.TTL() != DefaultTokenTTL {
		t.Errorf("TTL() = %v, want %v", signer.TTL(), DefaultTokenTTL)
	}
}

// tamper flips part of the payload segment so the signature no longer matches.
func tamper(t *testing.T, token string) string {
	t.Helper()
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %s", token)
	}
	payload := []byte(parts[1])
	payload[0] ^= 0x01
	return parts[0] + "." + string(payload) + "." + parts[2]
}

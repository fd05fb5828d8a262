package config

import (
	"strings"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/app")
	t.Setenv("JWT_SECRET", "01234567890123456789012345678901")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %q", cfg.Addr)
	}
	if cfg.JWTTTL != 24*time.Hour {
		t.Errorf("expected default TTL 24h, got %v", cfg.JWTTTL)
	}
	if cfg.CookieSecure {
		t.Error("expected CookieSecure to default to false")
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "console" {
		t.Errorf("expected default logging settings, got %q/%q", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "3000")
	t.Setenv("JWT_TTL", "15m")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Addr != ":3000" {
		t.Errorf("expected addr :3000, got %q", cfg.Addr)
	}
	if cfg.JWTTTL != 15*time.Minute {
		t.Errorf("expected TTL 15m, got %v", cfg.JWTTTL)
	}
	if !cfg.CookieSecure {
		t.Error("expected CookieSecure true")
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Errorf("unexpected logging settings %q/%q", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoadRequiredSettings(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(t *testing.T)
		want    string
	}{
		{
			name: "missing database url",
			prepare: func(t *testing.T) {
				t.Setenv("DATABASE_URL", "")
				t.Setenv("JWT_SECRET", "01234567890123456789012345678901")
			},
			want: "DATABASE_URL",
		},
		{
			name: "missing jwt secret",
			prepare: func(t *testing.T) {
				t.Setenv("DATABASE_URL", "postgres://localhost:5432/app")
				t.Setenv("JWT_SECRET", "")
			},
			want: "JWT_SECRET",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			test.prepare(t)
			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), test.want) {
				t.Fatalf("expected error mentioning %s, got %v", test.want, err)
			}
		})
	}
}

func TestLoadIgnoresMalformedOptionalValues(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_TTL", "not-a-duration")
	t.Setenv("COOKIE_SECURE", "not-a-bool")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.JWTTTL != 24*time.Hour {
		t.Errorf("expected fallback TTL 24h, got %v", cfg.JWTTTL)
	}
	if cfg.CookieSecure {
		t.Error("expected fallback CookieSecure false")
	}
}

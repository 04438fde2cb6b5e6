package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/Bataa715/Audit/config"
)

func testManager(ttl time.Duration) *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret: "test-secret-key-for-unit-testing",
		TokenTTL:  ttl,
	})
}

func TestGenerateAndParse(t *testing.T) {
	m := testManager(time.Hour)

	token, err := m.Generate("internal-1", "saraa@internal.local", "DAG-EAH-Сараа")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if claims.ID != "internal-1" {
		t.Errorf("ID = %q, want internal-1", claims.ID)
	}
	if claims.Email != "saraa@internal.local" {
		t.Errorf("Email = %q, want saraa@internal.local", claims.Email)
	}
	if claims.UserID != "DAG-EAH-Сараа" {
		t.Errorf("UserID = %q, want DAG-EAH-Сараа", claims.UserID)
	}
}

func TestParse_Expired(t *testing.T) {
	m := testManager(-time.Minute)

	token, err := m.Generate("internal-1", "a@internal.local", "DAG-EAH-А")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := m.Parse(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got: %v", err)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	m := testManager(time.Hour)
	other := NewManager(&config.AuthConfig{
		JWTSecret: "another-secret-key-entirely",
		TokenTTL:  time.Hour,
	})

	token, err := m.Generate("internal-1", "a@internal.local", "DAG-EAH-А")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := other.Parse(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got: %v", err)
	}
}

func TestParse_Garbage(t *testing.T) {
	m := testManager(time.Hour)
	if _, err := m.Parse("not.a.token"); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got: %v", err)
	}
}

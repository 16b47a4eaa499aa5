package helpers

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("super-secret", time.Hour)
	userID := "user-123"

	tok, exp, err := m.Generate(userID)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if !exp.After(time.Now()) {
		t.Fatalf("expiry not in the future: %v", exp)
	}

	claims, err := m.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("userID mismatch: got %q want %q", claims.UserID, userID)
	}
}

func TestParse_Expired(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("secret", -1*time.Second)
	tok, _, err := m.Generate("u1")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if _, err := m.Parse(tok); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, _, err := NewJWTManager("right-secret", time.Hour).Generate("u2")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if _, err := NewJWTManager("wrong-secret", time.Hour).Parse(tok); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestParse_TamperedSignature(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("secret", time.Hour)
	tok, _, err := m.Generate("u3")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", tok)
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := m.Parse(tampered); err == nil {
		t.Fatalf("expected error for tampered signature, got nil")
	}
}

func TestParse_MalformedString(t *testing.T) {
	t.Parallel()

	if _, err := NewJWTManager("k", time.Hour).Parse("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}

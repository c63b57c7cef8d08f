package security_test

import (
	"strings"
	"testing"

	"github.com/modos-studio/quotepilot-backend/pkg/config"
	"github.com/modos-studio/quotepilot-backend/pkg/security"
)

func TestHashAndVerifyPassword(t *testing.T) {
	cfg := config.PasswordConfig{
		ArgonMemoryKB:    32768,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}

	hash, err := security.HashPassword("very-secure-password", cfg)
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "" {
		t.Fatal("HashPassword returned empty string")
	}

	ok, err := security.VerifyPassword("very-secure-password", hash)
	if err != nil {
		t.Fatalf("VerifyPassword returned error for valid hash: %v", err)
	}
	if !ok {
		t.Fatal("VerifyPassword failed for the correct password")
	}

	ok, err = security.VerifyPassword("bogus-password", hash)
	if err != nil {
		t.Fatalf("VerifyPassword returned error for invalid password: %v", err)
	}
	if ok {
		t.Fatal("VerifyPassword returned true for incorrect password")
	}
}

func TestVerifyPasswordBadHash(t *testing.T) {
	if _, err := security.VerifyPassword("irrelevant", "not-a-hash"); err == nil {
		t.Fatal("expected error for malformed hash")
	}
}

func TestGenerateToken(t *testing.T) {
	tok, err := security.GenerateToken(24)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	if len(tok) < 24 {
		t.Fatalf("token too short: %q", tok)
	}
	if strings.ContainsAny(tok, "+/=") {
		t.Fatalf("token not URL safe: %q", tok)
	}

	other, err := security.GenerateToken(24)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	if tok == other {
		t.Fatal("two generated tokens collided")
	}

	if _, err := security.GenerateToken(0); err == nil {
		t.Fatal("expected error for non-positive length")
	}
}

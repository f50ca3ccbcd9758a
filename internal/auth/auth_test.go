package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/zengarden/apiserver/config"
)

func testConfig() config.AuthConfig {
	return config.AuthConfig{
		Secret:         "test-secret",
		Algorithm:      "HS256",
		TokenTTLMinute: 30,
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	if _, err := New(config.AuthConfig{Algorithm: "HS256"}); err == nil {
		t.Error("New() with empty secret expected error, got nil")
	}
	if _, err := New(config.AuthConfig{Secret: "s", Algorithm: "RS256"}); err == nil {
		t.Error("New() with non-HMAC algorithm expected error, got nil")
	}
	if _, err := New(config.AuthConfig{Secret: "s", Algorithm: "nope"}); err == nil {
		t.Error("New() with unknown algorithm expected error, got nil")
	}
}

func TestPasswordHashing(t *testing.T) {
	a, err := New(testConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	hash, err := a.HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "hunter2" {
		t.Fatal("hash equals the plain password")
	}

	if !a.CheckPassword("hunter2", hash) {
		t.Error("CheckPassword() with correct password = false")
	}
	if a.CheckPassword("wrong", hash) {
		t.Error("CheckPassword() with wrong password = true")
	}

	// Per-call salt: two hashes of the same password differ.
	other, err := a.HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if other == hash {
		t.Error("two hashes of the same password are identical")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	a, err := New(testConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	token, err := a.IssueToken("alice")
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}

	subject, err := a.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if subject != "alice" {
		t.Errorf("subject = %q, want %q", subject, "alice")
	}
}

func TestTokenExpiry(t *testing.T) {
	a, err := New(testConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	issuedAt := time.Now()
	a.now = func() time.Time { return issuedAt }

	token, err := a.IssueToken("alice")
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}

	a.now = func() time.Time { return issuedAt.Add(29 * time.Minute) }
	if _, err := a.ParseToken(token); err != nil {
		t.Errorf("ParseToken() at +29m error = %v, want nil", err)
	}

	a.now = func() time.Time { return issuedAt.Add(31 * time.Minute) }
	if _, err := a.ParseToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("ParseToken() at +31m error = %v, want ErrTokenExpired", err)
	}
}

func TestTokenTampering(t *testing.T) {
	a, err := New(testConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := a.ParseToken("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ParseToken() of garbage error = %v, want ErrInvalidToken", err)
	}

	otherCfg := testConfig()
	otherCfg.Secret = "other-secret"
	other, err := New(otherCfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	token, err := other.IssueToken("alice")
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}
	if _, err := a.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ParseToken() with wrong key error = %v, want ErrInvalidToken", err)
	}
}

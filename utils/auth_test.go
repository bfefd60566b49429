package utils

import (
	"testing"
	"time"

	"wavectf/config"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-passphrase")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if hash == "s3cret-passphrase" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CheckPasswordHash("s3cret-passphrase", hash) {
		t.Fatal("expected correct password to verify")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Fatal("expected wrong password to fail")
	}
}

func TestJWTRoundTrip(t *testing.T) {
	config.JWTSecret = "test-secret"

	token, err := GenerateJWT(42, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	userID, err := VerifyJWT(token)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if userID != 42 {
		t.Fatalf("expected user 42, got %d", userID)
	}
}

func TestJWTExpired(t *testing.T) {
	config.JWTSecret = "test-secret"

	token, err := GenerateJWT(42, -time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := VerifyJWT(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestJWTWrongSecret(t *testing.T) {
	config.JWTSecret = "test-secret"
	token, err := GenerateJWT(42, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	config.JWTSecret = "other-secret"
	if _, err := VerifyJWT(token); err == nil {
		t.Fatal("expected token signed with another secret to be rejected")
	}
}

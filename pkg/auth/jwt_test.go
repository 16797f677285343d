package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	token, err := m.GenerateToken("user-1", "alice", "alice@example.com")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != "user-1" || claims.Username != "alice" || claims.Email != "alice@example.com" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestRefreshTokenCarriesOnlyUserID(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	token, err := m.GenerateRefreshToken("user-1")
	if err != nil {
		t.Fatalf("GenerateRefreshToken() error = %v", err)
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("UserID = %q, want %q", claims.UserID, "user-1")
	}
	if claims.Username != "" || claims.Email != "" {
		t.Errorf("refresh token leaked identity fields: %+v", claims)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	other := NewJWTManager("other-secret", time.Hour, 24*time.Hour)

	token, err := m.GenerateToken("user-1", "alice", "alice@example.com")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := other.ValidateToken(token); err == nil {
		t.Error("ValidateToken() accepted a token signed with another secret")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute, 24*time.Hour)

	token, err := m.GenerateToken("user-1", "alice", "alice@example.com")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := m.ValidateToken(token); err == nil {
		t.Error("ValidateToken() accepted an expired token")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "s3cret-password" {
		t.Error("HashPassword() returned the plaintext")
	}

	if !CheckPasswordHash("s3cret-password", hash) {
		t.Error("CheckPasswordHash() rejected the correct password")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("CheckPasswordHash() accepted a wrong password")
	}
}

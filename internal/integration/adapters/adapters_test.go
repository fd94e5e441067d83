package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	domainerror "github.com/finance-tracker/bookkeeping/internal/domain/error"
)

type fixedClock struct{ at time.Time }

func (c *fixedClock) Now() time.Time { return c.at }

func TestPasswordService(t *testing.T) {
	svc := NewPasswordService(bcrypt.MinCost)

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"too short", "abc123", true},
		{"letters only", "abcdefghij", true},
		{"digits only", "1234567890", true},
		{"valid", "correct horse 1", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.ValidatePasswordStrength(tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePasswordStrength() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	hash, err := svc.HashPassword("secret-pass-1")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if err := svc.VerifyPassword(hash, "secret-pass-1"); err != nil {
		t.Errorf("VerifyPassword() rejected the right password: %v", err)
	}
	if err := svc.VerifyPassword(hash, "secret-pass-2"); err == nil {
		t.Error("VerifyPassword() accepted a wrong password")
	}
}

func TestTokenService(t *testing.T) {
	clock := &fixedClock{at: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	svc := NewTokenService("test-secret", 15*time.Minute, "bookkeeping", clock)
	ctx := context.Background()
	userID := uuid.New()

	token, expiresAt, err := svc.GenerateAccessToken(ctx, userID, "owner@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}
	if !expiresAt.Equal(clock.at.Add(15 * time.Minute)) {
		t.Errorf("expiresAt = %v", expiresAt)
	}

	claims, err := svc.ValidateAccessToken(ctx, token)
	if err != nil {
		t.Fatalf("ValidateAccessToken() error = %v", err)
	}
	if claims.UserID != userID || claims.Email != "owner@example.com" {
		t.Errorf("unexpected claims %+v", claims)
	}

	other := NewTokenService("other-secret", 15*time.Minute, "bookkeeping", clock)
	if _, err := other.ValidateAccessToken(ctx, token); !errors.Is(err, domainerror.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for a foreign signature, got %v", err)
	}

	clock.at = clock.at.Add(16 * time.Minute)
	if _, err := svc.ValidateAccessToken(ctx, token); !errors.Is(err, domainerror.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for an expired token, got %v", err)
	}
}

// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
)

// UserRepository stores the owners of ledgers. Emails are stored lowercased.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// FindByID returns ErrUserNotFound when no user has id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// FindByEmail returns ErrUserNotFound when no user has email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// PasswordService hashes and checks owner passwords.
type PasswordService interface {
	HashPassword(password string) (string, error)
	// VerifyPassword returns a non-nil error when password does not match hash.
	VerifyPassword(hash, password string) error
	// ValidatePasswordStrength returns ErrWeakPassword for passwords too weak to store.
	ValidatePasswordStrength(password string) error
}

// TokenClaims is what an access token proves about its bearer.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService issues and checks the bearer tokens of the HTTP API.
type TokenService interface {
	// GenerateAccessToken returns the signed token and its expiry.
	GenerateAccessToken(ctx context.Context, userID uuid.UUID, email string) (string, time.Time, error)
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}

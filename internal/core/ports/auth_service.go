package ports

import (
	"context"

	"github.com/contactsphere/contacts-system/internal/core/domain"
)

// TokenPair is what a successful login returns.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService orchestrates registration, credential verification, token
// issuance, and email confirmation.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	ConfirmEmail(ctx context.Context, confirmationToken string) error
}

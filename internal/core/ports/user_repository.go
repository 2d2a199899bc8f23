package ports

import (
	"context"

	"github.com/contactsphere/contacts-system/internal/core/domain"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// ConfirmEmail flips confirmed to true for the given email. The
	// transition happens at most once; re-confirming is rejected upstream.
	ConfirmEmail(ctx context.Context, email string) error
	UpdateAvatar(ctx context.Context, email, avatarURL string) (*domain.User, error)
}

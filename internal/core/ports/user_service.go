package ports

import (
	"context"
	"io"

	"github.com/contactsphere/contacts-system/internal/core/domain"
)

// UserService covers protected operations on the authenticated user's own
// account.
type UserService interface {
	UpdateAvatar(ctx context.Context, user *domain.User, body io.Reader, contentType string) (*domain.User, error)
}

package service

import (
	"context"
	"fmt"
	"io"

	"github.com/contactsphere/contacts-system/internal/core/domain"
	"github.com/contactsphere/contacts-system/internal/core/ports"
)

// UserService handles account-level operations for the authenticated user.
type UserService struct {
	users   ports.UserRepository
	avatars ports.AvatarStorage
}

func NewUserService(users ports.UserRepository, avatars ports.AvatarStorage) *UserService {
	return &UserService{users: users, avatars: avatars}
}

// UpdateAvatar stores the uploaded image and persists its public URL on the
// user record. The storage key is derived from the email so re-uploads
// overwrite the previous avatar.
func (s *UserService) UpdateAvatar(ctx context.Context, user *domain.User, body io.Reader, contentType string) (*domain.User, error) {
	key := fmt.Sprintf("avatars/%s", user.Email)
	url, err := s.avatars.Upload(ctx, key, contentType, body)
	if err != nil {
		return nil, fmt.Errorf("upload avatar: %w", err)
	}
	return s.users.UpdateAvatar(ctx, user.Email, url)
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/contactsphere/contacts-system/internal/core/domain"
	"github.com/contactsphere/contacts-system/internal/core/ports"
	"github.com/contactsphere/contacts-system/internal/core/token"
)

// AuthService implements registration, login, token refresh, and email
// confirmation. Password hashing runs inline per request: bcrypt is
// deliberately expensive but holds no shared lock, so concurrent logins do
// not serialize.
type AuthService struct {
	users  ports.UserRepository
	codec  *token.Codec
	issuer *token.Issuer
	mail   ports.MailQueue
	log    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, codec *token.Codec, issuer *token.Issuer, mail ports.MailQueue, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, codec: codec, issuer: issuer, mail: mail, log: log}
}

// Register creates an unconfirmed account and queues the confirmation email.
// The mail dispatch is fire-and-forget: a failure there never rolls back the
// created user and is never surfaced to the caller.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	_, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, domain.ErrAccountExists
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, fmt.Errorf("lookup email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.users.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	confirmToken, err := s.issuer.IssueConfirmation(created.Email)
	if err != nil {
		// The account exists and can request confirmation again later.
		s.log.Error().Err(err).Str("email", created.Email).Msg("issue confirmation token failed")
		return created, nil
	}
	s.mail.Enqueue(ports.ConfirmationMail{
		To:       created.Email,
		Username: created.Username,
		Token:    confirmToken,
	})

	return created, nil
}

// Login verifies credentials and issues an access + refresh token pair.
// Unknown email and wrong password collapse to the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.TokenPair, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrIncorrectLogin
		}
		return nil, fmt.Errorf("lookup email: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrIncorrectLogin
	}
	if !user.Confirmed {
		return nil, domain.ErrNotConfirmed
	}

	access, err := s.issuer.IssueAccess(user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.issuer.IssueRefresh(user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	return &ports.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh exchanges a valid refresh token for a new access token. The refresh
// token itself is not reissued. A deleted account invalidates its refresh
// tokens here even though they still verify cryptographically.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.codec.Decode(refreshToken, token.ScopeRefresh)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}

	if _, err := s.users.FindByEmail(ctx, claims.Subject); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("lookup email: %w", err)
	}

	access, err := s.issuer.IssueAccess(claims.Subject)
	if err != nil {
		return "", fmt.Errorf("issue access token: %w", err)
	}
	return access, nil
}

// ConfirmEmail validates a confirmation-link token and flips the account to
// confirmed. Re-confirming is rejected rather than silently accepted so link
// reuse stays visible.
func (s *AuthService) ConfirmEmail(ctx context.Context, confirmationToken string) error {
	claims, err := s.codec.Decode(confirmationToken, token.ScopeEmailConfirm)
	if err != nil {
		s.log.Debug().Err(err).Msg("confirmation token rejected")
		return domain.ErrVerification
	}

	user, err := s.users.FindByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrVerification
		}
		return fmt.Errorf("lookup email: %w", err)
	}
	if user.Confirmed {
		return domain.ErrAlreadyConfirmed
	}

	return s.users.ConfirmEmail(ctx, user.Email)
}

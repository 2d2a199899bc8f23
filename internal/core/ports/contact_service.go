package ports

import (
	"context"
	"time"

	"github.com/contactsphere/contacts-system/internal/core/domain"
)

// ContactInput carries the mutable contact fields from the transport layer.
type ContactInput struct {
	FirstName      string
	LastName       string
	Email          string
	PhoneNumber    string
	Birthday       time.Time
	AdditionalData string
}

type ContactService interface {
	CreateContact(ctx context.Context, userID int64, in ContactInput) (*domain.Contact, error)
	GetContacts(ctx context.Context, userID int64, skip, limit int64) ([]*domain.Contact, error)
	GetContact(ctx context.Context, userID, contactID int64) (*domain.Contact, error)
	SearchContacts(ctx context.Context, userID int64, filter ContactFilter) ([]*domain.Contact, error)
	UpcomingBirthdays(ctx context.Context, userID int64) ([]*domain.Contact, error)
	UpdateContact(ctx context.Context, userID, contactID int64, in ContactInput) (*domain.Contact, error)
	DeleteContact(ctx context.Context, userID, contactID int64) (*domain.Contact, error)
}

package ports

import (
	"context"

	"github.com/contactsphere/contacts-system/internal/core/domain"
)

// ContactFilter narrows a contact search. Empty fields are ignored; non-empty
// ones match as case-insensitive substrings.
type ContactFilter struct {
	FirstName string
	LastName  string
	Email     string
}

// ContactRepository defines owner-scoped persistence for contacts. Every
// method takes the owning userID; a contact belonging to another user is
// indistinguishable from a missing one.
type ContactRepository interface {
	Create(ctx context.Context, contact *domain.Contact) (*domain.Contact, error)
	FindByID(ctx context.Context, userID, contactID int64) (*domain.Contact, error)
	List(ctx context.Context, userID int64, skip, limit int64) ([]*domain.Contact, error)
	All(ctx context.Context, userID int64) ([]*domain.Contact, error)
	Search(ctx context.Context, userID int64, filter ContactFilter) ([]*domain.Contact, error)
	Update(ctx context.Context, contact *domain.Contact) (*domain.Contact, error)
	Delete(ctx context.Context, userID, contactID int64) (*domain.Contact, error)
}

package service

import (
	"context"
	"time"

	"github.com/contactsphere/contacts-system/internal/core/domain"
	"github.com/contactsphere/contacts-system/internal/core/ports"
)

const (
	defaultPageLimit   = 10
	maxPageLimit       = 100
	birthdayWindowDays = 7
)

// ContactService implements owner-scoped contact CRUD, search, and the
// upcoming-birthdays view.
type ContactService struct {
	contacts ports.ContactRepository
}

func NewContactService(contacts ports.ContactRepository) *ContactService {
	return &ContactService{contacts: contacts}
}

func (s *ContactService) CreateContact(ctx context.Context, userID int64, in ports.ContactInput) (*domain.Contact, error) {
	return s.contacts.Create(ctx, &domain.Contact{
		UserID:         userID,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Email:          in.Email,
		PhoneNumber:    in.PhoneNumber,
		Birthday:       in.Birthday,
		AdditionalData: in.AdditionalData,
	})
}

func (s *ContactService) GetContacts(ctx context.Context, userID int64, skip, limit int64) ([]*domain.Contact, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return s.contacts.List(ctx, userID, skip, limit)
}

func (s *ContactService) GetContact(ctx context.Context, userID, contactID int64) (*domain.Contact, error) {
	return s.contacts.FindByID(ctx, userID, contactID)
}

func (s *ContactService) SearchContacts(ctx context.Context, userID int64, filter ports.ContactFilter) ([]*domain.Contact, error) {
	return s.contacts.Search(ctx, userID, filter)
}

// UpcomingBirthdays returns the user's contacts whose birthday falls within
// the next seven days, including windows that wrap a month or year boundary.
func (s *ContactService) UpcomingBirthdays(ctx context.Context, userID int64) ([]*domain.Contact, error) {
	all, err := s.contacts.All(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := time.Now().UTC()
	upcoming := make([]*domain.Contact, 0)
	for _, c := range all {
		if domain.BirthdayInWindow(c.Birthday, today, birthdayWindowDays) {
			upcoming = append(upcoming, c)
		}
	}
	return upcoming, nil
}

func (s *ContactService) UpdateContact(ctx context.Context, userID, contactID int64, in ports.ContactInput) (*domain.Contact, error) {
	existing, err := s.contacts.FindByID(ctx, userID, contactID)
	if err != nil {
		return nil, err
	}

	existing.FirstName = in.FirstName
	existing.LastName = in.LastName
	existing.Email = in.Email
	existing.PhoneNumber = in.PhoneNumber
	existing.Birthday = in.Birthday
	existing.AdditionalData = in.AdditionalData

	return s.contacts.Update(ctx, existing)
}

func (s *ContactService) DeleteContact(ctx context.Context, userID, contactID int64) (*domain.Contact, error) {
	return s.contacts.Delete(ctx, userID, contactID)
}

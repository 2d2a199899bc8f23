package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/contactsphere/contacts-system/internal/core/domain"
	"github.com/contactsphere/contacts-system/internal/core/ports"
)

type stubContactRepo struct {
	contacts map[int64]*domain.Contact
	nextID   int64

	lastSkip  int64
	lastLimit int64
}

func newStubContactRepo() *stubContactRepo {
	return &stubContactRepo{contacts: make(map[int64]*domain.Contact)}
}

func cloneContact(c *domain.Contact) *domain.Contact {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (r *stubContactRepo) Create(_ context.Context, contact *domain.Contact) (*domain.Contact, error) {
	for _, existing := range r.contacts {
		if existing.UserID == contact.UserID && existing.Email == contact.Email {
			return nil, domain.ErrContactEmailExists
		}
	}
	r.nextID++
	stored := cloneContact(contact)
	stored.ID = r.nextID
	r.contacts[stored.ID] = stored
	return cloneContact(stored), nil
}

func (r *stubContactRepo) FindByID(_ context.Context, userID, contactID int64) (*domain.Contact, error) {
	c, ok := r.contacts[contactID]
	if !ok || c.UserID != userID {
		return nil, domain.ErrContactNotFound
	}
	return cloneContact(c), nil
}

func (r *stubContactRepo) List(_ context.Context, userID int64, skip, limit int64) ([]*domain.Contact, error) {
	r.lastSkip = skip
	r.lastLimit = limit
	out := make([]*domain.Contact, 0)
	for _, c := range r.contacts {
		if c.UserID == userID {
			out = append(out, cloneContact(c))
		}
	}
	return out, nil
}

func (r *stubContactRepo) All(_ context.Context, userID int64) ([]*domain.Contact, error) {
	return r.List(context.Background(), userID, 0, 0)
}

func (r *stubContactRepo) Search(_ context.Context, userID int64, filter ports.ContactFilter) ([]*domain.Contact, error) {
	out := make([]*domain.Contact, 0)
	for _, c := range r.contacts {
		if c.UserID != userID {
			continue
		}
		if filter.FirstName != "" && !strings.Contains(strings.ToLower(c.FirstName), strings.ToLower(filter.FirstName)) {
			continue
		}
		if filter.LastName != "" && !strings.Contains(strings.ToLower(c.LastName), strings.ToLower(filter.LastName)) {
			continue
		}
		if filter.Email != "" && !strings.Contains(strings.ToLower(c.Email), strings.ToLower(filter.Email)) {
			continue
		}
		out = append(out, cloneContact(c))
	}
	return out, nil
}

func (r *stubContactRepo) Update(_ context.Context, contact *domain.Contact) (*domain.Contact, error) {
	if _, ok := r.contacts[contact.ID]; !ok {
		return nil, domain.ErrContactNotFound
	}
	r.contacts[contact.ID] = cloneContact(contact)
	return cloneContact(contact), nil
}

func (r *stubContactRepo) Delete(_ context.Context, userID, contactID int64) (*domain.Contact, error) {
	c, ok := r.contacts[contactID]
	if !ok || c.UserID != userID {
		return nil, domain.ErrContactNotFound
	}
	delete(r.contacts, contactID)
	return cloneContact(c), nil
}

func seedContact(t *testing.T, svc *ContactService, userID int64, email string, birthday time.Time) *domain.Contact {
	t.Helper()
	c, err := svc.CreateContact(context.Background(), userID, ports.ContactInput{
		FirstName: "Test",
		LastName:  "Contact",
		Email:     email,
		Birthday:  birthday,
	})
	if err != nil {
		t.Fatalf("seed contact %s: %v", email, err)
	}
	return c
}

func TestContactService_Create_DuplicateEmail(t *testing.T) {
	repo := newStubContactRepo()
	svc := NewContactService(repo)

	seedContact(t, svc, 1, "dup@example.com", time.Time{})
	if _, err := svc.CreateContact(context.Background(), 1, ports.ContactInput{Email: "dup@example.com"}); !errors.Is(err, domain.ErrContactEmailExists) {
		t.Fatalf("expected ErrContactEmailExists, got %v", err)
	}

	// Same email under a different owner is fine.
	if _, err := svc.CreateContact(context.Background(), 2, ports.ContactInput{Email: "dup@example.com"}); err != nil {
		t.Fatalf("cross-user duplicate rejected: %v", err)
	}
}

func TestContactService_GetContacts_Paging(t *testing.T) {
	repo := newStubContactRepo()
	svc := NewContactService(repo)

	cases := []struct {
		name                string
		skip, limit         int64
		wantSkip, wantLimit int64
	}{
		{"defaults", 0, 0, 0, 10},
		{"negative skip clamped", -5, 20, 0, 20},
		{"negative limit defaulted", 3, -1, 3, 10},
		{"limit capped", 0, 1000, 0, 100},
		{"passthrough", 10, 50, 10, 50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.GetContacts(context.Background(), 1, tc.skip, tc.limit); err != nil {
				t.Fatalf("list: %v", err)
			}
			if repo.lastSkip != tc.wantSkip || repo.lastLimit != tc.wantLimit {
				t.Fatalf("repo saw skip=%d limit=%d, want skip=%d limit=%d",
					repo.lastSkip, repo.lastLimit, tc.wantSkip, tc.wantLimit)
			}
		})
	}
}

func TestContactService_OwnerScoping(t *testing.T) {
	repo := newStubContactRepo()
	svc := NewContactService(repo)

	c := seedContact(t, svc, 1, "mine@example.com", time.Time{})

	// Another user cannot see, update, or delete it.
	if _, err := svc.GetContact(context.Background(), 2, c.ID); !errors.Is(err, domain.ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
	if _, err := svc.UpdateContact(context.Background(), 2, c.ID, ports.ContactInput{Email: "stolen@example.com"}); !errors.Is(err, domain.ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound on update, got %v", err)
	}
	if _, err := svc.DeleteContact(context.Background(), 2, c.ID); !errors.Is(err, domain.ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound on delete, got %v", err)
	}

	got, err := svc.GetContact(context.Background(), 1, c.ID)
	if err != nil {
		t.Fatalf("owner get: %v", err)
	}
	if got.Email != "mine@example.com" {
		t.Fatalf("contact mutated by foreign update: %s", got.Email)
	}
}

func TestContactService_Update(t *testing.T) {
	repo := newStubContactRepo()
	svc := NewContactService(repo)

	c := seedContact(t, svc, 1, "old@example.com", time.Time{})

	updated, err := svc.UpdateContact(context.Background(), 1, c.ID, ports.ContactInput{
		FirstName:   "Updated",
		LastName:    "Contact",
		Email:       "new@example.com",
		PhoneNumber: "+12025550123",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != c.ID {
		t.Fatalf("update changed id: %d != %d", updated.ID, c.ID)
	}
	if updated.Email != "new@example.com" || updated.FirstName != "Updated" {
		t.Fatalf("update not applied: %+v", updated)
	}
}

func TestContactService_UpcomingBirthdays(t *testing.T) {
	repo := newStubContactRepo()
	svc := NewContactService(repo)

	today := time.Now().UTC()
	inWindow := seedContact(t, svc, 1, "soon@example.com",
		time.Date(1990, today.Month(), today.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 3))
	seedContact(t, svc, 1, "later@example.com",
		time.Date(1990, today.Month(), today.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 40))
	seedContact(t, svc, 1, "noday@example.com", time.Time{})
	seedContact(t, svc, 2, "other@example.com",
		time.Date(1990, today.Month(), today.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 3))

	got, err := svc.UpcomingBirthdays(context.Background(), 1)
	if err != nil {
		t.Fatalf("upcoming: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 upcoming birthday, got %d", len(got))
	}
	if got[0].ID != inWindow.ID {
		t.Fatalf("wrong contact returned: %+v", got[0])
	}
}

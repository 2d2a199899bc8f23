package domain

import (
	"errors"
	"time"
)

// Contact is an address-book entry owned by a single user. Every query over
// contacts is scoped by UserID.
type Contact struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	PhoneNumber    string    `json:"phone_number"`
	Birthday       time.Time `json:"birthday"`
	AdditionalData string    `json:"additional_data,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

var ErrContactNotFound = errors.New("contact not found")
var ErrContactEmailExists = errors.New("contact email already exists")

// BirthdayInWindow reports whether the next occurrence of the contact's
// birthday (month and day, the year is ignored) falls within [today,
// today+days]. The window may wrap a month boundary or the end of the year.
func BirthdayInWindow(birthday, today time.Time, days int) bool {
	if birthday.IsZero() {
		return false
	}
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	// Feb 29 normalizes to Mar 1 in non-leap years via time.Date.
	next := time.Date(today.Year(), birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
	if next.Before(today) {
		next = time.Date(today.Year()+1, birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
	}

	return !next.After(today.AddDate(0, 0, days))
}

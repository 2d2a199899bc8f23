package handler

import (
	"time"

	"github.com/contactsphere/contacts-system/internal/core/domain"
	"github.com/contactsphere/contacts-system/internal/core/ports"
)

const birthdayLayout = "2006-01-02"

// contactRequest is used for both create and full update.
type contactRequest struct {
	FirstName      string `json:"first_name"      validate:"required"`
	LastName       string `json:"last_name"       validate:"required"`
	Email          string `json:"email"           validate:"required,email"`
	PhoneNumber    string `json:"phone_number"    validate:"required,phone"`
	Birthday       string `json:"birthday"        validate:"omitempty,datetime=2006-01-02"`
	AdditionalData string `json:"additional_data"`
}

func (r contactRequest) toInput() ports.ContactInput {
	in := ports.ContactInput{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		PhoneNumber:    r.PhoneNumber,
		AdditionalData: r.AdditionalData,
	}
	if r.Birthday != "" {
		// Validated by the datetime tag, so the parse cannot fail here.
		in.Birthday, _ = time.Parse(birthdayLayout, r.Birthday)
	}
	return in
}

type contactResponse struct {
	ID             int64  `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phone_number"`
	Birthday       string `json:"birthday,omitempty"`
	AdditionalData string `json:"additional_data,omitempty"`
	UserID         int64  `json:"user_id"`
}

func toContactResponse(c *domain.Contact) contactResponse {
	resp := contactResponse{
		ID:             c.ID,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		Email:          c.Email,
		PhoneNumber:    c.PhoneNumber,
		AdditionalData: c.AdditionalData,
		UserID:         c.UserID,
	}
	if !c.Birthday.IsZero() {
		resp.Birthday = c.Birthday.Format(birthdayLayout)
	}
	return resp
}

func toContactResponses(contacts []*domain.Contact) []contactResponse {
	out := make([]contactResponse, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, toContactResponse(c))
	}
	return out
}

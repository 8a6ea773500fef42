package submission

import (
	"strings"

	"card-tracker/internal/pkg/errs"
)

var ErrMissingContact = errs.New("at least one of phone or email is required")

// Status transitions: pending -> approved or pending -> denied, both
// terminal. Acting on a non-pending submission is a conflict.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDenied   Status = "denied"
)

func (s Status) String() string { return string(s) }

func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusDenied
}

type Contact struct {
	Phone *string
	Email *string
}

func NewContact(phone, email string) Contact {
	return Contact{
		Phone: optional(phone),
		Email: optional(email),
	}
}

func (c Contact) Validate() error {
	if c.Phone == nil && c.Email == nil {
		return ErrMissingContact
	}
	return nil
}

// Preferred returns the contact shown in exports: phone when present,
// otherwise email.
func (c Contact) Preferred() string {
	if c.Phone != nil {
		return *c.Phone
	}
	if c.Email != nil {
		return *c.Email
	}
	return ""
}

func optional(v string) *string {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

package card

import (
	"strings"

	"card-tracker/internal/pkg/errs"
)

var (
	ErrEmptyTitle     = errs.New("card title is empty")
	ErrEmptyRecipient = errs.New("card recipient is empty")
	ErrInvalidAmount  = errs.New("card amount must be a positive multiple of the amount step")
)

// AmountStep is the issuing granularity: cards are denominated in $5 steps.
const AmountStep = 5

type Status string

const (
	StatusActive  Status = "active"
	StatusRevoked Status = "revoked"
)

func (s Status) String() string { return string(s) }

type Title string

func NewTitle(v string) (Title, error) {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return "", ErrEmptyTitle
	}
	return Title(trimmed), nil
}

func (t Title) String() string { return string(t) }

type Recipient string

func NewRecipient(v string) (Recipient, error) {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return "", ErrEmptyRecipient
	}
	return Recipient(trimmed), nil
}

func (r Recipient) String() string { return string(r) }

type Amount int

func NewAmount(v int) (Amount, error) {
	if v <= 0 || v%AmountStep != 0 {
		return 0, ErrInvalidAmount
	}
	return Amount(v), nil
}

func (a Amount) Int() int { return int(a) }

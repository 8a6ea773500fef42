package card

import (
	"time"

	"card-tracker/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCardRevoked = errs.New("card has been revoked")
	ErrCardExpired = errs.New("card has expired")
)

type Card struct {
	id        uuid.UUID
	title     Title
	recipient Recipient
	amount    Amount
	qrToken   string
	status    Status
	expiresAt *time.Time
	createdAt time.Time
}

func NewCard(title, recipient string, amount int, expiresAt *time.Time, qrToken string, now time.Time) (*Card, error) {
	t, err := NewTitle(title)
	if err != nil {
		return nil, err
	}

	r, err := NewRecipient(recipient)
	if err != nil {
		return nil, err
	}

	a, err := NewAmount(amount)
	if err != nil {
		return nil, err
	}

	return &Card{
		id:        uuid.New(),
		title:     t,
		recipient: r,
		amount:    a,
		qrToken:   qrToken,
		status:    StatusActive,
		expiresAt: expiresAt,
		createdAt: now,
	}, nil
}

// CheckUsable reports why a card cannot accept new submissions. A revoked
// card is unusable regardless of expiry; an active card past expiresAt is
// treated as unusable even though its stored status is still active.
func CheckUsable(status Status, expiresAt *time.Time, now time.Time) error {
	if status == StatusRevoked {
		return ErrCardRevoked
	}
	if expiresAt != nil && expiresAt.Before(now) {
		return ErrCardExpired
	}
	return nil
}

func (c *Card) ID() uuid.UUID         { return c.id }
func (c *Card) Title() Title          { return c.title }
func (c *Card) Recipient() Recipient  { return c.recipient }
func (c *Card) Amount() Amount        { return c.amount }
func (c *Card) QRToken() string       { return c.qrToken }
func (c *Card) Status() Status        { return c.status }
func (c *Card) ExpiresAt() *time.Time { return c.expiresAt }
func (c *Card) CreatedAt() time.Time  { return c.createdAt }

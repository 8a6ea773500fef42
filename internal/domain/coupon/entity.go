package coupon

import (
	"strings"
	"time"

	"card-tracker/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyCode       = errs.New("coupon code is empty")
	ErrInvalidDiscount = errs.New("coupon discount must be at least 1")
	ErrInvalidUses     = errs.New("coupon uses must not be negative")
	ErrExhausted       = errs.New("coupon has no remaining uses")
)

type Coupon struct {
	id        uuid.UUID
	code      Code
	discount  int
	usesLeft  int
	createdAt time.Time
}

func NewCoupon(code string, discount, usesLeft int, now time.Time) (*Coupon, error) {
	c, err := NewCode(code)
	if err != nil {
		return nil, err
	}
	if discount < 1 {
		return nil, ErrInvalidDiscount
	}
	if usesLeft < 0 {
		return nil, ErrInvalidUses
	}

	return &Coupon{
		id:        uuid.New(),
		code:      c,
		discount:  discount,
		usesLeft:  usesLeft,
		createdAt: now,
	}, nil
}

// ValidateUsage rejects an exhausted coupon. It is side-effect free: the
// workflow consumes a use separately, so "apply" can be previewed for free.
func ValidateUsage(usesLeft int) error {
	if usesLeft <= 0 {
		return ErrExhausted
	}
	return nil
}

func (c *Coupon) ID() uuid.UUID        { return c.id }
func (c *Coupon) Code() Code           { return c.code }
func (c *Coupon) Discount() int        { return c.discount }
func (c *Coupon) UsesLeft() int        { return c.usesLeft }
func (c *Coupon) CreatedAt() time.Time { return c.createdAt }

// Code is always stored uppercase; lookups are case-insensitive.
type Code string

func NewCode(v string) (Code, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(v))
	if trimmed == "" {
		return "", ErrEmptyCode
	}
	return Code(trimmed), nil
}

func (c Code) String() string { return string(c) }

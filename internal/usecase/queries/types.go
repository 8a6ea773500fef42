package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type CardView struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Recipient string     `json:"recipient"`
	Amount    int        `json:"amount"`
	QRToken   string     `json:"qrToken"`
	Status    string     `json:"status"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

type CardRequestView struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Class      string     `json:"class"`
	Phone      *string    `json:"phone,omitempty"`
	Email      *string    `json:"email,omitempty"`
	Reason     *string    `json:"reason,omitempty"`
	Status     string     `json:"status"`
	CardID     *uuid.UUID `json:"cardId,omitempty"`
	ApprovedAt *time.Time `json:"approvedAt,omitempty"`
	DeniedAt   *time.Time `json:"deniedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

type SubmissionView struct {
	ID              uuid.UUID  `json:"id"`
	CardID          uuid.UUID  `json:"cardId"`
	CardTitle       string     `json:"cardTitle"`
	CardRecipient   string     `json:"cardRecipient"`
	Class           string     `json:"class"`
	AssignmentType  string     `json:"assignmentType"`
	AmountRequested int        `json:"amountRequested"`
	OriginalAmount  int        `json:"originalAmount"`
	PromoCode       *string    `json:"promoCode,omitempty"`
	PromoDiscount   int        `json:"promoDiscount"`
	Phone           *string    `json:"phone,omitempty"`
	Email           *string    `json:"email,omitempty"`
	Status          string     `json:"status"`
	ApprovedAt      *time.Time `json:"approvedAt,omitempty"`
	DeniedAt        *time.Time `json:"deniedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

type CouponView struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Discount  int       `json:"discount"`
	UsesLeft  int       `json:"usesLeft"`
	CreatedAt time.Time `json:"createdAt"`
}

type EventView struct {
	ID        uuid.UUID      `json:"id"`
	Type      string         `json:"type"`
	Data      map[string]any `json:"data"`
	Timestamp time.Time      `json:"timestamp"`
}

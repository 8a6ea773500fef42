package shared

import (
	"context"
	"time"

	"card-tracker/internal/domain/card"
	"card-tracker/internal/domain/cardrequest"
	"card-tracker/internal/domain/coupon"
	"card-tracker/internal/domain/event"
	"card-tracker/internal/domain/submission"
	"card-tracker/internal/infra/db"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side validation reads.

type CardSnapshot struct {
	ID        uuid.UUID
	Title     string
	Recipient string
	Amount    int
	QRToken   string
	Status    string
	ExpiresAt *time.Time
	CreatedAt time.Time
}

type CouponSnapshot struct {
	ID       uuid.UUID
	Code     string
	Discount int
	UsesLeft int
}

type SubmissionSnapshot struct {
	ID     uuid.UUID
	CardID uuid.UUID
	Amount int
	Status string
}

type CardRequestSnapshot struct {
	ID     uuid.UUID
	Name   string
	Status string
}

type CommandReads interface {
	CardByID(ctx context.Context, id uuid.UUID) (*CardSnapshot, error)
	CardByToken(ctx context.Context, token string) (*CardSnapshot, error)
	CouponByCode(ctx context.Context, code string) (*CouponSnapshot, error)
	SubmissionByID(ctx context.Context, id uuid.UUID) (*SubmissionSnapshot, error)
	CardRequestByID(ctx context.Context, id uuid.UUID) (*CardRequestSnapshot, error)
	ConfigValue(ctx context.Context, key string) (string, error)
}

// Write repositories. Conditional updates report whether a row matched so
// the usecase can turn a stale-state write into a conflict instead of a
// silent no-op.

type CardRepository interface {
	Create(ctx context.Context, tx db.Executor, c *card.Card) (uuid.UUID, error)
	MarkRevoked(ctx context.Context, tx db.Executor, id uuid.UUID) (bool, error)
	DeleteRevoked(ctx context.Context, tx db.Executor, id uuid.UUID) (bool, error)
	// Debit decrements the balance atomically, guarded by amount >= delta.
	Debit(ctx context.Context, tx db.Executor, id uuid.UUID, amount int) (bool, error)
}

type CardRequestRepository interface {
	Create(ctx context.Context, tx db.Executor, r *cardrequest.CardRequest) (uuid.UUID, error)
	MarkApproved(ctx context.Context, tx db.Executor, id, cardID uuid.UUID, at time.Time) (bool, error)
	MarkDenied(ctx context.Context, tx db.Executor, id uuid.UUID, at time.Time) (bool, error)
}

type SubmissionRepository interface {
	Create(ctx context.Context, tx db.Executor, s *submission.Submission) (uuid.UUID, error)
	MarkApproved(ctx context.Context, tx db.Executor, id uuid.UUID, at time.Time) (bool, error)
	MarkDenied(ctx context.Context, tx db.Executor, id uuid.UUID, at time.Time) (bool, error)
}

type CouponRepository interface {
	Create(ctx context.Context, tx db.Executor, c *coupon.Coupon) (uuid.UUID, error)
	Delete(ctx context.Context, tx db.Executor, id uuid.UUID) (bool, error)
	// ConsumeUse decrements uses_left, guarded by uses_left > 0.
	ConsumeUse(ctx context.Context, tx db.Executor, id uuid.UUID) (bool, error)
}

// EventRecorder appends an audit record. Implementations log and swallow
// failures: the audit trail never rolls back a primary mutation.
type EventRecorder interface {
	Record(ctx context.Context, t event.Type, data map[string]any)
}

package repository

import (
	"context"
	"time"

	"card-tracker/internal/domain/card"
	"card-tracker/internal/infra"
	"card-tracker/internal/infra/db"

	"github.com/google/uuid"
)

type CardRepository struct{}

func NewCardRepository() *CardRepository {
	return &CardRepository{}
}

func (r *CardRepository) Create(ctx context.Context, tx db.Executor, c *card.Card) (uuid.UUID, error) {
	const q = `
		INSERT INTO cards (id, title, recipient, amount, qr_token, status, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id uuid.UUID
	var expiresAt *time.Time
	if c.ExpiresAt() != nil {
		t := *c.ExpiresAt()
		expiresAt = &t
	}

	err := tx.QueryRow(ctx, q,
		c.ID(),
		c.Title().String(),
		c.Recipient().String(),
		c.Amount().Int(),
		c.QRToken(),
		c.Status().String(),
		expiresAt,
		c.CreatedAt(),
	).Scan(&id)
	if err != nil {
		if infra.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("card token already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to insert card", err)
	}
	return id, nil
}

func (r *CardRepository) MarkRevoked(ctx context.Context, tx db.Executor, id uuid.UUID) (bool, error) {
	const q = `UPDATE cards SET status = 'revoked' WHERE id = $1 AND status = 'active'`

	tag, err := tx.Exec(ctx, q, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to revoke card", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *CardRepository) DeleteRevoked(ctx context.Context, tx db.Executor, id uuid.UUID) (bool, error) {
	// Guarded on status so an active voucher is never silently destroyed.
	const q = `DELETE FROM cards WHERE id = $1 AND status = 'revoked'`

	tag, err := tx.Exec(ctx, q, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete card", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *CardRepository) Debit(ctx context.Context, tx db.Executor, id uuid.UUID, amount int) (bool, error) {
	// Check-and-decrement in one statement closes the stale-balance window
	// between the submission-time check and admin approval.
	const q = `UPDATE cards SET amount = amount - $2 WHERE id = $1 AND amount >= $2`

	tag, err := tx.Exec(ctx, q, id, amount)
	if err != nil {
		return false, infra.WrapRepoErr("failed to debit card", err)
	}
	return tag.RowsAffected() > 0, nil
}

package repository

import (
	"context"
	"time"

	"card-tracker/internal/domain/cardrequest"
	"card-tracker/internal/infra"
	"card-tracker/internal/infra/db"

	"github.com/google/uuid"
)

type CardRequestRepository struct{}

func NewCardRequestRepository() *CardRequestRepository {
	return &CardRequestRepository{}
}

func (r *CardRequestRepository) Create(ctx context.Context, tx db.Executor, req *cardrequest.CardRequest) (uuid.UUID, error) {
	const q = `
		INSERT INTO card_requests (id, name, class, phone, email, reason, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	contact := req.Contact()

	var id uuid.UUID
	err := tx.QueryRow(ctx, q,
		req.ID(),
		req.Name(),
		req.Class(),
		contact.Phone,
		contact.Email,
		req.Reason(),
		req.Status().String(),
		req.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert card request", err)
	}
	return id, nil
}

func (r *CardRequestRepository) MarkApproved(ctx context.Context, tx db.Executor, id, cardID uuid.UUID, at time.Time) (bool, error) {
	const q = `
		UPDATE card_requests
		SET status = 'approved', card_id = $2, approved_at = $3
		WHERE id = $1 AND status = 'pending'`

	tag, err := tx.Exec(ctx, q, id, cardID, at)
	if err != nil {
		return false, infra.WrapRepoErr("failed to approve card request", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *CardRequestRepository) MarkDenied(ctx context.Context, tx db.Executor, id uuid.UUID, at time.Time) (bool, error) {
	const q = `
		UPDATE card_requests
		SET status = 'denied', denied_at = $2
		WHERE id = $1 AND status = 'pending'`

	tag, err := tx.Exec(ctx, q, id, at)
	if err != nil {
		return false, infra.WrapRepoErr("failed to deny card request", err)
	}
	return tag.RowsAffected() > 0, nil
}

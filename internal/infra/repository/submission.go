package repository

import (
	"context"
	"time"

	"card-tracker/internal/domain/submission"
	"card-tracker/internal/infra"
	"card-tracker/internal/infra/db"

	"github.com/google/uuid"
)

type SubmissionRepository struct{}

func NewSubmissionRepository() *SubmissionRepository {
	return &SubmissionRepository{}
}

func (r *SubmissionRepository) Create(ctx context.Context, tx db.Executor, s *submission.Submission) (uuid.UUID, error) {
	const q = `
		INSERT INTO submissions (
			id, card_id, card_title, card_recipient, class, assignment_type,
			amount_requested, original_amount, promo_code, promo_discount,
			phone, email, status, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`

	contact := s.Contact()

	var id uuid.UUID
	err := tx.QueryRow(ctx, q,
		s.ID(),
		s.CardID(),
		s.CardTitle(),
		s.CardRecipient(),
		s.Class(),
		s.Assignment(),
		s.Amount(),
		s.OriginalAmount(),
		s.PromoCode(),
		s.PromoDiscount(),
		contact.Phone,
		contact.Email,
		s.Status().String(),
		s.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert submission", err)
	}
	return id, nil
}

func (r *SubmissionRepository) MarkApproved(ctx context.Context, tx db.Executor, id uuid.UUID, at time.Time) (bool, error) {
	const q = `
		UPDATE submissions
		SET status = 'approved', approved_at = $2
		WHERE id = $1 AND status = 'pending'`

	tag, err := tx.Exec(ctx, q, id, at)
	if err != nil {
		return false, infra.WrapRepoErr("failed to approve submission", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *SubmissionRepository) MarkDenied(ctx context.Context, tx db.Executor, id uuid.UUID, at time.Time) (bool, error) {
	const q = `
		UPDATE submissions
		SET status = 'denied', denied_at = $2
		WHERE id = $1 AND status = 'pending'`

	tag, err := tx.Exec(ctx, q, id, at)
	if err != nil {
		return false, infra.WrapRepoErr("failed to deny submission", err)
	}
	return tag.RowsAffected() > 0, nil
}

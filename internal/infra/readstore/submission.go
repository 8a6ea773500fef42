package readstore

import (
	"context"

	"card-tracker/internal/infra"
	"card-tracker/internal/infra/db"
	"card-tracker/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SubmissionReadStore struct {
	db db.Executor
}

func NewSubmissionReadStore(db db.Executor) *SubmissionReadStore {
	return &SubmissionReadStore{db: db}
}

const submissionViewColumns = `
	id, card_id, card_title, card_recipient, class, assignment_type,
	amount_requested, original_amount, promo_code, promo_discount,
	phone, email, status, approved_at, denied_at, created_at`

func (s *SubmissionReadStore) ListAll(ctx context.Context, status *string) ([]*queries.SubmissionView, error) {
	q := `SELECT ` + submissionViewColumns + ` FROM submissions`
	args := []any{}
	if status != nil {
		q += ` WHERE status = $1`
		args = append(args, *status)
	}
	q += ` ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list submissions", err)
	}
	defer rows.Close()

	return collectSubmissionViews(rows)
}

func (s *SubmissionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SubmissionView, error) {
	q := `SELECT ` + submissionViewColumns + ` FROM submissions WHERE id = $1`

	var v queries.SubmissionView
	err := s.db.QueryRow(ctx, q, id).Scan(
		&v.ID, &v.CardID, &v.CardTitle, &v.CardRecipient, &v.Class, &v.AssignmentType,
		&v.AmountRequested, &v.OriginalAmount, &v.PromoCode, &v.PromoDiscount,
		&v.Phone, &v.Email, &v.Status, &v.ApprovedAt, &v.DeniedAt, &v.CreatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("submission not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find submission", err)
	}
	return &v, nil
}

func collectSubmissionViews(rows pgx.Rows) ([]*queries.SubmissionView, error) {
	views := make([]*queries.SubmissionView, 0)
	for rows.Next() {
		var v queries.SubmissionView
		if err := rows.Scan(
			&v.ID, &v.CardID, &v.CardTitle, &v.CardRecipient, &v.Class, &v.AssignmentType,
			&v.AmountRequested, &v.OriginalAmount, &v.PromoCode, &v.PromoDiscount,
			&v.Phone, &v.Email, &v.Status, &v.ApprovedAt, &v.DeniedAt, &v.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan submission row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate submission rows", err)
	}
	return views, nil
}

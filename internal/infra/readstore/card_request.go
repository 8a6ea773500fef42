package readstore

import (
	"context"

	"card-tracker/internal/infra"
	"card-tracker/internal/infra/db"
	"card-tracker/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CardRequestReadStore struct {
	db db.Executor
}

func NewCardRequestReadStore(db db.Executor) *CardRequestReadStore {
	return &CardRequestReadStore{db: db}
}

const cardRequestViewColumns = `
	id, name, class, phone, email, reason, status, card_id,
	approved_at, denied_at, created_at`

func (s *CardRequestReadStore) ListAll(ctx context.Context) ([]*queries.CardRequestView, error) {
	q := `SELECT ` + cardRequestViewColumns + ` FROM card_requests ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list card requests", err)
	}
	defer rows.Close()

	return collectCardRequestViews(rows)
}

func (s *CardRequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CardRequestView, error) {
	q := `SELECT ` + cardRequestViewColumns + ` FROM card_requests WHERE id = $1`

	var v queries.CardRequestView
	err := s.db.QueryRow(ctx, q, id).Scan(
		&v.ID, &v.Name, &v.Class, &v.Phone, &v.Email, &v.Reason, &v.Status, &v.CardID,
		&v.ApprovedAt, &v.DeniedAt, &v.CreatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("card request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find card request", err)
	}
	return &v, nil
}

func collectCardRequestViews(rows pgx.Rows) ([]*queries.CardRequestView, error) {
	views := make([]*queries.CardRequestView, 0)
	for rows.Next() {
		var v queries.CardRequestView
		if err := rows.Scan(
			&v.ID, &v.Name, &v.Class, &v.Phone, &v.Email, &v.Reason, &v.Status, &v.CardID,
			&v.ApprovedAt, &v.DeniedAt, &v.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan card request row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate card request rows", err)
	}
	return views, nil
}

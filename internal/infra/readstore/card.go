package readstore

import (
	"context"

	"card-tracker/internal/infra"
	"card-tracker/internal/infra/db"
	"card-tracker/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CardReadStore struct {
	db db.Executor
}

func NewCardReadStore(db db.Executor) *CardReadStore {
	return &CardReadStore{db: db}
}

const cardViewColumns = `id, title, recipient, amount, qr_token, status, expires_at, created_at`

func (s *CardReadStore) ListAll(ctx context.Context) ([]*queries.CardView, error) {
	q := `SELECT ` + cardViewColumns + ` FROM cards ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cards", err)
	}
	defer rows.Close()

	return collectCardViews(rows)
}

func (s *CardReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CardView, error) {
	q := `SELECT ` + cardViewColumns + ` FROM cards WHERE id = $1`
	return s.findOne(ctx, q, id)
}

func (s *CardReadStore) FindByToken(ctx context.Context, token string) (*queries.CardView, error) {
	q := `SELECT ` + cardViewColumns + ` FROM cards WHERE qr_token = $1`
	return s.findOne(ctx, q, token)
}

func (s *CardReadStore) findOne(ctx context.Context, q string, arg any) (*queries.CardView, error) {
	var v queries.CardView
	err := s.db.QueryRow(ctx, q, arg).Scan(
		&v.ID, &v.Title, &v.Recipient, &v.Amount, &v.QRToken, &v.Status, &v.ExpiresAt, &v.CreatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("card not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find card", err)
	}
	return &v, nil
}

func collectCardViews(rows pgx.Rows) ([]*queries.CardView, error) {
	views := make([]*queries.CardView, 0)
	for rows.Next() {
		var v queries.CardView
		if err := rows.Scan(
			&v.ID, &v.Title, &v.Recipient, &v.Amount, &v.QRToken, &v.Status, &v.ExpiresAt, &v.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan card row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate card rows", err)
	}
	return views, nil
}

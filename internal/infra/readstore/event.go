package readstore

import (
	"context"
	"encoding/json"

	"card-tracker/internal/infra"
	"card-tracker/internal/infra/db"
	"card-tracker/internal/usecase/queries"
)

type EventReadStore struct {
	db db.Executor
}

func NewEventReadStore(db db.Executor) *EventReadStore {
	return &EventReadStore{db: db}
}

func (s *EventReadStore) ListRecent(ctx context.Context, limit int) ([]*queries.EventView, error) {
	const q = `SELECT id, type, data, created_at FROM events ORDER BY created_at DESC LIMIT $1`

	rows, err := s.db.Query(ctx, q, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list events", err)
	}
	defer rows.Close()

	views := make([]*queries.EventView, 0, limit)
	for rows.Next() {
		var v queries.EventView
		var data []byte
		if err := rows.Scan(&v.ID, &v.Type, &data, &v.Timestamp); err != nil {
			return nil, infra.WrapRepoErr("failed to scan event row", err)
		}
		if len(data) > 0 {
			if err := json.Unmarshal(data, &v.Data); err != nil {
				return nil, infra.WrapRepoErr("failed to decode event data", err)
			}
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate event rows", err)
	}
	return views, nil
}

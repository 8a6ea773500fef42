package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"card-tracker/internal/domain/event"
	"card-tracker/internal/infra/db"
	"card-tracker/internal/pkg/clock"

	"github.com/google/uuid"
)

// EventRecorder appends audit records outside the caller's transaction.
// A failed append is logged and dropped: the audit trail must never undo
// or block the mutation it describes.
type EventRecorder struct {
	db    db.Executor
	clock clock.Clock
}

func NewEventRecorder(pool db.Executor, clk clock.Clock) *EventRecorder {
	return &EventRecorder{db: pool, clock: clk}
}

func (r *EventRecorder) Record(ctx context.Context, t event.Type, data map[string]any) {
	payload, err := json.Marshal(data)
	if err != nil {
		slog.Warn("failed to marshal event payload", "type", t.String(), "error", err)
		return
	}

	const q = `INSERT INTO events (id, type, data, created_at) VALUES ($1, $2, $3, $4)`

	if _, err := r.db.Exec(ctx, q, uuid.New(), t.String(), payload, r.clock.Now()); err != nil {
		slog.Warn("failed to record event", "type", t.String(), "error", err)
	}
}

package queries

import "context"

const MaxEventLogLimit = 500

type EventReadStore interface {
	ListRecent(ctx context.Context, limit int) ([]*EventView, error)
}

type EventQueries interface {
	// ListRecent returns events newest first, capped at limit.
	ListRecent(ctx context.Context, limit int) ([]*EventView, error)
}

type eventQueriesImpl struct {
	readStore    EventReadStore
	defaultLimit int
}

func NewEventQueries(readStore EventReadStore, defaultLimit int) EventQueries {
	return &eventQueriesImpl{readStore: readStore, defaultLimit: defaultLimit}
}

func (q *eventQueriesImpl) ListRecent(ctx context.Context, limit int) ([]*EventView, error) {
	if limit <= 0 {
		limit = q.defaultLimit
	}
	if limit > MaxEventLogLimit {
		limit = MaxEventLogLimit
	}
	return q.readStore.ListRecent(ctx, limit)
}

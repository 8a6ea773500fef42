package response

import (
	"time"

	"card-tracker/internal/usecase/queries"

	"github.com/google/uuid"
)

type EventResponse struct {
	ID        uuid.UUID      `json:"id"`
	Type      string         `json:"type"`
	Data      map[string]any `json:"data"`
	Timestamp time.Time      `json:"timestamp"`
}

func FromEventView(v *queries.EventView) *EventResponse {
	return &EventResponse{
		ID:        v.ID,
		Type:      v.Type,
		Data:      v.Data,
		Timestamp: v.Timestamp,
	}
}

func FromEventViews(views []*queries.EventView) []*EventResponse {
	out := make([]*EventResponse, len(views))
	for i, v := range views {
		out[i] = FromEventView(v)
	}
	return out
}

package response

import (
	"time"

	"card-tracker/internal/usecase/queries"

	"github.com/google/uuid"
)

type CardRequestResponse struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Class      string     `json:"class"`
	Phone      *string    `json:"phone,omitempty"`
	Email      *string    `json:"email,omitempty"`
	Reason     *string    `json:"reason,omitempty"`
	Status     string     `json:"status"`
	CardID     *uuid.UUID `json:"cardId,omitempty"`
	ApprovedAt *time.Time `json:"approvedAt,omitempty"`
	DeniedAt   *time.Time `json:"deniedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

func FromCardRequestView(v *queries.CardRequestView) *CardRequestResponse {
	return &CardRequestResponse{
		ID:         v.ID,
		Name:       v.Name,
		Class:      v.Class,
		Phone:      v.Phone,
		Email:      v.Email,
		Reason:     v.Reason,
		Status:     v.Status,
		CardID:     v.CardID,
		ApprovedAt: v.ApprovedAt,
		DeniedAt:   v.DeniedAt,
		CreatedAt:  v.CreatedAt,
	}
}

func FromCardRequestViews(views []*queries.CardRequestView) []*CardRequestResponse {
	out := make([]*CardRequestResponse, len(views))
	for i, v := range views {
		out[i] = FromCardRequestView(v)
	}
	return out
}

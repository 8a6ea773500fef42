package response

import (
	"time"

	"card-tracker/internal/usecase/queries"

	"github.com/google/uuid"
)

type CardResponse struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Recipient string     `json:"recipient"`
	Amount    int        `json:"amount"`
	QRToken   string     `json:"qrToken"`
	Status    string     `json:"status"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func FromCardView(v *queries.CardView) *CardResponse {
	return &CardResponse{
		ID:        v.ID,
		Title:     v.Title,
		Recipient: v.Recipient,
		Amount:    v.Amount,
		QRToken:   v.QRToken,
		Status:    v.Status,
		ExpiresAt: v.ExpiresAt,
		CreatedAt: v.CreatedAt,
	}
}

func FromCardViews(views []*queries.CardView) []*CardResponse {
	out := make([]*CardResponse, len(views))
	for i, v := range views {
		out[i] = FromCardView(v)
	}
	return out
}

// ResolvedCardResponse is the public shape returned on QR resolution: no
// admin-only fields, just what the submission form needs.
type ResolvedCardResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Recipient string    `json:"recipient"`
	Amount    int       `json:"amount"`
}

func FromResolvedCardView(v *queries.CardView) *ResolvedCardResponse {
	return &ResolvedCardResponse{
		ID:        v.ID,
		Title:     v.Title,
		Recipient: v.Recipient,
		Amount:    v.Amount,
	}
}

package response

import (
	"time"

	"card-tracker/internal/usecase/queries"

	"github.com/google/uuid"
)

type SubmissionResponse struct {
	ID              uuid.UUID  `json:"id"`
	CardID          uuid.UUID  `json:"cardId"`
	CardTitle       string     `json:"cardTitle"`
	CardRecipient   string     `json:"cardRecipient"`
	Class           string     `json:"class"`
	AssignmentType  string     `json:"assignmentType"`
	AmountRequested int        `json:"amountRequested"`
	OriginalAmount  int        `json:"originalAmount"`
	PromoCode       *string    `json:"promoCode,omitempty"`
	PromoDiscount   int        `json:"promoDiscount"`
	Phone           *string    `json:"phone,omitempty"`
	Email           *string    `json:"email,omitempty"`
	Status          string     `json:"status"`
	ApprovedAt      *time.Time `json:"approvedAt,omitempty"`
	DeniedAt        *time.Time `json:"deniedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

func FromSubmissionView(v *queries.SubmissionView) *SubmissionResponse {
	return &SubmissionResponse{
		ID:              v.ID,
		CardID:          v.CardID,
		CardTitle:       v.CardTitle,
		CardRecipient:   v.CardRecipient,
		Class:           v.Class,
		AssignmentType:  v.AssignmentType,
		AmountRequested: v.AmountRequested,
		OriginalAmount:  v.OriginalAmount,
		PromoCode:       v.PromoCode,
		PromoDiscount:   v.PromoDiscount,
		Phone:           v.Phone,
		Email:           v.Email,
		Status:          v.Status,
		ApprovedAt:      v.ApprovedAt,
		DeniedAt:        v.DeniedAt,
		CreatedAt:       v.CreatedAt,
	}
}

func FromSubmissionViews(views []*queries.SubmissionView) []*SubmissionResponse {
	out := make([]*SubmissionResponse, len(views))
	for i, v := range views {
		out[i] = FromSubmissionView(v)
	}
	return out
}

// StatusResponse is the public lookup shape: enough for an applicant to
// check where their submission or card request stands, nothing more.
type StatusResponse struct {
	ID     uuid.UUID `json:"id"`
	Type   string    `json:"type"`
	Status string    `json:"status"`
}

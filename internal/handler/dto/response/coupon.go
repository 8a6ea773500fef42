package response

import (
	"time"

	"card-tracker/internal/usecase/queries"
	"card-tracker/internal/usecase/shared"

	"github.com/google/uuid"
)

type CouponResponse struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Discount  int       `json:"discount"`
	UsesLeft  int       `json:"usesLeft"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromCouponView(v *queries.CouponView) *CouponResponse {
	return &CouponResponse{
		ID:        v.ID,
		Code:      v.Code,
		Discount:  v.Discount,
		UsesLeft:  v.UsesLeft,
		CreatedAt: v.CreatedAt,
	}
}

func FromCouponViews(views []*queries.CouponView) []*CouponResponse {
	out := make([]*CouponResponse, len(views))
	for i, v := range views {
		out[i] = FromCouponView(v)
	}
	return out
}

type CouponValidationResponse struct {
	Valid    bool   `json:"valid"`
	Code     string `json:"code"`
	Discount int    `json:"discount"`
}

func FromCouponSnapshot(s *shared.CouponSnapshot) *CouponValidationResponse {
	return &CouponValidationResponse{
		Valid:    true,
		Code:     s.Code,
		Discount: s.Discount,
	}
}

package request

type CreateCouponRequest struct {
	Code     string `json:"code" binding:"required"`
	Discount int    `json:"discount" binding:"required,gt=0"`
	Uses     int    `json:"uses" binding:"required,gt=0"`
}

type ValidateCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

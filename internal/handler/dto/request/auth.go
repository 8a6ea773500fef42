package request

type LoginRequest struct {
	SecurityKey string `json:"securityKey" binding:"required"`
}

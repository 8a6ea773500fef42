package request

type CreateCardRequestRequest struct {
	Name   string `json:"name" binding:"required"`
	Class  string `json:"class" binding:"required"`
	Phone  string `json:"phone"`
	Email  string `json:"email" binding:"omitempty,email"`
	Reason string `json:"reason"`
}

type ApproveCardRequestRequest struct {
	Amount int `json:"amount" binding:"required,gt=0"`
}

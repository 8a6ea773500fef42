package request

type CreateSubmissionRequest struct {
	QRToken        string `json:"qrToken" binding:"required"`
	Class          string `json:"class" binding:"required"`
	AssignmentType string `json:"assignmentType" binding:"required"`
	Amount         int    `json:"amount" binding:"required,gt=0"`
	PromoCode      string `json:"promoCode"`
	Phone          string `json:"phone"`
	Email          string `json:"email" binding:"omitempty,email"`
}

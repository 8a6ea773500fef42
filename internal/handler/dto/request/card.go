package request

import "time"

type CreateCardRequest struct {
	Title     string     `json:"title" binding:"required"`
	Recipient string     `json:"recipient" binding:"required"`
	Amount    int        `json:"amount" binding:"required,gt=0"`
	ExpiresAt *time.Time `json:"expiresAt"`
}

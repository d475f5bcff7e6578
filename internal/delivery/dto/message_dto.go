package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendMessageRequest struct {
	FirstName string `json:"firstName" validate:"required,min=2"`
	LastName  string `json:"lastName" validate:"required,min=2"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,len=10,numeric"`
	Message   string `json:"message" validate:"required,min=10"`
}

type MessageResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type MessageListResponse struct {
	Success  bool              `json:"success"`
	Messages []MessageResponse `json:"messages"`
}

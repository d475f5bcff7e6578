package handler

import (
	"encoding/json"
	"net/http"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/response"
	"hospital-management-api/pkg/validator"
)

type MessageHandler struct {
	messageUsecase usecase.MessageUsecase
	validator      *validator.CustomValidator
}

func NewMessageHandler(messageUsecase usecase.MessageUsecase, validator *validator.CustomValidator) *MessageHandler {
	return &MessageHandler{
		messageUsecase: messageUsecase,
		validator:      validator,
	}
}

// Send accepts a contact-form submission from any visitor.
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req dto.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if _, err := h.messageUsecase.Send(r.Context(), &req); err != nil {
		response.InternalServerError(w, "Failed to send message")
		return
	}

	response.JSON(w, http.StatusCreated, dto.StatusResponse{
		Success: true,
		Message: "Message Sent Successfully!",
	})
}

// GetAll lists every contact-form submission for the dashboard.
func (h *MessageHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	messages, err := h.messageUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list messages")
		return
	}

	response.JSON(w, http.StatusOK, messages)
}

package converter

import (
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
)

func MessageToResponse(message *entity.Message) *dto.MessageResponse {
	if message == nil {
		return nil
	}

	return &dto.MessageResponse{
		ID:        message.ID,
		FirstName: message.FirstName,
		LastName:  message.LastName,
		Email:     message.Email,
		Phone:     message.Phone,
		Message:   message.Message,
		CreatedAt: message.CreatedAt,
	}
}

func MessagesToResponses(messages []entity.Message) []dto.MessageResponse {
	responses := make([]dto.MessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, *MessageToResponse(&messages[i]))
	}
	return responses
}

package usecase

import (
	"context"

	"hospital-management-api/internal/converter"
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type MessageUsecase interface {
	Send(ctx context.Context, req *dto.SendMessageRequest) (*dto.MessageResponse, error)
	GetAll(ctx context.Context) (*dto.MessageListResponse, error)
}

type messageUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	messageRepo repository.MessageRepository
}

func NewMessageUsecase(db *gorm.DB, log *logrus.Logger, messageRepo repository.MessageRepository) MessageUsecase {
	return &messageUsecase{
		db:          db,
		log:         log,
		messageRepo: messageRepo,
	}
}

func (u *messageUsecase) Send(ctx context.Context, req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	message := &entity.Message{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
	}

	if err := u.messageRepo.Create(u.db.WithContext(ctx), message); err != nil {
		u.log.Warnf("Failed to store message: %+v", err)
		return nil, err
	}

	return converter.MessageToResponse(message), nil
}

func (u *messageUsecase) GetAll(ctx context.Context) (*dto.MessageListResponse, error) {
	messages, err := u.messageRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list messages: %+v", err)
		return nil, err
	}

	return &dto.MessageListResponse{
		Success:  true,
		Messages: converter.MessagesToResponses(messages),
	}, nil
}

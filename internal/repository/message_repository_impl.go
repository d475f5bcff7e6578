package repository

import (
	"hospital-management-api/internal/domain/entity"
	domainRepo "hospital-management-api/internal/domain/repository"

	"gorm.io/gorm"
)

type messageRepository struct{}

func NewMessageRepository() domainRepo.MessageRepository {
	return &messageRepository{}
}

func (r *messageRepository) Create(db *gorm.DB, message *entity.Message) error {
	return db.Create(message).Error
}

func (r *messageRepository) FindAll(db *gorm.DB) ([]entity.Message, error) {
	var messages []entity.Message
	err := db.Order("created_at DESC").Find(&messages).Error
	return messages, err
}

package repository

import (
	"hospital-management-api/internal/domain/entity"

	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(db *gorm.DB, message *entity.Message) error
	FindAll(db *gorm.DB) ([]entity.Message, error)
}

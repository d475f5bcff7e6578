package repository

import (
	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentRepository persists appointment records. Only the status column
// is updatable; the identity references are written once at creation.
type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindAll(db *gorm.DB) ([]entity.Appointment, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) error
	Delete(db *gorm.DB, id uuid.UUID) error
}

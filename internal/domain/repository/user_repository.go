package repository

import (
	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository persists account records. Implementations return (nil, nil)
// when a lookup matches no row.
type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	FindByEmailAndPhone(db *gorm.DB, email, phone string) (*entity.User, error)
	FindDoctors(db *gorm.DB) ([]entity.User, error)
	FindDoctorsByNameAndDepartment(db *gorm.DB, firstName, lastName, department string) ([]entity.User, error)
}

package repository

import (
	"errors"

	"hospital-management-api/internal/domain/entity"
	domainRepo "hospital-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepository struct{}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(db *gorm.DB, user *entity.User) error {
	return db.Create(user).Error
}

func (r *userRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	err := db.Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	var user entity.User
	err := db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmailAndPhone(db *gorm.DB, email, phone string) (*entity.User, error) {
	var user entity.User
	err := db.Where("email = ? AND phone = ?", email, phone).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindDoctors(db *gorm.DB) ([]entity.User, error) {
	var doctors []entity.User
	err := db.Where("role = ?", entity.RoleDoctor).Order("created_at").Find(&doctors).Error
	return doctors, err
}

func (r *userRepository) FindDoctorsByNameAndDepartment(db *gorm.DB, firstName, lastName, department string) ([]entity.User, error) {
	var doctors []entity.User
	err := db.
		Where("first_name = ? AND last_name = ? AND role = ? AND doctor_department = ?",
			firstName, lastName, entity.RoleDoctor, department).
		Find(&doctors).Error
	return doctors, err
}

package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterPatientRequest struct {
	FirstName    string `json:"firstName" validate:"required,min=2"`
	LastName     string `json:"lastName" validate:"required,min=2"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required,len=10,numeric"`
	Password     string `json:"password" validate:"required,min=8"`
	Gender       string `json:"gender" validate:"required,oneof=Male Female"`
	AadharNumber string `json:"aadhar_number" validate:"required,len=12,numeric"`
	DateOfBirth  string `json:"dob" validate:"required"` // Format: YYYY-MM-DD
}

type LoginRequest struct {
	Role            string `json:"role" validate:"required,oneof=Admin Patient Doctor"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

type CreateAdminRequest struct {
	FirstName    string `json:"firstName" validate:"required,min=2"`
	LastName     string `json:"lastName" validate:"required,min=2"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required,len=10,numeric"`
	Password     string `json:"password" validate:"required,min=8"`
	Gender       string `json:"gender" validate:"required,oneof=Male Female"`
	AadharNumber string `json:"aadhar_number" validate:"required,len=12,numeric"`
	DateOfBirth  string `json:"dob" validate:"required"`
}

// CreateDoctorRequest arrives as a multipart form together with the docAvatar
// file; the handler copies the form values in before validation.
type CreateDoctorRequest struct {
	FirstName        string `json:"firstName" validate:"required,min=2"`
	LastName         string `json:"lastName" validate:"required,min=2"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone" validate:"required,len=10,numeric"`
	Password         string `json:"password" validate:"required,min=8"`
	Gender           string `json:"gender" validate:"required,oneof=Male Female"`
	AadharNumber     string `json:"aadhar_number" validate:"required,len=12,numeric"`
	DateOfBirth      string `json:"dob" validate:"required"`
	DoctorDepartment string `json:"doctorDepartment" validate:"required"`
}

// Response DTOs

type AvatarResponse struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}

type UserResponse struct {
	ID               uuid.UUID       `json:"id"`
	FirstName        string          `json:"firstName"`
	LastName         string          `json:"lastName"`
	Email            string          `json:"email"`
	Phone            string          `json:"phone"`
	AadharNumber     string          `json:"aadhar_number,omitempty"`
	Gender           string          `json:"gender"`
	DateOfBirth      string          `json:"dob"`
	Role             string          `json:"role"`
	DocAvatar        *AvatarResponse `json:"docAvatar,omitempty"`
	DoctorDepartment string          `json:"doctorDepartment,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// AuthResponse is the flat login/registration shape; the session token is also
// carried in the role-named cookie.
type AuthResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	User    *UserResponse `json:"user"`
	Token   string        `json:"token"`
}

type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type DoctorCreatedResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Doctor  *UserResponse `json:"doctor"`
}

type DoctorListResponse struct {
	Success bool           `json:"success"`
	Doctors []UserResponse `json:"doctors"`
}

// CurrentUserResponse mirrors the /me shape; the key is "users" even though it
// carries a single record.
type CurrentUserResponse struct {
	Success bool          `json:"success"`
	Users   *UserResponse `json:"users"`
}

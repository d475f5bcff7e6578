package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	FirstName       string `json:"firstName" validate:"required,min=2"`
	LastName        string `json:"lastName" validate:"required,min=2"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,len=10,numeric"`
	AadharNumber    string `json:"aadhar_number" validate:"required,len=12,numeric"`
	Gender          string `json:"gender" validate:"required,oneof=Male Female"`
	DateOfBirth     string `json:"dob" validate:"required"`
	AppointmentDate string `json:"appointment_date" validate:"required"`
	Department      string `json:"department" validate:"required"`
	DoctorFirstName string `json:"doctor_firstName" validate:"required"`
	DoctorLastName  string `json:"doctor_lastName" validate:"required"`
	HasVisited      bool   `json:"hasVisited"`
	Address         string `json:"address" validate:"required"`
}

// UpdateAppointmentStatusRequest deliberately whitelists the status field:
// identity references and the patient snapshot are immutable after creation.
type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Accepted Rejected"`
}

type AppointmentResponse struct {
	ID              uuid.UUID `json:"id"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	AadharNumber    string    `json:"aadhar_number"`
	Gender          string    `json:"gender"`
	DateOfBirth     string    `json:"dob"`
	AppointmentDate string    `json:"appointment_date"`
	Department      string    `json:"department"`
	DoctorFirstName string    `json:"doctor_firstName"`
	DoctorLastName  string    `json:"doctor_lastName"`
	HasVisited      bool      `json:"hasVisited"`
	Address         string    `json:"address"`
	DoctorID        uuid.UUID `json:"doctorId"`
	PatientID       uuid.UUID `json:"patientId"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type AppointmentCreatedResponse struct {
	Success     bool                 `json:"success"`
	Message     string               `json:"message"`
	Appointment *AppointmentResponse `json:"appointment"`
}

// AppointmentListResponse keeps the singular "appointment" key of the
// dashboard contract.
type AppointmentListResponse struct {
	Success     bool                  `json:"success"`
	Appointment []AppointmentResponse `json:"appointment"`
}

type AppointmentUpdatedResponse struct {
	Success     bool                 `json:"success"`
	Message     string               `json:"message"`
	Appointment *AppointmentResponse `json:"appointment"`
}

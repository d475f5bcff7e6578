package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the review state of an appointment request.
type AppointmentStatus string

const (
	AppointmentStatusPending  AppointmentStatus = "Pending"
	AppointmentStatusAccepted AppointmentStatus = "Accepted"
	AppointmentStatusRejected AppointmentStatus = "Rejected"
)

// Appointment is a booking request linking a patient to a doctor. The patient
// demographics and the doctor name are snapshotted at creation time; only the
// status is mutable afterwards.
type Appointment struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FirstName    string    `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName     string    `gorm:"type:varchar(100);not null" json:"lastName"`
	Email        string    `gorm:"type:varchar(255);not null" json:"email"`
	Phone        string    `gorm:"type:varchar(10);not null" json:"phone"`
	AadharNumber string    `gorm:"type:char(12);not null" json:"aadhar_number"`
	Gender       string    `gorm:"type:varchar(6);not null" json:"gender"`
	DateOfBirth  time.Time `gorm:"type:date;not null" json:"dob"`

	AppointmentDate string `gorm:"type:varchar(30);not null" json:"appointment_date"`
	Department      string `gorm:"type:varchar(100);not null" json:"department"`
	DoctorFirstName string `gorm:"type:varchar(100);not null" json:"doctor_firstName"`
	DoctorLastName  string `gorm:"type:varchar(100);not null" json:"doctor_lastName"`
	HasVisited      bool   `gorm:"not null;default:false" json:"hasVisited"`
	Address         string `gorm:"type:text;not null" json:"address"`

	DoctorID  uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctorId"`
	PatientID uuid.UUID         `gorm:"type:uuid;not null;index" json:"patientId"`
	Status    AppointmentStatus `gorm:"type:varchar(10);not null;default:'Pending';index" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsPending reports whether the appointment still awaits an admin decision.
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

// ValidStatus reports whether s is one of the accepted status values.
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusAccepted, AppointmentStatusRejected:
		return true
	}
	return false
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a single account record. Admins, patients and doctors share
// one table and are told apart by Role; the avatar and department columns are
// only populated for doctors.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FirstName    string    `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName     string    `gorm:"type:varchar(100);not null" json:"lastName"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email_phone" json:"email"`
	Phone        string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_users_email_phone" json:"phone"`
	AadharNumber string    `gorm:"type:char(12)" json:"aadhar_number,omitempty"`
	Gender       string    `gorm:"type:varchar(6);not null" json:"gender"`
	DateOfBirth  time.Time `gorm:"type:date;not null" json:"dob"`
	Password     string    `gorm:"type:text;not null" json:"-"`
	Role         string    `gorm:"type:varchar(10);not null;index" json:"role"`

	// Doctor-only columns.
	AvatarPublicID   string `gorm:"type:varchar(255)" json:"-"`
	AvatarURL        string `gorm:"type:text" json:"-"`
	DoctorDepartment string `gorm:"type:varchar(100);index" json:"doctorDepartment,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// Role constants
const (
	RoleAdmin   = "Admin"
	RolePatient = "Patient"
	RoleDoctor  = "Doctor"
)

// Gender constants
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// IsDoctor reports whether the record is a doctor account.
func (u *User) IsDoctor() bool {
	return u.Role == RoleDoctor
}

// FullName joins the stored first and last name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

package usecase

import (
	"context"
	"errors"
	"time"

	"hospital-management-api/internal/converter"
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	// ErrDoctorNotFound: the name+department lookup matched no doctor.
	ErrDoctorNotFound = errors.New("doctor not found")
	// ErrDoctorConflict: more than one doctor matched, the booking is ambiguous.
	ErrDoctorConflict      = errors.New("doctor conflict")
	ErrAppointmentNotFound = errors.New("appointment not found")
)

type AppointmentUsecase interface {
	Create(ctx context.Context, patient *entity.User, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAll(ctx context.Context) (*dto.AppointmentListResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	userRepo        repository.UserRepository
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	userRepo repository.UserRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		userRepo:        userRepo,
	}
}

// Create books an appointment for the authenticated patient. The doctor is
// resolved by exact match on first name, last name and department; zero
// matches and ambiguous matches both refuse the booking. The lookup and the
// insert are not wrapped in a transaction; the window is accepted.
func (u *appointmentUsecase) Create(ctx context.Context, patient *entity.User, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	doctors, err := u.userRepo.FindDoctorsByNameAndDepartment(db, req.DoctorFirstName, req.DoctorLastName, req.Department)
	if err != nil {
		u.log.Warnf("Failed to resolve doctor: %+v", err)
		return nil, err
	}
	if len(doctors) == 0 {
		return nil, ErrDoctorNotFound
	}
	if len(doctors) > 1 {
		return nil, ErrDoctorConflict
	}

	appointment := &entity.Appointment{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		AadharNumber:    req.AadharNumber,
		Gender:          req.Gender,
		DateOfBirth:     dob,
		AppointmentDate: req.AppointmentDate,
		Department:      req.Department,
		DoctorFirstName: req.DoctorFirstName,
		DoctorLastName:  req.DoctorLastName,
		HasVisited:      req.HasVisited,
		Address:         req.Address,
		DoctorID:        doctors[0].ID,
		PatientID:       patient.ID,
		Status:          entity.AppointmentStatusPending,
	}

	if err := u.appointmentRepo.Create(db, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment created: id=%s, doctor=%s, patient=%s", appointment.ID, appointment.DoctorID, appointment.PatientID)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAll(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Success:     true,
		Appointment: converter.AppointmentsToResponses(appointments),
	}, nil
}

// UpdateStatus replaces the status field and nothing else. The rest of the
// record, including the identity references, is immutable after creation.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	status := entity.AppointmentStatus(req.Status)
	if err := u.appointmentRepo.UpdateStatus(db, id, status); err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", id, err)
		return nil, err
	}

	// Re-read so the response carries the database-assigned updated_at.
	updated, err := u.appointmentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", id, err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrAppointmentNotFound
	}

	u.log.Infof("Appointment status updated: id=%s, status=%s", id, status)
	return converter.AppointmentToResponse(updated), nil
}

func (u *appointmentUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	if err := u.appointmentRepo.Delete(db, id); err != nil {
		u.log.Warnf("Failed to delete appointment %s: %+v", id, err)
		return err
	}

	u.log.Infof("Appointment deleted: id=%s", id)
	return nil
}

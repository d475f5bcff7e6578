package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"hospital-management-api/internal/converter"
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
	"hospital-management-api/internal/service"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserAlreadyExists      = errors.New("user already registered")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrPasswordMismatch       = errors.New("password and confirm password don't match")
	ErrRoleMismatch           = errors.New("user role doesn't match")
	ErrInvalidDateFormat      = errors.New("invalid date format, use YYYY-MM-DD")
	ErrAvatarUpload           = errors.New("avatar upload failed")
)

// AvatarUpload carries the buffered doctor avatar from the multipart request
// into the upload relay.
type AvatarUpload struct {
	Filename    string
	ContentType string
	File        io.Reader
}

type UserUsecase interface {
	RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, error)
	CreateAdmin(ctx context.Context, req *dto.CreateAdminRequest) (*dto.UserResponse, error)
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest, avatar *AvatarUpload) (*dto.UserResponse, error)
	GetDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
}

type userUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	userRepo    repository.UserRepository
	uploader    service.AssetUploader
	doctorCache *service.DoctorCache
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	uploader service.AssetUploader,
	doctorCache *service.DoctorCache,
) UserUsecase {
	return &userUsecase{
		db:          db,
		log:         log,
		userRepo:    userRepo,
		uploader:    uploader,
		doctorCache: doctorCache,
	}
}

// RegisterPatient creates a patient account. Registration is refused only when
// both the email and the phone match an existing record; the same email with a
// different phone is allowed here.
func (u *userUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.UserResponse, error) {
	db := u.db.WithContext(ctx)

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	existing, err := u.userRepo.FindByEmailAndPhone(db, req.Email, req.Phone)
	if err != nil {
		u.log.Warnf("Failed to check existing registration: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		AadharNumber: req.AadharNumber,
		Gender:       req.Gender,
		DateOfBirth:  dob,
		Password:     string(hashedPassword),
		Role:         entity.RolePatient,
	}

	if err := u.userRepo.Create(db, user); err != nil {
		if isDuplicateKeyError(err, "email_phone") {
			return nil, ErrUserAlreadyExists
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

// Login authenticates a user for the requested role. The confirm-password
// check runs before the hash comparison, so a mismatch fails even when the
// password itself is correct.
func (u *userUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, error) {
	db := u.db.WithContext(ctx)

	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	user, err := u.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if user.Role != req.Role {
		return nil, ErrRoleMismatch
	}

	return converter.UserToResponse(user), nil
}

// CreateAdmin creates an admin account. Unlike patient self-registration, the
// email alone must be unused, whatever role holds it.
func (u *userUsecase) CreateAdmin(ctx context.Context, req *dto.CreateAdminRequest) (*dto.UserResponse, error) {
	db := u.db.WithContext(ctx)

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	existing, err := u.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		u.log.Warnf("Failed to check existing email: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyRegistered
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	admin := &entity.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		AadharNumber: req.AadharNumber,
		Gender:       req.Gender,
		DateOfBirth:  dob,
		Password:     string(hashedPassword),
		Role:         entity.RoleAdmin,
	}

	if err := u.userRepo.Create(db, admin); err != nil {
		if isDuplicateKeyError(err, "email_phone") {
			return nil, ErrEmailAlreadyRegistered
		}
		u.log.Warnf("Failed to create admin: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(admin), nil
}

// CreateDoctor relays the avatar to the asset host first and aborts on any
// upstream failure: a doctor record is never persisted with an empty avatar
// reference.
func (u *userUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest, avatar *AvatarUpload) (*dto.UserResponse, error) {
	db := u.db.WithContext(ctx)

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	existing, err := u.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		u.log.Warnf("Failed to check existing email: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyRegistered
	}

	ref, err := u.uploader.Upload(ctx, avatar.Filename, avatar.ContentType, avatar.File)
	if err != nil {
		u.log.Warnf("Avatar upload failed for %s: %+v", req.Email, err)
		return nil, fmt.Errorf("%w: %v", ErrAvatarUpload, err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	doctor := &entity.User{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		AadharNumber:     req.AadharNumber,
		Gender:           req.Gender,
		DateOfBirth:      dob,
		Password:         string(hashedPassword),
		Role:             entity.RoleDoctor,
		AvatarPublicID:   ref.PublicID,
		AvatarURL:        ref.URL,
		DoctorDepartment: req.DoctorDepartment,
	}

	if err := u.userRepo.Create(db, doctor); err != nil {
		if isDuplicateKeyError(err, "email_phone") {
			return nil, ErrEmailAlreadyRegistered
		}
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	u.doctorCache.Invalidate(ctx)
	u.log.Infof("Doctor created: id=%s, department=%s", doctor.ID, doctor.DoctorDepartment)

	return converter.UserToResponse(doctor), nil
}

// GetDoctors serves the public doctor listing through the redis cache.
func (u *userUsecase) GetDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	if doctors, ok := u.doctorCache.Get(ctx); ok {
		return &dto.DoctorListResponse{
			Success: true,
			Doctors: converter.UsersToResponses(doctors),
		}, nil
	}

	doctors, err := u.userRepo.FindDoctors(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	u.doctorCache.Set(ctx, doctors)

	return &dto.DoctorListResponse{
		Success: true,
		Doctors: converter.UsersToResponses(doctors),
	}, nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

package usecase

import (
	"context"
	"io"
	"time"

	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/service"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// testDB is enough for WithContext chaining; the repos behind it are mocked.
func newTestDB() *gorm.DB {
	return &gorm.DB{Config: &gorm.Config{}, Statement: &gorm.Statement{}}
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// newUnreachableCache returns a DoctorCache whose redis client cannot connect.
// Every call degrades to a miss, which is exactly the fallback path the
// usecase tests exercise.
func newUnreachableCache() *service.DoctorCache {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 10 * time.Millisecond})
	return service.NewDoctorCache(client, time.Minute, newTestLogger())
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(db *gorm.DB, user *entity.User) error {
	args := m.Called(db, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	args := m.Called(db, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmailAndPhone(db *gorm.DB, email, phone string) (*entity.User, error) {
	args := m.Called(db, email, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindDoctors(db *gorm.DB) ([]entity.User, error) {
	args := m.Called(db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *MockUserRepository) FindDoctorsByNameAndDepartment(db *gorm.DB, firstName, lastName, department string) ([]entity.User, error) {
	args := m.Called(db, firstName, lastName, department)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	args := m.Called(db, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) FindAll(db *gorm.DB) ([]entity.Appointment, error) {
	args := m.Called(db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) error {
	args := m.Called(db, id, status)
	return args.Error(0)
}

func (m *MockAppointmentRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	args := m.Called(db, id)
	return args.Error(0)
}

type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(db *gorm.DB, message *entity.Message) error {
	args := m.Called(db, message)
	return args.Error(0)
}

func (m *MockMessageRepository) FindAll(db *gorm.DB) ([]entity.Message, error) {
	args := m.Called(db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Message), args.Error(1)
}

type MockAssetUploader struct {
	mock.Mock
}

func (m *MockAssetUploader) Upload(ctx context.Context, filename, contentType string, file io.Reader) (*service.AssetRef, error) {
	args := m.Called(ctx, filename, contentType, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AssetRef), args.Error(1)
}

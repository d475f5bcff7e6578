package handler

import (
	"context"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.UserResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserResponse), args.Error(1)
}

func (m *MockUserUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserResponse), args.Error(1)
}

func (m *MockUserUsecase) CreateAdmin(ctx context.Context, req *dto.CreateAdminRequest) (*dto.UserResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserResponse), args.Error(1)
}

func (m *MockUserUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest, avatar *usecase.AvatarUpload) (*dto.UserResponse, error) {
	args := m.Called(ctx, req, avatar)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserResponse), args.Error(1)
}

func (m *MockUserUsecase) GetDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DoctorListResponse), args.Error(1)
}

type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) Create(ctx context.Context, patient *entity.User, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	args := m.Called(ctx, patient, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AppointmentResponse), args.Error(1)
}

func (m *MockAppointmentUsecase) GetAll(ctx context.Context) (*dto.AppointmentListResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AppointmentListResponse), args.Error(1)
}

func (m *MockAppointmentUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AppointmentResponse), args.Error(1)
}

func (m *MockAppointmentUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMessageUsecase struct {
	mock.Mock
}

func (m *MockMessageUsecase) Send(ctx context.Context, req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MessageResponse), args.Error(1)
}

func (m *MockMessageUsecase) GetAll(ctx context.Context) (*dto.MessageListResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MessageListResponse), args.Error(1)
}

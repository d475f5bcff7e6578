package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/delivery/http/middleware"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func appointmentBody() map[string]interface{} {
	return map[string]interface{}{
		"firstName":        "Ravi",
		"lastName":         "Sharma",
		"email":            "ravi@example.com",
		"phone":            "9876543210",
		"aadhar_number":    "123456789012",
		"gender":           "Male",
		"dob":              "1990-05-14",
		"appointment_date": "2026-09-20",
		"department":       "Cardiology",
		"doctor_firstName": "Anil",
		"doctor_lastName":  "Kapoor",
		"hasVisited":       false,
		"address":          "42 MG Road, Pune",
	}
}

func authedRequest(t *testing.T, patient *entity.User, body interface{}) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	assert.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointment/post", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req.WithContext(middleware.WithUser(req.Context(), patient))
}

func TestCreateAppointmentHandlerSuccess(t *testing.T) {
	uc := new(MockAppointmentUsecase)
	h := NewAppointmentHandler(uc, validator.NewValidator())

	patient := &entity.User{ID: uuid.New(), Role: entity.RolePatient}
	uc.On("Create", mock.Anything, patient, mock.Anything).
		Return(&dto.AppointmentResponse{ID: uuid.New(), PatientID: patient.ID, Status: "Pending"}, nil)

	rec := httptest.NewRecorder()
	h.Create(rec, authedRequest(t, patient, appointmentBody()))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Appointment Sent Successfully!")
	uc.AssertExpectations(t)
}

func TestCreateAppointmentHandlerNoSessionUser(t *testing.T) {
	uc := new(MockAppointmentUsecase)
	h := NewAppointmentHandler(uc, validator.NewValidator())

	raw, _ := json.Marshal(appointmentBody())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointment/post", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	uc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateAppointmentHandlerDoctorNotFound(t *testing.T) {
	uc := new(MockAppointmentUsecase)
	h := NewAppointmentHandler(uc, validator.NewValidator())

	patient := &entity.User{ID: uuid.New(), Role: entity.RolePatient}
	uc.On("Create", mock.Anything, patient, mock.Anything).Return(nil, usecase.ErrDoctorNotFound)

	rec := httptest.NewRecorder()
	h.Create(rec, authedRequest(t, patient, appointmentBody()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Doctor Not Found!")
}

func TestCreateAppointmentHandlerDoctorConflict(t *testing.T) {
	uc := new(MockAppointmentUsecase)
	h := NewAppointmentHandler(uc, validator.NewValidator())

	patient := &entity.User{ID: uuid.New(), Role: entity.RolePatient}
	uc.On("Create", mock.Anything, patient, mock.Anything).Return(nil, usecase.ErrDoctorConflict)

	rec := httptest.NewRecorder()
	h.Create(rec, authedRequest(t, patient, appointmentBody()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Doctor Conflict! Please contact through phone or email")
}

func TestCreateAppointmentHandlerMissingFields(t *testing.T) {
	uc := new(MockAppointmentUsecase)
	h := NewAppointmentHandler(uc, validator.NewValidator())

	patient := &entity.User{ID: uuid.New(), Role: entity.RolePatient}
	body := appointmentBody()
	delete(body, "address")

	rec := httptest.NewRecorder()
	h.Create(rec, authedRequest(t, patient, body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Validation failed")
	uc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func updateStatusRequest(t *testing.T, id, status string) *http.Request {
	t.Helper()
	raw, err := json.Marshal(map[string]string{"status": status})
	assert.NoError(t, err)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/appointment/update_appointment/"+id, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return mux.SetURLVars(req, map[string]string{"id": id})
}

func TestUpdateStatusHandlerSuccess(t *testing.T) {
	uc := new(MockAppointmentUsecase)
	h := NewAppointmentHandler(uc, validator.NewValidator())

	id := uuid.New()
	uc.On("UpdateStatus", mock.Anything, id, mock.MatchedBy(func(req *dto.UpdateAppointmentStatusRequest) bool {
		return req.Status == "Accepted"
	})).Return(&dto.AppointmentResponse{ID: id, Status: "Accepted"}, nil)

	rec := httptest.NewRecorder()
	h.UpdateStatus(rec, updateStatusRequest(t, id.String(), "Accepted"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Appointment Status Updated!")
}

func TestUpdateStatusHandlerRejectsUnknownStatus(t *testing.T) {
	uc := new(MockAppointmentUsecase)
	h := NewAppointmentHandler(uc, validator.NewValidator())

	rec := httptest.NewRecorder()
	h.UpdateStatus(rec, updateStatusRequest(t, uuid.NewString(), "Cancelled"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatusHandlerNotFound(t *testing.T) {
	uc := new(MockAppointmentUsecase)
	h := NewAppointmentHandler(uc, validator.NewValidator())

	id := uuid.New()
	uc.On("UpdateStatus", mock.Anything, id, mock.Anything).Return(nil, usecase.ErrAppointmentNotFound)

	rec := httptest.NewRecorder()
	h.UpdateStatus(rec, updateStatusRequest(t, id.String(), "Rejected"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Appointment Not Found!")
}

func TestUpdateStatusHandlerBadID(t *testing.T) {
	uc := new(MockAppointmentUsecase)
	h := NewAppointmentHandler(uc, validator.NewValidator())

	rec := httptest.NewRecorder()
	h.UpdateStatus(rec, updateStatusRequest(t, "not-a-uuid", "Accepted"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid appointment ID")
}

func TestDeleteAppointmentHandlerSuccess(t *testing.T) {
	uc := new(MockAppointmentUsecase)
	h := NewAppointmentHandler(uc, validator.NewValidator())

	id := uuid.New()
	uc.On("Delete", mock.Anything, id).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/appointment/delete_appointment/"+id.String(), nil)
	req = mux.SetURLVars(req, map[string]string{"id": id.String()})
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Appointment Deleted!")
}

func TestDeleteAppointmentHandlerNotFound(t *testing.T) {
	uc := new(MockAppointmentUsecase)
	h := NewAppointmentHandler(uc, validator.NewValidator())

	id := uuid.New()
	uc.On("Delete", mock.Anything, id).Return(usecase.ErrAppointmentNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/appointment/delete_appointment/"+id.String(), nil)
	req = mux.SetURLVars(req, map[string]string{"id": id.String()})
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/delivery/http/middleware"
	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/response"
	"hospital-management-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// Create books an appointment for the authenticated patient.
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	patient, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Not Authenticated")
		return
	}

	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Create(r.Context(), patient, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.BadRequest(w, "Doctor Not Found!")
		case errors.Is(err, usecase.ErrDoctorConflict):
			response.BadRequest(w, "Doctor Conflict! Please contact through phone or email")
		case errors.Is(err, usecase.ErrInvalidDateFormat):
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create appointment")
		}
		return
	}

	response.JSON(w, http.StatusCreated, dto.AppointmentCreatedResponse{
		Success:     true,
		Message:     "Appointment Sent Successfully!",
		Appointment: appointment,
	})
}

// GetAll returns every appointment, unfiltered.
func (h *AppointmentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.JSON(w, http.StatusOK, appointments)
}

// UpdateStatus sets the status of an appointment; all other fields are
// ignored by contract.
func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	var req dto.UpdateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrAppointmentNotFound) {
			response.NotFound(w, "Appointment Not Found!")
			return
		}
		response.InternalServerError(w, "Failed to update appointment")
		return
	}

	response.JSON(w, http.StatusOK, dto.AppointmentUpdatedResponse{
		Success:     true,
		Message:     "Appointment Status Updated!",
		Appointment: appointment,
	})
}

// Delete removes an appointment record.
func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	if err := h.appointmentUsecase.Delete(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrAppointmentNotFound) {
			response.NotFound(w, "Appointment Not Found!")
			return
		}
		response.InternalServerError(w, "Failed to delete appointment")
		return
	}

	response.JSON(w, http.StatusOK, dto.StatusResponse{
		Success: true,
		Message: "Appointment Deleted!",
	})
}

package converter

import (
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
)

func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:              appointment.ID,
		FirstName:       appointment.FirstName,
		LastName:        appointment.LastName,
		Email:           appointment.Email,
		Phone:           appointment.Phone,
		AadharNumber:    appointment.AadharNumber,
		Gender:          appointment.Gender,
		DateOfBirth:     appointment.DateOfBirth.Format("2006-01-02"),
		AppointmentDate: appointment.AppointmentDate,
		Department:      appointment.Department,
		DoctorFirstName: appointment.DoctorFirstName,
		DoctorLastName:  appointment.DoctorLastName,
		HasVisited:      appointment.HasVisited,
		Address:         appointment.Address,
		DoctorID:        appointment.DoctorID,
		PatientID:       appointment.PatientID,
		Status:          string(appointment.Status),
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		responses = append(responses, *AppointmentToResponse(&appointments[i]))
	}
	return responses
}

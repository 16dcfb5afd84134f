package converter

import (
	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:        appointment.ID,
		Date:      appointment.Date,
		Time:      appointment.Time,
		Status:    string(appointment.Status),
		Reason:    appointment.Reason,
		PatientID: appointment.PatientID,
		DoctorID:  appointment.DoctorID,
		CreatedAt: appointment.CreatedAt,
		UpdatedAt: appointment.UpdatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

// AppointmentQueryToFilter maps list query parameters onto the domain filter.
func AppointmentQueryToFilter(query *dto.AppointmentQuery) *entity.AppointmentFilter {
	if query == nil {
		return nil
	}

	return &entity.AppointmentFilter{
		PatientID: query.PatientID,
		DoctorID:  query.DoctorID,
		Status:    entity.AppointmentStatus(query.Status),
	}
}

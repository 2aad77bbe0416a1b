package converter

import (
	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse
// DTO, computing the derived date, time-of-day and end-time fields.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:                  appointment.ID,
		DoctorID:            appointment.DoctorID,
		DoctorName:          appointment.Doctor.Name,
		PatientID:           appointment.PatientID,
		PatientName:         appointment.Patient.Name,
		PatientEmail:        appointment.Patient.Email,
		PatientPhone:        appointment.Patient.Phone,
		PatientAddress:      appointment.Patient.Address,
		AppointmentTime:     appointment.AppointmentTime,
		Status:              appointment.Status,
		ReasonForVisit:      appointment.ReasonForVisit,
		Notes:               appointment.Notes,
		AppointmentDate:     appointment.AppointmentTime.Format("2006-01-02"),
		AppointmentTimeOnly: appointment.AppointmentTime.Format("15:04"),
		EndTime:             appointment.EndTime(),
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

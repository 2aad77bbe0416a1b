package converter

import (
	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/internal/domain/entity"
)

// PrescriptionToResponse converts a Prescription document to PrescriptionResponse DTO
func PrescriptionToResponse(prescription *entity.Prescription) *dto.PrescriptionResponse {
	if prescription == nil {
		return nil
	}

	return &dto.PrescriptionResponse{
		ID:            prescription.ID.Hex(),
		PatientName:   prescription.PatientName,
		AppointmentID: prescription.AppointmentID,
		Medication:    prescription.Medication,
		Dosage:        prescription.Dosage,
		DoctorNotes:   prescription.DoctorNotes,
		RefillCount:   prescription.RefillCount,
		PharmacyName:  prescription.PharmacyName,
		CreatedAt:     prescription.CreatedAt,
	}
}

// PrescriptionsToResponses converts a slice of Prescription documents to slice of PrescriptionResponse DTOs
func PrescriptionsToResponses(prescriptions []entity.Prescription) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, len(prescriptions))
	for i, prescription := range prescriptions {
		resp := PrescriptionToResponse(&prescription)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

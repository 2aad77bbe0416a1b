package dto

import "time"

// Request DTOs

type BookAppointmentRequest struct {
	DoctorID        int64  `json:"doctor_id" validate:"required,min=1"`
	AppointmentTime string `json:"appointment_time" validate:"required"` // Format: YYYY-MM-DDTHH:MM[:SS]
	ReasonForVisit  string `json:"reason_for_visit" validate:"omitempty,max=500"`
	Notes           string `json:"notes" validate:"omitempty,max=1000"`
}

type UpdateAppointmentRequest struct {
	ID              int64  `json:"id" validate:"required,min=1"`
	DoctorID        int64  `json:"doctor_id" validate:"omitempty,min=1"`
	AppointmentTime string `json:"appointment_time" validate:"omitempty"` // Format: YYYY-MM-DDTHH:MM[:SS]
	ReasonForVisit  string `json:"reason_for_visit" validate:"omitempty,max=500"`
	Notes           string `json:"notes" validate:"omitempty,max=1000"`
}

// Response DTOs

// AppointmentResponse flattens doctor and patient details next to the
// derived date/time/end fields clients render without recomputing.
type AppointmentResponse struct {
	ID                  int64     `json:"id"`
	DoctorID            int64     `json:"doctor_id"`
	DoctorName          string    `json:"doctor_name"`
	PatientID           int64     `json:"patient_id"`
	PatientName         string    `json:"patient_name"`
	PatientEmail        string    `json:"patient_email"`
	PatientPhone        string    `json:"patient_phone"`
	PatientAddress      string    `json:"patient_address,omitempty"`
	AppointmentTime     time.Time `json:"appointment_time"`
	Status              int       `json:"status"`
	ReasonForVisit      string    `json:"reason_for_visit,omitempty"`
	Notes               string    `json:"notes,omitempty"`
	AppointmentDate     string    `json:"appointment_date"`      // Format: YYYY-MM-DD
	AppointmentTimeOnly string    `json:"appointment_time_only"` // Format: HH:MM
	EndTime             time.Time `json:"end_time"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

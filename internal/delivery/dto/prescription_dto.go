package dto

import "time"

// Request DTOs

type SavePrescriptionRequest struct {
	PatientName   string `json:"patient_name" validate:"required,min=3,max=100"`
	AppointmentID int64  `json:"appointment_id" validate:"required,min=1"`
	Medication    string `json:"medication" validate:"required,min=3,max=100"`
	Dosage        string `json:"dosage" validate:"required,min=3,max=20"`
	DoctorNotes   string `json:"doctor_notes" validate:"omitempty,max=200"`
	RefillCount   int    `json:"refill_count" validate:"gte=0,lte=12"`
	PharmacyName  string `json:"pharmacy_name" validate:"omitempty,max=100"`
}

// Response DTOs

type PrescriptionResponse struct {
	ID            string    `json:"id"`
	PatientName   string    `json:"patient_name"`
	AppointmentID int64     `json:"appointment_id"`
	Medication    string    `json:"medication"`
	Dosage        string    `json:"dosage"`
	DoctorNotes   string    `json:"doctor_notes,omitempty"`
	RefillCount   int       `json:"refill_count"`
	PharmacyName  string    `json:"pharmacy_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type PrescriptionListResponse struct {
	Prescriptions []PrescriptionResponse `json:"prescriptions"`
	Total         int                    `json:"total"`
}

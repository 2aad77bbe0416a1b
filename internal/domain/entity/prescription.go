package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PrescriptionCollection is the MongoDB collection name.
const PrescriptionCollection = "prescriptions"

// Prescription lives in MongoDB and references an appointment by its numeric
// id. The appointment id is an opaque foreign key; nothing enforces it across
// the two stores beyond the write path. A unique index on appointment_id
// keeps it to at most one prescription per appointment.
type Prescription struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PatientName   string             `bson:"patient_name" json:"patient_name"`
	AppointmentID int64              `bson:"appointment_id" json:"appointment_id"`
	Medication    string             `bson:"medication" json:"medication"`
	Dosage        string             `bson:"dosage" json:"dosage"`
	DoctorNotes   string             `bson:"doctor_notes,omitempty" json:"doctor_notes,omitempty"`
	RefillCount   int                `bson:"refill_count" json:"refill_count"`
	PharmacyName  string             `bson:"pharmacy_name,omitempty" json:"pharmacy_name,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}

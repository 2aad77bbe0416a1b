package entity

import "time"

// Appointment status codes
const (
	AppointmentStatusScheduled = 0
	AppointmentStatusCompleted = 1
)

// AppointmentDuration is the fixed slot length of every booking.
const AppointmentDuration = time.Hour

// Appointment links one doctor and one patient to a scheduled time. The
// unique index on (doctor_id, appointment_time) is what prevents two
// bookings from landing on the same slot.
type Appointment struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID        int64     `gorm:"not null;uniqueIndex:idx_appointments_doctor_slot;index" json:"doctor_id"`
	PatientID       int64     `gorm:"not null;index:idx_appointments_patient" json:"patient_id"`
	AppointmentTime time.Time `gorm:"not null;uniqueIndex:idx_appointments_doctor_slot" json:"appointment_time"`
	Status          int       `gorm:"not null;default:0;index" json:"status"`
	ReasonForVisit  string    `gorm:"type:varchar(500)" json:"reason_for_visit,omitempty"`
	Notes           string    `gorm:"type:varchar(1000)" json:"notes,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// EndTime is the derived end of the slot, start plus the fixed duration.
func (a *Appointment) EndTime() time.Time {
	return a.AppointmentTime.Add(AppointmentDuration)
}
package entity

import "time"

// Patient is an account identified by email; phone is unique as well so that
// either value can identify an existing patient at signup.
type Patient struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex:idx_patients_email;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	Phone     string    `gorm:"type:varchar(20);uniqueIndex:idx_patients_phone;not null" json:"phone"`
	Address   string    `gorm:"type:varchar(255)" json:"address,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

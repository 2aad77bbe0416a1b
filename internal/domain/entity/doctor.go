package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Doctor is a practitioner account identified by email. AvailableTimes is the
// profile-level list of "HH:MM" strings used by AM/PM filtering; the daily
// booking template itself is fixed (see usecase).
type Doctor struct {
	ID             int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string     `gorm:"type:varchar(100);not null" json:"name"`
	Specialty      string     `gorm:"type:varchar(50);not null;index:idx_doctors_specialty" json:"specialty"`
	Email          string     `gorm:"type:varchar(255);uniqueIndex:idx_doctors_email;not null" json:"email"`
	Password       string     `gorm:"type:text;not null" json:"-"`
	Phone          string     `gorm:"type:varchar(20)" json:"phone,omitempty"`
	AvailableTimes StringList `gorm:"type:jsonb" json:"available_times,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// StringList is a jsonb-backed string slice column.
type StringList []string

// Value returns json value, implement driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan scan value into StringList, implements sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	var result []string
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*l = StringList(result)
	return nil
}

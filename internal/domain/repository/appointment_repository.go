package repository

import (
	"context"
	"time"

	"clinic-appointment-service/internal/domain/entity"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	Save(ctx context.Context, appointment *entity.Appointment) error
	Delete(ctx context.Context, id int64) (int64, error)
	DeleteByDoctorID(ctx context.Context, doctorID int64) error
	FindByID(ctx context.Context, id int64) (*entity.Appointment, error)
	FindByDoctorAndTimeRange(ctx context.Context, doctorID int64, start, end time.Time) ([]entity.Appointment, error)
	FindByDoctorPatientNameAndTimeRange(ctx context.Context, doctorID int64, patientName string, start, end time.Time) ([]entity.Appointment, error)
	FindByPatientID(ctx context.Context, patientID int64) ([]entity.Appointment, error)
	FindByPatientIDAndStatus(ctx context.Context, patientID int64, status int) ([]entity.Appointment, error)
	FindByDoctorNameAndPatientID(ctx context.Context, doctorName string, patientID int64) ([]entity.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status int) (int64, error)
}

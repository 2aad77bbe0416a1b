package repository

import (
	"context"

	"clinic-appointment-service/internal/domain/entity"
)

type PrescriptionRepository interface {
	Insert(ctx context.Context, prescription *entity.Prescription) error
	FindByAppointmentID(ctx context.Context, appointmentID int64) ([]entity.Prescription, error)
}

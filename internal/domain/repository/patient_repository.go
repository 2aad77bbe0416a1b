package repository

import (
	"context"

	"clinic-appointment-service/internal/domain/entity"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	FindByEmail(ctx context.Context, email string) (*entity.Patient, error)
	FindByEmailOrPhone(ctx context.Context, email, phone string) (*entity.Patient, error)
}

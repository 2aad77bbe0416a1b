package repository

import (
	"context"

	"clinic-appointment-service/internal/domain/entity"
)

type DoctorRepository interface {
	Create(ctx context.Context, doctor *entity.Doctor) error
	Save(ctx context.Context, doctor *entity.Doctor) error
	Delete(ctx context.Context, id int64) (int64, error)
	FindByID(ctx context.Context, id int64) (*entity.Doctor, error)
	FindByEmail(ctx context.Context, email string) (*entity.Doctor, error)
	FindAll(ctx context.Context) ([]entity.Doctor, error)
	FindByName(ctx context.Context, name string) ([]entity.Doctor, error)
	FindBySpecialty(ctx context.Context, specialty string) ([]entity.Doctor, error)
	FindByNameAndSpecialty(ctx context.Context, name, specialty string) ([]entity.Doctor, error)
}

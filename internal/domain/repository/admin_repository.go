package repository

import (
	"context"

	"clinic-appointment-service/internal/domain/entity"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	FindByUsername(ctx context.Context, username string) (*entity.Admin, error)
}

package usecase

import (
	"context"
	"errors"

	"clinic-appointment-service/config"
	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/internal/domain/entity"
	"clinic-appointment-service/internal/domain/repository"
	"clinic-appointment-service/pkg/validator"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AdminUsecase interface {
	Login(ctx context.Context, request *dto.AdminLoginRequest) (string, error)
	EnsureAdmin(ctx context.Context) error
}

type adminUsecase struct {
	log          *logrus.Logger
	validator    *validator.CustomValidator
	adminRepo    repository.AdminRepository
	tokenUsecase TokenUsecase
	adminConfig  config.AdminConfig
}

func NewAdminUsecase(
	log *logrus.Logger,
	validator *validator.CustomValidator,
	adminRepo repository.AdminRepository,
	tokenUsecase TokenUsecase,
	adminConfig config.AdminConfig,
) AdminUsecase {
	return &adminUsecase{
		log:          log,
		validator:    validator,
		adminRepo:    adminRepo,
		tokenUsecase: tokenUsecase,
		adminConfig:  adminConfig,
	}
}

func (u *adminUsecase) Login(ctx context.Context, request *dto.AdminLoginRequest) (string, error) {
	if err := u.validator.Validate(request); err != nil {
		return "", err
	}

	admin, err := u.adminRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		u.log.Warnf("Failed to find admin by username: %+v", err)
		return "", err
	}
	if admin == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(request.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return u.tokenUsecase.GenerateToken(admin.Username, entity.RoleAdmin)
}

// EnsureAdmin seeds the configured admin account on startup. An existing
// account with the same username is left untouched; a concurrent seed
// losing the unique-index race is treated as success.
func (u *adminUsecase) EnsureAdmin(ctx context.Context) error {
	existing, err := u.adminRepo.FindByUsername(ctx, u.adminConfig.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(u.adminConfig.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &entity.Admin{
		Username: u.adminConfig.Username,
		Password: string(hashed),
	}

	if err := u.adminRepo.Create(ctx, admin); err != nil {
		if isDuplicateKeyError(err, "idx_admins_username") {
			return nil
		}
		u.log.Warnf("Failed to seed admin account: %+v", err)
		return err
	}

	u.log.Infof("Seeded admin account %s", admin.Username)
	return nil
}

package usecase

import (
	"context"
	"errors"
	"strings"

	"clinic-appointment-service/internal/domain/entity"
	"clinic-appointment-service/internal/domain/repository"
	"clinic-appointment-service/pkg/jwt"

	"github.com/sirupsen/logrus"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// TokenUsecase issues tokens and validates them against the credential
// stores. Validation fails closed: a token is good only when its signature
// and expiry check out, its role claim matches the expected role
// (case-insensitive) and its subject still exists in the store for that
// role. Admins are looked up by username, doctors and patients by email.
type TokenUsecase interface {
	GenerateToken(identifier, role string) (string, error)
	ValidateToken(ctx context.Context, token, expectedRole string) error
	Identifier(token string) (string, bool)
	AccountID(ctx context.Context, token string) (int64, bool)
}

type tokenUsecase struct {
	log         *logrus.Logger
	jwtService  *jwt.JWTService
	adminRepo   repository.AdminRepository
	doctorRepo  repository.DoctorRepository
	patientRepo repository.PatientRepository
}

func NewTokenUsecase(
	log *logrus.Logger,
	jwtService *jwt.JWTService,
	adminRepo repository.AdminRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
) TokenUsecase {
	return &tokenUsecase{
		log:         log,
		jwtService:  jwtService,
		adminRepo:   adminRepo,
		doctorRepo:  doctorRepo,
		patientRepo: patientRepo,
	}
}

func (u *tokenUsecase) GenerateToken(identifier, role string) (string, error) {
	return u.jwtService.Generate(identifier, role)
}

func (u *tokenUsecase) ValidateToken(ctx context.Context, token, expectedRole string) error {
	claims, err := u.jwtService.Parse(token)
	if err != nil {
		return ErrInvalidToken
	}

	if !strings.EqualFold(claims.Role, expectedRole) {
		return ErrInvalidToken
	}

	switch strings.ToUpper(claims.Role) {
	case entity.RoleAdmin:
		admin, err := u.adminRepo.FindByUsername(ctx, claims.Subject)
		if err != nil {
			u.log.Warnf("Failed to look up admin for token validation: %+v", err)
			return ErrInvalidToken
		}
		if admin == nil {
			return ErrInvalidToken
		}
	case entity.RoleDoctor:
		doctor, err := u.doctorRepo.FindByEmail(ctx, claims.Subject)
		if err != nil {
			u.log.Warnf("Failed to look up doctor for token validation: %+v", err)
			return ErrInvalidToken
		}
		if doctor == nil {
			return ErrInvalidToken
		}
	case entity.RolePatient:
		patient, err := u.patientRepo.FindByEmail(ctx, claims.Subject)
		if err != nil {
			u.log.Warnf("Failed to look up patient for token validation: %+v", err)
			return ErrInvalidToken
		}
		if patient == nil {
			return ErrInvalidToken
		}
	default:
		return ErrInvalidToken
	}

	return nil
}

// Identifier extracts the subject claim; ok is false on any malformed token.
func (u *tokenUsecase) Identifier(token string) (string, bool) {
	claims, err := u.jwtService.Parse(token)
	if err != nil {
		return "", false
	}
	return claims.Subject, true
}

// AccountID resolves the numeric account id for the token's subject. The
// role claim selects the store to query, so an email that happens to exist
// for both a doctor and a patient cannot resolve to the wrong account.
func (u *tokenUsecase) AccountID(ctx context.Context, token string) (int64, bool) {
	claims, err := u.jwtService.Parse(token)
	if err != nil {
		return 0, false
	}

	switch strings.ToUpper(claims.Role) {
	case entity.RoleAdmin:
		admin, err := u.adminRepo.FindByUsername(ctx, claims.Subject)
		if err != nil || admin == nil {
			return 0, false
		}
		return admin.ID, true
	case entity.RoleDoctor:
		doctor, err := u.doctorRepo.FindByEmail(ctx, claims.Subject)
		if err != nil || doctor == nil {
			return 0, false
		}
		return doctor.ID, true
	case entity.RolePatient:
		patient, err := u.patientRepo.FindByEmail(ctx, claims.Subject)
		if err != nil || patient == nil {
			return 0, false
		}
		return patient.ID, true
	}
	return 0, false
}

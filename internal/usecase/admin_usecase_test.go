package usecase

import (
	"context"
	"testing"
	"time"

	"clinic-appointment-service/config"
	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/internal/domain/entity"
	"clinic-appointment-service/pkg/jwt"
	"clinic-appointment-service/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAdminFixture() (AdminUsecase, TokenUsecase, *fakeAdminRepo) {
	adminRepo := &fakeAdminRepo{}
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", Lifetime: time.Hour})
	tokenUC := NewTokenUsecase(newTestLogger(), jwtService, adminRepo, &fakeDoctorRepo{}, &fakePatientRepo{})
	uc := NewAdminUsecase(newTestLogger(), validator.NewValidator(), adminRepo, tokenUC,
		config.AdminConfig{Username: "admin", Password: "changeme"})
	return uc, tokenUC, adminRepo
}

func TestEnsureAdminSeedsOnce(t *testing.T) {
	uc, _, adminRepo := newAdminFixture()
	ctx := context.Background()

	require.NoError(t, uc.EnsureAdmin(ctx))
	require.Len(t, adminRepo.admins, 1)

	seeded := adminRepo.admins[0]
	assert.Equal(t, "admin", seeded.Username)
	assert.NotEqual(t, "changeme", seeded.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(seeded.Password), []byte("changeme")))

	// A second run must not create a duplicate.
	require.NoError(t, uc.EnsureAdmin(ctx))
	assert.Len(t, adminRepo.admins, 1)
}

func TestAdminLoginIssuesValidToken(t *testing.T) {
	uc, tokenUC, _ := newAdminFixture()
	ctx := context.Background()
	require.NoError(t, uc.EnsureAdmin(ctx))

	token, err := uc.Login(ctx, &dto.AdminLoginRequest{Username: "admin", Password: "changeme"})
	require.NoError(t, err)

	assert.NoError(t, tokenUC.ValidateToken(ctx, token, entity.RoleAdmin))
	assert.ErrorIs(t, tokenUC.ValidateToken(ctx, token, entity.RolePatient), ErrInvalidToken)
}

func TestAdminLoginBadCredentials(t *testing.T) {
	uc, _, _ := newAdminFixture()
	ctx := context.Background()
	require.NoError(t, uc.EnsureAdmin(ctx))

	_, err := uc.Login(ctx, &dto.AdminLoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = uc.Login(ctx, &dto.AdminLoginRequest{Username: "ghost", Password: "changeme"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

package usecase

import (
	"context"
	"testing"
	"time"

	"clinic-appointment-service/config"
	"clinic-appointment-service/internal/domain/entity"
	"clinic-appointment-service/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenFixture() (TokenUsecase, *fakeAdminRepo, *fakeDoctorRepo, *fakePatientRepo) {
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", Lifetime: time.Hour})
	adminRepo := &fakeAdminRepo{}
	doctorRepo := &fakeDoctorRepo{}
	patientRepo := &fakePatientRepo{}
	uc := NewTokenUsecase(newTestLogger(), jwtService, adminRepo, doctorRepo, patientRepo)
	return uc, adminRepo, doctorRepo, patientRepo
}

func TestValidateTokenRoundTrip(t *testing.T) {
	uc, _, _, patientRepo := newTokenFixture()
	patientRepo.patients = append(patientRepo.patients, &entity.Patient{ID: 1, Email: "jane@example.com"})

	token, err := uc.GenerateToken("jane@example.com", entity.RolePatient)
	require.NoError(t, err)

	assert.NoError(t, uc.ValidateToken(context.Background(), token, entity.RolePatient))
}

func TestValidateTokenRoleIsCaseInsensitive(t *testing.T) {
	uc, _, doctorRepo, _ := newTokenFixture()
	doctorRepo.doctors = append(doctorRepo.doctors, &entity.Doctor{ID: 1, Email: "doc@example.com"})

	token, err := uc.GenerateToken("doc@example.com", "doctor")
	require.NoError(t, err)

	assert.NoError(t, uc.ValidateToken(context.Background(), token, "Doctor"))
}

func TestValidateTokenRoleMismatch(t *testing.T) {
	uc, _, _, patientRepo := newTokenFixture()
	patientRepo.patients = append(patientRepo.patients, &entity.Patient{ID: 1, Email: "jane@example.com"})

	token, err := uc.GenerateToken("jane@example.com", entity.RolePatient)
	require.NoError(t, err)

	assert.ErrorIs(t, uc.ValidateToken(context.Background(), token, entity.RoleDoctor), ErrInvalidToken)
}

func TestValidateTokenSubjectNoLongerExists(t *testing.T) {
	uc, _, _, _ := newTokenFixture()

	token, err := uc.GenerateToken("ghost@example.com", entity.RolePatient)
	require.NoError(t, err)

	assert.ErrorIs(t, uc.ValidateToken(context.Background(), token, entity.RolePatient), ErrInvalidToken)
}

func TestValidateTokenGarbageFailsClosed(t *testing.T) {
	uc, _, _, _ := newTokenFixture()

	for _, garbage := range []string{"", "null", "not.a.token"} {
		assert.ErrorIs(t, uc.ValidateToken(context.Background(), garbage, entity.RolePatient), ErrInvalidToken)
	}
}

func TestIdentifier(t *testing.T) {
	uc, _, _, _ := newTokenFixture()

	token, err := uc.GenerateToken("admin", entity.RoleAdmin)
	require.NoError(t, err)

	identifier, ok := uc.Identifier(token)
	assert.True(t, ok)
	assert.Equal(t, "admin", identifier)

	_, ok = uc.Identifier("garbage")
	assert.False(t, ok)
}

func TestAccountIDResolvesViaRoleClaim(t *testing.T) {
	uc, adminRepo, doctorRepo, patientRepo := newTokenFixture()
	// The same email exists for a doctor and a patient; the role claim
	// must pick the right store.
	adminRepo.admins = append(adminRepo.admins, &entity.Admin{ID: 7, Username: "admin"})
	doctorRepo.doctors = append(doctorRepo.doctors, &entity.Doctor{ID: 11, Email: "shared@example.com"})
	patientRepo.patients = append(patientRepo.patients, &entity.Patient{ID: 23, Email: "shared@example.com"})

	ctx := context.Background()

	adminToken, err := uc.GenerateToken("admin", entity.RoleAdmin)
	require.NoError(t, err)
	id, ok := uc.AccountID(ctx, adminToken)
	assert.True(t, ok)
	assert.Equal(t, int64(7), id)

	doctorToken, err := uc.GenerateToken("shared@example.com", entity.RoleDoctor)
	require.NoError(t, err)
	id, ok = uc.AccountID(ctx, doctorToken)
	assert.True(t, ok)
	assert.Equal(t, int64(11), id)

	patientToken, err := uc.GenerateToken("shared@example.com", entity.RolePatient)
	require.NoError(t, err)
	id, ok = uc.AccountID(ctx, patientToken)
	assert.True(t, ok)
	assert.Equal(t, int64(23), id)
}

func TestAccountIDUnknownSubject(t *testing.T) {
	uc, _, _, _ := newTokenFixture()

	token, err := uc.GenerateToken("ghost@example.com", entity.RoleDoctor)
	require.NoError(t, err)

	_, ok := uc.AccountID(context.Background(), token)
	assert.False(t, ok)
}

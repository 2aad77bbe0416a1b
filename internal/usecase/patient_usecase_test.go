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

func newPatientFixture() (PatientUsecase, *fakePatientRepo, *fakeAppointmentRepo) {
	patientRepo := &fakePatientRepo{}
	appointmentRepo := &fakeAppointmentRepo{}
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", Lifetime: time.Hour})
	tokenUC := NewTokenUsecase(newTestLogger(), jwtService, &fakeAdminRepo{}, &fakeDoctorRepo{}, patientRepo)
	uc := NewPatientUsecase(newTestLogger(), validator.NewValidator(), patientRepo, appointmentRepo, tokenUC)
	return uc, patientRepo, appointmentRepo
}

func TestSignupHashesPassword(t *testing.T) {
	uc, patientRepo, _ := newPatientFixture()

	resp, err := uc.Signup(context.Background(), &dto.PatientSignupRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "secret123",
		Phone:    "08123456789",
	})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", resp.Email)

	require.Len(t, patientRepo.patients, 1)
	stored := patientRepo.patients[0]
	assert.NotEqual(t, "secret123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))
}

func TestSignupRejectsDuplicateEmailOrPhone(t *testing.T) {
	uc, patientRepo, _ := newPatientFixture()
	patientRepo.patients = append(patientRepo.patients,
		&entity.Patient{ID: 1, Email: "jane@example.com", Phone: "08123456789"})

	_, err := uc.Signup(context.Background(), &dto.PatientSignupRequest{
		Name:     "Other Jane",
		Email:    "jane@example.com",
		Password: "secret123",
		Phone:    "08999999999",
	})
	assert.ErrorIs(t, err, ErrAccountExists)

	_, err = uc.Signup(context.Background(), &dto.PatientSignupRequest{
		Name:     "Other Jane",
		Email:    "other@example.com",
		Password: "secret123",
		Phone:    "08123456789",
	})
	assert.ErrorIs(t, err, ErrAccountExists)
}

func TestPatientLogin(t *testing.T) {
	uc, patientRepo, _ := newPatientFixture()
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	patientRepo.patients = append(patientRepo.patients,
		&entity.Patient{ID: 1, Email: "jane@example.com", Password: string(hashed)})

	token, err := uc.Login(context.Background(), &dto.LoginRequest{Identifier: "jane@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = uc.Login(context.Background(), &dto.LoginRequest{Identifier: "jane@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = uc.Login(context.Background(), &dto.LoginRequest{Identifier: "ghost@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestFilterAppointmentsConditionMapping(t *testing.T) {
	uc, patientRepo, appointmentRepo := newPatientFixture()
	patientRepo.patients = append(patientRepo.patients, &entity.Patient{ID: 1, Email: "jane@example.com"})

	appointmentRepo.appointments = append(appointmentRepo.appointments,
		&entity.Appointment{ID: 1, DoctorID: 1, PatientID: 1, Status: entity.AppointmentStatusCompleted,
			Doctor: entity.Doctor{Name: "Dr. Grey"}},
		&entity.Appointment{ID: 2, DoctorID: 2, PatientID: 1, Status: entity.AppointmentStatusScheduled,
			Doctor: entity.Doctor{Name: "Dr. Shepherd"}},
		&entity.Appointment{ID: 3, DoctorID: 1, PatientID: 2, Status: entity.AppointmentStatusScheduled,
			Doctor: entity.Doctor{Name: "Dr. Grey"}},
	)

	ctx := context.Background()

	past, err := uc.FilterAppointments(ctx, "jane@example.com", "past", "null")
	require.NoError(t, err)
	require.Equal(t, 1, past.Total)
	assert.Equal(t, int64(1), past.Appointments[0].ID)

	future, err := uc.FilterAppointments(ctx, "jane@example.com", "future", "null")
	require.NoError(t, err)
	require.Equal(t, 1, future.Total)
	assert.Equal(t, int64(2), future.Appointments[0].ID)

	_, err = uc.FilterAppointments(ctx, "jane@example.com", "yesterday", "null")
	assert.ErrorIs(t, err, ErrInvalidCondition)
}

func TestFilterAppointmentsByDoctorName(t *testing.T) {
	uc, patientRepo, appointmentRepo := newPatientFixture()
	patientRepo.patients = append(patientRepo.patients, &entity.Patient{ID: 1, Email: "jane@example.com"})

	appointmentRepo.appointments = append(appointmentRepo.appointments,
		&entity.Appointment{ID: 1, DoctorID: 1, PatientID: 1, Status: entity.AppointmentStatusCompleted,
			Doctor: entity.Doctor{Name: "Dr. Grey"}},
		&entity.Appointment{ID: 2, DoctorID: 1, PatientID: 1, Status: entity.AppointmentStatusScheduled,
			Doctor: entity.Doctor{Name: "Dr. Grey"}},
	)

	ctx := context.Background()

	byName, err := uc.FilterAppointments(ctx, "jane@example.com", "all", "grey")
	require.NoError(t, err)
	assert.Equal(t, 2, byName.Total)

	both, err := uc.FilterAppointments(ctx, "jane@example.com", "past", "grey")
	require.NoError(t, err)
	require.Equal(t, 1, both.Total)
	assert.Equal(t, int64(1), both.Appointments[0].ID)
}

func TestFilterAppointmentsOwnershipScope(t *testing.T) {
	uc, patientRepo, appointmentRepo := newPatientFixture()
	patientRepo.patients = append(patientRepo.patients,
		&entity.Patient{ID: 1, Email: "jane@example.com"},
		&entity.Patient{ID: 2, Email: "bob@example.com"})

	appointmentRepo.appointments = append(appointmentRepo.appointments,
		&entity.Appointment{ID: 1, DoctorID: 1, PatientID: 2, Status: entity.AppointmentStatusScheduled})

	result, err := uc.FilterAppointments(context.Background(), "jane@example.com", "future", "null")
	require.NoError(t, err)
	assert.Zero(t, result.Total)
}

func TestDetailsUnknownPatient(t *testing.T) {
	uc, _, _ := newPatientFixture()

	_, err := uc.Details(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

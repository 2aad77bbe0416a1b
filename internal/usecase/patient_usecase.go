package usecase

import (
	"context"
	"errors"
	"strings"

	"clinic-appointment-service/internal/converter"
	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/internal/domain/entity"
	"clinic-appointment-service/internal/domain/repository"
	"clinic-appointment-service/pkg/validator"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrPatientNotFound  = errors.New("patient not found")
	ErrAccountExists    = errors.New("email or phone already registered")
	ErrInvalidCondition = errors.New("condition must be past or future")
)

type PatientUsecase interface {
	Signup(ctx context.Context, request *dto.PatientSignupRequest) (*dto.PatientResponse, error)
	Login(ctx context.Context, request *dto.LoginRequest) (string, error)
	Details(ctx context.Context, email string) (*dto.PatientResponse, error)
	Appointments(ctx context.Context, email string) (*dto.AppointmentListResponse, error)
	FilterAppointments(ctx context.Context, email, condition, doctorName string) (*dto.AppointmentListResponse, error)
}

type patientUsecase struct {
	log             *logrus.Logger
	validator       *validator.CustomValidator
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	tokenUsecase    TokenUsecase
}

func NewPatientUsecase(
	log *logrus.Logger,
	validator *validator.CustomValidator,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	tokenUsecase TokenUsecase,
) PatientUsecase {
	return &patientUsecase{
		log:             log,
		validator:       validator,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		tokenUsecase:    tokenUsecase,
	}
}

func (u *patientUsecase) Signup(ctx context.Context, request *dto.PatientSignupRequest) (*dto.PatientResponse, error) {
	if err := u.validator.Validate(request); err != nil {
		return nil, err
	}

	existing, err := u.patientRepo.FindByEmailOrPhone(ctx, request.Email, request.Phone)
	if err != nil {
		u.log.Warnf("Failed to check existing patient: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrAccountExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	patient := &entity.Patient{
		Name:     request.Name,
		Email:    request.Email,
		Password: string(hashed),
		Phone:    request.Phone,
		Address:  request.Address,
	}

	if err := u.patientRepo.Create(ctx, patient); err != nil {
		// The pre-check races against concurrent signups; the unique
		// indexes are the authority.
		if isDuplicateKeyError(err, "idx_patients_email") || isDuplicateKeyError(err, "idx_patients_phone") {
			return nil, ErrAccountExists
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Login(ctx context.Context, request *dto.LoginRequest) (string, error) {
	if err := u.validator.Validate(request); err != nil {
		return "", err
	}

	patient, err := u.patientRepo.FindByEmail(ctx, request.Identifier)
	if err != nil {
		u.log.Warnf("Failed to find patient by email: %+v", err)
		return "", err
	}
	if patient == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(patient.Password), []byte(request.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return u.tokenUsecase.GenerateToken(patient.Email, entity.RolePatient)
}

func (u *patientUsecase) Details(ctx context.Context, email string) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to find patient by email: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Appointments(ctx context.Context, email string) (*dto.AppointmentListResponse, error) {
	patient, err := u.patientRepo.FindByEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to find patient by email: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	appointments, err := u.appointmentRepo.FindByPatientID(ctx, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to list patient appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// FilterAppointments narrows the patient's own appointments by condition
// ("past" = completed, "future" = scheduled) and/or doctor name. Either
// filter may be absent; an unrecognized condition is rejected.
func (u *patientUsecase) FilterAppointments(ctx context.Context, email, condition, doctorName string) (*dto.AppointmentListResponse, error) {
	patient, err := u.patientRepo.FindByEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to find patient by email: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	byCondition := !absentFilter(condition)
	byName := !absentFilter(doctorName)

	status := entity.AppointmentStatusScheduled
	if byCondition {
		switch strings.ToLower(condition) {
		case "past":
			status = entity.AppointmentStatusCompleted
		case "future":
			status = entity.AppointmentStatusScheduled
		default:
			return nil, ErrInvalidCondition
		}
	}

	var appointments []entity.Appointment
	switch {
	case byName:
		appointments, err = u.appointmentRepo.FindByDoctorNameAndPatientID(ctx, doctorName, patient.ID)
		if err == nil && byCondition {
			filtered := appointments[:0]
			for _, appointment := range appointments {
				if appointment.Status == status {
					filtered = append(filtered, appointment)
				}
			}
			appointments = filtered
		}
	case byCondition:
		appointments, err = u.appointmentRepo.FindByPatientIDAndStatus(ctx, patient.ID, status)
	default:
		appointments, err = u.appointmentRepo.FindByPatientID(ctx, patient.ID)
	}
	if err != nil {
		u.log.Warnf("Failed to filter patient appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

package usecase

import (
	"context"
	"errors"

	"clinic-appointment-service/internal/converter"
	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/internal/domain/entity"
	"clinic-appointment-service/internal/domain/repository"
	"clinic-appointment-service/pkg/validator"

	"github.com/sirupsen/logrus"
)

var ErrPrescriptionExists = errors.New("appointment already has a prescription")

type PrescriptionUsecase interface {
	Save(ctx context.Context, request *dto.SavePrescriptionRequest) (*dto.PrescriptionResponse, error)
	GetByAppointment(ctx context.Context, appointmentID int64) (*dto.PrescriptionListResponse, error)
}

type prescriptionUsecase struct {
	log                *logrus.Logger
	validator          *validator.CustomValidator
	prescriptionRepo   repository.PrescriptionRepository
	appointmentRepo    repository.AppointmentRepository
	appointmentUsecase AppointmentUsecase
}

func NewPrescriptionUsecase(
	log *logrus.Logger,
	validator *validator.CustomValidator,
	prescriptionRepo repository.PrescriptionRepository,
	appointmentRepo repository.AppointmentRepository,
	appointmentUsecase AppointmentUsecase,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		log:                log,
		validator:          validator,
		prescriptionRepo:   prescriptionRepo,
		appointmentRepo:    appointmentRepo,
		appointmentUsecase: appointmentUsecase,
	}
}

// Save issues the prescription for a visit: the referenced appointment is
// marked completed and the document inserted. An appointment holds at most
// one prescription; a second save conflicts instead of overwriting.
func (u *prescriptionUsecase) Save(ctx context.Context, request *dto.SavePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	if err := u.validator.Validate(request); err != nil {
		return nil, err
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, request.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment for prescription: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	existing, err := u.prescriptionRepo.FindByAppointmentID(ctx, request.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to check existing prescription: %+v", err)
		return nil, err
	}
	if len(existing) > 0 {
		return nil, ErrPrescriptionExists
	}

	if err := u.appointmentUsecase.ChangeStatus(ctx, request.AppointmentID, entity.AppointmentStatusCompleted); err != nil {
		return nil, err
	}

	prescription := &entity.Prescription{
		PatientName:   request.PatientName,
		AppointmentID: request.AppointmentID,
		Medication:    request.Medication,
		Dosage:        request.Dosage,
		DoctorNotes:   request.DoctorNotes,
		RefillCount:   request.RefillCount,
		PharmacyName:  request.PharmacyName,
	}

	if err := u.prescriptionRepo.Insert(ctx, prescription); err != nil {
		// The pre-check races against concurrent saves; the unique index
		// on appointment_id is the authority.
		if isMongoDuplicateKeyError(err) {
			return nil, ErrPrescriptionExists
		}
		u.log.Warnf("Failed to insert prescription: %+v", err)
		return nil, err
	}

	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) GetByAppointment(ctx context.Context, appointmentID int64) (*dto.PrescriptionListResponse, error) {
	prescriptions, err := u.prescriptionRepo.FindByAppointmentID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to load prescriptions: %+v", err)
		return nil, err
	}

	return &dto.PrescriptionListResponse{
		Prescriptions: converter.PrescriptionsToResponses(prescriptions),
		Total:         len(prescriptions),
	}, nil
}

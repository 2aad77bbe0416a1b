package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-appointment-service/internal/converter"
	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/internal/domain/entity"
	"clinic-appointment-service/internal/domain/repository"
	"clinic-appointment-service/pkg/validator"

	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrSlotUnavailable     = errors.New("appointment slot is not available")
	ErrSlotTaken           = errors.New("appointment slot was just booked")
	ErrNotOwner            = errors.New("appointment belongs to another patient")
	ErrInvalidDateTime     = errors.New("invalid datetime format, expected YYYY-MM-DDTHH:MM")
)

// parseAppointmentTime accepts the two datetime shapes clients send, with
// and without seconds.
func parseAppointmentTime(value string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDateTime
}

type AppointmentUsecase interface {
	ValidateAppointment(ctx context.Context, doctorID int64, appointmentTime time.Time) error
	Book(ctx context.Context, patientID int64, request *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	Update(ctx context.Context, patientID int64, request *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, patientID, appointmentID int64) error
	DoctorDay(ctx context.Context, doctorID int64, date, patientName string) (*dto.AppointmentListResponse, error)
	ChangeStatus(ctx context.Context, appointmentID int64, status int) error
}

type appointmentUsecase struct {
	log             *logrus.Logger
	validator       *validator.CustomValidator
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	validator *validator.CustomValidator,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		validator:       validator,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
	}
}

// ValidateAppointment is the booking gate: the doctor must exist, and the
// requested start must be one of that doctor's open slots on that day.
// The doctor check runs first so an unknown doctor never reads as a full
// schedule.
func (u *appointmentUsecase) ValidateAppointment(ctx context.Context, doctorID int64, appointmentTime time.Time) error {
	doctor, err := u.doctorRepo.FindByID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor for booking gate: %+v", err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	day := appointmentTime.Truncate(24 * time.Hour)
	booked, err := u.appointmentRepo.FindByDoctorAndTimeRange(ctx, doctorID, day, day.Add(24*time.Hour))
	if err != nil {
		u.log.Warnf("Failed to load day schedule for booking gate: %+v", err)
		return err
	}

	bookedTimes := make([]string, 0, len(booked))
	for _, appointment := range booked {
		bookedTimes = append(bookedTimes, appointment.AppointmentTime.Format("15:04"))
	}

	candidate := appointmentTime.Format("15:04")
	for _, slot := range openSlots(dailySlots(), bookedTimes) {
		if slot == candidate {
			return nil
		}
	}
	return ErrSlotUnavailable
}

func (u *appointmentUsecase) Book(ctx context.Context, patientID int64, request *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	if err := u.validator.Validate(request); err != nil {
		return nil, err
	}

	appointmentTime, err := parseAppointmentTime(request.AppointmentTime)
	if err != nil {
		return nil, err
	}

	if err := u.ValidateAppointment(ctx, request.DoctorID, appointmentTime); err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		DoctorID:        request.DoctorID,
		PatientID:       patientID,
		AppointmentTime: appointmentTime,
		Status:          entity.AppointmentStatusScheduled,
		ReasonForVisit:  request.ReasonForVisit,
		Notes:           request.Notes,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		// The gate races against concurrent bookings; the unique slot
		// index is the authority.
		if isDuplicateKeyError(err, "idx_appointments_doctor_slot") {
			return nil, ErrSlotTaken
		}
		if isForeignKeyError(err, "") {
			return nil, ErrDoctorNotFound
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	created, err := u.appointmentRepo.FindByID(ctx, appointment.ID)
	if err != nil || created == nil {
		// The booking succeeded; respond with what we have.
		return converter.AppointmentToResponse(appointment), nil
	}
	return converter.AppointmentToResponse(created), nil
}

func (u *appointmentUsecase) Update(ctx context.Context, patientID int64, request *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if err := u.validator.Validate(request); err != nil {
		return nil, err
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, request.ID)
	if err != nil {
		u.log.Warnf("Failed to find appointment by id: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.PatientID != patientID {
		return nil, ErrNotOwner
	}

	doctorID := appointment.DoctorID
	if request.DoctorID != 0 {
		doctorID = request.DoctorID
	}
	appointmentTime := appointment.AppointmentTime
	if request.AppointmentTime != "" {
		appointmentTime, err = parseAppointmentTime(request.AppointmentTime)
		if err != nil {
			return nil, err
		}
	}

	// Moving the appointment re-runs the booking gate against the new
	// doctor/slot pair.
	if doctorID != appointment.DoctorID || !appointmentTime.Equal(appointment.AppointmentTime) {
		if err := u.ValidateAppointment(ctx, doctorID, appointmentTime); err != nil {
			return nil, err
		}
	}

	appointment.DoctorID = doctorID
	appointment.AppointmentTime = appointmentTime
	if request.ReasonForVisit != "" {
		appointment.ReasonForVisit = request.ReasonForVisit
	}
	if request.Notes != "" {
		appointment.Notes = request.Notes
	}

	if err := u.appointmentRepo.Save(ctx, appointment); err != nil {
		if isDuplicateKeyError(err, "idx_appointments_doctor_slot") {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	updated, err := u.appointmentRepo.FindByID(ctx, appointment.ID)
	if err != nil || updated == nil {
		return converter.AppointmentToResponse(appointment), nil
	}
	return converter.AppointmentToResponse(updated), nil
}

func (u *appointmentUsecase) Cancel(ctx context.Context, patientID, appointmentID int64) error {
	appointment, err := u.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment by id: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	if appointment.PatientID != patientID {
		return ErrNotOwner
	}

	rows, err := u.appointmentRepo.Delete(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

// DoctorDay lists one doctor's appointments for a calendar day, optionally
// narrowed by patient name.
func (u *appointmentUsecase) DoctorDay(ctx context.Context, doctorID int64, date, patientName string) (*dto.AppointmentListResponse, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	start, end := day, day.Add(24*time.Hour)

	var appointments []entity.Appointment
	if absentFilter(patientName) {
		appointments, err = u.appointmentRepo.FindByDoctorAndTimeRange(ctx, doctorID, start, end)
	} else {
		appointments, err = u.appointmentRepo.FindByDoctorPatientNameAndTimeRange(ctx, doctorID, patientName, start, end)
	}
	if err != nil {
		u.log.Warnf("Failed to list doctor day appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) ChangeStatus(ctx context.Context, appointmentID int64, status int) error {
	rows, err := u.appointmentRepo.UpdateStatus(ctx, appointmentID, status)
	if err != nil {
		u.log.Warnf("Failed to update appointment status: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"clinic-appointment-service/internal/converter"
	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/internal/domain/entity"
	"clinic-appointment-service/internal/domain/repository"
	"clinic-appointment-service/pkg/validator"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrDoctorNotFound = errors.New("doctor not found")
	ErrEmailTaken     = errors.New("email already registered")
	ErrInvalidDate    = errors.New("invalid date format, expected YYYY-MM-DD")
)

// dailySlots is the fixed booking template every doctor offers: one-hour
// slots starting on the hour from 09:00 through 16:00.
func dailySlots() []string {
	slots := make([]string, 0, 8)
	for hour := 9; hour <= 16; hour++ {
		slots = append(slots, time.Date(0, 1, 1, hour, 0, 0, 0, time.UTC).Format("15:04"))
	}
	return slots
}

// openSlots returns the template slots minus the booked "HH:MM" starts,
// preserving template order. A booked time not in the template is ignored.
func openSlots(template, booked []string) []string {
	taken := make(map[string]bool, len(booked))
	for _, b := range booked {
		taken[b] = true
	}

	open := make([]string, 0, len(template))
	for _, slot := range template {
		if !taken[slot] {
			open = append(open, slot)
		}
	}
	return open
}

// filterByTime keeps doctors whose profile availability includes at least
// one slot in the requested half of the day. "AM" means before 12:00,
// "PM" means 12:00 onwards; any other value keeps everyone.
func filterByTime(doctors []entity.Doctor, timeOfDay string) []entity.Doctor {
	upper := strings.ToUpper(timeOfDay)
	if upper != "AM" && upper != "PM" {
		return doctors
	}

	filtered := make([]entity.Doctor, 0, len(doctors))
	for _, doctor := range doctors {
		for _, slot := range doctor.AvailableTimes {
			parts := strings.SplitN(slot, ":", 2)
			hour, err := strconv.Atoi(parts[0])
			if err != nil {
				continue
			}
			if (upper == "AM" && hour < 12) || (upper == "PM" && hour >= 12) {
				filtered = append(filtered, doctor)
				break
			}
		}
	}
	return filtered
}

// absentFilter reports whether a path segment means "no filter". Front ends
// interpolate missing values literally, so "null" and "all" (any case) and
// the empty string are all treated as absent.
func absentFilter(value string) bool {
	switch strings.ToLower(value) {
	case "", "null", "all":
		return true
	}
	return false
}

type DoctorUsecase interface {
	Login(ctx context.Context, request *dto.LoginRequest) (string, error)
	Create(ctx context.Context, request *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	Update(ctx context.Context, request *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	Delete(ctx context.Context, id int64) error
	Filter(ctx context.Context, name, specialty, timeOfDay string) (*dto.DoctorListResponse, error)
	Availability(ctx context.Context, doctorID int64, date string) (*dto.AvailabilityResponse, error)
}

type doctorUsecase struct {
	log             *logrus.Logger
	validator       *validator.CustomValidator
	doctorRepo      repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
	tokenUsecase    TokenUsecase
}

func NewDoctorUsecase(
	log *logrus.Logger,
	validator *validator.CustomValidator,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
	tokenUsecase TokenUsecase,
) DoctorUsecase {
	return &doctorUsecase{
		log:             log,
		validator:       validator,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		tokenUsecase:    tokenUsecase,
	}
}

func (u *doctorUsecase) Login(ctx context.Context, request *dto.LoginRequest) (string, error) {
	if err := u.validator.Validate(request); err != nil {
		return "", err
	}

	doctor, err := u.doctorRepo.FindByEmail(ctx, request.Identifier)
	if err != nil {
		u.log.Warnf("Failed to find doctor by email: %+v", err)
		return "", err
	}
	if doctor == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(doctor.Password), []byte(request.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return u.tokenUsecase.GenerateToken(doctor.Email, entity.RoleDoctor)
}

func (u *doctorUsecase) Create(ctx context.Context, request *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	if err := u.validator.Validate(request); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	doctor := &entity.Doctor{
		Name:           request.Name,
		Specialty:      request.Specialty,
		Email:          request.Email,
		Password:       string(hashed),
		Phone:          request.Phone,
		AvailableTimes: request.AvailableTimes,
	}

	if err := u.doctorRepo.Create(ctx, doctor); err != nil {
		if isDuplicateKeyError(err, "idx_doctors_email") {
			return nil, ErrEmailTaken
		}
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Update(ctx context.Context, request *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	if err := u.validator.Validate(request); err != nil {
		return nil, err
	}

	doctor, err := u.doctorRepo.FindByID(ctx, request.ID)
	if err != nil {
		u.log.Warnf("Failed to find doctor by id: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if request.Name != "" {
		doctor.Name = request.Name
	}
	if request.Specialty != "" {
		doctor.Specialty = request.Specialty
	}
	if request.Phone != "" {
		doctor.Phone = request.Phone
	}
	if request.AvailableTimes != nil {
		doctor.AvailableTimes = request.AvailableTimes
	}
	if request.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		doctor.Password = string(hashed)
	}

	if err := u.doctorRepo.Save(ctx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

// Delete removes a doctor together with every appointment booked against
// them, so no appointment is left pointing at a missing practitioner.
func (u *doctorUsecase) Delete(ctx context.Context, id int64) error {
	if err := u.appointmentRepo.DeleteByDoctorID(ctx, id); err != nil {
		u.log.Warnf("Failed to delete appointments for doctor: %+v", err)
		return err
	}

	rows, err := u.doctorRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete doctor: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrDoctorNotFound
	}
	return nil
}

// Filter narrows the doctor list by name, specialty and time of day; every
// combination of present/absent filters is handled, and all-absent returns
// every doctor.
func (u *doctorUsecase) Filter(ctx context.Context, name, specialty, timeOfDay string) (*dto.DoctorListResponse, error) {
	byName := !absentFilter(name)
	bySpecialty := !absentFilter(specialty)

	var (
		doctors []entity.Doctor
		err     error
	)
	switch {
	case byName && bySpecialty:
		doctors, err = u.doctorRepo.FindByNameAndSpecialty(ctx, name, specialty)
	case byName:
		doctors, err = u.doctorRepo.FindByName(ctx, name)
	case bySpecialty:
		doctors, err = u.doctorRepo.FindBySpecialty(ctx, specialty)
	default:
		doctors, err = u.doctorRepo.FindAll(ctx)
	}
	if err != nil {
		u.log.Warnf("Failed to filter doctors: %+v", err)
		return nil, err
	}

	if !absentFilter(timeOfDay) {
		doctors = filterByTime(doctors, timeOfDay)
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

// Availability lists the open "HH:MM" slots of one doctor on one day: the
// fixed daily template minus every slot already booked that day.
func (u *doctorUsecase) Availability(ctx context.Context, doctorID int64, date string) (*dto.AvailabilityResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor by id: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	booked, err := u.appointmentRepo.FindByDoctorAndTimeRange(ctx, doctorID, day, day.Add(24*time.Hour))
	if err != nil {
		u.log.Warnf("Failed to load appointments for availability: %+v", err)
		return nil, err
	}

	bookedTimes := make([]string, 0, len(booked))
	for _, appointment := range booked {
		bookedTimes = append(bookedTimes, appointment.AppointmentTime.Format("15:04"))
	}

	return &dto.AvailabilityResponse{
		Availability: openSlots(dailySlots(), bookedTimes),
	}, nil
}

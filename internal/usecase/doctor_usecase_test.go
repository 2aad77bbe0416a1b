package usecase

import (
	"context"
	"testing"
	"time"

	"clinic-appointment-service/internal/domain/entity"
	"clinic-appointment-service/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDoctorFixture() (DoctorUsecase, *fakeDoctorRepo, *fakeAppointmentRepo) {
	doctorRepo := &fakeDoctorRepo{}
	appointmentRepo := &fakeAppointmentRepo{}
	uc := NewDoctorUsecase(newTestLogger(), validator.NewValidator(), doctorRepo, appointmentRepo, nil)
	return uc, doctorRepo, appointmentRepo
}

func TestDailySlotsTemplate(t *testing.T) {
	slots := dailySlots()

	assert.Equal(t, []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00"}, slots)
}

func TestOpenSlotsRemovesBookedPreservingOrder(t *testing.T) {
	open := openSlots(dailySlots(), []string{"10:00", "14:00"})

	assert.Equal(t, []string{"09:00", "11:00", "12:00", "13:00", "15:00", "16:00"}, open)
}

func TestOpenSlotsIgnoresUnknownBookedTimes(t *testing.T) {
	open := openSlots(dailySlots(), []string{"08:00", "10:30", "17:00"})

	assert.Equal(t, dailySlots(), open)
}

func TestOpenSlotsFullyBooked(t *testing.T) {
	open := openSlots(dailySlots(), dailySlots())

	assert.Empty(t, open)
}

func TestAvailabilityDropsBookedSlots(t *testing.T) {
	uc, doctorRepo, appointmentRepo := newDoctorFixture()
	doctorRepo.doctors = append(doctorRepo.doctors, &entity.Doctor{ID: 1, Name: "Dr. Grey", Email: "grey@example.com"})

	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	appointmentRepo.appointments = append(appointmentRepo.appointments,
		&entity.Appointment{ID: 1, DoctorID: 1, PatientID: 1, AppointmentTime: day.Add(9 * time.Hour)},
		&entity.Appointment{ID: 2, DoctorID: 1, PatientID: 2, AppointmentTime: day.Add(15 * time.Hour)},
		// Another doctor's booking must not affect this doctor.
		&entity.Appointment{ID: 3, DoctorID: 2, PatientID: 3, AppointmentTime: day.Add(10 * time.Hour)},
	)

	availability, err := uc.Availability(context.Background(), 1, "2026-09-14")
	require.NoError(t, err)

	assert.Equal(t, []string{"10:00", "11:00", "12:00", "13:00", "14:00", "16:00"}, availability.Availability)
}

func TestAvailabilityUnknownDoctor(t *testing.T) {
	uc, _, _ := newDoctorFixture()

	_, err := uc.Availability(context.Background(), 99, "2026-09-14")
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestAvailabilityBadDate(t *testing.T) {
	uc, doctorRepo, _ := newDoctorFixture()
	doctorRepo.doctors = append(doctorRepo.doctors, &entity.Doctor{ID: 1, Email: "grey@example.com"})

	_, err := uc.Availability(context.Background(), 1, "14-09-2026")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestFilterByTime(t *testing.T) {
	doctors := []entity.Doctor{
		{ID: 1, Name: "Morning", AvailableTimes: entity.StringList{"09:00", "11:00"}},
		{ID: 2, Name: "Afternoon", AvailableTimes: entity.StringList{"13:00", "15:00"}},
		{ID: 3, Name: "Both", AvailableTimes: entity.StringList{"10:00", "14:00"}},
		{ID: 4, Name: "None", AvailableTimes: nil},
	}

	am := filterByTime(doctors, "AM")
	require.Len(t, am, 2)
	assert.Equal(t, int64(1), am[0].ID)
	assert.Equal(t, int64(3), am[1].ID)

	pm := filterByTime(doctors, "pm")
	require.Len(t, pm, 2)
	assert.Equal(t, int64(2), pm[0].ID)
	assert.Equal(t, int64(3), pm[1].ID)

	all := filterByTime(doctors, "all")
	assert.Len(t, all, 4)
}

func TestFilterTreatsNullAndAllAsAbsent(t *testing.T) {
	uc, doctorRepo, _ := newDoctorFixture()
	doctorRepo.doctors = append(doctorRepo.doctors,
		&entity.Doctor{ID: 1, Name: "Dr. Grey", Specialty: "Cardiology", Email: "grey@example.com"},
		&entity.Doctor{ID: 2, Name: "Dr. Shepherd", Specialty: "Neurology", Email: "shepherd@example.com"},
	)

	ctx := context.Background()

	result, err := uc.Filter(ctx, "null", "all", "NULL")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)

	result, err = uc.Filter(ctx, "grey", "all", "all")
	require.NoError(t, err)
	require.Equal(t, 1, result.Total)
	assert.Equal(t, "Dr. Grey", result.Doctors[0].Name)

	result, err = uc.Filter(ctx, "null", "all", "Neurology")
	require.NoError(t, err)
	require.Equal(t, 1, result.Total)
	assert.Equal(t, "Dr. Shepherd", result.Doctors[0].Name)
}

func TestDeleteCascadesAppointments(t *testing.T) {
	uc, doctorRepo, appointmentRepo := newDoctorFixture()
	doctorRepo.doctors = append(doctorRepo.doctors, &entity.Doctor{ID: 1, Email: "grey@example.com"})
	appointmentRepo.appointments = append(appointmentRepo.appointments,
		&entity.Appointment{ID: 1, DoctorID: 1, PatientID: 1},
		&entity.Appointment{ID: 2, DoctorID: 2, PatientID: 1},
	)

	require.NoError(t, uc.Delete(context.Background(), 1))

	assert.Empty(t, doctorRepo.doctors)
	require.Len(t, appointmentRepo.appointments, 1)
	assert.Equal(t, int64(2), appointmentRepo.appointments[0].DoctorID)
}

func TestDeleteUnknownDoctor(t *testing.T) {
	uc, _, _ := newDoctorFixture()

	assert.ErrorIs(t, uc.Delete(context.Background(), 42), ErrDoctorNotFound)
}

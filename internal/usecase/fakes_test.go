package usecase

import (
	"context"
	"io"
	"strings"
	"time"

	"clinic-appointment-service/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// In-memory fakes for the repository interfaces. Errors can be injected
// per fake to exercise the failure paths.

type fakeAdminRepo struct {
	admins  []*entity.Admin
	nextID  int64
	findErr error
}

func (f *fakeAdminRepo) Create(_ context.Context, admin *entity.Admin) error {
	f.nextID++
	admin.ID = f.nextID
	f.admins = append(f.admins, admin)
	return nil
}

func (f *fakeAdminRepo) FindByUsername(_ context.Context, username string) (*entity.Admin, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, admin := range f.admins {
		if admin.Username == username {
			return admin, nil
		}
	}
	return nil, nil
}

type fakeDoctorRepo struct {
	doctors   []*entity.Doctor
	nextID    int64
	createErr error
	findErr   error
}

func (f *fakeDoctorRepo) Create(_ context.Context, doctor *entity.Doctor) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	doctor.ID = f.nextID
	f.doctors = append(f.doctors, doctor)
	return nil
}

func (f *fakeDoctorRepo) Save(_ context.Context, doctor *entity.Doctor) error {
	for i, existing := range f.doctors {
		if existing.ID == doctor.ID {
			f.doctors[i] = doctor
			return nil
		}
	}
	return nil
}

func (f *fakeDoctorRepo) Delete(_ context.Context, id int64) (int64, error) {
	for i, doctor := range f.doctors {
		if doctor.ID == id {
			f.doctors = append(f.doctors[:i], f.doctors[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeDoctorRepo) FindByID(_ context.Context, id int64) (*entity.Doctor, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, doctor := range f.doctors {
		if doctor.ID == id {
			return doctor, nil
		}
	}
	return nil, nil
}

func (f *fakeDoctorRepo) FindByEmail(_ context.Context, email string) (*entity.Doctor, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, doctor := range f.doctors {
		if doctor.Email == email {
			return doctor, nil
		}
	}
	return nil, nil
}

func (f *fakeDoctorRepo) FindAll(_ context.Context) ([]entity.Doctor, error) {
	result := make([]entity.Doctor, 0, len(f.doctors))
	for _, doctor := range f.doctors {
		result = append(result, *doctor)
	}
	return result, nil
}

func (f *fakeDoctorRepo) FindByName(_ context.Context, name string) ([]entity.Doctor, error) {
	var result []entity.Doctor
	for _, doctor := range f.doctors {
		if strings.Contains(strings.ToLower(doctor.Name), strings.ToLower(name)) {
			result = append(result, *doctor)
		}
	}
	return result, nil
}

func (f *fakeDoctorRepo) FindBySpecialty(_ context.Context, specialty string) ([]entity.Doctor, error) {
	var result []entity.Doctor
	for _, doctor := range f.doctors {
		if strings.EqualFold(doctor.Specialty, specialty) {
			result = append(result, *doctor)
		}
	}
	return result, nil
}

func (f *fakeDoctorRepo) FindByNameAndSpecialty(_ context.Context, name, specialty string) ([]entity.Doctor, error) {
	var result []entity.Doctor
	for _, doctor := range f.doctors {
		if strings.Contains(strings.ToLower(doctor.Name), strings.ToLower(name)) &&
			strings.EqualFold(doctor.Specialty, specialty) {
			result = append(result, *doctor)
		}
	}
	return result, nil
}

type fakePatientRepo struct {
	patients  []*entity.Patient
	nextID    int64
	createErr error
}

func (f *fakePatientRepo) Create(_ context.Context, patient *entity.Patient) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	patient.ID = f.nextID
	f.patients = append(f.patients, patient)
	return nil
}

func (f *fakePatientRepo) FindByEmail(_ context.Context, email string) (*entity.Patient, error) {
	for _, patient := range f.patients {
		if patient.Email == email {
			return patient, nil
		}
	}
	return nil, nil
}

func (f *fakePatientRepo) FindByEmailOrPhone(_ context.Context, email, phone string) (*entity.Patient, error) {
	for _, patient := range f.patients {
		if patient.Email == email || patient.Phone == phone {
			return patient, nil
		}
	}
	return nil, nil
}

type fakeAppointmentRepo struct {
	appointments []*entity.Appointment
	nextID       int64
	createErr    error
	saveErr      error
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appointment *entity.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	appointment.ID = f.nextID
	f.appointments = append(f.appointments, appointment)
	return nil
}

func (f *fakeAppointmentRepo) Save(_ context.Context, appointment *entity.Appointment) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	for i, existing := range f.appointments {
		if existing.ID == appointment.ID {
			f.appointments[i] = appointment
			return nil
		}
	}
	return nil
}

func (f *fakeAppointmentRepo) Delete(_ context.Context, id int64) (int64, error) {
	for i, appointment := range f.appointments {
		if appointment.ID == id {
			f.appointments = append(f.appointments[:i], f.appointments[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeAppointmentRepo) DeleteByDoctorID(_ context.Context, doctorID int64) error {
	kept := f.appointments[:0]
	for _, appointment := range f.appointments {
		if appointment.DoctorID != doctorID {
			kept = append(kept, appointment)
		}
	}
	f.appointments = kept
	return nil
}

func (f *fakeAppointmentRepo) FindByID(_ context.Context, id int64) (*entity.Appointment, error) {
	for _, appointment := range f.appointments {
		if appointment.ID == id {
			return appointment, nil
		}
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) FindByDoctorAndTimeRange(_ context.Context, doctorID int64, start, end time.Time) ([]entity.Appointment, error) {
	var result []entity.Appointment
	for _, appointment := range f.appointments {
		if appointment.DoctorID == doctorID &&
			!appointment.AppointmentTime.Before(start) && appointment.AppointmentTime.Before(end) {
			result = append(result, *appointment)
		}
	}
	return result, nil
}

func (f *fakeAppointmentRepo) FindByDoctorPatientNameAndTimeRange(_ context.Context, doctorID int64, patientName string, start, end time.Time) ([]entity.Appointment, error) {
	var result []entity.Appointment
	for _, appointment := range f.appointments {
		if appointment.DoctorID == doctorID &&
			strings.Contains(strings.ToLower(appointment.Patient.Name), strings.ToLower(patientName)) &&
			!appointment.AppointmentTime.Before(start) && appointment.AppointmentTime.Before(end) {
			result = append(result, *appointment)
		}
	}
	return result, nil
}

func (f *fakeAppointmentRepo) FindByPatientID(_ context.Context, patientID int64) ([]entity.Appointment, error) {
	var result []entity.Appointment
	for _, appointment := range f.appointments {
		if appointment.PatientID == patientID {
			result = append(result, *appointment)
		}
	}
	return result, nil
}

func (f *fakeAppointmentRepo) FindByPatientIDAndStatus(_ context.Context, patientID int64, status int) ([]entity.Appointment, error) {
	var result []entity.Appointment
	for _, appointment := range f.appointments {
		if appointment.PatientID == patientID && appointment.Status == status {
			result = append(result, *appointment)
		}
	}
	return result, nil
}

func (f *fakeAppointmentRepo) FindByDoctorNameAndPatientID(_ context.Context, doctorName string, patientID int64) ([]entity.Appointment, error) {
	var result []entity.Appointment
	for _, appointment := range f.appointments {
		if appointment.PatientID == patientID &&
			strings.Contains(strings.ToLower(appointment.Doctor.Name), strings.ToLower(doctorName)) {
			result = append(result, *appointment)
		}
	}
	return result, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, id int64, status int) (int64, error) {
	for _, appointment := range f.appointments {
		if appointment.ID == id {
			appointment.Status = status
			return 1, nil
		}
	}
	return 0, nil
}

type fakePrescriptionRepo struct {
	prescriptions []entity.Prescription
	insertErr     error
}

func (f *fakePrescriptionRepo) Insert(_ context.Context, prescription *entity.Prescription) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	prescription.CreatedAt = time.Now()
	f.prescriptions = append(f.prescriptions, *prescription)
	return nil
}

func (f *fakePrescriptionRepo) FindByAppointmentID(_ context.Context, appointmentID int64) ([]entity.Prescription, error) {
	var result []entity.Prescription
	for _, prescription := range f.prescriptions {
		if prescription.AppointmentID == appointmentID {
			result = append(result, prescription)
		}
	}
	return result, nil
}

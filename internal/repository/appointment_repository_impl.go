package repository

import (
	"context"
	"errors"
	"time"

	"clinic-appointment-service/internal/domain/entity"
	domainRepo "clinic-appointment-service/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Omit("Doctor", "Patient").Create(appointment).Error
}

func (r *appointmentRepository) Save(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Omit("Doctor", "Patient").Save(appointment).Error
}

func (r *appointmentRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}

// DeleteByDoctorID removes every appointment of a doctor, used by the
// doctor-deletion cascade.
func (r *appointmentRepository) DeleteByDoctorID(ctx context.Context, doctorID int64) error {
	return r.db.WithContext(ctx).Where("doctor_id = ?", doctorID).Delete(&entity.Appointment{}).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, id int64) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("Doctor").Preload("Patient").
		Where("id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByDoctorAndTimeRange(ctx context.Context, doctorID int64, start, end time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("Doctor").Preload("Patient").
		Where("doctor_id = ? AND appointment_time BETWEEN ? AND ?", doctorID, start, end).
		Order("appointment_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDoctorPatientNameAndTimeRange(ctx context.Context, doctorID int64, patientName string, start, end time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("Doctor").Preload("Patient").
		Joins("JOIN patients ON patients.id = appointments.patient_id").
		Where("appointments.doctor_id = ? AND patients.name ILIKE ? AND appointments.appointment_time BETWEEN ? AND ?",
			doctorID, "%"+patientName+"%", start, end).
		Order("appointments.appointment_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByPatientID(ctx context.Context, patientID int64) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("Doctor").Preload("Patient").
		Where("patient_id = ?", patientID).
		Order("appointment_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByPatientIDAndStatus(ctx context.Context, patientID int64, status int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("Doctor").Preload("Patient").
		Where("patient_id = ? AND status = ?", patientID, status).
		Order("appointment_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDoctorNameAndPatientID(ctx context.Context, doctorName string, patientID int64) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("Doctor").Preload("Patient").
		Joins("JOIN doctors ON doctors.id = appointments.doctor_id").
		Where("doctors.name ILIKE ? AND appointments.patient_id = ?", "%"+doctorName+"%", patientID).
		Order("appointments.appointment_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// UpdateStatus flips the status flag in place. Returns affected rows so
// callers can distinguish a missing appointment from a no-op.
func (r *appointmentRepository) UpdateStatus(ctx context.Context, id int64, status int) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("id = ?", id).
		Update("status", status)
	return result.RowsAffected, result.Error
}

package repository

import (
	"context"
	"errors"
	"time"

	"go-dental-clinic/internal/domain/entity"
	domainRepo "go-dental-clinic/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, id int) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("Patient").Preload("Treatment").
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

func (r *appointmentRepository) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("Patient").Preload("Treatment").
		Order("appointment_date DESC, appointment_time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDate(ctx context.Context, date string) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("Patient").Preload("Treatment").
		Where("appointment_date = ?", date).
		Order("appointment_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByPatientID(ctx context.Context, patientID int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("Patient").Preload("Treatment").
		Where("patient_id = ?", patientID).
		Order("appointment_date DESC, appointment_time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// FindConflicting looks up a non-cancelled appointment already holding the
// (date, time) slot. excludeID keeps an appointment from conflicting with
// itself during updates.
func (r *appointmentRepository) FindConflicting(ctx context.Context, date, appointmentTime string, excludeID int) (*entity.Appointment, error) {
	query := r.db.WithContext(ctx).
		Where("appointment_date = ? AND appointment_time = ? AND status != ?",
			date, appointmentTime, entity.AppointmentStatusCancelled)

	if excludeID != 0 {
		query = query.Where("id != ?", excludeID)
	}

	var appointment entity.Appointment
	err := query.First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) UpdateFields(ctx context.Context, id int, changes map[string]interface{}) (int64, error) {
	changes["updated_at"] = time.Now()
	result := r.db.WithContext(ctx).
		Model(&entity.Appointment{}).
		Where("id = ?", id).
		Updates(changes)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) Delete(ctx context.Context, id int) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}

// CountActiveByPatientID counts the patient's non-cancelled appointments.
// Cancelled appointments do not block patient deletion.
func (r *appointmentRepository) CountActiveByPatientID(ctx context.Context, patientID int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Appointment{}).
		Where("patient_id = ? AND status != ?", patientID, entity.AppointmentStatusCancelled).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) GetStats(ctx context.Context) (*entity.AppointmentStats, error) {
	type statusCount struct {
		Status entity.AppointmentStatus
		Count  int64
	}

	var counts []statusCount
	err := r.db.WithContext(ctx).
		Model(&entity.Appointment{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	stats := &entity.AppointmentStats{}
	for _, c := range counts {
		stats.Total += c.Count
		switch c.Status {
		case entity.AppointmentStatusScheduled:
			stats.Scheduled = c.Count
		case entity.AppointmentStatusConfirmed:
			stats.Confirmed = c.Count
		case entity.AppointmentStatusCompleted:
			stats.Completed = c.Count
		case entity.AppointmentStatusCancelled:
			stats.Cancelled = c.Count
		}
	}

	err = r.db.WithContext(ctx).
		Model(&entity.Appointment{}).
		Where("appointment_date = CURRENT_DATE").
		Count(&stats.Today).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}

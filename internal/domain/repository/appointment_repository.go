package repository

import (
	"context"

	"go-dental-clinic/internal/domain/entity"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id int) (*entity.Appointment, error)
	FindAll(ctx context.Context) ([]entity.Appointment, error)
	FindByDate(ctx context.Context, date string) ([]entity.Appointment, error)
	FindByPatientID(ctx context.Context, patientID int) ([]entity.Appointment, error)
	// FindConflicting returns the first non-cancelled appointment occupying
	// (date, time), ignoring the appointment with excludeID when non-zero.
	FindConflicting(ctx context.Context, date, time string, excludeID int) (*entity.Appointment, error)
	// UpdateFields applies an allow-listed set of column changes plus a
	// server-set updated_at. Returns the number of affected rows.
	UpdateFields(ctx context.Context, id int, changes map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
	CountActiveByPatientID(ctx context.Context, patientID int) (int64, error)
	GetStats(ctx context.Context) (*entity.AppointmentStats, error)
}

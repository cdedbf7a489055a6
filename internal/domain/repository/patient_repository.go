package repository

import (
	"context"

	"go-dental-clinic/internal/domain/entity"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	FindByID(ctx context.Context, id int) (*entity.Patient, error)
	FindAll(ctx context.Context) ([]entity.Patient, error)
	Search(ctx context.Context, term string, limit int) ([]entity.Patient, error)
	UpdateFields(ctx context.Context, id int, changes map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
}

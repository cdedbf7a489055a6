package repository

import (
	"context"

	"go-dental-clinic/internal/domain/entity"
)

type TreatmentRepository interface {
	Create(ctx context.Context, treatment *entity.Treatment) error
	FindByID(ctx context.Context, id int) (*entity.Treatment, error)
	FindAll(ctx context.Context) ([]entity.Treatment, error)
	Delete(ctx context.Context, id int) (int64, error)
}

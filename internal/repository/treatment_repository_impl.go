package repository

import (
	"context"
	"errors"

	"go-dental-clinic/internal/domain/entity"
	domainRepo "go-dental-clinic/internal/domain/repository"

	"gorm.io/gorm"
)

type treatmentRepository struct {
	db *gorm.DB
}

func NewTreatmentRepository(db *gorm.DB) domainRepo.TreatmentRepository {
	return &treatmentRepository{db: db}
}

func (r *treatmentRepository) Create(ctx context.Context, treatment *entity.Treatment) error {
	return r.db.WithContext(ctx).Create(treatment).Error
}

func (r *treatmentRepository) FindByID(ctx context.Context, id int) (*entity.Treatment, error) {
	var treatment entity.Treatment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&treatment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &treatment, nil
}

func (r *treatmentRepository) FindAll(ctx context.Context) ([]entity.Treatment, error) {
	var treatments []entity.Treatment
	err := r.db.WithContext(ctx).Order("category ASC, name ASC").Find(&treatments).Error
	if err != nil {
		return nil, err
	}
	return treatments, nil
}

func (r *treatmentRepository) Delete(ctx context.Context, id int) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Treatment{})
	return result.RowsAffected, result.Error
}

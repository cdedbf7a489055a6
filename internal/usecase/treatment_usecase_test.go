package usecase

import (
	"context"
	"testing"

	"go-dental-clinic/internal/delivery/dto"
	"go-dental-clinic/internal/domain/entity"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newTreatmentFixture() (*MockTreatmentRepository, TreatmentUsecase) {
	treatmentRepo := &MockTreatmentRepository{
		FindByIDFunc: func(ctx context.Context, id int) (*entity.Treatment, error) {
			return &entity.Treatment{ID: id, Name: "Root canal", Duration: 60}, nil
		},
	}
	uc := NewTreatmentUsecase(testLogger(), treatmentRepo, &MockAuditService{})
	return treatmentRepo, uc
}

func TestCreateTreatment_DefaultDuration(t *testing.T) {
	_, uc := newTreatmentFixture()

	result, err := uc.CreateTreatment(context.Background(), &dto.CreateTreatmentRequest{
		Name:     "Cleaning",
		Price:    decimal.NewFromInt(50),
		Category: "preventive",
	})

	assert.NoError(t, err)
	assert.Equal(t, defaultTreatmentDuration, result.Duration)
	assert.Equal(t, "preventive", result.Category)
}

func TestCreateTreatment_NegativePrice(t *testing.T) {
	_, uc := newTreatmentFixture()

	result, err := uc.CreateTreatment(context.Background(), &dto.CreateTreatmentRequest{
		Name:  "Cleaning",
		Price: decimal.NewFromInt(-10),
	})

	assert.ErrorIs(t, err, ErrInvalidPrice)
	assert.Nil(t, result)
}

func TestCreateTreatment_InvalidCategory(t *testing.T) {
	_, uc := newTreatmentFixture()

	result, err := uc.CreateTreatment(context.Background(), &dto.CreateTreatmentRequest{
		Name:     "Cleaning",
		Price:    decimal.NewFromInt(50),
		Category: "cosmic",
	})

	assert.ErrorIs(t, err, ErrInvalidCategory)
	assert.Nil(t, result)
}

func TestDeleteTreatment_InUse(t *testing.T) {
	treatmentRepo, uc := newTreatmentFixture()
	treatmentRepo.DeleteFunc = func(ctx context.Context, id int) (int64, error) {
		return 0, &pgconn.PgError{Code: "23503", ConstraintName: "fk_appointments_treatment"}
	}

	err := uc.DeleteTreatment(context.Background(), 1)

	assert.ErrorIs(t, err, ErrTreatmentInUse)
}

func TestDeleteTreatment_NotFound(t *testing.T) {
	treatmentRepo, uc := newTreatmentFixture()
	treatmentRepo.FindByIDFunc = func(ctx context.Context, id int) (*entity.Treatment, error) {
		return nil, nil
	}

	err := uc.DeleteTreatment(context.Background(), 404)

	assert.ErrorIs(t, err, ErrTreatmentNotFound)
}

package usecase

import (
	"context"
	"errors"
	"strconv"

	"go-dental-clinic/internal/converter"
	"go-dental-clinic/internal/delivery/dto"
	"go-dental-clinic/internal/delivery/http/middleware"
	"go-dental-clinic/internal/domain/entity"
	"go-dental-clinic/internal/domain/repository"
	"go-dental-clinic/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrTreatmentNotFound = errors.New("treatment not found")
	ErrTreatmentInUse    = errors.New("treatment is referenced by appointments")
	ErrInvalidCategory   = errors.New("invalid treatment category")
	ErrInvalidPrice      = errors.New("price must not be negative")
)

const defaultTreatmentDuration = 30

type TreatmentUsecase interface {
	GetAllTreatments(ctx context.Context) (*dto.TreatmentListResponse, error)
	GetTreatment(ctx context.Context, id int) (*dto.TreatmentResponse, error)
	CreateTreatment(ctx context.Context, req *dto.CreateTreatmentRequest) (*dto.TreatmentResponse, error)
	DeleteTreatment(ctx context.Context, id int) error
}

type treatmentUsecase struct {
	log           *logrus.Logger
	treatmentRepo repository.TreatmentRepository
	auditService  service.AuditService
}

func NewTreatmentUsecase(
	log *logrus.Logger,
	treatmentRepo repository.TreatmentRepository,
	auditService service.AuditService,
) TreatmentUsecase {
	return &treatmentUsecase{
		log:           log,
		treatmentRepo: treatmentRepo,
		auditService:  auditService,
	}
}

func (u *treatmentUsecase) GetAllTreatments(ctx context.Context) (*dto.TreatmentListResponse, error) {
	treatments, err := u.treatmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find treatments: %+v", err)
		return nil, err
	}

	return &dto.TreatmentListResponse{
		Treatments: converter.TreatmentsToResponses(treatments),
		Total:      len(treatments),
	}, nil
}

func (u *treatmentUsecase) GetTreatment(ctx context.Context, id int) (*dto.TreatmentResponse, error) {
	treatment, err := u.treatmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find treatment %d: %+v", id, err)
		return nil, err
	}
	if treatment == nil {
		return nil, ErrTreatmentNotFound
	}

	return converter.TreatmentToResponse(treatment), nil
}

func (u *treatmentUsecase) CreateTreatment(ctx context.Context, req *dto.CreateTreatmentRequest) (*dto.TreatmentResponse, error) {
	if req.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}

	category := entity.TreatmentCategory(req.Category)
	if req.Category != "" && !category.IsValid() {
		return nil, ErrInvalidCategory
	}

	duration := req.Duration
	if duration == 0 {
		duration = defaultTreatmentDuration
	}

	treatment := &entity.Treatment{
		Name:        req.Name,
		Description: req.Description,
		Duration:    duration,
		Price:       req.Price,
		Category:    category,
	}

	if err := u.treatmentRepo.Create(ctx, treatment); err != nil {
		u.log.Warnf("Failed to create treatment: %+v", err)
		return nil, err
	}

	u.audit(ctx, func(userID *uuid.UUID) error {
		return u.auditService.LogCreate(ctx, userID, entity.AuditActionTreatmentCreate,
			"treatment", strconv.Itoa(treatment.ID), converter.TreatmentToResponse(treatment))
	})

	u.log.Infof("Treatment created: id=%d, name=%s", treatment.ID, treatment.Name)
	return converter.TreatmentToResponse(treatment), nil
}

func (u *treatmentUsecase) DeleteTreatment(ctx context.Context, id int) error {
	existing, err := u.treatmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find treatment %d: %+v", id, err)
		return err
	}
	if existing == nil {
		return ErrTreatmentNotFound
	}

	rows, err := u.treatmentRepo.Delete(ctx, id)
	if err != nil {
		if isForeignKeyError(err, "treatment") {
			return ErrTreatmentInUse
		}
		u.log.Warnf("Failed to delete treatment %d: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrTreatmentNotFound
	}

	u.audit(ctx, func(userID *uuid.UUID) error {
		return u.auditService.LogDelete(ctx, userID, entity.AuditActionTreatmentDelete,
			"treatment", strconv.Itoa(id), converter.TreatmentToResponse(existing))
	})

	u.log.Infof("Treatment deleted: id=%d", id)
	return nil
}

func (u *treatmentUsecase) audit(ctx context.Context, fn func(userID *uuid.UUID) error) {
	var userID *uuid.UUID
	if id, ok := middleware.GetUserIDFromContext(ctx); ok {
		userID = &id
	}
	_ = fn(userID)
}

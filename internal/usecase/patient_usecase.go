package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

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
	ErrPatientNotFound        = errors.New("patient not found")
	ErrEmailAlreadyExists     = errors.New("a patient with this email already exists")
	ErrPatientHasAppointments = errors.New("patient has active appointments")
)

const patientSearchLimit = 20

type PatientUsecase interface {
	GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error)
	GetPatient(ctx context.Context, id int) (*dto.PatientResponse, error)
	SearchPatients(ctx context.Context, term string) (*dto.PatientListResponse, error)
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	UpdatePatient(ctx context.Context, id int, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, id int) error
}

type patientUsecase struct {
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewPatientUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		log:             log,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

func (u *patientUsecase) GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, id int) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) SearchPatients(ctx context.Context, term string) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.Search(ctx, strings.TrimSpace(term), patientSearchLimit)
	if err != nil {
		u.log.Warnf("Failed to search patients for %q: %+v", term, err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	patient := &entity.Patient{
		Name:             req.Name,
		Phone:            req.Phone,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
		EmergencyPhone:   req.EmergencyPhone,
		MedicalHistory:   req.MedicalHistory,
		Allergies:        req.Allergies,
	}

	if req.Email != "" {
		email := req.Email
		patient.Email = &email
	}
	if req.BirthDate != "" {
		birthDate, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		patient.BirthDate = &birthDate
	}

	if err := u.patientRepo.Create(ctx, patient); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	u.audit(ctx, func(userID *uuid.UUID) error {
		return u.auditService.LogCreate(ctx, userID, entity.AuditActionPatientCreate,
			"patient", strconv.Itoa(patient.ID), converter.PatientToResponse(patient))
	})

	u.log.Infof("Patient created: id=%d", patient.ID)
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, id int, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	existing, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", id, err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrPatientNotFound
	}

	changes := map[string]interface{}{}
	if req.Name != nil {
		changes["name"] = *req.Name
	}
	if req.Email != nil {
		changes["email"] = *req.Email
	}
	if req.Phone != nil {
		changes["phone"] = *req.Phone
	}
	if req.Address != nil {
		changes["address"] = *req.Address
	}
	if req.BirthDate != nil {
		birthDate, err := time.Parse("2006-01-02", *req.BirthDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		changes["birth_date"] = birthDate
	}
	if req.EmergencyContact != nil {
		changes["emergency_contact"] = *req.EmergencyContact
	}
	if req.EmergencyPhone != nil {
		changes["emergency_phone"] = *req.EmergencyPhone
	}
	if req.MedicalHistory != nil {
		changes["medical_history"] = *req.MedicalHistory
	}
	if req.Allergies != nil {
		changes["allergies"] = *req.Allergies
	}

	if len(changes) == 0 {
		return nil, ErrNothingToUpdate
	}

	oldValue := converter.PatientToResponse(existing)

	rows, err := u.patientRepo.UpdateFields(ctx, id, changes)
	if err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update patient %d: %+v", id, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrPatientNotFound
	}

	updated, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to reload patient %d: %+v", id, err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrPatientNotFound
	}

	u.audit(ctx, func(userID *uuid.UUID) error {
		return u.auditService.LogUpdate(ctx, userID, entity.AuditActionPatientUpdate,
			"patient", strconv.Itoa(id), oldValue, converter.PatientToResponse(updated))
	})

	return converter.PatientToResponse(updated), nil
}

// DeletePatient refuses to remove a patient that still holds a slot;
// cancelled appointments do not block deletion.
func (u *patientUsecase) DeletePatient(ctx context.Context, id int) error {
	existing, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", id, err)
		return err
	}
	if existing == nil {
		return ErrPatientNotFound
	}

	active, err := u.appointmentRepo.CountActiveByPatientID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to count appointments for patient %d: %+v", id, err)
		return err
	}
	if active > 0 {
		return ErrPatientHasAppointments
	}

	rows, err := u.patientRepo.Delete(ctx, id)
	if err != nil {
		if isForeignKeyError(err, "patient") {
			return ErrPatientHasAppointments
		}
		u.log.Warnf("Failed to delete patient %d: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrPatientNotFound
	}

	u.audit(ctx, func(userID *uuid.UUID) error {
		return u.auditService.LogDelete(ctx, userID, entity.AuditActionPatientDelete,
			"patient", strconv.Itoa(id), converter.PatientToResponse(existing))
	})

	u.log.Infof("Patient deleted: id=%d", id)
	return nil
}

func (u *patientUsecase) audit(ctx context.Context, fn func(userID *uuid.UUID) error) {
	var userID *uuid.UUID
	if id, ok := middleware.GetUserIDFromContext(ctx); ok {
		userID = &id
	}
	_ = fn(userID)
}

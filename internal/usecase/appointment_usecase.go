package usecase

import (
	"context"
	"errors"
	"strconv"
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
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrSlotUnavailable     = errors.New("appointment slot is not available")
	ErrAppointmentInPast   = errors.New("cannot schedule an appointment in the past")
	ErrAvailabilityCheck   = errors.New("unable to verify slot availability")
	ErrNothingToUpdate     = errors.New("no fields to update")
	ErrInvalidStatus       = errors.New("invalid appointment status")
	ErrInvalidDateFormat   = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidTimeFormat   = errors.New("invalid time format, use HH:MM")
)

type AppointmentUsecase interface {
	GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetAppointment(ctx context.Context, id int) (*dto.AppointmentResponse, error)
	GetAppointmentsByDate(ctx context.Context, date string) (*dto.AppointmentListResponse, error)
	GetAppointmentsByPatient(ctx context.Context, patientID int) (*dto.AppointmentListResponse, error)
	GetStats(ctx context.Context) (*dto.AppointmentStatsResponse, error)
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, id int, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, id int) error
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	treatmentRepo   repository.TreatmentRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	treatmentRepo repository.TreatmentRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		treatmentRepo:   treatmentRepo,
		auditService:    auditService,
	}
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id int) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointmentsByDate(ctx context.Context, date string) (*dto.AppointmentListResponse, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrInvalidDateFormat
	}

	appointments, err := u.appointmentRepo.FindByDate(ctx, date)
	if err != nil {
		u.log.Warnf("Failed to find appointments for date %s: %+v", date, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetAppointmentsByPatient(ctx context.Context, patientID int) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatientID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %d: %+v", patientID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetStats(ctx context.Context) (*dto.AppointmentStatsResponse, error) {
	stats, err := u.appointmentRepo.GetStats(ctx)
	if err != nil {
		u.log.Warnf("Failed to get appointment stats: %+v", err)
		return nil, err
	}

	return converter.StatsToResponse(stats), nil
}

// CreateAppointment runs the full pre-write gate before persisting:
// format checks, not-in-past, patient and treatment existence, then the
// slot availability check. The insert still catches the slot constraint
// violation so a concurrent booking that slips past the pre-check surfaces
// as the same conflict error.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointmentDate, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	slotTime, err := time.Parse("15:04", req.AppointmentTime)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}

	// Temporal check applies to creation only
	when := time.Date(
		appointmentDate.Year(), appointmentDate.Month(), appointmentDate.Day(),
		slotTime.Hour(), slotTime.Minute(), 0, 0, time.Local,
	)
	if when.Before(time.Now()) {
		return nil, ErrAppointmentInPast
	}

	// Referential checks
	patient, err := u.patientRepo.FindByID(ctx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	treatment, err := u.treatmentRepo.FindByID(ctx, req.TreatmentID)
	if err != nil {
		u.log.Warnf("Failed to find treatment %d: %+v", req.TreatmentID, err)
		return nil, err
	}
	if treatment == nil {
		return nil, ErrTreatmentNotFound
	}

	// Slot check: fast, friendly error. Never guesses on failure; the
	// caller must not write when availability is unknown.
	conflict, err := u.appointmentRepo.FindConflicting(ctx, req.AppointmentDate, req.AppointmentTime, 0)
	if err != nil {
		u.log.Warnf("Failed availability check for %s %s: %+v", req.AppointmentDate, req.AppointmentTime, err)
		return nil, ErrAvailabilityCheck
	}
	if conflict != nil {
		return nil, ErrSlotUnavailable
	}

	treatmentID := req.TreatmentID
	appointment := &entity.Appointment{
		PatientID:         req.PatientID,
		TreatmentID:       &treatmentID,
		AppointmentDate:   appointmentDate,
		AppointmentTime:   req.AppointmentTime,
		Status:            entity.AppointmentStatusScheduled,
		Notes:             req.Notes,
		PractitionerNotes: req.PractitionerNotes,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		// The partial unique index is the authoritative guard; losing the
		// race presents identically to failing the pre-check.
		if isDuplicateKeyError(err, "slot") {
			return nil, ErrSlotUnavailable
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.audit(ctx, func(userID *uuid.UUID) error {
		return u.auditService.LogCreate(ctx, userID, entity.AuditActionAppointmentCreate,
			"appointment", strconv.Itoa(appointment.ID), converter.AppointmentToResponse(appointment))
	})

	// Reload with joined patient/treatment display fields
	full, err := u.appointmentRepo.FindByID(ctx, appointment.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %d: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment), nil
	}

	u.log.Infof("Appointment created: id=%d, patient=%d, slot=%s %s",
		appointment.ID, req.PatientID, req.AppointmentDate, req.AppointmentTime)
	return converter.AppointmentToResponse(full), nil
}

// UpdateAppointment applies a partial change set. Only fields named in the
// request DTO can ever reach the database; the slot is re-checked only when
// date or time is part of the change set, excluding the appointment itself.
func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id int, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	existing, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrAppointmentNotFound
	}

	// Typed allow-list: each updatable field maps to exactly one column.
	changes := map[string]interface{}{}

	if req.AppointmentDate != "" {
		appointmentDate, err := time.Parse("2006-01-02", req.AppointmentDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		changes["appointment_date"] = appointmentDate
	}
	if req.AppointmentTime != "" {
		if _, err := time.Parse("15:04", req.AppointmentTime); err != nil {
			return nil, ErrInvalidTimeFormat
		}
		changes["appointment_time"] = req.AppointmentTime
	}
	if req.Status != "" {
		status := entity.AppointmentStatus(req.Status)
		if !status.IsValid() {
			return nil, ErrInvalidStatus
		}
		changes["status"] = status
	}
	if req.Notes != nil {
		changes["notes"] = *req.Notes
	}
	if req.PractitionerNotes != nil {
		changes["practitioner_notes"] = *req.PractitionerNotes
	}

	if len(changes) == 0 {
		return nil, ErrNothingToUpdate
	}

	// Re-check the slot only when the slot itself moves
	if req.AppointmentDate != "" || req.AppointmentTime != "" {
		checkDate := req.AppointmentDate
		if checkDate == "" {
			checkDate = existing.AppointmentDate.Format("2006-01-02")
		}
		checkTime := req.AppointmentTime
		if checkTime == "" {
			checkTime = existing.TimeOfDay()
		}

		conflict, err := u.appointmentRepo.FindConflicting(ctx, checkDate, checkTime, id)
		if err != nil {
			u.log.Warnf("Failed availability check for %s %s: %+v", checkDate, checkTime, err)
			return nil, ErrAvailabilityCheck
		}
		if conflict != nil {
			return nil, ErrSlotUnavailable
		}
	}

	oldValue := converter.AppointmentToResponse(existing)

	rows, err := u.appointmentRepo.UpdateFields(ctx, id, changes)
	if err != nil {
		if isDuplicateKeyError(err, "slot") {
			return nil, ErrSlotUnavailable
		}
		u.log.Warnf("Failed to update appointment %d: %+v", id, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrAppointmentNotFound
	}

	updated, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to reload appointment %d: %+v", id, err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrAppointmentNotFound
	}

	u.audit(ctx, func(userID *uuid.UUID) error {
		return u.auditService.LogUpdate(ctx, userID, entity.AuditActionAppointmentUpdate,
			"appointment", strconv.Itoa(id), oldValue, converter.AppointmentToResponse(updated))
	})

	return converter.AppointmentToResponse(updated), nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id int) error {
	existing, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return err
	}
	if existing == nil {
		return ErrAppointmentNotFound
	}

	rows, err := u.appointmentRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment %d: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrAppointmentNotFound
	}

	u.audit(ctx, func(userID *uuid.UUID) error {
		return u.auditService.LogDelete(ctx, userID, entity.AuditActionAppointmentDelete,
			"appointment", strconv.Itoa(id), converter.AppointmentToResponse(existing))
	})

	u.log.Infof("Appointment deleted: id=%d", id)
	return nil
}

// audit runs fn with the acting user (when present); audit failures are
// already logged by the service and never fail the request.
func (u *appointmentUsecase) audit(ctx context.Context, fn func(userID *uuid.UUID) error) {
	var userID *uuid.UUID
	if id, ok := middleware.GetUserIDFromContext(ctx); ok {
		userID = &id
	}
	_ = fn(userID)
}

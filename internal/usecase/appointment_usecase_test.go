package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"go-dental-clinic/internal/delivery/dto"
	"go-dental-clinic/internal/domain/entity"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func tomorrow() string {
	return time.Now().AddDate(0, 0, 1).Format("2006-01-02")
}

func futureAppointment(id int) *entity.Appointment {
	date, _ := time.Parse("2006-01-02", tomorrow())
	treatmentID := 1
	return &entity.Appointment{
		ID:              id,
		PatientID:       1,
		TreatmentID:     &treatmentID,
		AppointmentDate: date,
		AppointmentTime: "10:00:00",
		Status:          entity.AppointmentStatusScheduled,
	}
}

func newAppointmentFixture() (*MockAppointmentRepository, *MockPatientRepository, *MockTreatmentRepository, *MockAuditService, AppointmentUsecase) {
	appointmentRepo := &MockAppointmentRepository{}
	patientRepo := &MockPatientRepository{
		FindByIDFunc: func(ctx context.Context, id int) (*entity.Patient, error) {
			return &entity.Patient{ID: id, Name: "Maria Lopez"}, nil
		},
	}
	treatmentRepo := &MockTreatmentRepository{
		FindByIDFunc: func(ctx context.Context, id int) (*entity.Treatment, error) {
			return &entity.Treatment{ID: id, Name: "Cleaning", Duration: 30}, nil
		},
	}
	auditService := &MockAuditService{}
	uc := NewAppointmentUsecase(testLogger(), appointmentRepo, patientRepo, treatmentRepo, auditService)
	return appointmentRepo, patientRepo, treatmentRepo, auditService, uc
}

func TestCreateAppointment_Success(t *testing.T) {
	appointmentRepo, _, _, auditService, uc := newAppointmentFixture()
	appointmentRepo.FindByIDFunc = func(ctx context.Context, id int) (*entity.Appointment, error) {
		return futureAppointment(id), nil
	}

	result, err := uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:       1,
		TreatmentID:     1,
		AppointmentDate: tomorrow(),
		AppointmentTime: "10:00",
	})

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, "scheduled", result.Status)
	assert.Equal(t, "10:00", result.AppointmentTime)
	assert.Equal(t, 1, appointmentRepo.CreateCalls)
	assert.Contains(t, auditService.Actions, entity.AuditActionAppointmentCreate)
}

func TestCreateAppointment_SlotTaken(t *testing.T) {
	appointmentRepo, _, _, _, uc := newAppointmentFixture()
	appointmentRepo.FindConflictingFunc = func(ctx context.Context, date, slot string, excludeID int) (*entity.Appointment, error) {
		return futureAppointment(7), nil
	}

	result, err := uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:       1,
		TreatmentID:     1,
		AppointmentDate: tomorrow(),
		AppointmentTime: "10:00",
	})

	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Nil(t, result)
	assert.Equal(t, 0, appointmentRepo.CreateCalls)
}

func TestCreateAppointment_PastDate(t *testing.T) {
	appointmentRepo, _, _, _, uc := newAppointmentFixture()

	result, err := uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:       1,
		TreatmentID:     1,
		AppointmentDate: "2020-01-15",
		AppointmentTime: "10:00",
	})

	assert.ErrorIs(t, err, ErrAppointmentInPast)
	assert.Nil(t, result)
	assert.Equal(t, 0, appointmentRepo.CreateCalls)
}

func TestCreateAppointment_PatientMissing(t *testing.T) {
	appointmentRepo, patientRepo, _, _, uc := newAppointmentFixture()
	patientRepo.FindByIDFunc = func(ctx context.Context, id int) (*entity.Patient, error) {
		return nil, nil
	}

	_, err := uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:       99,
		TreatmentID:     1,
		AppointmentDate: tomorrow(),
		AppointmentTime: "10:00",
	})

	assert.ErrorIs(t, err, ErrPatientNotFound)
	assert.Equal(t, 0, appointmentRepo.CreateCalls)
}

func TestCreateAppointment_TreatmentMissing(t *testing.T) {
	appointmentRepo, _, treatmentRepo, _, uc := newAppointmentFixture()
	treatmentRepo.FindByIDFunc = func(ctx context.Context, id int) (*entity.Treatment, error) {
		return nil, nil
	}

	_, err := uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:       1,
		TreatmentID:     99,
		AppointmentDate: tomorrow(),
		AppointmentTime: "10:00",
	})

	assert.ErrorIs(t, err, ErrTreatmentNotFound)
	assert.Equal(t, 0, appointmentRepo.CreateCalls)
}

func TestCreateAppointment_AvailabilityCheckFails(t *testing.T) {
	appointmentRepo, _, _, _, uc := newAppointmentFixture()
	appointmentRepo.FindConflictingFunc = func(ctx context.Context, date, slot string, excludeID int) (*entity.Appointment, error) {
		return nil, errRepoDown
	}

	_, err := uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:       1,
		TreatmentID:     1,
		AppointmentDate: tomorrow(),
		AppointmentTime: "10:00",
	})

	// An unknown slot state must never fall through to a write
	assert.ErrorIs(t, err, ErrAvailabilityCheck)
	assert.Equal(t, 0, appointmentRepo.CreateCalls)
}

func TestCreateAppointment_LosesInsertRace(t *testing.T) {
	appointmentRepo, _, _, _, uc := newAppointmentFixture()
	appointmentRepo.CreateFunc = func(ctx context.Context, appointment *entity.Appointment) error {
		return &pgconn.PgError{Code: "23505", ConstraintName: "uq_appointments_slot"}
	}

	_, err := uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:       1,
		TreatmentID:     1,
		AppointmentDate: tomorrow(),
		AppointmentTime: "10:00",
	})

	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestUpdateAppointment_EmptyChangeSet(t *testing.T) {
	appointmentRepo, _, _, _, uc := newAppointmentFixture()
	appointmentRepo.FindByIDFunc = func(ctx context.Context, id int) (*entity.Appointment, error) {
		return futureAppointment(id), nil
	}

	result, err := uc.UpdateAppointment(context.Background(), 1, &dto.UpdateAppointmentRequest{})

	assert.ErrorIs(t, err, ErrNothingToUpdate)
	assert.Nil(t, result)
	assert.Equal(t, 0, appointmentRepo.UpdateFieldsCalls)
}

func TestUpdateAppointment_NotFound(t *testing.T) {
	_, _, _, _, uc := newAppointmentFixture()

	notes := "rebooked"
	_, err := uc.UpdateAppointment(context.Background(), 42, &dto.UpdateAppointmentRequest{Notes: &notes})

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUpdateAppointment_NotesOnlySkipsSlotCheck(t *testing.T) {
	appointmentRepo, _, _, _, uc := newAppointmentFixture()
	appointmentRepo.FindByIDFunc = func(ctx context.Context, id int) (*entity.Appointment, error) {
		return futureAppointment(id), nil
	}

	notes := "patient prefers mornings"
	var captured map[string]interface{}
	appointmentRepo.UpdateFieldsFunc = func(ctx context.Context, id int, changes map[string]interface{}) (int64, error) {
		captured = changes
		return 1, nil
	}

	result, err := uc.UpdateAppointment(context.Background(), 1, &dto.UpdateAppointmentRequest{Notes: &notes})

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, 0, appointmentRepo.ConflictCalls)
	assert.Equal(t, notes, captured["notes"])
	assert.Len(t, captured, 1)
}

func TestUpdateAppointment_MoveExcludesSelf(t *testing.T) {
	appointmentRepo, _, _, _, uc := newAppointmentFixture()
	appointmentRepo.FindByIDFunc = func(ctx context.Context, id int) (*entity.Appointment, error) {
		return futureAppointment(id), nil
	}

	var gotExcludeID int
	var gotTime string
	appointmentRepo.FindConflictingFunc = func(ctx context.Context, date, slot string, excludeID int) (*entity.Appointment, error) {
		gotExcludeID = excludeID
		gotTime = slot
		return nil, nil
	}

	_, err := uc.UpdateAppointment(context.Background(), 5, &dto.UpdateAppointmentRequest{
		AppointmentDate: tomorrow(),
	})

	assert.NoError(t, err)
	assert.Equal(t, 5, gotExcludeID)
	// The unchanged time comes from the stored row, normalized to HH:MM
	assert.Equal(t, "10:00", gotTime)
}

func TestUpdateAppointment_MovedSlotConflict(t *testing.T) {
	appointmentRepo, _, _, _, uc := newAppointmentFixture()
	appointmentRepo.FindByIDFunc = func(ctx context.Context, id int) (*entity.Appointment, error) {
		return futureAppointment(id), nil
	}
	appointmentRepo.FindConflictingFunc = func(ctx context.Context, date, slot string, excludeID int) (*entity.Appointment, error) {
		return futureAppointment(9), nil
	}

	_, err := uc.UpdateAppointment(context.Background(), 5, &dto.UpdateAppointmentRequest{
		AppointmentTime: "11:00",
	})

	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Equal(t, 0, appointmentRepo.UpdateFieldsCalls)
}

func TestUpdateAppointment_InvalidStatus(t *testing.T) {
	appointmentRepo, _, _, _, uc := newAppointmentFixture()
	appointmentRepo.FindByIDFunc = func(ctx context.Context, id int) (*entity.Appointment, error) {
		return futureAppointment(id), nil
	}

	_, err := uc.UpdateAppointment(context.Background(), 1, &dto.UpdateAppointmentRequest{
		Status: "postponed",
	})

	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Equal(t, 0, appointmentRepo.UpdateFieldsCalls)
}

func TestUpdateAppointment_CancelWritesStatus(t *testing.T) {
	appointmentRepo, _, _, auditService, uc := newAppointmentFixture()
	appointmentRepo.FindByIDFunc = func(ctx context.Context, id int) (*entity.Appointment, error) {
		return futureAppointment(id), nil
	}

	var captured map[string]interface{}
	appointmentRepo.UpdateFieldsFunc = func(ctx context.Context, id int, changes map[string]interface{}) (int64, error) {
		captured = changes
		return 1, nil
	}

	_, err := uc.UpdateAppointment(context.Background(), 1, &dto.UpdateAppointmentRequest{
		Status: "cancelled",
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusCancelled, captured["status"])
	// No slot recheck when only the status changes
	assert.Equal(t, 0, appointmentRepo.ConflictCalls)
	assert.Contains(t, auditService.Actions, entity.AuditActionAppointmentUpdate)
}

func TestDeleteAppointment_NotFound(t *testing.T) {
	_, _, _, _, uc := newAppointmentFixture()

	err := uc.DeleteAppointment(context.Background(), 123)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestGetAppointmentsByDate_BadFormat(t *testing.T) {
	_, _, _, _, uc := newAppointmentFixture()

	_, err := uc.GetAppointmentsByDate(context.Background(), "15-01-2026")

	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

package usecase

import (
	"context"
	"errors"

	"go-dental-clinic/internal/domain/entity"
	"go-dental-clinic/internal/domain/repository"
	"go-dental-clinic/internal/service"

	"github.com/google/uuid"
)

var _ repository.AppointmentRepository = (*MockAppointmentRepository)(nil)

type MockAppointmentRepository struct {
	CreateFunc                 func(ctx context.Context, appointment *entity.Appointment) error
	FindByIDFunc               func(ctx context.Context, id int) (*entity.Appointment, error)
	FindAllFunc                func(ctx context.Context) ([]entity.Appointment, error)
	FindByDateFunc             func(ctx context.Context, date string) ([]entity.Appointment, error)
	FindByPatientIDFunc        func(ctx context.Context, patientID int) ([]entity.Appointment, error)
	FindConflictingFunc        func(ctx context.Context, date, time string, excludeID int) (*entity.Appointment, error)
	UpdateFieldsFunc           func(ctx context.Context, id int, changes map[string]interface{}) (int64, error)
	DeleteFunc                 func(ctx context.Context, id int) (int64, error)
	CountActiveByPatientIDFunc func(ctx context.Context, patientID int) (int64, error)
	GetStatsFunc               func(ctx context.Context) (*entity.AppointmentStats, error)

	CreateCalls       int
	UpdateFieldsCalls int
	ConflictCalls     int
}

func (m *MockAppointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, appointment)
	}
	appointment.ID = 1
	return nil
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, id int) (*entity.Appointment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) FindByDate(ctx context.Context, date string) ([]entity.Appointment, error) {
	if m.FindByDateFunc != nil {
		return m.FindByDateFunc(ctx, date)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) FindByPatientID(ctx context.Context, patientID int) ([]entity.Appointment, error) {
	if m.FindByPatientIDFunc != nil {
		return m.FindByPatientIDFunc(ctx, patientID)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) FindConflicting(ctx context.Context, date, time string, excludeID int) (*entity.Appointment, error) {
	m.ConflictCalls++
	if m.FindConflictingFunc != nil {
		return m.FindConflictingFunc(ctx, date, time, excludeID)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) UpdateFields(ctx context.Context, id int, changes map[string]interface{}) (int64, error) {
	m.UpdateFieldsCalls++
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, id, changes)
	}
	return 1, nil
}

func (m *MockAppointmentRepository) Delete(ctx context.Context, id int) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return 1, nil
}

func (m *MockAppointmentRepository) CountActiveByPatientID(ctx context.Context, patientID int) (int64, error) {
	if m.CountActiveByPatientIDFunc != nil {
		return m.CountActiveByPatientIDFunc(ctx, patientID)
	}
	return 0, nil
}

func (m *MockAppointmentRepository) GetStats(ctx context.Context) (*entity.AppointmentStats, error) {
	if m.GetStatsFunc != nil {
		return m.GetStatsFunc(ctx)
	}
	return &entity.AppointmentStats{}, nil
}

var _ repository.PatientRepository = (*MockPatientRepository)(nil)

type MockPatientRepository struct {
	CreateFunc       func(ctx context.Context, patient *entity.Patient) error
	FindByIDFunc     func(ctx context.Context, id int) (*entity.Patient, error)
	FindAllFunc      func(ctx context.Context) ([]entity.Patient, error)
	SearchFunc       func(ctx context.Context, term string, limit int) ([]entity.Patient, error)
	UpdateFieldsFunc func(ctx context.Context, id int, changes map[string]interface{}) (int64, error)
	DeleteFunc       func(ctx context.Context, id int) (int64, error)

	DeleteCalls       int
	UpdateFieldsCalls int
}

func (m *MockPatientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, patient)
	}
	patient.ID = 1
	return nil
}

func (m *MockPatientRepository) FindByID(ctx context.Context, id int) (*entity.Patient, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockPatientRepository) FindAll(ctx context.Context) ([]entity.Patient, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockPatientRepository) Search(ctx context.Context, term string, limit int) ([]entity.Patient, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, term, limit)
	}
	return nil, nil
}

func (m *MockPatientRepository) UpdateFields(ctx context.Context, id int, changes map[string]interface{}) (int64, error) {
	m.UpdateFieldsCalls++
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, id, changes)
	}
	return 1, nil
}

func (m *MockPatientRepository) Delete(ctx context.Context, id int) (int64, error) {
	m.DeleteCalls++
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return 1, nil
}

var _ repository.TreatmentRepository = (*MockTreatmentRepository)(nil)

type MockTreatmentRepository struct {
	CreateFunc   func(ctx context.Context, treatment *entity.Treatment) error
	FindByIDFunc func(ctx context.Context, id int) (*entity.Treatment, error)
	FindAllFunc  func(ctx context.Context) ([]entity.Treatment, error)
	DeleteFunc   func(ctx context.Context, id int) (int64, error)
}

func (m *MockTreatmentRepository) Create(ctx context.Context, treatment *entity.Treatment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, treatment)
	}
	treatment.ID = 1
	return nil
}

func (m *MockTreatmentRepository) FindByID(ctx context.Context, id int) (*entity.Treatment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTreatmentRepository) FindAll(ctx context.Context) ([]entity.Treatment, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockTreatmentRepository) Delete(ctx context.Context, id int) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return 1, nil
}

var _ repository.UserRepository = (*MockUserRepository)(nil)

type MockUserRepository struct {
	CreateFunc      func(ctx context.Context, user *entity.User) error
	FindByIDFunc    func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	user.ID = uuid.New()
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

var _ service.AuditService = (*MockAuditService)(nil)

type MockAuditService struct {
	Actions []string
}

func (m *MockAuditService) LogCreate(ctx context.Context, userID *uuid.UUID, action, entityName, entityID string, newValue interface{}) error {
	m.Actions = append(m.Actions, action)
	return nil
}

func (m *MockAuditService) LogUpdate(ctx context.Context, userID *uuid.UUID, action, entityName, entityID string, oldValue, newValue interface{}) error {
	m.Actions = append(m.Actions, action)
	return nil
}

func (m *MockAuditService) LogDelete(ctx context.Context, userID *uuid.UUID, action, entityName, entityID string, oldValue interface{}) error {
	m.Actions = append(m.Actions, action)
	return nil
}

var errRepoDown = errors.New("repository unavailable")
